package list_tools

import (
	"net/http"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/service/tools/models"
)

type Handler struct {
	service ToolsService
	logger  Logger
}

func NewHandler(service ToolsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tools?search=&category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListToolsRequest{
		Search:   query.Get("search"),
		Category: query.Get("category"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /tools - Failed to list tools: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tools - %d tools returned", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
