package get_tool

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/service/tools"
)

const (
	msgInvalidToolID = "некорректный ID инструмента"
	msgNotFound      = "инструмент не найден"
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

// Handle GET /api/v1/tools/{toolId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	toolID, err := strconv.ParseInt(vars["toolId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tools/{id} - Invalid tool ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidToolID)
		return
	}

	tool, err := h.service.GetByID(r.Context(), toolID)
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrToolNotFound):
			h.logger.Warn("GET /tools/{id} - Tool not found: tool_id=%d", toolID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tools.ErrInvalidInput):
			h.logger.Warn("GET /tools/{id} - Invalid input: tool_id=%d", toolID)
			handlers.RespondBadRequest(w, msgInvalidToolID)

		default:
			h.logger.Error("GET /tools/{id} - Failed to get tool: tool_id=%d, error=%v", toolID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tools/{id} - Tool retrieved: tool_id=%d", toolID)
	handlers.RespondJSON(w, http.StatusOK, tool)
}
