package create_tool

import (
	"errors"
	"net/http"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	"github.com/bedylmz/toolshare-fe/internal/service/tools"
	"github.com/bedylmz/toolshare-fe/internal/service/tools/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTool        = "некорректные данные инструмента"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/tools
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateToolRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tools - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tools - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	tool, err := h.service.Create(r.Context(), &models.CreateToolRequest{
		ToolName: req.ToolName,
		Category: req.Category,
		UserID:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrInvalidInput):
			h.logger.Warn("POST /tools - Invalid tool data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTool)

		default:
			h.logger.Error("POST /tools - Failed to create tool: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tools - Tool created: tool_id=%d, user_id=%d", tool.ToolID, userID)
	handlers.RespondJSON(w, http.StatusCreated, tool)
}
