package open_picker

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	openPicker "github.com/bedylmz/toolshare-fe/internal/usecase/open_picker"
)

const (
	msgInvalidToolID = "некорректный ID инструмента"
	msgToolNotFound  = "инструмент не найден"
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidInput  = "некорректные входные данные"
)

type Handler struct {
	useCase OpenPickerUseCase
	logger  Logger
}

func NewHandler(useCase OpenPickerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tools/{toolId}/picker
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	toolID, err := strconv.ParseInt(vars["toolId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /tools/{id}/picker - Invalid tool ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidToolID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tools/{id}/picker - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	userName, _ := middleware.GetUserName(r.Context())

	result, err := h.useCase.Execute(r.Context(), &openPicker.Request{
		UserID:   userID,
		UserName: userName,
		ToolID:   toolID,
	})
	if err != nil {
		switch {
		case errors.Is(err, openPicker.ErrToolNotFound):
			h.logger.Warn("POST /tools/{id}/picker - Tool not found: tool_id=%d", toolID)
			handlers.RespondNotFound(w, msgToolNotFound)

		case errors.Is(err, openPicker.ErrInvalidInput):
			h.logger.Warn("POST /tools/{id}/picker - Invalid input: tool_id=%d, error=%v", toolID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tools/{id}/picker - Failed to open picker: tool_id=%d, error=%v", toolID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tools/{id}/picker - Session opened: session_id=%s, tool_id=%d, user_id=%d",
		result.SessionID, toolID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
