package close_picker

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	"github.com/bedylmz/toolshare-fe/internal/service/picker"
)

const (
	msgSessionNotFound = "сессия выбора дат не найдена или истекла"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
	msgInvalidInput    = "некорректные входные данные"
)

type Handler struct {
	service PickerService
	logger  Logger
}

func NewHandler(service PickerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/picker/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /picker/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Close(sessionID, userID); err != nil {
		switch {
		case errors.Is(err, picker.ErrSessionNotFound):
			h.logger.Warn("DELETE /picker/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, picker.ErrAccessDenied):
			h.logger.Warn("DELETE /picker/{id} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, picker.ErrInvalidInput):
			h.logger.Warn("DELETE /picker/{id} - Invalid input: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /picker/{id} - Failed to close session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /picker/{id} - Session closed: session_id=%s, user_id=%d", sessionID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
