package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	getCalendar "github.com/bedylmz/toolshare-fe/internal/usecase/get_calendar"
)

const (
	msgSessionNotFound = "сессия выбора дат не найдена или истекла"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
	msgInvalidInput    = "некорректные входные данные"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/picker/{sessionId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /picker/{id}/calendar - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrSessionNotFound):
			h.logger.Warn("GET /picker/{id}/calendar - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getCalendar.ErrAccessDenied):
			h.logger.Warn("GET /picker/{id}/calendar - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /picker/{id}/calendar - Invalid input: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /picker/{id}/calendar - Failed to build calendar: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /picker/{id}/calendar - Calendar returned: session_id=%s, month=%d/%d",
		sessionID, result.Month, result.Year)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
