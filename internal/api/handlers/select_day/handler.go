package select_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	selectDay "github.com/bedylmz/toolshare-fe/internal/usecase/select_day"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayNotSelectable   = "этот день недоступен для выбора"
	msgRangeConflict      = "в выбранном диапазоне есть чужая резервация"
	msgSubmitting         = "подтверждение уже выполняется"
	msgSessionNotFound    = "сессия выбора дат не найдена или истекла"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase SelectDayUseCase
	logger  Logger
}

func NewHandler(useCase SelectDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/picker/{sessionId}/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /picker/{id}/days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /picker/{id}/days - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &selectDay.Request{
		SessionID: sessionID,
		UserID:    userID,
		Date:      req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, selectDay.ErrInvalidDate):
			h.logger.Warn("POST /picker/{id}/days - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, selectDay.ErrDayNotSelectable):
			h.logger.Warn("POST /picker/{id}/days - Day not selectable: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayNotSelectable)

		case errors.Is(err, selectDay.ErrRangeConflict):
			h.logger.Warn("POST /picker/{id}/days - Range conflict: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgRangeConflict)

		case errors.Is(err, selectDay.ErrSubmissionInFlight):
			h.logger.Warn("POST /picker/{id}/days - Submission in flight: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitting)

		case errors.Is(err, selectDay.ErrSessionNotFound):
			h.logger.Warn("POST /picker/{id}/days - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selectDay.ErrAccessDenied):
			h.logger.Warn("POST /picker/{id}/days - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, selectDay.ErrInvalidInput):
			h.logger.Warn("POST /picker/{id}/days - Invalid input: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /picker/{id}/days - Failed to select day: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /picker/{id}/days - Selection updated: session_id=%s, state=%s, days=%d",
		sessionID, result.State, result.DayCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
