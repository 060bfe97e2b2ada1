package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	confirmReservation "github.com/bedylmz/toolshare-fe/internal/usecase/confirm_reservation"
)

const (
	msgIncompleteSelection = "диапазон дат не завершен"
	msgSubmitting          = "подтверждение уже выполняется"
	msgReservationConflict = "выбранные даты пересекаются с существующей резервацией"
	msgInvalidReservation  = "некорректные параметры резервации"
	msgToolNotFound        = "инструмент не найден"
	msgSessionNotFound     = "сессия выбора дат не найдена или истекла"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	useCase ConfirmReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/picker/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /picker/{id}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmReservation.Request{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmReservation.ErrIncompleteSelection):
			h.logger.Warn("POST /picker/{id}/confirm - Incomplete selection: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, confirmReservation.ErrSubmissionInFlight):
			h.logger.Warn("POST /picker/{id}/confirm - Submission in flight: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitting)

		case errors.Is(err, confirmReservation.ErrReservationConflict):
			h.logger.Warn("POST /picker/{id}/confirm - Reservation conflict: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgReservationConflict)

		case errors.Is(err, confirmReservation.ErrInvalidReservation):
			h.logger.Warn("POST /picker/{id}/confirm - Invalid reservation: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		case errors.Is(err, confirmReservation.ErrToolNotFound):
			h.logger.Warn("POST /picker/{id}/confirm - Tool not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgToolNotFound)

		case errors.Is(err, confirmReservation.ErrSessionNotFound):
			h.logger.Warn("POST /picker/{id}/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmReservation.ErrAccessDenied):
			h.logger.Warn("POST /picker/{id}/confirm - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /picker/{id}/confirm - Failed to confirm: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /picker/{id}/confirm - Reservation created: reservation_id=%d, session_id=%s, user_id=%d",
		result.ReservationID, sessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
