package navigate_month

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
	"github.com/bedylmz/toolshare-fe/internal/api/middleware"
	navigateMonth "github.com/bedylmz/toolshare-fe/internal/usecase/navigate_month"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDirection   = "некорректное направление, ожидается next или prev"
	msgSessionNotFound    = "сессия выбора дат не найдена или истекла"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase NavigateMonthUseCase
	logger  Logger
}

func NewHandler(useCase NavigateMonthUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/picker/{sessionId}/month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /picker/{id}/month - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /picker/{id}/month - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &navigateMonth.Request{
		SessionID: sessionID,
		UserID:    userID,
		Direction: navigateMonth.Direction(req.Direction),
	})
	if err != nil {
		switch {
		case errors.Is(err, navigateMonth.ErrInvalidDirection):
			h.logger.Warn("POST /picker/{id}/month - Invalid direction: %q", req.Direction)
			handlers.RespondBadRequest(w, msgInvalidDirection)

		case errors.Is(err, navigateMonth.ErrSessionNotFound):
			h.logger.Warn("POST /picker/{id}/month - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, navigateMonth.ErrAccessDenied):
			h.logger.Warn("POST /picker/{id}/month - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, navigateMonth.ErrInvalidInput):
			h.logger.Warn("POST /picker/{id}/month - Invalid input: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /picker/{id}/month - Failed to navigate: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /picker/{id}/month - Cursor moved: session_id=%s, month=%d/%d",
		sessionID, result.Month, result.Year)
	handlers.RespondJSON(w, http.StatusOK, &CursorResponse{Month: int(result.Month), Year: result.Year})
}
