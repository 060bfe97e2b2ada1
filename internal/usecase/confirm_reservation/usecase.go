package confirm_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// UseCase use case подтверждения выбранного диапазона. Выполняется в три
// фазы: захват флага Submitting под блокировкой, вызов marketplace API вне
// блокировки, затем удаление сессии при успехе или сброс флага при ошибке
type UseCase struct {
	client       ToolServiceClient
	store        SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ToolServiceClient, store SessionStore, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// 2. Захватываем флаг отправки и снимок диапазона под блокировкой
	var (
		toolID     int64
		start, end time.Time
	)
	err := uc.store.Update(req.SessionID, func(session *domain.PickerSession) error {
		if session.UserID != req.UserID {
			return ErrAccessDenied
		}
		if session.Submitting {
			return ErrSubmissionInFlight
		}
		if session.Selection.State() != domain.SelectionComplete {
			return ErrIncompleteSelection
		}
		session.Submitting = true
		session.Touch(uc.timeProvider.Now())

		toolID = session.ToolID
		start = *session.Selection.Start
		end = *session.Selection.End
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrSubmissionInFlight),
			errors.Is(err, ErrIncompleteSelection):
			return nil, err
		default:
			uc.logger.Error("ConfirmReservation: failed to update session %s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("ConfirmReservation: session=%s, tool=%d, range=%s..%s",
		req.SessionID, toolID, domain.FormatDay(start), domain.FormatDay(end))

	// 3. Вызываем marketplace API вне блокировки хранилища
	reservation, err := uc.client.CreateReservation(ctx, toolservice.ReservationCreate{
		ToolID:    toolID,
		UserID:    req.UserID,
		StartDate: domain.FormatDay(start),
		EndDate:   domain.FormatDay(end),
	})
	if err != nil {
		uc.releaseSubmitting(req.SessionID)
		switch {
		case errors.Is(err, toolservice.ErrReservationConflict):
			uc.logger.Warn("ConfirmReservation: conflict for tool=%d, range=%s..%s",
				toolID, domain.FormatDay(start), domain.FormatDay(end))
			return nil, ErrReservationConflict
		case errors.Is(err, toolservice.ErrInvalidRequest):
			return nil, ErrInvalidReservation
		case errors.Is(err, toolservice.ErrToolNotFound):
			return nil, ErrToolNotFound
		default:
			uc.logger.Error("ConfirmReservation: failed to create reservation for tool=%d: %v", toolID, err)
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
	}

	// 4. Успех: сессия отработала и удаляется. Исчезновение сессии за
	// время запроса не считается ошибкой
	if err := uc.store.Delete(req.SessionID); err != nil && !errors.Is(err, sessions.ErrSessionNotFound) {
		uc.logger.Warn("ConfirmReservation: failed to delete session %s: %v", req.SessionID, err)
	}

	uc.logger.Info("ConfirmReservation: reservation=%d created for tool=%d", reservation.ReservationID, toolID)

	return &Response{
		ReservationID: reservation.ReservationID,
		ToolID:        toolID,
		Start:         start,
		End:           end,
		DayCount:      domain.InclusiveDayCount(start, end),
		Status:        reservation.Status,
	}, nil
}

// releaseSubmitting сбрасывает флаг отправки после неудачного вызова API.
// Сессия могла истечь или закрыться за время запроса, это не ошибка
func (uc *UseCase) releaseSubmitting(sessionID string) {
	err := uc.store.Update(sessionID, func(session *domain.PickerSession) error {
		session.Submitting = false
		return nil
	})
	if err != nil && !errors.Is(err, sessions.ErrSessionNotFound) {
		uc.logger.Warn("ConfirmReservation: failed to release session %s: %v", sessionID, err)
	}
}
