package navigate_month

import (
	"context"
	"errors"
	"fmt"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
)

// UseCase use case навигации по месяцам календаря.
// Курсор месяца живет отдельно от выбранного диапазона: навигация
// никогда не сбрасывает начатый выбор и не перезагружает доступность
type UseCase struct {
	store        SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case навигации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Direction != DirectionNext && req.Direction != DirectionPrev {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, req.Direction)
	}

	// 2. Двигаем курсор под блокировкой хранилища
	var cursor domain.CalendarCursor
	err := uc.store.Update(req.SessionID, func(session *domain.PickerSession) error {
		if session.UserID != req.UserID {
			return ErrAccessDenied
		}
		session.Touch(uc.timeProvider.Now())

		switch req.Direction {
		case DirectionNext:
			session.Cursor = session.Cursor.Next()
		case DirectionPrev:
			session.Cursor = session.Cursor.Prev()
		}
		cursor = session.Cursor
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrAccessDenied):
			uc.logger.Warn("NavigateMonth: user=%d tried to navigate session %s of another user",
				req.UserID, req.SessionID)
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("NavigateMonth: failed to update session %s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
		}
	}

	return &Response{Month: cursor.Month, Year: cursor.Year}, nil
}
