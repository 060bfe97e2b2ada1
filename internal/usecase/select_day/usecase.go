package select_day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
)

// msgRangeConflict сообщение, сохраняемое в сессии при конфликте диапазона
const msgRangeConflict = "в выбранном диапазоне есть чужая резервация"

// UseCase use case клика по дню календаря. Реализует машину состояний
// выбора диапазона: пусто -> только начало -> завершенный диапазон.
// Клик по завершенному диапазону начинает новый выбор заново
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

// Execute выполняет use case клика по дню
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	clicked, err := domain.ParseDay(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 2. Применяем переход машины состояний под блокировкой хранилища
	var result Response
	err = uc.store.Update(req.SessionID, func(session *domain.PickerSession) error {
		if session.UserID != req.UserID {
			return ErrAccessDenied
		}
		if session.Submitting {
			return ErrSubmissionInFlight
		}
		session.Touch(uc.timeProvider.Now())

		// 3. Прошедшие и занятые дни отклоняются до сброса сообщения
		// об ошибке: оно остается видимым после такого клика
		ev := session.Evaluator()
		if ev.IsPast(clicked) || ev.IsBlocked(clicked) {
			return fmt.Errorf("%w: %s", ErrDayNotSelectable, domain.FormatDay(clicked))
		}
		session.ValidationError = ""

		// 4. Переход машины состояний
		switch session.Selection.State() {
		case domain.SelectionEmpty, domain.SelectionComplete:
			session.Selection.Restart(clicked)

		case domain.SelectionStartOnly:
			if clicked.Before(*session.Selection.Start) {
				session.Selection.Restart(clicked)
				break
			}
			// 5. Полная проверка диапазона: каждый день от начала до
			// конца, включая дни за пределами видимого месяца
			if conflict := firstBlockedDay(ev, *session.Selection.Start, clicked); conflict != nil {
				session.ValidationError = msgRangeConflict
				return fmt.Errorf("%w: day %s is reserved", ErrRangeConflict, domain.FormatDay(*conflict))
			}
			session.Selection.SetEnd(clicked)
		}

		result = Response{
			State:    session.Selection.State(),
			Start:    session.Selection.Start,
			End:      session.Selection.End,
			DayCount: session.Selection.DayCount(),
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrAccessDenied):
			uc.logger.Warn("SelectDay: user=%d tried to modify session %s of another user",
				req.UserID, req.SessionID)
			return nil, err
		case errors.Is(err, ErrSubmissionInFlight),
			errors.Is(err, ErrDayNotSelectable),
			errors.Is(err, ErrRangeConflict):
			return nil, err
		default:
			uc.logger.Error("SelectDay: failed to update session %s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
		}
	}

	return &result, nil
}

// firstBlockedDay возвращает первый занятый чужой резервацией день в
// диапазоне [start, end], или nil если диапазон свободен
func firstBlockedDay(ev *domain.Evaluator, start, end time.Time) *time.Time {
	for d := domain.DayOf(start); !d.After(domain.DayOf(end)); d = d.AddDate(0, 0, 1) {
		if ev.IsBlocked(d) {
			day := d
			return &day
		}
	}
	return nil
}
