package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/infra/sessions"
)

// UseCase use case построения месячной сетки календаря.
// Чтение не продлевает жизнь сессии: только действия пользователя
// (клик по дню, навигация, подтверждение) обновляют LastActiveAt
type UseCase struct {
	store  SessionStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, logger Logger) *UseCase {
	return &UseCase{store: store, logger: logger}
}

// Execute выполняет use case построения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// 2. Получаем снимок сессии
	session, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetCalendar: failed to load session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	// 3. Проверка владения сессией
	if session.UserID != req.UserID {
		uc.logger.Warn("GetCalendar: user=%d tried to read session %s of user=%d",
			req.UserID, session.ID, session.UserID)
		return nil, ErrAccessDenied
	}

	// 4. Классифицируем каждый день месяца под курсором
	ev := session.Evaluator()
	cursor := session.Cursor
	total := domain.DaysInMonth(cursor.Month, cursor.Year)

	days := make([]DayInfo, 0, total)
	for dayNum := 1; dayNum <= total; dayNum++ {
		d := cursor.DayAt(dayNum)
		status := ev.Classify(d, session.Selection)
		days = append(days, DayInfo{
			Day:        dayNum,
			Date:       d,
			Status:     status,
			Selectable: status.IsSelectable(),
			ReservedBy: ev.BlockedBy(d),
		})
	}

	return &Response{
		SessionID:          session.ID,
		ToolID:             session.ToolID,
		ToolName:           session.ToolName,
		Month:              cursor.Month,
		Year:               cursor.Year,
		DaysInMonth:        total,
		FirstWeekdayOffset: domain.FirstWeekdayOffset(cursor.Month, cursor.Year),
		Days:               days,
		Selection: SelectionInfo{
			State:    session.Selection.State(),
			Start:    session.Selection.Start,
			End:      session.Selection.End,
			DayCount: session.Selection.DayCount(),
		},
		ValidationError: session.ValidationError,
		Degraded:        session.Degraded,
		Submitting:      session.Submitting,
	}, nil
}
