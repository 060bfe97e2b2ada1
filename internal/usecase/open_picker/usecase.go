package open_picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// UseCase use case открытия сессии выбора дат резервации.
// Доступность загружается ровно один раз на сессию: навигация по месяцам
// работает с уже загруженным снимком
type UseCase struct {
	client       ToolServiceClient
	store        SessionStore
	timeProvider TimeProvider
	logger       Logger
	horizonDays  int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ToolServiceClient, store SessionStore, horizonDays int, logger Logger) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		client:       client,
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		horizonDays:  horizonDays,
	}
}

// Execute выполняет use case открытия сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OpenPicker: user=%d, tool=%d", req.UserID, req.ToolID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OpenPicker: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем "сегодня" один раз на всю жизнь сессии
	now := uc.timeProvider.Now()
	today := domain.DayOf(now)

	// 3. Получаем инструмент
	tool, err := uc.client.GetTool(ctx, req.ToolID)
	if err != nil {
		if errors.Is(err, toolservice.ErrToolNotFound) {
			uc.logger.Warn("OpenPicker: tool id=%d not found", req.ToolID)
			return nil, ErrToolNotFound
		}
		uc.logger.Error("OpenPicker: failed to get tool id=%d: %v", req.ToolID, err)
		return nil, fmt.Errorf("%w: failed to get tool: %v", ErrInternal, err)
	}

	// 4. Загружаем доступность с graceful degradation: при недоступности
	// API сессия открывается с пустым снимком и предупреждением
	degraded := false
	records, err := uc.client.GetAvailabilityWithGracefulDegradation(ctx, req.ToolID, today, uc.horizonDays)
	if err != nil {
		switch {
		case errors.Is(err, toolservice.ErrServiceDegraded):
			uc.logger.Warn("OpenPicker: availability degraded for tool=%d, opening session without known conflicts", req.ToolID)
			degraded = true
			records = nil
		case errors.Is(err, toolservice.ErrToolNotFound):
			uc.logger.Warn("OpenPicker: tool id=%d disappeared while loading availability", req.ToolID)
			return nil, ErrToolNotFound
		default:
			uc.logger.Error("OpenPicker: failed to load availability for tool=%d: %v", req.ToolID, err)
			return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
		}
	}

	// 5. Создаем сессию с курсором на текущем месяце
	session := &domain.PickerSession{
		ID:           uuid.NewString(),
		ToolID:       tool.ToolID,
		ToolName:     tool.ToolName,
		OwnerID:      tool.UserID,
		UserID:       req.UserID,
		UserName:     req.UserName,
		Today:        today,
		Cursor:       domain.CursorFor(today),
		Availability: records,
		Degraded:     degraded,
		CreatedAt:    now,
		LastActiveAt: now,
	}

	if err := uc.store.Create(session); err != nil {
		uc.logger.Error("OpenPicker: failed to store session for tool=%d: %v", req.ToolID, err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	uc.logger.Info("OpenPicker: session=%s opened for user=%d, tool=%d, records=%d, degraded=%v",
		session.ID, req.UserID, req.ToolID, len(records), degraded)

	return &Response{
		SessionID:   session.ID,
		ToolID:      tool.ToolID,
		ToolName:    tool.ToolName,
		OwnerID:     tool.UserID,
		OwnerName:   tool.OwnerName,
		Today:       today,
		Month:       session.Cursor.Month,
		Year:        session.Cursor.Year,
		HorizonDays: uc.horizonDays,
		Degraded:    degraded,
	}, nil
}
