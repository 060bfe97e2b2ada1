package open_picker

import (
	"context"
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// ToolServiceClient интерфейс клиента marketplace API
type ToolServiceClient interface {
	GetTool(ctx context.Context, toolID int64) (*toolservice.Tool, error)
	GetAvailabilityWithGracefulDegradation(ctx context.Context, toolID int64, from time.Time, horizonDays int) ([]domain.AvailabilityRecord, error)
}

// SessionStore интерфейс хранилища сессий выбора дат
type SessionStore interface {
	Create(session *domain.PickerSession) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
