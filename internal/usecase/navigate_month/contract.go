package navigate_month

import (
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// SessionStore интерфейс хранилища сессий выбора дат
type SessionStore interface {
	Update(sessionID string, fn func(*domain.PickerSession) error) error
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
