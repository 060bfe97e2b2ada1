package picker

import (
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// SessionStore интерфейс хранилища сессий выбора дат
type SessionStore interface {
	Get(sessionID string) (*domain.PickerSession, error)
	Delete(sessionID string) error
	Count() int
	DeleteExpired(now time.Time, ttl time.Duration) int
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

// MetricsRecorder интерфейс для метрик жизненного цикла сессий
type MetricsRecorder interface {
	SetActiveSessions(count int)
	AddExpiredSessions(count int)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
