package get_calendar

import (
	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// SessionStore интерфейс хранилища сессий выбора дат
type SessionStore interface {
	Get(sessionID string) (*domain.PickerSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
