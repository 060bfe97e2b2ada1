package profile

import (
	"context"

	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// ToolServiceClient интерфейс клиента marketplace API
type ToolServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*toolservice.User, error)
	ListUserTools(ctx context.Context, userID int64) ([]toolservice.Tool, error)
	ListUserReservations(ctx context.Context, userID int64) ([]toolservice.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
