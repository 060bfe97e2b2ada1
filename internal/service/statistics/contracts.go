package statistics

import (
	"context"

	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// ToolServiceClient интерфейс клиента marketplace API
type ToolServiceClient interface {
	GetStatisticsSummary(ctx context.Context) (*toolservice.StatisticsSummary, error)
	ListAllActiveUsers(ctx context.Context) ([]toolservice.ActiveUser, error)
	ListDualRoleUsers(ctx context.Context) ([]toolservice.UserRef, error)
	ListLendersOnly(ctx context.Context) ([]toolservice.UserRef, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
