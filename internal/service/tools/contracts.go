package tools

import (
	"context"

	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// ToolServiceClient интерфейс клиента marketplace API
type ToolServiceClient interface {
	ListTools(ctx context.Context) ([]toolservice.Tool, error)
	GetTool(ctx context.Context, toolID int64) (*toolservice.Tool, error)
	CreateTool(ctx context.Context, req toolservice.ToolCreate) (*toolservice.Tool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
