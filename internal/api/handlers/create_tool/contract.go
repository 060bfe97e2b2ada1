package create_tool

import (
	"context"

	"github.com/bedylmz/toolshare-fe/internal/service/tools/models"
)

type ToolsService interface {
	Create(ctx context.Context, req *models.CreateToolRequest) (*models.ToolResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
