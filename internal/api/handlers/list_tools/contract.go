package list_tools

import (
	"context"

	"github.com/bedylmz/toolshare-fe/internal/service/tools/models"
)

type ToolsService interface {
	List(ctx context.Context, req *models.ListToolsRequest) (*models.ToolListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
