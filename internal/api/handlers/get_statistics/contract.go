package get_statistics

import (
	"context"

	"github.com/bedylmz/toolshare-fe/internal/service/statistics/models"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
