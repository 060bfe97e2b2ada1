package navigate_month

import (
	"context"

	navigateMonth "github.com/bedylmz/toolshare-fe/internal/usecase/navigate_month"
)

type NavigateMonthUseCase interface {
	Execute(ctx context.Context, req *navigateMonth.Request) (*navigateMonth.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
