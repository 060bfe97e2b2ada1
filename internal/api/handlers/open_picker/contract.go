package open_picker

import (
	"context"

	openPicker "github.com/bedylmz/toolshare-fe/internal/usecase/open_picker"
)

type OpenPickerUseCase interface {
	Execute(ctx context.Context, req *openPicker.Request) (*openPicker.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
