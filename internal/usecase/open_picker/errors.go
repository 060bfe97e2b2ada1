package open_picker

import "errors"

var (
	// ErrToolNotFound возвращается, когда инструмент не найден в marketplace API
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
