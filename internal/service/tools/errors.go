package tools

import "errors"

var (
	// ErrToolNotFound возвращается, когда инструмент не найден
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
