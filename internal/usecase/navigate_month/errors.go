package navigate_month

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("picker session not found")

	// ErrAccessDenied возвращается при попытке изменения чужой сессии
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidDirection возвращается при неизвестном направлении навигации
	ErrInvalidDirection = errors.New("invalid navigation direction")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
