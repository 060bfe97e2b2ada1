package toolservice

import "errors"

var (
	// ErrToolNotFound возвращается, когда инструмент не найден
	ErrToolNotFound = errors.New("tool not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrReservationConflict возвращается, когда API отклонил резервацию из-за пересечения дат
	ErrReservationConflict = errors.New("reservation dates conflict with an existing reservation")

	// ErrInvalidRequest возвращается, когда API отклонил запрос как некорректный
	ErrInvalidRequest = errors.New("toolservice client: invalid request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("toolservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("toolservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что данные доступности не загружены и календарь работает
	// в режиме "конфликты неизвестны"
	ErrServiceDegraded = errors.New("toolservice unavailable: graceful degradation applied")
)
