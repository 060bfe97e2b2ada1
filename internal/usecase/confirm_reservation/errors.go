package confirm_reservation

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("picker session not found")

	// ErrAccessDenied возвращается при попытке подтверждения чужой сессии
	ErrAccessDenied = errors.New("access denied")

	// ErrIncompleteSelection возвращается, когда диапазон дат не завершен
	ErrIncompleteSelection = errors.New("date range is incomplete")

	// ErrSubmissionInFlight возвращается при повторном подтверждении,
	// пока предыдущее еще выполняется
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrReservationConflict возвращается, когда marketplace API отклонил
	// резервацию из-за пересечения с чужой
	ErrReservationConflict = errors.New("reservation conflicts with an existing one")

	// ErrInvalidReservation возвращается, когда marketplace API отклонил
	// параметры резервации
	ErrInvalidReservation = errors.New("invalid reservation")

	// ErrToolNotFound возвращается, когда инструмент исчез из marketplace API
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
