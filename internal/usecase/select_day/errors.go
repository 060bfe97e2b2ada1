package select_day

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("picker session not found")

	// ErrAccessDenied возвращается при попытке изменения чужой сессии
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidDate возвращается, когда дата не парсится как YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")

	// ErrDayNotSelectable возвращается при клике по прошедшему или занятому дню
	ErrDayNotSelectable = errors.New("day is not selectable")

	// ErrRangeConflict возвращается, когда внутри выбранного диапазона
	// есть чужая резервация
	ErrRangeConflict = errors.New("range contains a foreign reservation")

	// ErrSubmissionInFlight возвращается, когда подтверждение уже отправлено
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
