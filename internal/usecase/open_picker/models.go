package open_picker

import "time"

// Request модель запроса на открытие сессии выбора дат
type Request struct {
	UserID   int64  // ID действующего пользователя
	UserName string // отображаемое имя (для рендеринга, не для проверки владения)
	ToolID   int64  // ID инструмента
}

// Response модель ответа с созданной сессией
type Response struct {
	SessionID string
	ToolID    int64
	ToolName  string
	OwnerID   int64
	OwnerName *string

	Today time.Time
	Month time.Month
	Year  int

	HorizonDays int

	// Degraded true, если данные доступности не загрузились: календарь
	// работает в режиме "конфликты неизвестны" с предупреждением
	Degraded bool
}
