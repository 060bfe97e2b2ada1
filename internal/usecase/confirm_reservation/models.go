package confirm_reservation

import "time"

// Request модель запроса подтверждения выбранного диапазона
type Request struct {
	SessionID string
	UserID    int64
}

// Response модель ответа с созданной резервацией
type Response struct {
	ReservationID int64
	ToolID        int64
	Start         time.Time
	End           time.Time
	DayCount      int
	Status        string
}
