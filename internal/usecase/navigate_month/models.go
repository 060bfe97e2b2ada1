package navigate_month

import "time"

// Direction направление навигации по месяцам
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// Request модель запроса навигации по месяцам
type Request struct {
	SessionID string
	UserID    int64
	Direction Direction
}

// Response модель ответа с новым положением курсора
type Response struct {
	Month time.Month
	Year  int
}
