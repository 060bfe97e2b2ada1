package select_day

import (
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// Request модель запроса клика по дню календаря
type Request struct {
	SessionID string
	UserID    int64
	Date      string // день в формате YYYY-MM-DD
}

// Response модель ответа с новым состоянием выбора
type Response struct {
	State    domain.SelectionState
	Start    *time.Time
	End      *time.Time
	DayCount int // включительно, 0 пока диапазон не завершен
}
