package get_calendar

import (
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// Request модель запроса месячной сетки календаря
type Request struct {
	SessionID string
	UserID    int64
}

// DayInfo статус одного дня месяца для рендеринга
type DayInfo struct {
	Day        int              // день месяца, 1..31
	Date       time.Time        // нормализованная дата
	Status     domain.DayStatus // единственный тег статуса дня
	Selectable bool
	ReservedBy string // имя арендатора для tooltip, пусто если день не занят
}

// SelectionInfo сводка текущего выбранного диапазона
type SelectionInfo struct {
	State    domain.SelectionState
	Start    *time.Time
	End      *time.Time
	DayCount int // включительно, 0 пока диапазон не завершен
}

// Response модель ответа с месячной сеткой
type Response struct {
	SessionID string
	ToolID    int64
	ToolName  string

	Month              time.Month
	Year               int
	DaysInMonth        int
	FirstWeekdayOffset int
	Days               []DayInfo

	Selection       SelectionInfo
	ValidationError string
	Degraded        bool
	Submitting      bool
}
