package get_calendar

import (
	"github.com/bedylmz/toolshare-fe/internal/domain"
	getCalendar "github.com/bedylmz/toolshare-fe/internal/usecase/get_calendar"
)

// DayResponse HTTP модель одного дня сетки
type DayResponse struct {
	Day        int    `json:"day"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
	Selectable bool   `json:"selectable"`
	ReservedBy string `json:"reservedBy,omitempty"`
}

// SelectionResponse HTTP модель выбранного диапазона
type SelectionResponse struct {
	State    string  `json:"state"`
	Start    *string `json:"start,omitempty"` // YYYY-MM-DD
	End      *string `json:"end,omitempty"`   // YYYY-MM-DD
	DayCount int     `json:"dayCount"`
}

// CalendarResponse HTTP модель месячной сетки
type CalendarResponse struct {
	SessionID          string            `json:"sessionId"`
	ToolID             int64             `json:"toolId"`
	ToolName           string            `json:"toolName"`
	Month              int               `json:"month"` // 1..12
	Year               int               `json:"year"`
	DaysInMonth        int               `json:"daysInMonth"`
	FirstWeekdayOffset int               `json:"firstWeekdayOffset"` // понедельник = 0
	Days               []DayResponse     `json:"days"`
	Selection          SelectionResponse `json:"selection"`
	ValidationError    string            `json:"validationError,omitempty"`
	Degraded           bool              `json:"degraded"`
	Submitting         bool              `json:"submitting"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Day:        d.Day,
			Date:       domain.FormatDay(d.Date),
			Status:     string(d.Status),
			Selectable: d.Selectable,
			ReservedBy: d.ReservedBy,
		})
	}

	sel := SelectionResponse{
		State:    string(resp.Selection.State),
		DayCount: resp.Selection.DayCount,
	}
	if resp.Selection.Start != nil {
		start := domain.FormatDay(*resp.Selection.Start)
		sel.Start = &start
	}
	if resp.Selection.End != nil {
		end := domain.FormatDay(*resp.Selection.End)
		sel.End = &end
	}

	return &CalendarResponse{
		SessionID:          resp.SessionID,
		ToolID:             resp.ToolID,
		ToolName:           resp.ToolName,
		Month:              int(resp.Month),
		Year:               resp.Year,
		DaysInMonth:        resp.DaysInMonth,
		FirstWeekdayOffset: resp.FirstWeekdayOffset,
		Days:               days,
		Selection:          sel,
		ValidationError:    resp.ValidationError,
		Degraded:           resp.Degraded,
		Submitting:         resp.Submitting,
	}
}
