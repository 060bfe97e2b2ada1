package select_day

import (
	"github.com/bedylmz/toolshare-fe/internal/domain"
	selectDay "github.com/bedylmz/toolshare-fe/internal/usecase/select_day"
)

// SelectDayRequest HTTP request model
type SelectDayRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// SelectionResponse HTTP модель нового состояния выбора
type SelectionResponse struct {
	State    string  `json:"state"`
	Start    *string `json:"start,omitempty"` // YYYY-MM-DD
	End      *string `json:"end,omitempty"`   // YYYY-MM-DD
	DayCount int     `json:"dayCount"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *selectDay.Response) *SelectionResponse {
	out := &SelectionResponse{
		State:    string(resp.State),
		DayCount: resp.DayCount,
	}
	if resp.Start != nil {
		start := domain.FormatDay(*resp.Start)
		out.Start = &start
	}
	if resp.End != nil {
		end := domain.FormatDay(*resp.End)
		out.End = &end
	}
	return out
}
