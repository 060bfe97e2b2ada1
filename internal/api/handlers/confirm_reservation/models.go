package confirm_reservation

import (
	"github.com/bedylmz/toolshare-fe/internal/domain"
	confirmReservation "github.com/bedylmz/toolshare-fe/internal/usecase/confirm_reservation"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationID int64  `json:"reservationId"`
	ToolID        int64  `json:"toolId"`
	Start         string `json:"start"` // YYYY-MM-DD
	End           string `json:"end"`   // YYYY-MM-DD
	DayCount      int    `json:"dayCount"`
	Status        string `json:"status"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *confirmReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: resp.ReservationID,
		ToolID:        resp.ToolID,
		Start:         domain.FormatDay(resp.Start),
		End:           domain.FormatDay(resp.End),
		DayCount:      resp.DayCount,
		Status:        resp.Status,
	}
}
