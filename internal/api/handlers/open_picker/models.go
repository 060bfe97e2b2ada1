package open_picker

import (
	"github.com/bedylmz/toolshare-fe/internal/domain"
	openPicker "github.com/bedylmz/toolshare-fe/internal/usecase/open_picker"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID   string  `json:"sessionId"`
	ToolID      int64   `json:"toolId"`
	ToolName    string  `json:"toolName"`
	OwnerID     int64   `json:"ownerId"`
	OwnerName   *string `json:"ownerName,omitempty"`
	Today       string  `json:"today"` // YYYY-MM-DD
	Month       int     `json:"month"` // 1..12
	Year        int     `json:"year"`
	HorizonDays int     `json:"horizonDays"`
	Degraded    bool    `json:"degraded"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *openPicker.Response) *SessionResponse {
	return &SessionResponse{
		SessionID:   resp.SessionID,
		ToolID:      resp.ToolID,
		ToolName:    resp.ToolName,
		OwnerID:     resp.OwnerID,
		OwnerName:   resp.OwnerName,
		Today:       domain.FormatDay(resp.Today),
		Month:       int(resp.Month),
		Year:        resp.Year,
		HorizonDays: resp.HorizonDays,
		Degraded:    resp.Degraded,
	}
}
