package models

import (
	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// UserInfo данные пользователя для профиля
type UserInfo struct {
	UserID      int64   `json:"user_id"`
	UserName    string  `json:"user_name"`
	MemberSince string  `json:"member_since"`
	AvgScore    float64 `json:"avg_score"`
	ReviewCount int     `json:"review_count"`
}

// OwnedTool инструмент, опубликованный пользователем
type OwnedTool struct {
	ToolID      int64  `json:"tool_id"`
	ToolName    string `json:"tool_name"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"is_available"`
}

// ReservationInfo резервация из истории пользователя
type ReservationInfo struct {
	ReservationID int64  `json:"reservation_id"`
	ToolID        int64  `json:"tool_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Status        string `json:"status"`
}

// ProfileResponse агрегированный профиль пользователя
type ProfileResponse struct {
	User         UserInfo          `json:"user"`
	Tools        []OwnedTool       `json:"tools"`
	Reservations []ReservationInfo `json:"reservations"`
}

// ReservationListResponse история резерваций пользователя
type ReservationListResponse struct {
	Reservations []ReservationInfo `json:"reservations"`
	Total        int               `json:"total"`
}

// FromAPIUser конвертирует пользователя marketplace API в модель профиля
func FromAPIUser(u *toolservice.User) UserInfo {
	return UserInfo{
		UserID:      u.UserID,
		UserName:    u.UserName,
		MemberSince: u.CreatedAt,
		AvgScore:    u.AvgScore,
		ReviewCount: u.ReviewCount,
	}
}

// FromAPITools конвертирует инструменты пользователя в модель профиля
func FromAPITools(tools []toolservice.Tool) []OwnedTool {
	out := make([]OwnedTool, 0, len(tools))
	for _, t := range tools {
		out = append(out, OwnedTool{
			ToolID:      t.ToolID,
			ToolName:    t.ToolName,
			Category:    t.Category,
			IsAvailable: t.IsAvailable,
		})
	}
	return out
}

// FromAPIReservations конвертирует резервации пользователя в модель профиля
func FromAPIReservations(reservations []toolservice.Reservation) []ReservationInfo {
	out := make([]ReservationInfo, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, ReservationInfo{
			ReservationID: r.ReservationID,
			ToolID:        r.ToolID,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			Status:        r.Status,
		})
	}
	return out
}
