package models

import (
	"github.com/bedylmz/toolshare-fe/internal/integrations/toolservice"
)

// Summary сводные счетчики системы
type Summary struct {
	TotalUsers        int      `json:"total_users"`
	TotalTools        int      `json:"total_tools"`
	TotalReservations int      `json:"total_reservations"`
	TotalReviews      int      `json:"total_reviews"`
	ActiveBorrowers   int      `json:"active_borrowers"`
	ActiveLenders     int      `json:"active_lenders"`
	AvgToolsPerOwner  *float64 `json:"avg_tools_per_owner,omitempty"`
}

// UserActivity пользователь в одной из статистических выборок
type UserActivity struct {
	UserID       int64  `json:"user_id"`
	UserName     string `json:"user_name"`
	ActivityType string `json:"activity_type,omitempty"`
}

// StatisticsResponse агрегированная статистика для дашборда
type StatisticsResponse struct {
	Summary     Summary        `json:"summary"`
	ActiveUsers []UserActivity `json:"active_users"`
	DualRole    []UserActivity `json:"dual_role_users"`
	LendersOnly []UserActivity `json:"lenders_only"`
}

// FromAPISummary конвертирует сводку marketplace API в модель ответа
func FromAPISummary(s *toolservice.StatisticsSummary) Summary {
	return Summary{
		TotalUsers:        s.TotalUsers,
		TotalTools:        s.TotalTools,
		TotalReservations: s.TotalReservations,
		TotalReviews:      s.TotalReviews,
		ActiveBorrowers:   s.ActiveBorrowers,
		ActiveLenders:     s.ActiveLenders,
		AvgToolsPerOwner:  s.AvgToolsPerOwner,
	}
}

// FromAPIActiveUsers конвертирует активных пользователей в модель ответа
func FromAPIActiveUsers(users []toolservice.ActiveUser) []UserActivity {
	out := make([]UserActivity, 0, len(users))
	for _, u := range users {
		out = append(out, UserActivity{UserID: u.UserID, UserName: u.UserName, ActivityType: u.ActivityType})
	}
	return out
}

// FromAPIUserRefs конвертирует краткие ссылки на пользователей в модель ответа
func FromAPIUserRefs(users []toolservice.UserRef) []UserActivity {
	out := make([]UserActivity, 0, len(users))
	for _, u := range users {
		out = append(out, UserActivity{UserID: u.UserID, UserName: u.UserName})
	}
	return out
}
