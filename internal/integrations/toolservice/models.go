package toolservice

import (
	"fmt"
	"time"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// Tool модель инструмента из marketplace API
type Tool struct {
	ToolID      int64   `json:"tool_id"`
	ToolName    string  `json:"tool_name"`
	Category    string  `json:"category"`
	UserID      int64   `json:"user_id"` // владелец инструмента
	OwnerName   *string `json:"owner_name,omitempty"`
	IsAvailable bool    `json:"is_available"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// ToolCreate модель запроса на создание инструмента
type ToolCreate struct {
	ToolName string `json:"tool_name"`
	Category string `json:"category,omitempty"`
	UserID   int64  `json:"user_id"`
}

// AvailabilityRecord модель записи доступности из marketplace API.
// check_date может приходить как голой датой, так и полным timestamp
type AvailabilityRecord struct {
	CheckDate        string  `json:"check_date"`
	IsAvailable      bool    `json:"is_available"`
	ReservationStart *string `json:"reservation_start,omitempty"`
	ReservationEnd   *string `json:"reservation_end,omitempty"`
	BorrowerID       *int64  `json:"borrower_id,omitempty"`
	BorrowerName     *string `json:"borrower_name,omitempty"`
}

// Reservation модель резервации из marketplace API
type Reservation struct {
	ReservationID int64  `json:"reservation_id"`
	ToolID        int64  `json:"tool_id"`
	UserID        int64  `json:"user_id"`
	StartDate     string `json:"start_t"`
	EndDate       string `json:"end_t"`
	Status        string `json:"status"`
}

// ReservationCreate модель запроса на создание резервации.
// Даты передаются строками YYYY-MM-DD
type ReservationCreate struct {
	ToolID    int64  `json:"tool_id"`
	UserID    int64  `json:"user_id"`
	StartDate string `json:"start_t"`
	EndDate   string `json:"end_t"`
}

// User модель пользователя из marketplace API
type User struct {
	UserID      int64   `json:"user_id"`
	UserName    string  `json:"user_name"`
	CreatedAt   string  `json:"created_at"`
	AvgScore    float64 `json:"avg_scr"`
	ReviewCount int     `json:"rev_cnt"`
}

// StatisticsSummary сводная статистика системы
type StatisticsSummary struct {
	TotalUsers        int      `json:"total_users"`
	TotalTools        int      `json:"total_tools"`
	TotalReservations int      `json:"total_reservations"`
	TotalReviews      int      `json:"total_reviews"`
	ActiveBorrowers   int      `json:"active_borrowers"`
	ActiveLenders     int      `json:"active_lenders"`
	AvgToolsPerOwner  *float64 `json:"avg_tools_per_owner,omitempty"`
}

// ActiveUser пользователь, активный как заёмщик или владелец
type ActiveUser struct {
	UserID       int64  `json:"user_id"`
	UserName     string `json:"user_name"`
	ActivityType string `json:"activity_type"` // "Borrower" или "Lender"
}

// UserRef краткая ссылка на пользователя в статистических выборках
type UserRef struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// ErrorResponse модель ошибки от marketplace API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует запись доступности в доменную модель,
// нормализуя все даты до границы дня
func (r *AvailabilityRecord) ToDomain() (domain.AvailabilityRecord, error) {
	checkDate, err := domain.ParseDay(r.CheckDate)
	if err != nil {
		return domain.AvailabilityRecord{}, fmt.Errorf("invalid check_date %q: %w", r.CheckDate, err)
	}

	rec := domain.AvailabilityRecord{
		CheckDate:    checkDate,
		IsAvailable:  r.IsAvailable,
		BorrowerID:   r.BorrowerID,
		BorrowerName: r.BorrowerName,
	}

	if r.ReservationStart != nil {
		start, err := parseAPITimestamp(*r.ReservationStart)
		if err != nil {
			return domain.AvailabilityRecord{}, fmt.Errorf("invalid reservation_start %q: %w", *r.ReservationStart, err)
		}
		rec.ReservationStart = &start
	}
	if r.ReservationEnd != nil {
		end, err := parseAPITimestamp(*r.ReservationEnd)
		if err != nil {
			return domain.AvailabilityRecord{}, fmt.Errorf("invalid reservation_end %q: %w", *r.ReservationEnd, err)
		}
		rec.ReservationEnd = &end
	}

	return rec, nil
}

// parseAPITimestamp принимает как полный RFC3339 timestamp, так и голую дату
func parseAPITimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return domain.ParseDay(s)
}
