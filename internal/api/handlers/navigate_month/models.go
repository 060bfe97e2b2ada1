package navigate_month

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Direction string `json:"direction"` // "next" или "prev"
}

// CursorResponse HTTP модель нового положения курсора
type CursorResponse struct {
	Month int `json:"month"` // 1..12
	Year  int `json:"year"`
}
