package domain

// Default configuration values
const (
	DefaultHorizonDays       = 90
	DefaultSessionTTLMinutes = 30
)

// Business validation constants
const (
	MinHorizonDays    = 1
	MaxHorizonDays    = 365 // 1 year
	MaxToolNameLength = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CategoryAll специальное значение фильтра категорий: показывать все инструменты
const CategoryAll = "Tümü"
