package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/bedylmz/toolshare-fe/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	ToolService ToolServiceConfig `toml:"toolservice"`
	Picker      PickerConfig      `toml:"picker"`
	RateLimit   RateLimitConfig   `toml:"ratelimit"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ToolServiceConfig настройки клиента внешнего marketplace API
type ToolServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// PickerConfig настройки сессий выбора дат резервации
type PickerConfig struct {
	HorizonDays       int    `toml:"horizon_days"`        // окно загрузки доступности, дней вперёд
	SessionTTLMinutes int    `toml:"session_ttl_minutes"` // время жизни неактивной сессии
	CleanupSchedule   string `toml:"cleanup_schedule"`    // cron-выражение для очистки просроченных сессий
}

// RateLimitConfig настройки ограничения частоты запросов
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Picker.HorizonDays == 0 {
		c.Picker.HorizonDays = domain.DefaultHorizonDays
	}
	if c.Picker.SessionTTLMinutes == 0 {
		c.Picker.SessionTTLMinutes = domain.DefaultSessionTTLMinutes
	}
	if c.Picker.CleanupSchedule == "" {
		c.Picker.CleanupSchedule = "@every 1m"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "toolshare-fe"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
}

// validate проверяет корректность конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: server.http_port must be in (0, 65535], got %d", c.Server.HTTPPort)
	}
	if c.ToolService.URL == "" {
		return fmt.Errorf("config: toolservice.url is required")
	}
	if c.ToolService.Timeout <= 0 {
		return fmt.Errorf("config: toolservice.timeout must be positive, got %d", c.ToolService.Timeout)
	}
	if c.Picker.HorizonDays < domain.MinHorizonDays || c.Picker.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("config: picker.horizon_days must be in [%d, %d], got %d",
			domain.MinHorizonDays, domain.MaxHorizonDays, c.Picker.HorizonDays)
	}
	if c.Picker.SessionTTLMinutes <= 0 {
		return fmt.Errorf("config: picker.session_ttl_minutes must be positive, got %d", c.Picker.SessionTTLMinutes)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("config: ratelimit.rps and ratelimit.burst must be positive when enabled")
	}
	return nil
}
