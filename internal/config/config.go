package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/avtoline-dev/STO-SiteService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml при старте
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Notices  NoticesConfig  `toml:"notices"`
	Telegram TelegramConfig `toml:"telegram"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig расписание работы станции
type ScheduleConfig struct {
	WorkingWeekdays  []int       `toml:"working_weekdays"` // 0 = воскресенье
	OpenHour         int         `toml:"open_hour"`
	CloseHour        int         `toml:"close_hour"`
	SlotMinutes      int         `toml:"slot_minutes"`
	MinNoticeMinutes int         `toml:"min_notice_minutes"`
	Seed             []SeedEntry `toml:"seed"` // занятые слоты на момент старта
}

// SeedEntry занятые слоты одной даты
type SeedEntry struct {
	Date  string   `toml:"date"`  // YYYY-MM-DD
	Times []string `toml:"times"` // HH:MM
}

// NoticesConfig настройки транзитных уведомлений
type NoticesConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
}

// TelegramConfig настройки отправки заявок в Telegram
type TelegramConfig struct {
	Enabled  bool   `toml:"enabled"`
	BotToken string `toml:"bot_token"`
	ChatID   string `toml:"chat_id"`
	Timeout  int    `toml:"timeout"` // секунды
}

// CatalogConfig прайс-лист услуг
type CatalogConfig struct {
	Services []ServiceEntry `toml:"services"`
}

// ServiceEntry услуга прайс-листа
type ServiceEntry struct {
	ID              int64         `toml:"id"`
	Title           string        `toml:"title"`
	BasePrice       float64       `toml:"base_price"`
	DurationMinutes int           `toml:"duration_minutes"`
	Options         []OptionEntry `toml:"options"`
}

// OptionEntry платная опция услуги
type OptionEntry struct {
	ID        int64   `toml:"id"`
	Label     string  `toml:"label"`
	Surcharge float64 `toml:"surcharge"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// WorkingHours собирает доменную конфигурацию расписания
func (c *Config) WorkingHours() domain.WorkingHoursConfig {
	return domain.NewWorkingHoursConfig(
		c.Schedule.WorkingWeekdays,
		c.Schedule.OpenHour,
		c.Schedule.CloseHour,
		c.Schedule.SlotMinutes,
		c.Schedule.MinNoticeMinutes,
	)
}

// CatalogServices собирает доменный прайс-лист
func (c *Config) CatalogServices() []domain.CatalogService {
	services := make([]domain.CatalogService, 0, len(c.Catalog.Services))
	for _, entry := range c.Catalog.Services {
		options := make([]domain.CatalogOption, 0, len(entry.Options))
		for _, opt := range entry.Options {
			options = append(options, domain.CatalogOption{
				ID:        opt.ID,
				Label:     opt.Label,
				Surcharge: opt.Surcharge,
			})
		}
		services = append(services, domain.CatalogService{
			ID:              entry.ID,
			Title:           entry.Title,
			BasePrice:       entry.BasePrice,
			DurationMinutes: entry.DurationMinutes,
			Options:         options,
		})
	}
	return services
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "sto-site-service",
		},
		Schedule: ScheduleConfig{
			WorkingWeekdays: []int{1, 2, 3, 4, 5, 6},
			OpenHour:        domain.DefaultOpenHour,
			CloseHour:       domain.DefaultCloseHour,
			SlotMinutes:     domain.DefaultSlotMinutes,
		},
		Notices: NoticesConfig{
			TTLSeconds: 3,
		},
		Telegram: TelegramConfig{
			Timeout: 5,
		},
	}
}

func (c *Config) validate() error {
	s := c.Schedule

	if s.OpenHour < 0 || s.CloseHour > 24 || s.OpenHour >= s.CloseHour {
		return fmt.Errorf("schedule: invalid working window %d-%d", s.OpenHour, s.CloseHour)
	}
	if s.SlotMinutes < domain.MinSlotMinutes || s.SlotMinutes > domain.MaxSlotMinutes {
		return fmt.Errorf("schedule: slot_minutes must be between %d and %d, got %d",
			domain.MinSlotMinutes, domain.MaxSlotMinutes, s.SlotMinutes)
	}
	for _, d := range s.WorkingWeekdays {
		if d < 0 || d > 6 {
			return fmt.Errorf("schedule: working weekday out of range: %d", d)
		}
	}

	seen := make(map[int64]bool, len(c.Catalog.Services))
	for _, svc := range c.Catalog.Services {
		if svc.ID <= 0 {
			return fmt.Errorf("catalog: service %q: id must be positive", svc.Title)
		}
		if seen[svc.ID] {
			return fmt.Errorf("catalog: duplicate service id %d", svc.ID)
		}
		seen[svc.ID] = true
	}

	if c.Telegram.Enabled && (c.Telegram.BotToken == "" || c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram: bot_token and chat_id are required when enabled")
	}

	return nil
}
