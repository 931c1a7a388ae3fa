package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/coachpoint/CP-BookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
	Booking        BookingConfig        `toml:"booking"`
	Pricing        PricingConfig        `toml:"pricing"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	Migrate         bool   `toml:"migrate"`
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN возвращает строку подключения для lib/pq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogServiceConfig настройки клиента каталога услуг
type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig настройки ядра бронирования
type BookingConfig struct {
	// HorizonDays горизонт выдачи слотов в днях
	HorizonDays int `toml:"horizon_days"`

	// TxTimeoutSeconds бюджет времени на одну попытку транзакции создания бронирования
	TxTimeoutSeconds int `toml:"tx_timeout_seconds"`

	// LockRetryBackoffMs пауза перед единственным повтором сериализуемой транзакции
	LockRetryBackoffMs int `toml:"lock_retry_backoff_ms"`
}

// PricingConfig настройки расчёта стоимости
type PricingConfig struct {
	// TravelRatePerKm тариф выезда тренера, валютных единиц за километр
	TravelRatePerKm float64 `toml:"travel_rate_per_km"`

	// MaxTravelDistanceKm максимальная дистанция выезда
	MaxTravelDistanceKm float64 `toml:"max_travel_distance_km"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет дефолтные значения для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "cp-booking-service"
	}

	if c.CatalogService.Timeout == 0 {
		c.CatalogService.Timeout = 5
	}

	if c.Booking.HorizonDays == 0 {
		c.Booking.HorizonDays = domain.BookingHorizonDays
	}
	if c.Booking.TxTimeoutSeconds == 0 {
		c.Booking.TxTimeoutSeconds = 5
	}
	if c.Booking.LockRetryBackoffMs == 0 {
		c.Booking.LockRetryBackoffMs = 100
	}

	if c.Pricing.TravelRatePerKm == 0 {
		c.Pricing.TravelRatePerKm = domain.DefaultTravelRatePerKm
	}
	if c.Pricing.MaxTravelDistanceKm == 0 {
		c.Pricing.MaxTravelDistanceKm = domain.DefaultMaxTravelDistanceKm
	}
}

// validate проверяет обязательные поля
func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("config: database.port is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("config: catalog_service.url is required")
	}
	if c.Booking.HorizonDays < 0 {
		return fmt.Errorf("config: booking.horizon_days must be positive")
	}
	if c.Pricing.TravelRatePerKm < 0 {
		return fmt.Errorf("config: pricing.travel_rate_per_km must not be negative")
	}
	return nil
}
