package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Tracing   TracingConfig   `toml:"tracing"`
	Auth      AuthConfig      `toml:"auth"`
	AuthAdmin AuthAdminConfig `toml:"auth_admin"`
	Email     EmailConfig     `toml:"email"`
	Queue     QueueConfig     `toml:"queue"`
	Storage   StorageConfig   `toml:"storage"`
	Timeline  TimelineConfig  `toml:"timeline"`
	Realtime  RealtimeConfig  `toml:"realtime"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	// Development включает подробные ответы об ошибках в логах
	Development bool `toml:"development"`
}

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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type TracingConfig struct {
	Endpoint string `toml:"endpoint"`
	Insecure bool   `toml:"insecure"`
}

// AuthConfig параметры проверки JWT, выданных провайдером аутентификации
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// AuthAdminConfig административный API провайдера аутентификации (создание пользователей)
type AuthAdminConfig struct {
	URL        string `toml:"url"`
	ServiceKey string `toml:"service_key"`
	Timeout    int    `toml:"timeout"`
}

// EmailConfig провайдер транзакционных писем. Пустой APIKey отключает отправку
type EmailConfig struct {
	APIURL  string `toml:"api_url"`
	APIKey  string `toml:"api_key"`
	From    string `toml:"from"`
	Timeout int    `toml:"timeout"`
}

// Enabled сообщает, настроен ли провайдер
func (e EmailConfig) Enabled() bool {
	return e.APIKey != ""
}

type QueueConfig struct {
	Enabled       bool   `toml:"enabled"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Concurrency   int    `toml:"concurrency"`
	MaxRetry      int    `toml:"max_retry"`
}

type StorageConfig struct {
	Endpoint      string `toml:"endpoint"`
	Region        string `toml:"region"`
	AccessKey     string `toml:"access_key"`
	SecretKey     string `toml:"secret_key"`
	AvatarsBucket string `toml:"avatars_bucket"`
	RoomsBucket   string `toml:"rooms_bucket"`
	PublicURL     string `toml:"public_url"`
	UsePathStyle  bool   `toml:"use_path_style"`
	MaxUploadMB   int    `toml:"max_upload_mb"`
}

// TimelineConfig сетка слотов дневного расписания
type TimelineConfig struct {
	Timezone    string           `toml:"timezone"`
	DayStart    types.TimeString `toml:"day_start"`
	DayEnd      types.TimeString `toml:"day_end"`
	SlotMinutes int              `toml:"slot_minutes"`
}

// Location загружает часовой пояс расписания
func (t TimelineConfig) Location() (*time.Location, error) {
	return time.LoadLocation(t.Timezone)
}

type RealtimeConfig struct {
	MinReconnectInterval int `toml:"min_reconnect_interval"`
	MaxReconnectInterval int `toml:"max_reconnect_interval"`
}

// Load читает TOML файл, затем применяет .env и переменные окружения поверх
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"DB_PASSWORD", &c.Database.Password},
		{"JWT_SECRET", &c.Auth.JWTSecret},
		{"AUTH_SERVICE_KEY", &c.AuthAdmin.ServiceKey},
		{"EMAIL_API_KEY", &c.Email.APIKey},
		{"REDIS_PASSWORD", &c.Queue.RedisPassword},
		{"S3_ACCESS_KEY", &c.Storage.AccessKey},
		{"S3_SECRET_KEY", &c.Storage.SecretKey},
		{"OTEL_EXPORTER_OTLP_ENDPOINT", &c.Tracing.Endpoint},
	}

	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok {
			*o.target = v
		}
	}

	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok && v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}
}

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
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "room-booking"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.AuthAdmin.Timeout == 0 {
		c.AuthAdmin.Timeout = 10
	}
	if c.Email.Timeout == 0 {
		c.Email.Timeout = 10
	}
	if c.Queue.Concurrency == 0 {
		c.Queue.Concurrency = 5
	}
	if c.Queue.MaxRetry == 0 {
		c.Queue.MaxRetry = 5
	}
	if c.Storage.MaxUploadMB == 0 {
		c.Storage.MaxUploadMB = 5
	}
	if c.Timeline.Timezone == "" {
		c.Timeline.Timezone = "UTC"
	}
	if c.Timeline.DayStart.IsZero() {
		c.Timeline.DayStart = "05:50"
	}
	if c.Timeline.DayEnd.IsZero() {
		c.Timeline.DayEnd = "19:00"
	}
	if c.Timeline.SlotMinutes == 0 {
		c.Timeline.SlotMinutes = 10
	}
	if c.Realtime.MinReconnectInterval == 0 {
		c.Realtime.MinReconnectInterval = 1
	}
	if c.Realtime.MaxReconnectInterval == 0 {
		c.Realtime.MaxReconnectInterval = 30
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Host == "" || c.Database.DBName == "" {
		errs = append(errs, errors.New("database.host and database.dbname are required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if err := c.Timeline.DayStart.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("timeline.day_start: %w", err))
	}
	if err := c.Timeline.DayEnd.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("timeline.day_end: %w", err))
	}
	if !c.Timeline.DayStart.IsBefore(c.Timeline.DayEnd) {
		errs = append(errs, errors.New("timeline.day_start must be before timeline.day_end"))
	}
	if c.Timeline.SlotMinutes <= 0 {
		errs = append(errs, errors.New("timeline.slot_minutes must be positive"))
	}
	if _, err := c.Timeline.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timeline.timezone: %w", err))
	}
	if c.Queue.Enabled && c.Queue.RedisAddr == "" {
		errs = append(errs, errors.New("queue.redis_addr is required when queue is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
