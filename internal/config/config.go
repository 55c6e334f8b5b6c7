package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при отсутствии обязательных параметров
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Tracing   TracingConfig   `toml:"tracing"`
	Database  DatabaseConfig  `toml:"database"`
	Server    ServerConfig    `toml:"server"`
	Business  BusinessConfig  `toml:"business"`
	Auth      AuthConfig      `toml:"auth"`
	Reminders RemindersConfig `toml:"reminders"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	WhatsApp  WhatsAppConfig  `toml:"whatsapp"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Kafka     KafkaConfig     `toml:"kafka"`
	CORS      CORSConfig      `toml:"cors"`
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
	Enabled      bool    `toml:"enabled"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type BusinessConfig struct {
	Name     string `toml:"name"`
	Timezone string `toml:"timezone"`
	// PublicURL адрес фронтенда, из него строится ссылка отмены в напоминаниях
	PublicURL string `toml:"public_url"`
	// MinNoticeMinutes за сколько минут до начала слот перестает предлагаться на сегодня
	MinNoticeMinutes int `toml:"min_notice_minutes"`
}

// Location загружает часовой пояс бизнеса
func (b BusinessConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

type AuthConfig struct {
	JWTSecret         string `toml:"jwt_secret"`
	TokenTTLHours     int    `toml:"token_ttl_hours"`
	AdminEmail        string `toml:"admin_email"`    // учетные данные-override, проверяются до БД
	AdminPassword     string `toml:"admin_password"` // пусто - override выключен
	BootstrapEmail    string `toml:"bootstrap_email"`
	BootstrapPassword string `toml:"bootstrap_password"`
}

type RemindersConfig struct {
	WebhookKey string `toml:"webhook_key"`
}

type SchedulerConfig struct {
	Enabled                bool   `toml:"enabled"`
	ReminderIntervalMinute int    `toml:"reminder_interval_minutes"`
	ArchiveAt              string `toml:"archive_at"`  // HH:MM местного времени
	RunTimeout             int    `toml:"run_timeout"` // секунды
	LockTTL                int    `toml:"lock_ttl"`    // секунды
}

type WhatsAppConfig struct {
	AccountSID     string  `toml:"account_sid"`
	AuthToken      string  `toml:"auth_token"`
	From           string  `toml:"from"`
	BaseURL        string  `toml:"base_url"`
	Timeout        int     `toml:"timeout"` // секунды
	RatePerSecond  float64 `toml:"rate_per_second"`
	DefaultCountry string  `toml:"default_country_code"`
}

// Configured возвращает true, если заданы учетные данные Twilio
func (w WhatsAppConfig) Configured() bool {
	return w.AccountSID != "" && w.AuthToken != "" && w.From != ""
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RateLimitConfig struct {
	Enabled       bool `toml:"enabled"`
	Requests      int  `toml:"requests"`
	WindowSeconds int  `toml:"window_seconds"`
	FailOpen      bool `toml:"fail_open"`
}

type KafkaConfig struct {
	Enabled bool   `toml:"enabled"`
	Brokers string `toml:"brokers"` // через запятую
	Topic   string `toml:"topic"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает TOML-файл, затем .env (если есть) и переменные окружения
// Секреты удобнее держать в окружении, поэтому они перекрывают значения из файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if _, err := c.Business.Location(); err != nil {
		return fmt.Errorf("%w: business.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Business.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: business.min_notice_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (JWT_SECRET) is required", ErrInvalidConfig)
	}
	if c.Scheduler.Enabled {
		if _, err := time.Parse("15:04", c.Scheduler.ArchiveAt); err != nil {
			return fmt.Errorf("%w: scheduler.archive_at must be HH:MM", ErrInvalidConfig)
		}
		if c.Scheduler.ReminderIntervalMinute <= 0 {
			return fmt.Errorf("%w: scheduler.reminder_interval_minutes must be positive", ErrInvalidConfig)
		}
		if c.Scheduler.RunTimeout <= 0 || c.Scheduler.LockTTL <= 0 {
			return fmt.Errorf("%w: scheduler.run_timeout and scheduler.lock_ttl must be positive", ErrInvalidConfig)
		}
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && (c.Kafka.Brokers == "" || c.Kafka.Topic == "") {
		return fmt.Errorf("%w: kafka.brokers and kafka.topic are required when kafka is enabled", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{ServiceName: "turnero", Path: "/metrics"},
		Tracing: TracingConfig{OTLPEndpoint: "localhost:4317", SampleRatio: 1},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Server: ServerConfig{
			HTTPPort:        4000,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Business: BusinessConfig{
			Name:             "Barbería",
			Timezone:         "America/Argentina/Buenos_Aires",
			MinNoticeMinutes: 30,
		},
		Auth:     AuthConfig{TokenTTLHours: 12},
		Scheduler: SchedulerConfig{
			Enabled:                true,
			ReminderIntervalMinute: 5,
			ArchiveAt:              "00:05",
			RunTimeout:             60,
			LockTTL:                240,
		},
		WhatsApp: WhatsAppConfig{
			From:           "whatsapp:+14155238886",
			BaseURL:        "https://api.twilio.com",
			Timeout:        10,
			RatePerSecond:  1,
			DefaultCountry: "54",
		},
		RateLimit: RateLimitConfig{Requests: 10, WindowSeconds: 60, FailOpen: true},
		Kafka:     KafkaConfig{Topic: "appointments.events"},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setInt(&cfg.Server.HTTPPort, "PORT")
	setString(&cfg.Business.Timezone, "TZ_BUSINESS")
	setString(&cfg.Business.PublicURL, "PUBLIC_URL")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.AdminEmail, "ADMIN_EMAIL")
	setString(&cfg.Auth.AdminPassword, "ADMIN_PASSWORD")
	setString(&cfg.Reminders.WebhookKey, "REMINDER_WEBHOOK_KEY")
	setString(&cfg.WhatsApp.AccountSID, "TWILIO_ACCOUNT_SID")
	setString(&cfg.WhatsApp.AuthToken, "TWILIO_AUTH_TOKEN")
	setString(&cfg.WhatsApp.From, "TWILIO_WHATSAPP_FROM")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Kafka.Brokers, "KAFKA_BROKERS")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}
