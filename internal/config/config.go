package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Режимы отправки уведомлений
const (
	NotificationHTTP     = "http"
	NotificationSMTP     = "smtp"
	NotificationDisabled = "disabled"
)

// Переменные окружения с секретами, перекрывают значения из config.toml
const (
	envDBPassword    = "DB_PASSWORD"
	envJWTSecret     = "AUTH_JWT_SECRET"
	envSMTPPassword  = "SMTP_PASSWORD"
	envRedisPassword = "REDIS_PASSWORD"
	envNotifyAPIKey  = "NOTIFICATION_API_KEY"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Auth         AuthConfig         `toml:"auth"`
	Grid         GridConfig         `toml:"grid"`
	Booking      BookingConfig      `toml:"booking"`
	Cache        CacheConfig        `toml:"cache"`
	Notification NotificationConfig `toml:"notification"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ReadRetries     uint64 `toml:"read_retries"`
	ReadRetryBaseMS int    `toml:"read_retry_base_ms"`
	MigrateOnStart  bool   `toml:"migrate_on_start"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	AllowHeader bool   `toml:"allow_header"` // X-User-ID без токена, только для разработки
}

type GridConfig struct {
	Start           string `toml:"start"`
	End             string `toml:"end"`
	IntervalMinutes int    `toml:"interval_minutes"`
}

type BookingConfig struct {
	HorizonWeekdays int    `toml:"horizon_weekdays"`
	Timezone        string `toml:"timezone"`
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

type NotificationConfig struct {
	Mode    string     `toml:"mode"`    // http | smtp | disabled
	Timeout int        `toml:"timeout"` // секунды
	URL     string     `toml:"url"`
	APIKey  string     `toml:"api_key"`
	SMTP    SMTPConfig `toml:"smtp"`
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	AppURL   string `toml:"app_url"`
}

// Load читает config.toml, подгружает .env (если есть) и применяет секреты из окружения
func Load(path string) (*Config, error) {
	// .env необязателен: в контейнере переменные приходят из окружения
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	override := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	override(&c.Database.Password, envDBPassword)
	override(&c.Auth.JWTSecret, envJWTSecret)
	override(&c.Notification.SMTP.Password, envSMTPPassword)
	override(&c.Cache.Password, envRedisPassword)
	override(&c.Notification.APIKey, envNotifyAPIKey)
}

func (c *Config) applyDefaults() {
	setInt := func(dst *int, v int) {
		if *dst == 0 {
			*dst = v
		}
	}
	setStr := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}

	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 10)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 15)

	setInt(&c.Database.Port, 5432)
	setStr(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 25)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)
	setInt(&c.Database.ReadRetryBaseMS, 50)
	if c.Database.ReadRetries == 0 {
		c.Database.ReadRetries = 2
	}

	setStr(&c.Logs.Level, "info")

	setStr(&c.Metrics.Path, "/metrics")
	setStr(&c.Metrics.ServiceName, "consultation_service")

	setStr(&c.Grid.Start, domain.DefaultGridStart)
	setStr(&c.Grid.End, domain.DefaultGridEnd)
	setInt(&c.Grid.IntervalMinutes, domain.DefaultGridIntervalMinutes)

	setInt(&c.Booking.HorizonWeekdays, domain.DefaultBookingHorizonWeekdays)
	setStr(&c.Booking.Timezone, "Local")

	setStr(&c.Cache.Addr, "localhost:6379")
	setInt(&c.Cache.TTLSeconds, 60)

	setStr(&c.Notification.Mode, NotificationDisabled)
	setInt(&c.Notification.Timeout, 5)
	setInt(&c.Notification.SMTP.Port, 587)
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		problems = append(problems, "database host, user and dbname are required")
	}
	if c.Auth.JWTSecret == "" && !c.Auth.AllowHeader {
		problems = append(problems, "auth.jwt_secret (or AUTH_JWT_SECRET) is required unless allow_header is set")
	}
	if _, err := c.BuildGrid(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}
	if c.Booking.HorizonWeekdays < 1 {
		problems = append(problems, "booking.horizon_weekdays must be positive")
	}

	switch c.Notification.Mode {
	case NotificationDisabled:
	case NotificationHTTP:
		if c.Notification.URL == "" {
			problems = append(problems, "notification.url is required in http mode")
		}
	case NotificationSMTP:
		if c.Notification.SMTP.Host == "" || c.Notification.SMTP.From == "" {
			problems = append(problems, "notification.smtp host and from are required in smtp mode")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown notification.mode %q", c.Notification.Mode))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DSN строка подключения lib/pq в виде postgres:// URL; учетные данные экранируются
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// BuildGrid собирает сетку времени из секции [grid]
func (c *Config) BuildGrid() (*domain.Grid, error) {
	start, err := types.NewTimeStringFromString(c.Grid.Start)
	if err != nil {
		return nil, fmt.Errorf("grid.start: %v", err)
	}
	end, err := types.NewTimeStringFromString(c.Grid.End)
	if err != nil {
		return nil, fmt.Errorf("grid.end: %v", err)
	}
	return domain.NewGrid(start, end, c.Grid.IntervalMinutes)
}

// Location часовой пояс учебного заведения
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Booking.Timezone)
}
