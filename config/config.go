package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/court-booking/utils"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL    string `envconfig:"DATABASE_URL" required:"true"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"file://migrations"`
	ServerPort     int    `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigin     string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`

	JWTSecret              string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpirationRaw       string        `envconfig:"JWT_EXPIRATION" default:"1d"`
	RefreshExpirationRaw   string        `envconfig:"JWT_REFRESH_TOKEN_EXPIRATION" default:"7d"`
	JWTExpiration          time.Duration `ignored:"true"`
	RefreshTokenExpiration time.Duration `ignored:"true"`

	R2   R2Config
	SMTP SMTPConfig

	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
}

// R2Config - Cloudflare R2. Пустой AccountID отключает загрузку изображений.
type R2Config struct {
	AccountID       string `envconfig:"R2_ACCOUNT_ID"`
	AccessKeyID     string `envconfig:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"R2_SECRET_ACCESS_KEY"`
	BucketName      string `envconfig:"R2_BUCKET_NAME"`
	PublicBaseURL   string `envconfig:"R2_PUBLIC_BASE_URL"`
}

func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

// SMTPConfig - почта для сброса пароля. Пустой Host означает "только логировать".
type SMTPConfig struct {
	Host string `envconfig:"SMTP_HOST"`
	Port int    `envconfig:"SMTP_PORT" default:"587"`
	User string `envconfig:"SMTP_USER"`
	Pass string `envconfig:"SMTP_PASS"`
	From string `envconfig:"SMTP_FROM"`
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Ошибку не считаем фатальной: в контейнере .env обычно нет.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	// envconfig пропускает заданные, но пустые переменные.
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	var err error
	if cfg.JWTExpiration, err = utils.ParseDuration(cfg.JWTExpirationRaw); err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}
	if cfg.RefreshTokenExpiration, err = utils.ParseDuration(cfg.RefreshExpirationRaw); err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_EXPIRATION: %w", err)
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", level)
	}
}
