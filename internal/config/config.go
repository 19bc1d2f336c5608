package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит настройки бота
// Значения читаются из переменных окружения, флаги имеют приоритет
type Config struct {
	BotToken    string `env:"BOT_TOKEN"`
	AdminID     int64  `env:"ADMIN_ID"`
	DatabaseDSN string `env:"DATABASE_DSN"`
	RedisURL    string `env:"REDIS_URL"`

	// Внешний сервис сокращения ссылок
	ShortenerEndpoint string    `env:"SHORTENER_ENDPOINT" envDefault:"https://bisgram.com/api"`
	RedirectBase      URLPrefix `env:"REDIRECT_BASE" envDefault:"https://terabis.blogspot.com/?url="`
	ValidationURL     string    `env:"VALIDATION_URL" envDefault:"https://example.com"`

	HealthAddress NetworkAddress `env:"HEALTH_ADDRESS"`

	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	PollTimeout        time.Duration `env:"POLL_TIMEOUT" envDefault:"30s"`
	MaxConcurrency     int           `env:"MAX_CONCURRENCY" envDefault:"8"`
	CredentialCacheTTL time.Duration `env:"CREDENTIAL_CACHE_TTL" envDefault:"10m"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
// Используется в тестах вместо Load, который читает окружение и флаги
func NewDefaultConfig() *Config {
	return &Config{
		ShortenerEndpoint:  "https://bisgram.com/api",
		RedirectBase:       "https://terabis.blogspot.com/?url=",
		ValidationURL:      "https://example.com",
		HealthAddress:      NetworkAddress{Host: "localhost", Port: 8080},
		RequestTimeout:     5 * time.Second,
		PollTimeout:        30 * time.Second,
		MaxConcurrency:     8,
		CredentialCacheTTL: 10 * time.Minute,
	}
}

// Load читает конфигурацию из окружения и флагов командной строки
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Флаги поверх окружения
	flag.Var(&cfg.HealthAddress, "a", "address of the liveness HTTP server")
	flag.StringVar(&cfg.BotToken, "t", cfg.BotToken, "telegram bot token")
	flag.Int64Var(&cfg.AdminID, "admin", cfg.AdminID, "telegram user ID of the administrator")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres connection string")
	flag.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "redis URL for the credential cache")
	flag.Parse()

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token is required (BOT_TOKEN or -t)")
	}

	return cfg, nil
}
