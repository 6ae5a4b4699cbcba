package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"fazenda/pkg/form"
)

const envPrefix = "FAZENDA_"

type AppConfig struct {
	Env          string        `koanf:"env" validate:"required,oneof=development production test"`
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	DatabaseURL  string        `koanf:"database_url" validate:"required"`
	LogLevel     string        `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat    string        `koanf:"log_format" validate:"oneof=console json"`
	DatePolicy   string        `koanf:"date_policy"`
	RequireLogin bool          `koanf:"require_login"`
	SessionTTL   time.Duration `koanf:"session_ttl" validate:"min=1m"`
	CookieSecure bool          `koanf:"cookie_secure"`
	LoginRate    float64       `koanf:"login_rate" validate:"gt=0"`

	// Dates is DatePolicy parsed.
	Dates form.DatePolicy `koanf:"-"`
}

func Defaults() AppConfig {
	return AppConfig{
		Env:         "development",
		Host:        "127.0.0.1",
		Port:        5600,
		DatabaseURL: "fazenda.db",
		LogLevel:    "info",
		LogFormat:   "console",
		DatePolicy:  string(form.Strict),
		SessionTTL:  12 * time.Hour,
		LoginRate:   5,
		Dates:       form.Strict,
	}
}

func (c AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads an optional .env file and then FAZENDA_* variables over the
// defaults.
func Load() (AppConfig, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := Defaults()
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Dates, err = form.ParseDatePolicy(cfg.DatePolicy); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
