package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	insecureSecretPlaceholder = "change_me_in_production"
	exampleSecretPlaceholder  = "replace_with_at_least_32_random_characters"
	minSecretKeyLength        = 32
)

var (
	ErrSecretKeyMissing  = errors.New("SECRET_KEY is required")
	ErrSecretKeyInsecure = errors.New("SECRET_KEY uses a placeholder value")
	ErrSecretKeyTooShort = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
)

type Config struct {
	HTTP      HTTPConfig     `yaml:"http"`
	DB        DBConfig       `yaml:"db"`
	Auth      AuthConfig     `yaml:"auth"`
	Log       LogConfig      `yaml:"log"`
	Wearables WearableConfig `yaml:"wearables"`
	Sentry    SentryConfig   `yaml:"sentry"`
	Location  string         `yaml:"location"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DBConfig struct {
	Path         string `yaml:"path"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type AuthConfig struct {
	SecretKey string        `yaml:"secret_key"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WearableConfig struct {
	ClientID       string        `yaml:"client_id"`
	ClientSecret   string        `yaml:"client_secret"`
	TokenURL       string        `yaml:"token_url"`
	AggregateURL   string        `yaml:"aggregate_url"`
	SyncInterval   time.Duration `yaml:"sync_interval"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LookbackDays   int           `yaml:"lookback_days"`
}

type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Release     string `yaml:"release"`
}

// LoadFromFile reads path when it exists, then applies defaults and
// environment overrides. A missing file is not an error.
func LoadFromFile(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config yaml: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	if _, err := strconv.Atoi(cfg.HTTP.Port); err != nil {
		return Config{}, fmt.Errorf("invalid port %q", cfg.HTTP.Port)
	}
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Port == "" {
		cfg.HTTP.Port = "8080"
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = filepath.Join("data", "fitsense.db")
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Wearables.SyncInterval == 0 {
		cfg.Wearables.SyncInterval = 6 * time.Hour
	}
	if cfg.Wearables.RequestTimeout == 0 {
		cfg.Wearables.RequestTimeout = 20 * time.Second
	}
	if cfg.Wearables.LookbackDays == 0 {
		cfg.Wearables.LookbackDays = 3
	}
	if cfg.Location == "" {
		cfg.Location = "UTC"
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Port = strings.TrimSpace(val)
	}
	if val := os.Getenv("DB_PATH"); val != "" {
		cfg.DB.Path = val
	}
	if val := os.Getenv("SECRET_KEY"); val != "" {
		cfg.Auth.SecretKey = val
	}
	if val := os.Getenv("TOKEN_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Auth.TokenTTL = d
		}
	}
	if val := os.Getenv("TZ"); val != "" {
		cfg.Location = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		cfg.Log.Format = val
	}
	if val := os.Getenv("WEARABLE_CLIENT_ID"); val != "" {
		cfg.Wearables.ClientID = val
	}
	if val := os.Getenv("WEARABLE_CLIENT_SECRET"); val != "" {
		cfg.Wearables.ClientSecret = val
	}
	if val := os.Getenv("WEARABLE_TOKEN_URL"); val != "" {
		cfg.Wearables.TokenURL = val
	}
	if val := os.Getenv("WEARABLE_AGGREGATE_URL"); val != "" {
		cfg.Wearables.AggregateURL = val
	}
	if val := os.Getenv("WEARABLE_SYNC_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Wearables.SyncInterval = d
		}
	}
	if val := os.Getenv("WEARABLE_LOOKBACK_DAYS"); val != "" {
		if days, err := strconv.Atoi(val); err == nil && days > 0 {
			cfg.Wearables.LookbackDays = days
		}
	}
	if val := os.Getenv("SENTRY_DSN"); val != "" {
		cfg.Sentry.DSN = val
	}
	if val := os.Getenv("SENTRY_ENVIRONMENT"); val != "" {
		cfg.Sentry.Environment = val
	}
	return cfg
}

// ResolveSecretKey rejects empty, placeholder and short signing keys.
func (cfg Config) ResolveSecretKey() (string, error) {
	secret := strings.TrimSpace(cfg.Auth.SecretKey)
	switch {
	case secret == "":
		return "", ErrSecretKeyMissing
	case secret == insecureSecretPlaceholder || secret == exampleSecretPlaceholder:
		return "", ErrSecretKeyInsecure
	case len(secret) < minSecretKeyLength:
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

// LoadLocation falls back to UTC for unknown zone names.
func (cfg Config) LoadLocation() (*time.Location, bool) {
	location, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return time.UTC, false
	}
	return location, true
}

func (cfg Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
