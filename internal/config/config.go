package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/wordtrainer/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	API       APIConfig       `mapstructure:"api" validate:"required"`
	Table     TableConfig     `mapstructure:"table"`
	Session   SessionConfig   `mapstructure:"session"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
	BotToken  string          `mapstructure:"bot_token" validate:"required"`
	Env       string          `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type APIConfig struct {
	BaseURL     string `mapstructure:"base_url" validate:"required,url"`
	MyMemoryURL string `mapstructure:"mymemory_url" validate:"omitempty,url"`
}

type TableConfig struct {
	PageSize int `mapstructure:"page_size" validate:"oneof=5 10 25"`
}

type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl" validate:"min=1"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"min=1"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"gt=0"`
	Burst int     `mapstructure:"burst" validate:"min=1"`
}

// LogConfig enables a rotating log file when File is set.
type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
}

var envBindings = map[string]string{
	"bot_token":        "BOT_TOKEN",
	"env":              "ENV",
	"api.base_url":     "API_BASE_URL",
	"api.mymemory_url": "MYMEMORY_URL",
	"app.timeout":      "APP_TIMEOUT",
	"log.file":         "LOG_FILE",
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return load("configs")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(configName)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("table.page_size", 10)
	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("session.cleanup_interval", 10*time.Minute)
	v.SetDefault("rate_limit.rps", 1.0)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}
