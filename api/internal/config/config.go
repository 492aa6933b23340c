package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingAPIKey   = errors.New("missing required env GEMINI_API_KEY")
	ErrMissingBotToken = errors.New("missing required env TELEGRAM_BOT_TOKEN")
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string
	ModelTimeout time.Duration

	LogLevel  string
	LogFormat string

	AllowedOrigins []string

	TelegramBotToken string
}

// Load reads .env (when present) and the process environment. A missing
// GEMINI_API_KEY is an error: the service never starts with a dummy key.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8000")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("MODEL_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	cfg := &Config{
		Port:             strings.TrimSpace(v.GetString("PORT")),
		GeminiAPIKey:     strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:      strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		ModelTimeout:     v.GetDuration("MODEL_TIMEOUT"),
		LogLevel:         strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		AllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		TelegramBotToken: strings.TrimSpace(v.GetString("TELEGRAM_BOT_TOKEN")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.GeminiModel == "" {
		return fmt.Errorf("GEMINI_MODEL is empty")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is empty")
	}
	if c.ModelTimeout <= 0 {
		return fmt.Errorf("MODEL_TIMEOUT must be a positive duration")
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

// RequireTelegram is checked by the bot entry point only.
func (c *Config) RequireTelegram() error {
	if c.TelegramBotToken == "" {
		return ErrMissingBotToken
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadEnvFile() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
