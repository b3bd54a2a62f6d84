package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string        `yaml:"port"`
	Env            string        `yaml:"env"`
	DatabaseDriver string        `yaml:"database_driver"`
	DatabaseDSN    string        `yaml:"database_dsn"`
	JWTSecret      string        `yaml:"jwt_secret"`
	JWTExpiry      time.Duration `yaml:"jwt_expiry"`
	LLM            LLMConfig     `yaml:"llm"`
	PromptRate     float64       `yaml:"prompt_rate_limit"`
	PromptBurst    int           `yaml:"prompt_rate_burst"`
	OTelExporter   string        `yaml:"otel_exporter"`
}

type LLMConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "randorium.db"),
		JWTSecret:      getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:      getDuration("JWT_EXPIRY", 24*time.Hour),
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", "gemini"),
			Model:    getEnv("LLM_MODEL", ""),
			BaseURL:  getEnv("OPENAI_BASE_URL", ""),
			Timeout:  getDuration("LLM_TIMEOUT", 30*time.Second),
		},
		PromptRate:   getFloat("PROMPT_RATE_LIMIT", 1),
		PromptBurst:  getInt("PROMPT_RATE_BURST", 5),
		OTelExporter: getEnv("OTEL_EXPORTER", "none"),
	}
	cfg.LLM.APIKey = apiKeyFor(cfg.LLM.Provider)

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// LoadFile overlays the YAML file at path on top of cfg. Keys absent from the
// file keep their current value.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	provider := cfg.LLM.Provider
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	// A provider switched by the file needs the matching key from the environment.
	if cfg.LLM.Provider != provider && cfg.LLM.APIKey == apiKeyFor(provider) {
		cfg.LLM.APIKey = apiKeyFor(cfg.LLM.Provider)
	}
	return cfg, nil
}

func apiKeyFor(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "mock":
		return ""
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
