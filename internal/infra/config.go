package infra

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// OracleConfig holds what the route oracle client needs.
type OracleConfig struct {
	Provider       string
	APIKey         string
	ModelName      string
	RequestTimeout time.Duration
}

type Config struct {
	Port    string
	GinMode string
	Oracle  OracleConfig
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(log *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from a lookup function, os.Getenv in production.
func ConfigFromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	timeout, err := time.ParseDuration(get("ORACLE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ORACLE_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:    get("PORT", "6002"),
		GinMode: get("GIN_MODE", "release"),
		Oracle: OracleConfig{
			Provider:       strings.ToLower(get("ORACLE_PROVIDER", ProviderGemini)),
			RequestTimeout: timeout,
		},
	}

	switch cfg.Oracle.Provider {
	case ProviderGemini:
		cfg.Oracle.APIKey = get("GEMINI_API_KEY", strings.TrimSpace(getenv("GOOGLE_API_KEY")))
		cfg.Oracle.ModelName = get("GEMINI_MODEL", "gemini-2.5-pro")
	case ProviderOpenAI:
		cfg.Oracle.APIKey = get("OPENAI_API_KEY", "")
		cfg.Oracle.ModelName = get("OPENAI_MODEL", "gpt-4o-mini")
	case ProviderNone:
	default:
		return nil, fmt.Errorf("unsupported ORACLE_PROVIDER %q, use gemini, openai or none", cfg.Oracle.Provider)
	}

	return cfg, nil
}
