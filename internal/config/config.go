package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/kapu/reddit-persona-go/pkg/errors"
)

type Config struct {
	Reddit    RedditConfig
	Groq      GroqConfig
	Gemini    GeminiConfig
	Synthesis SynthesisConfig
	Report    ReportConfig
	Logging   LoggingConfig
}

type RedditConfig struct {
	MaxItems       int
	RequestTimeout time.Duration
	ScrapeFallback bool
}

type GroqConfig struct {
	APIKey string
	Model  string
}

type GeminiConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type SynthesisConfig struct {
	Timeout time.Duration
	Preset  string
}

type ReportConfig struct {
	Format string
	Dir    string
}

type LoggingConfig struct {
	Level string
	File  string
}

const (
	ReportFormatText = "text"
	ReportFormatHTML = "html"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Reddit: RedditConfig{
			MaxItems:       getEnvInt("MAX_ITEMS", 50),
			RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
			ScrapeFallback: getEnvBool("SCRAPE_FALLBACK", true),
		},
		Groq: GroqConfig{
			APIKey: getEnv("GROQ_API_KEY", ""),
			Model:  getEnv("GROQ_MODEL", "llama3-70b-8192"),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			EnableFallback: getEnvBool("GEMINI_ENABLE_FALLBACK", true),
		},
		Synthesis: SynthesisConfig{
			Timeout: time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 90)) * time.Second,
			Preset:  getEnv("LLM_PRESET", "precise"),
		},
		Report: ReportConfig{
			Format: getEnv("REPORT_FORMAT", ReportFormatText),
			Dir:    getEnv("REPORT_DIR", "."),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Groq.APIKey == "" {
		return apperrors.NewMissingCredentialError("GROQ_API_KEY")
	}
	if c.Reddit.MaxItems < 2 {
		return apperrors.NewConfigError("MAX_ITEMS must be at least 2", "MAX_ITEMS", c.Reddit.MaxItems)
	}
	if c.Reddit.RequestTimeout <= 0 {
		return apperrors.NewConfigError("REQUEST_TIMEOUT_SECONDS must be positive", "REQUEST_TIMEOUT_SECONDS", c.Reddit.RequestTimeout)
	}
	if c.Synthesis.Timeout <= 0 {
		return apperrors.NewConfigError("LLM_TIMEOUT_SECONDS must be positive", "LLM_TIMEOUT_SECONDS", c.Synthesis.Timeout)
	}
	if c.Report.Format != ReportFormatText && c.Report.Format != ReportFormatHTML {
		return apperrors.NewConfigError("REPORT_FORMAT must be \"text\" or \"html\"", "REPORT_FORMAT", c.Report.Format)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
