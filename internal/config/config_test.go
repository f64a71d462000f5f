package config

import (
	"testing"
	"time"

	apperrors "github.com/kapu/reddit-persona-go/pkg/errors"
)

// clearAnalyzerEnv blanks every knob Load reads so values from the host
// environment cannot leak into assertions.
func clearAnalyzerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MAX_ITEMS", "REQUEST_TIMEOUT_SECONDS", "SCRAPE_FALLBACK",
		"GROQ_API_KEY", "GROQ_MODEL",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_ENABLE_FALLBACK",
		"LLM_TIMEOUT_SECONDS", "LLM_PRESET",
		"REPORT_FORMAT", "REPORT_DIR",
		"LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	clearAnalyzerEnv(t)
	t.Setenv("GROQ_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	if cfg.Reddit.MaxItems != 50 {
		t.Fatalf("expected default max items 50, got %d", cfg.Reddit.MaxItems)
	}
	if cfg.Reddit.RequestTimeout != 15*time.Second {
		t.Fatalf("expected default request timeout 15s, got %v", cfg.Reddit.RequestTimeout)
	}
	if !cfg.Reddit.ScrapeFallback {
		t.Fatalf("expected scrape fallback enabled by default")
	}
	if cfg.Groq.Model != "llama3-70b-8192" {
		t.Fatalf("expected default Groq model, got %q", cfg.Groq.Model)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" || !cfg.Gemini.EnableFallback {
		t.Fatalf("unexpected Gemini defaults: %+v", cfg.Gemini)
	}
	if cfg.Synthesis.Timeout != 90*time.Second || cfg.Synthesis.Preset != "precise" {
		t.Fatalf("unexpected synthesis defaults: %+v", cfg.Synthesis)
	}
	if cfg.Report.Format != ReportFormatText || cfg.Report.Dir != "." {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	clearAnalyzerEnv(t)
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("MAX_ITEMS", "20")
	t.Setenv("SCRAPE_FALLBACK", "false")
	t.Setenv("REPORT_FORMAT", "html")
	t.Setenv("LLM_PRESET", "creative")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	if cfg.Reddit.MaxItems != 20 {
		t.Fatalf("expected max items 20, got %d", cfg.Reddit.MaxItems)
	}
	if cfg.Reddit.ScrapeFallback {
		t.Fatalf("expected scrape fallback disabled")
	}
	if cfg.Report.Format != ReportFormatHTML {
		t.Fatalf("expected html report format, got %q", cfg.Report.Format)
	}
	if cfg.Synthesis.Preset != "creative" {
		t.Fatalf("expected creative preset, got %q", cfg.Synthesis.Preset)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearAnalyzerEnv(t)
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("MAX_ITEMS", "plenty")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.Reddit.MaxItems != 50 {
		t.Fatalf("expected malformed MAX_ITEMS to fall back to 50, got %d", cfg.Reddit.MaxItems)
	}
}

func TestLoadRequiresGroqKey(t *testing.T) {
	clearAnalyzerEnv(t)

	_, err := Load()
	if !apperrors.IsCode(err, apperrors.CodeMissingCredential) {
		t.Fatalf("expected %s, got %v", apperrors.CodeMissingCredential, err)
	}
}

func validConfig() *Config {
	return &Config{
		Reddit:    RedditConfig{MaxItems: 50, RequestTimeout: 15 * time.Second},
		Groq:      GroqConfig{APIKey: "test-key", Model: "llama3-70b-8192"},
		Synthesis: SynthesisConfig{Timeout: 90 * time.Second, Preset: "precise"},
		Report:    ReportConfig{Format: ReportFormatText, Dir: "."},
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   string
	}{
		{"missing key", func(c *Config) { c.Groq.APIKey = "" }, apperrors.CodeMissingCredential},
		{"too few items", func(c *Config) { c.Reddit.MaxItems = 1 }, apperrors.CodeConfig},
		{"zero request timeout", func(c *Config) { c.Reddit.RequestTimeout = 0 }, apperrors.CodeConfig},
		{"zero llm timeout", func(c *Config) { c.Synthesis.Timeout = 0 }, apperrors.CodeConfig},
		{"unknown report format", func(c *Config) { c.Report.Format = "pdf" }, apperrors.CodeConfig},
	}

	for _, tt := range tests {
		cfg := validConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !apperrors.IsCode(err, tt.code) {
			t.Fatalf("%s: expected %s, got %v", tt.name, tt.code, err)
		}
	}
}
