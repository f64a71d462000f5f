package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/pkg/errors"
)

// ModelManager routes generation to the primary provider and, when configured,
// retries a failed call once against the fallback provider.
type ModelManager struct {
	primary  TextProvider
	fallback TextProvider
	logger   *zap.Logger
}

type ModelManagerConfig struct {
	GroqAPIKey     string
	GroqModel      string
	GeminiAPIKey   string
	GeminiModel    string
	EnableFallback bool
}

func NewModelManager(ctx context.Context, config ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	manager := &ModelManager{logger: logger}

	// The constructor returns a typed nil on a missing key, so the check has
	// to happen before the value lands in the interface field.
	groq := NewGroqProvider(config.GroqAPIKey, config.GroqModel, logger)
	if groq == nil {
		return nil, errors.NewMissingCredentialError("GROQ_API_KEY")
	}
	manager.primary = groq

	if config.EnableFallback && config.GeminiAPIKey != "" {
		gemini, err := NewGeminiProvider(ctx, config.GeminiAPIKey, config.GeminiModel, logger)
		if err != nil {
			logger.Warn("Fallback provider unavailable, continuing with primary only", zap.Error(err))
		} else {
			manager.fallback = gemini
		}
	}

	logger.Info("Model manager initialized",
		zap.String("primary", manager.primary.Name()),
		zap.Bool("fallback_enabled", manager.fallback != nil),
	)
	return manager, nil
}

// GenerateText runs the prompt through the provider chain and returns the
// cleaned completion text.
func (m *ModelManager) GenerateText(ctx context.Context, prompt string, preset ModelPreset) (string, *GenerateMetadata, error) {
	config := GetPresetConfig(preset)

	result, err := m.primary.Generate(ctx, prompt, config)
	if err != nil {
		if m.fallback == nil {
			return "", nil, errors.NewLLMRequestError(m.primary.Name(), err)
		}

		m.logger.Warn("Primary provider failed, trying fallback",
			zap.String("primary", m.primary.Name()),
			zap.String("fallback", m.fallback.Name()),
			zap.Error(err),
		)

		fallbackResult, fallbackErr := m.fallback.Generate(ctx, prompt, config)
		if fallbackErr != nil {
			return "", nil, errors.NewLLMRequestError(m.fallback.Name(), fallbackErr)
		}

		text := cleanCompletion(fallbackResult.Text)
		if text == "" {
			return "", nil, errors.NewLLMEmptyResponseError(m.fallback.Name())
		}
		return text, &GenerateMetadata{
			Provider:     m.fallback.Name(),
			Model:        fallbackResult.Model,
			UsedFallback: true,
		}, nil
	}

	text := cleanCompletion(result.Text)
	if text == "" {
		return "", nil, errors.NewLLMEmptyResponseError(m.primary.Name())
	}
	return text, &GenerateMetadata{
		Provider: m.primary.Name(),
		Model:    result.Model,
	}, nil
}

// cleanCompletion strips the code fences some models wrap Markdown output in.
func cleanCompletion(text string) string {
	cleaned := strings.TrimSpace(text)

	for _, prefix := range []string{"```markdown", "```md", "```"} {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimPrefix(cleaned, prefix)
			break
		}
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}
