package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/aggregate"
	"github.com/kapu/reddit-persona-go/internal/domain"
	"github.com/kapu/reddit-persona-go/internal/prompt"
	"github.com/kapu/reddit-persona-go/pkg/errors"
)

// TextGenerator is the surface of ModelManager the synthesizer depends on.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, preset ModelPreset) (string, *GenerateMetadata, error)
}

// PersonaSynthesizer turns an aggregated profile into a persona completion.
type PersonaSynthesizer struct {
	generator  TextGenerator
	aggregator *aggregate.Aggregator
	preset     ModelPreset
	timeout    time.Duration
	logger     *zap.Logger
}

func NewPersonaSynthesizer(
	generator TextGenerator,
	aggregator *aggregate.Aggregator,
	preset ModelPreset,
	timeout time.Duration,
	logger *zap.Logger,
) *PersonaSynthesizer {
	return &PersonaSynthesizer{
		generator:  generator,
		aggregator: aggregator,
		preset:     preset,
		timeout:    timeout,
		logger:     logger,
	}
}

// Synthesize builds the numbered content block, prompts the model and returns
// the raw Markdown completion. The timeout bounds a single model call, the
// fallback call gets the remainder of the same window.
func (s *PersonaSynthesizer) Synthesize(ctx context.Context, profile *domain.AggregatedProfile) (string, *GenerateMetadata, error) {
	// Aggregation can drop every entry when none carries usable text. That
	// leaves nothing to analyze, so the model is never called.
	if profile.IsEmpty() {
		return "", nil, errors.NewProfileEmptyError(profile.Username)
	}

	block := s.aggregator.ContentBlock(profile)
	promptText := prompt.BuildPersonaPrompt(prompt.PersonaPromptVars{
		Username:     profile.Username,
		ItemCount:    profile.Len(),
		ContentBlock: block,
	})

	s.logger.Info("Requesting persona synthesis",
		zap.String("username", profile.Username),
		zap.Int("items", profile.Len()),
		zap.Int("prompt_chars", len(promptText)),
	)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completion, meta, err := s.generator.GenerateText(genCtx, promptText, s.preset)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("Persona synthesis complete",
		zap.String("provider", meta.Provider),
		zap.String("model", meta.Model),
		zap.Bool("used_fallback", meta.UsedFallback),
	)
	return completion, meta, nil
}
