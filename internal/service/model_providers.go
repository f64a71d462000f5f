package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// TextProvider is one LLM backend able to turn a prompt into a completion.
type TextProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string, config ModelConfig) (ProviderResult, error)
}

type ProviderResult struct {
	Text  string
	Model string
}

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider talks to Groq through its OpenAI-compatible chat API.
type GroqProvider struct {
	client       *openai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewGroqProvider(apiKey, defaultModel string, logger *zap.Logger) *GroqProvider {
	if apiKey == "" {
		return nil
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqProvider{
		client:       &client,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

func (g *GroqProvider) Name() string {
	return "Groq"
}

func (g *GroqProvider) Generate(ctx context.Context, prompt string, config ModelConfig) (ProviderResult, error) {
	if g.client == nil {
		return ProviderResult{}, fmt.Errorf("groq client not initialized")
	}

	g.logger.Debug("Generating with Groq",
		zap.String("model", g.defaultModel),
		zap.Float32("temperature", config.Temperature),
	)

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		// Groq model names are not in the SDK's constant list, the type is a
		// plain string underneath.
		Model: openai.ChatModel(g.defaultModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(int64(config.MaxTokens)),
		Temperature:         openai.Float(float64(config.Temperature)),
		TopP:                openai.Float(float64(config.TopP)),
	})
	if err != nil {
		g.logger.Error("Groq generation failed", zap.Error(err))
		return ProviderResult{}, err
	}

	if len(resp.Choices) == 0 {
		return ProviderResult{}, fmt.Errorf("no choices in Groq response")
	}

	text := resp.Choices[0].Message.Content
	g.logger.Info("Groq response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return ProviderResult{Text: text, Model: g.defaultModel}, nil
}

// GeminiProvider wraps the Gemini client with preset-aware generation logic.
type GeminiProvider struct {
	client       *genai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey, defaultModel string, logger *zap.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client:       client,
		defaultModel: defaultModel,
		logger:       logger,
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "Gemini"
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, config ModelConfig) (ProviderResult, error) {
	if g.client == nil {
		return ProviderResult{}, fmt.Errorf("gemini client not initialized")
	}

	g.logger.Debug("Generating with Gemini",
		zap.String("model", g.defaultModel),
		zap.Float32("temperature", config.Temperature),
	)

	genConfig := &genai.GenerateContentConfig{
		Temperature:     &config.Temperature,
		TopP:            &config.TopP,
		MaxOutputTokens: int32(config.MaxTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.defaultModel, []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, genConfig)
	if err != nil {
		g.logger.Error("Gemini generation failed", zap.Error(err))
		return ProviderResult{}, err
	}

	text := extractTextFromGeminiResponse(resp)
	if text == "" {
		return ProviderResult{}, fmt.Errorf("empty response from Gemini")
	}

	g.logger.Info("Gemini response received", zap.Int("length", len(text)))
	return ProviderResult{Text: text, Model: g.defaultModel}, nil
}

func extractTextFromGeminiResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}
