package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/aggregate"
	"github.com/kapu/reddit-persona-go/internal/config"
	"github.com/kapu/reddit-persona-go/internal/reddit"
	"github.com/kapu/reddit-persona-go/internal/report"
	"github.com/kapu/reddit-persona-go/internal/service"
)

// Container bundles the assembled pipeline stages for one analysis run.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Reddit      *reddit.Client
	Aggregator  *aggregate.Aggregator
	Synthesizer *service.PersonaSynthesizer
	Parser      *report.Parser
	Writer      *report.Writer
}

// Build assembles the pipeline stages. Config is validated before any
// network client exists, so a missing credential never produces traffic.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Reddit.RequestTimeout}

	var scraper *reddit.Scraper
	if cfg.Reddit.ScrapeFallback {
		scraper = reddit.NewScraper(httpClient, logger)
	}
	redditClient := reddit.NewClient(httpClient, scraper, logger)

	aggregator := aggregate.New(cfg.Reddit.MaxItems, logger)

	modelManager, err := service.NewModelManager(ctx, service.ModelManagerConfig{
		GroqAPIKey:     cfg.Groq.APIKey,
		GroqModel:      cfg.Groq.Model,
		GeminiAPIKey:   cfg.Gemini.APIKey,
		GeminiModel:    cfg.Gemini.Model,
		EnableFallback: cfg.Gemini.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	synthesizer := service.NewPersonaSynthesizer(
		modelManager,
		aggregator,
		service.ModelPreset(cfg.Synthesis.Preset),
		cfg.Synthesis.Timeout,
		logger,
	)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Reddit:      redditClient,
		Aggregator:  aggregator,
		Synthesizer: synthesizer,
		Parser:      report.NewParser(logger),
		Writer:      report.NewWriter(cfg.Report.Dir, logger),
	}, nil
}

// Run executes the pipeline for one profile URL and returns the path of the
// written report. Stages run strictly in sequence, a failed stage aborts the
// run and nothing is written.
func (c *Container) Run(ctx context.Context, profileURL string) (string, error) {
	username, err := reddit.ExtractUsername(profileURL)
	if err != nil {
		return "", err
	}
	c.Logger.Info("Starting persona analysis", zap.String("username", username))

	posts, comments, err := c.Reddit.FetchUserContent(ctx, username, c.Config.Reddit.MaxItems)
	if err != nil {
		return "", err
	}

	profile := c.Aggregator.Aggregate(username, posts, comments)

	completion, meta, err := c.Synthesizer.Synthesize(ctx, profile)
	if err != nil {
		return "", err
	}

	persona := c.Parser.Parse(completion, profile)

	content := report.Render(persona)
	extension := "txt"
	if c.Config.Report.Format == config.ReportFormatHTML {
		content, err = report.RenderHTML(persona)
		if err != nil {
			return "", err
		}
		extension = "html"
	}

	path, err := c.Writer.Write(persona, content, extension)
	if err != nil {
		return "", err
	}

	c.Logger.Info("Persona analysis complete",
		zap.String("username", username),
		zap.String("provider", meta.Provider),
		zap.String("model", meta.Model),
		zap.String("report", path),
	)
	return path, nil
}
