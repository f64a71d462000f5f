package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/app"
	"github.com/kapu/reddit-persona-go/internal/config"
	"github.com/kapu/reddit-persona-go/internal/util"
)

const appVersion = "1.0.0"

var (
	profileURL  = flag.String("url", "", "Reddit profile URL to analyze (prompts when omitted)")
	showVersion = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("reddit-persona " + appVersion)
		return
	}

	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Reddit persona analyzer starting",
		zap.String("version", appVersion),
		zap.String("log_level", cfg.Logging.Level),
	)

	target := strings.TrimSpace(*profileURL)
	if target == "" {
		target, err = promptForURL()
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Warn("Received shutdown signal, aborting analysis", zap.String("signal", sig.String()))
		cancel()
	}()

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	color.New(color.FgCyan).Printf("Analyzing Reddit profile: %s\n", target)

	path, err := container.Run(ctx, target)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("Persona report saved to: %s\n", path)
	return nil
}

func promptForURL() (string, error) {
	fmt.Print(color.New(color.FgCyan).Sprint("Enter Reddit profile URL: "))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read profile URL: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no profile URL provided")
	}
	return line, nil
}
