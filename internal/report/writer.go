package report

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/constants"
	"github.com/kapu/reddit-persona-go/internal/domain"
)

// Writer stores rendered reports under timestamped names in a single
// directory. Content goes through a temp file and a rename, so an aborted
// run never leaves a half-written report behind.
type Writer struct {
	dir    string
	logger *zap.Logger
}

func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

func (w *Writer) Write(result *domain.PersonaReport, content, extension string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", w.dir, err)
	}

	filename := fmt.Sprintf("%s_%s_%s.%s",
		constants.ReportLayout.FilenamePrefix,
		result.Username,
		result.GeneratedAt.Format(constants.ReportLayout.FilenameTime),
		extension,
	)
	target := filepath.Join(w.dir, filename)

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to finalize report: %w", err)
	}

	w.logger.Info("Report written",
		zap.String("path", target),
		zap.Int("bytes", len(content)),
	)
	return target, nil
}
