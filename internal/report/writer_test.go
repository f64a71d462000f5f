package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/domain"
)

func TestWriteCreatesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, zap.NewNop())

	result := &domain.PersonaReport{
		Username:    "alice",
		GeneratedAt: time.Date(2025, 8, 25, 14, 30, 0, 0, time.UTC),
	}

	path, err := writer.Write(result, "report body", "txt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := filepath.Join(dir, "persona_alice_20250825_143000.txt")
	if path != want {
		t.Fatalf("expected path %q, got %q", want, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected report file, got %v", err)
	}
	if string(content) != "report body" {
		t.Fatalf("unexpected file content %q", content)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list report dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one report file, got %d entries", len(entries))
	}
}

func TestWriteCreatesMissingReportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	writer := NewWriter(dir, zap.NewNop())

	result := &domain.PersonaReport{
		Username:    "bob",
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	path, err := writer.Write(result, "content", "html")
	if err != nil {
		t.Fatalf("expected nested dir to be created, got %v", err)
	}
	if filepath.Ext(path) != ".html" {
		t.Fatalf("expected html extension, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected report file on disk, got %v", err)
	}
}
