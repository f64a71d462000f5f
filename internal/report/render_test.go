package report

import (
	"strings"
	"testing"
	"time"

	"github.com/kapu/reddit-persona-go/internal/domain"
)

func renderedReport() *domain.PersonaReport {
	return &domain.PersonaReport{
		Username:    "alice",
		GeneratedAt: time.Date(2025, 8, 25, 14, 30, 0, 0, time.UTC),
		Sections: []domain.Section{
			{Title: domain.SectionOverview, Body: "**Name:** Alice"},
			{Title: domain.SectionInterests, Body: "- keyboards [1]"},
			{Title: domain.SectionTechnology, Body: "Linux desktop user"},
			{Title: domain.SectionSummary, Body: "Alice builds keyboards."},
		},
		Citations: map[string][]domain.Citation{
			domain.SectionInterests: {
				{
					Index:     1,
					Permalink: "https://www.reddit.com/r/MechanicalKeyboards/comments/p1/",
					Excerpt:   "keyboard build: lubed switches",
					Type:      domain.ContentTypePost,
				},
			},
		},
	}
}

func TestRenderProducesReportLayout(t *testing.T) {
	text := Render(renderedReport())

	wantHeader := "# User Persona Analysis Report\n" +
		"## Reddit User: alice\n" +
		"## Generated on: 2025-08-25 14:30:00\n"
	if !strings.HasPrefix(text, wantHeader) {
		t.Fatalf("unexpected report header:\n%s", text)
	}

	for _, want := range []string{
		"## User Persona Overview",
		"## Detailed Characteristics",
		"### Interests & Hobbies",
		"## Summary",
		"**Analysis Date:** 2025-08-25",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in report:\n%s", want, text)
		}
	}

	overviewAt := strings.Index(text, "## User Persona Overview")
	detailsAt := strings.Index(text, "## Detailed Characteristics")
	summaryAt := strings.Index(text, "## Summary")
	if !(overviewAt < detailsAt && detailsAt < summaryAt) {
		t.Fatalf("sections out of order: overview=%d details=%d summary=%d", overviewAt, detailsAt, summaryAt)
	}
}

func TestRenderListsCitationsUnderTheirSection(t *testing.T) {
	text := Render(renderedReport())

	wantSources := "**Sources:**\n" +
		"1. keyboard build: lubed switches\n" +
		"   Source: https://www.reddit.com/r/MechanicalKeyboards/comments/p1/\n" +
		"   Type: post\n"
	if !strings.Contains(text, wantSources) {
		t.Fatalf("expected sources block:\n%s", text)
	}

	// Detail sections without resolved citations state that explicitly.
	if !strings.Contains(text, "**Sources:** No specific citations available") {
		t.Fatalf("expected the no-citations marker for the technology section:\n%s", text)
	}
}

func TestRenderHTMLWrapsConvertedMarkdown(t *testing.T) {
	page, err := RenderHTML(renderedReport())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Persona: alice</title>",
		"User Persona Analysis Report</h1>",
		"Interests &amp; Hobbies</h3>",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in HTML page:\n%s", want, page)
		}
	}
}
