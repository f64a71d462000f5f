package report

import (
	"fmt"
	"strings"

	"github.com/kapu/reddit-persona-go/internal/constants"
	"github.com/kapu/reddit-persona-go/internal/domain"
)

// Render produces the plain text report. Overview leads, the detail sections
// follow in the order the model produced them, the summary closes.
func Render(result *domain.PersonaReport) string {
	var builder strings.Builder

	builder.WriteString("# User Persona Analysis Report\n")
	fmt.Fprintf(&builder, "## Reddit User: %s\n", result.Username)
	fmt.Fprintf(&builder, "## Generated on: %s\n\n", result.GeneratedAt.Format(constants.ReportLayout.GeneratedAtTime))
	builder.WriteString("---\n\n")

	if overview, ok := result.Section(domain.SectionOverview); ok {
		fmt.Fprintf(&builder, "## %s\n\n%s\n", overview.Title, overview.Body)
		if citations := result.SectionCitations(overview.Title); len(citations) > 0 {
			writeSources(&builder, citations)
		}
		builder.WriteString("\n---\n\n")
	}

	builder.WriteString("## Detailed Characteristics\n")
	for _, section := range result.Sections {
		if section.Title == domain.SectionOverview || section.Title == domain.SectionSummary {
			continue
		}
		fmt.Fprintf(&builder, "\n### %s\n%s\n", section.Title, section.Body)
		writeSources(&builder, result.SectionCitations(section.Title))
	}

	builder.WriteString("\n---\n\n")
	if summary, ok := result.Section(domain.SectionSummary); ok {
		fmt.Fprintf(&builder, "## %s\n\n%s\n", summary.Title, summary.Body)
		if citations := result.SectionCitations(summary.Title); len(citations) > 0 {
			writeSources(&builder, citations)
		}
		builder.WriteString("\n")
	}

	fmt.Fprintf(&builder, "**Analysis Date:** %s\n", result.GeneratedAt.Format(constants.ReportLayout.AnalysisDate))

	return builder.String()
}

func writeSources(builder *strings.Builder, citations []domain.Citation) {
	if len(citations) == 0 {
		builder.WriteString("\n**Sources:** No specific citations available\n")
		return
	}
	builder.WriteString("\n**Sources:**\n")
	for i, citation := range citations {
		fmt.Fprintf(builder, "%d. %s\n", i+1, citation.Excerpt)
		fmt.Fprintf(builder, "   Source: %s\n", citation.Permalink)
		fmt.Fprintf(builder, "   Type: %s\n\n", citation.Type)
	}
}
