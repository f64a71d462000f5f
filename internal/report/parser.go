package report

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/constants"
	"github.com/kapu/reddit-persona-go/internal/domain"
	"github.com/kapu/reddit-persona-go/internal/util"
)

var (
	headingPattern  = regexp.MustCompile(`^#{1,4}\s+(.+?)\s*$`)
	citationPattern = regexp.MustCompile(`\[(\d+)\]`)
)

// Parser splits a model completion into persona sections and resolves
// bracketed citation markers against the aggregated items.
type Parser struct {
	logger *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse never fails. A completion without recognizable headings becomes a
// single overview section, citation markers that point outside the item
// range are dropped from the source list while the body text stays intact.
func (p *Parser) Parse(completion string, profile *domain.AggregatedProfile) *domain.PersonaReport {
	result := &domain.PersonaReport{
		Username:    profile.Username,
		GeneratedAt: time.Now(),
		Sections:    splitSections(completion),
		Citations:   make(map[string][]domain.Citation),
	}

	for i := range result.Sections {
		section := &result.Sections[i]
		citations := p.resolveCitations(section.Body, profile)
		if len(citations) > 0 {
			result.Citations[section.Title] = citations
		}
	}

	p.logger.Info("Parsed persona completion",
		zap.String("username", profile.Username),
		zap.Int("sections", len(result.Sections)),
		zap.Int("cited_sections", len(result.Citations)),
	)
	return result
}

func splitSections(completion string) []domain.Section {
	var sections []domain.Section
	var body []string
	title := ""
	seen := false

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		switch {
		case seen:
			sections = appendSection(sections, domain.Section{Title: title, Body: text})
		case text != "":
			// Text before the first heading reads as the overview.
			sections = appendSection(sections, domain.Section{Title: domain.SectionOverview, Body: text})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(completion, "\n") {
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			flush()
			title = canonicalTitle(match[1])
			seen = true
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// appendSection merges bodies when the model repeats a heading.
func appendSection(sections []domain.Section, section domain.Section) []domain.Section {
	for i := range sections {
		if sections[i].Title == section.Title {
			sections[i].Body = strings.TrimSpace(sections[i].Body + "\n\n" + section.Body)
			return sections
		}
	}
	return append(sections, section)
}

// Models tend to shorten the overview heading.
var headingAliases = map[string]string{
	"overview": domain.SectionOverview,
}

// canonicalTitle maps a raw heading onto one of the known section titles.
// Unknown headings are kept as written so no model output is lost.
func canonicalTitle(heading string) string {
	display := strings.Trim(heading, "* ")
	normalized := util.NormalizeHeading(display)
	if alias, ok := headingAliases[normalized]; ok {
		return alias
	}
	for _, known := range domain.SectionOrder() {
		if util.NormalizeHeading(known) == normalized {
			return known
		}
	}
	return display
}

func (p *Parser) resolveCitations(body string, profile *domain.AggregatedProfile) []domain.Citation {
	matches := citationPattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	indexes := make([]int, 0, len(matches))
	for _, match := range matches {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		indexes = append(indexes, n)
	}

	citations := make([]domain.Citation, 0, len(indexes))
	for _, n := range util.Unique(indexes) {
		item, ok := profile.ItemAt(n)
		if !ok {
			p.logger.Debug("Dropping citation outside item range", zap.Int("index", n))
			continue
		}
		citations = append(citations, domain.Citation{
			Index:     n,
			Permalink: item.Permalink,
			Excerpt:   util.TruncateString(util.FlattenSpaces(item.DisplayText()), constants.ContentLimits.MaxExcerptRunes),
			Type:      item.Type,
		})
	}
	return citations
}
