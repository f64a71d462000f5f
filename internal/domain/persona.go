package domain

import "time"

// Canonical report section titles. The prompt asks the model for exactly
// these headings and the parser canonicalizes back onto them, so the two
// sides stay in sync through this package.
const (
	SectionOverview      = "User Persona Overview"
	SectionInterests     = "Interests & Hobbies"
	SectionPersonality   = "Personality Traits"
	SectionGoals         = "Goals & Motivations"
	SectionPainPoints    = "Pain Points & Frustrations"
	SectionTechnology    = "Technology Usage"
	SectionCommunication = "Communication Style"
	SectionValues        = "Values & Beliefs"
	SectionLifestyle     = "Lifestyle"
	SectionSummary       = "Summary"
)

func SectionOrder() []string {
	return []string{
		SectionOverview,
		SectionInterests,
		SectionPersonality,
		SectionGoals,
		SectionPainPoints,
		SectionTechnology,
		SectionCommunication,
		SectionValues,
		SectionLifestyle,
		SectionSummary,
	}
}

// Section is one named block of the persona report with its body kept
// verbatim as the model wrote it.
type Section struct {
	Title string
	Body  string
}

// Citation links a claim-bearing section back to the source item that
// supports it.
type Citation struct {
	Index     int
	Permalink string
	Excerpt   string
	Type      ContentType
}

type PersonaReport struct {
	Username    string
	GeneratedAt time.Time
	Sections    []Section
	Citations   map[string][]Citation
}

func (r *PersonaReport) Section(title string) (*Section, bool) {
	if r == nil {
		return nil, false
	}
	for i := range r.Sections {
		if r.Sections[i].Title == title {
			return &r.Sections[i], true
		}
	}
	return nil, false
}

func (r *PersonaReport) SectionCitations(title string) []Citation {
	if r == nil || r.Citations == nil {
		return nil
	}
	return r.Citations[title]
}
