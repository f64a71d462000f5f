package prompt

import (
	"fmt"
	"strings"

	"github.com/kapu/reddit-persona-go/internal/domain"
)

// BuildPersonaPrompt renders the single analysis prompt: instruction
// preamble, the required response format and the numbered content block the
// model must cite from.
func BuildPersonaPrompt(vars PersonaPromptVars) string {
	return fmt.Sprintf(`You are an expert user researcher analyzing Reddit activity to create a comprehensive user persona.

Analyze the following %d posts and comments from Reddit user '%s' and write a detailed persona.

REDDIT CONTENT (one source item per line, numbered for citation):
%s

Respond in Markdown using EXACTLY these headings, in this order:

%s
CRITICAL Guidelines:
- In "User Persona Overview", give your best demographic guesses as bold key/value lines:
  **Name:**, **Age Range:**, **Location:**, **Occupation:**
- Support every claim by appending the bracketed number of the source item, e.g. "enjoys mechanical keyboards [3] [7]"
- Only cite numbers that appear in REDDIT CONTENT above; never invent numbers
- Write "Not specified" where the content gives too little evidence; do not speculate beyond it
- Use bullet lists for Interests, Personality Traits, Goals, Pain Points and Values; short prose for the rest
- In "Summary", describe the overall picture in 2-4 sentences
- Do not add any text, headings or remarks outside the sections above
`, vars.ItemCount, vars.Username, strings.TrimRight(vars.ContentBlock, "\n"), headingList())
}

func headingList() string {
	var builder strings.Builder
	for _, title := range domain.SectionOrder() {
		switch title {
		case domain.SectionOverview, domain.SectionSummary:
			builder.WriteString("## " + title + "\n")
		default:
			builder.WriteString("### " + title + "\n")
		}
	}
	return builder.String()
}
