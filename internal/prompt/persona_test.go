package prompt

import (
	"strings"
	"testing"

	"github.com/kapu/reddit-persona-go/internal/domain"
)

func TestBuildPersonaPromptEmbedsContentAndHeadings(t *testing.T) {
	built := BuildPersonaPrompt(PersonaPromptVars{
		Username:  "alice",
		ItemCount: 2,
		ContentBlock: "[1] (r/golang, https://www.reddit.com/r/golang/comments/p1/): keyboard build\n" +
			"[2] (r/golang, https://www.reddit.com/r/golang/comments/c1/): try PBT caps\n",
	})

	if !strings.Contains(built, "2 posts and comments from Reddit user 'alice'") {
		t.Fatalf("expected item count and username in prompt")
	}
	if !strings.Contains(built, "[1] (r/golang,") || !strings.Contains(built, "[2] (r/golang,") {
		t.Fatalf("expected numbered content block in prompt")
	}

	for _, title := range domain.SectionOrder() {
		if !strings.Contains(built, title) {
			t.Fatalf("expected heading %q in prompt", title)
		}
	}

	// The block is embedded mid-prompt, its trailing newline must not
	// detach the instructions that follow.
	if strings.Contains(built, "\n\n\nRespond in Markdown") {
		t.Fatalf("content block left a blank gap before the format instructions")
	}
}

func TestBuildPersonaPromptDemandsCitations(t *testing.T) {
	built := BuildPersonaPrompt(PersonaPromptVars{Username: "bob", ItemCount: 1, ContentBlock: "[1] (r/a, x): y"})

	if !strings.Contains(built, "never invent numbers") {
		t.Fatalf("expected citation guardrail in prompt")
	}
	if !strings.Contains(built, "EXACTLY these headings") {
		t.Fatalf("expected strict heading instruction in prompt")
	}
}
