package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"github.com/kapu/reddit-persona-go/internal/domain"
)

var md = goldmark.New()

// RenderHTML converts the text report into a self-contained HTML page.
func RenderHTML(result *domain.PersonaReport) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(Render(result)), &body); err != nil {
		return "", fmt.Errorf("failed to convert report to HTML: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Persona: %s</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; color: #222; }
h1, h2, h3 { font-family: Helvetica, Arial, sans-serif; }
hr { border: 0; border-top: 1px solid #ccc; margin: 2rem 0; }
a { color: #0066cc; }
</style>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(result.Username), body.String())

	return page.String(), nil
}
