package util

import "strings"

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FlattenSpaces collapses all whitespace runs (including newlines) into
// single spaces so multi-paragraph bodies fit on one line
func FlattenSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeHeading normalizes a section heading for lookup by dropping
// punctuation and spacing, so "Interests & Hobbies", "interests and hobbies"
// and "### Interests/Hobbies" all map to the same key
func NormalizeHeading(heading string) string {
	heading = Normalize(heading)
	heading = strings.ReplaceAll(heading, " and ", " ")
	if heading == "" {
		return ""
	}

	var builder strings.Builder
	for _, r := range heading {
		switch r {
		case ' ', '-', '_', '.', '!', '&', '/', ':', '#', '*':
			continue
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
