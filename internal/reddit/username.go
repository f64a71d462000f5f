package reddit

import (
	"regexp"
	"strings"

	apperrors "github.com/kapu/reddit-persona-go/pkg/errors"
)

// profileURLPattern accepts https://www.reddit.com/user/<username> with an
// optional scheme, any reddit.com subdomain, an optional trailing slash and
// an optional query string. The capture group is the username.
var profileURLPattern = regexp.MustCompile(`^(?:https?://)?(?:[a-zA-Z0-9-]+\.)*reddit\.com/user/([A-Za-z0-9_-]+)/?(?:\?[^#\s]*)?$`)

// ExtractUsername pulls the username out of a Reddit profile URL.
func ExtractUsername(profileURL string) (string, error) {
	matches := profileURLPattern.FindStringSubmatch(strings.TrimSpace(profileURL))
	if matches == nil {
		return "", apperrors.NewInvalidProfileURLError(profileURL)
	}
	return matches[1], nil
}
