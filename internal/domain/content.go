package domain

import "time"

type ContentType string

const (
	ContentTypePost    ContentType = "post"
	ContentTypeComment ContentType = "comment"
)

func (t ContentType) String() string {
	return string(t)
}

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypePost, ContentTypeComment:
		return true
	default:
		return false
	}
}

// ContentItem is one fetched post or comment, immutable once built.
type ContentItem struct {
	ID        string      `json:"id"`
	Type      ContentType `json:"type"`
	Title     string      `json:"title"`
	Text      string      `json:"text"`
	Subreddit string      `json:"subreddit"`
	Permalink string      `json:"permalink"`
	CreatedAt time.Time   `json:"created_at"`
	Score     int         `json:"score"`
}

func (i *ContentItem) HasContent() bool {
	if i == nil {
		return false
	}
	return i.Title != "" || i.Text != ""
}

// DisplayText joins title and body into a single prose string, the shape
// used both for prompt lines and for cited source excerpts.
func (i *ContentItem) DisplayText() string {
	if i == nil {
		return ""
	}
	switch {
	case i.Title != "" && i.Text != "":
		return i.Title + ": " + i.Text
	case i.Title != "":
		return i.Title
	default:
		return i.Text
	}
}
