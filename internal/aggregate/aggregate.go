package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/constants"
	"github.com/kapu/reddit-persona-go/internal/domain"
	"github.com/kapu/reddit-persona-go/internal/reddit"
	"github.com/kapu/reddit-persona-go/internal/util"
)

// Aggregator normalizes raw listing entries into the uniform item shape,
// merges posts and comments newest-first and caps the result.
type Aggregator struct {
	maxItems int
	logger   *zap.Logger
}

func New(maxItems int, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		maxItems: maxItems,
		logger:   logger,
	}
}

func (a *Aggregator) Aggregate(username string, posts, comments []reddit.Item) *domain.AggregatedProfile {
	items := make([]domain.ContentItem, 0, len(posts)+len(comments))
	dropped := 0

	for _, raw := range posts {
		item := mapPost(raw)
		if !item.HasContent() {
			dropped++
			continue
		}
		items = append(items, item)
	}
	for _, raw := range comments {
		// A comment's synthetic title is no evidence of content, only the
		// body counts.
		if strings.TrimSpace(raw.Body) == "" {
			dropped++
			continue
		}
		items = append(items, mapComment(raw))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > a.maxItems {
		items = items[:a.maxItems]
	}

	a.logger.Info("Aggregated profile content",
		zap.String("username", username),
		zap.Int("items", len(items)),
		zap.Int("dropped", dropped),
	)

	return &domain.AggregatedProfile{
		Username: username,
		Items:    items,
	}
}

// ContentBlock renders the citation-ready prompt block: one numbered line
// per item, 1-based, with the body flattened onto the line and truncated.
func (a *Aggregator) ContentBlock(profile *domain.AggregatedProfile) string {
	var builder strings.Builder
	for i := range profile.Items {
		item := &profile.Items[i]
		text := util.TruncateString(util.FlattenSpaces(item.DisplayText()), constants.ContentLimits.MaxItemRunes)
		fmt.Fprintf(&builder, "[%d] (r/%s, %s): %s\n", i+1, item.Subreddit, item.Permalink, text)
	}
	return builder.String()
}

func mapPost(raw reddit.Item) domain.ContentItem {
	return domain.ContentItem{
		ID:        raw.ID,
		Type:      domain.ContentTypePost,
		Title:     strings.TrimSpace(raw.Title),
		Text:      strings.TrimSpace(raw.Selftext),
		Subreddit: raw.Subreddit,
		Permalink: absolutePermalink(raw.Permalink),
		CreatedAt: util.FromUnixSeconds(raw.CreatedUTC),
		Score:     raw.Ups,
	}
}

func mapComment(raw reddit.Item) domain.ContentItem {
	return domain.ContentItem{
		ID:        raw.ID,
		Type:      domain.ContentTypeComment,
		Title:     fmt.Sprintf("Comment in r/%s", raw.Subreddit),
		Text:      strings.TrimSpace(raw.Body),
		Subreddit: raw.Subreddit,
		Permalink: absolutePermalink(raw.Permalink),
		CreatedAt: util.FromUnixSeconds(raw.CreatedUTC),
		Score:     raw.Ups,
	}
}

func absolutePermalink(permalink string) string {
	if permalink == "" || strings.HasPrefix(permalink, "http") {
		return permalink
	}
	return constants.RedditAPI.BaseURL + permalink
}
