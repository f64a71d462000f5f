package reddit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/constants"
	apperrors "github.com/kapu/reddit-persona-go/pkg/errors"
)

// Scraper extracts listing entries from old.reddit.com HTML pages. It is
// the fallback for the JSON endpoints, which Reddit sometimes refuses to
// serve to scripted clients.
type Scraper struct {
	httpClient *http.Client
	logger     *zap.Logger
	baseURL    string
	delay      time.Duration
}

func NewScraper(httpClient *http.Client, logger *zap.Logger) *Scraper {
	return &Scraper{
		httpClient: httpClient,
		logger:     logger,
		baseURL:    constants.RedditAPI.OldBaseURL,
		delay:      constants.RedditAPI.RequestDelay,
	}
}

func (s *Scraper) ScrapeSubmitted(ctx context.Context, username string, max int) ([]Item, error) {
	return s.scrapeListing(ctx, username, constants.RedditAPI.SubmittedPath, max)
}

func (s *Scraper) ScrapeComments(ctx context.Context, username string, max int) ([]Item, error) {
	return s.scrapeListing(ctx, username, constants.RedditAPI.CommentsPath, max)
}

func (s *Scraper) scrapeListing(ctx context.Context, username, pathFormat string, max int) ([]Item, error) {
	if max <= 0 {
		return nil, nil
	}

	s.logger.Info("Scraping listing page (FALLBACK MODE)",
		zap.String("username", username),
		zap.String("path", pathFormat),
	)

	isPosts := pathFormat == constants.RedditAPI.SubmittedPath
	pageURL := s.baseURL + fmt.Sprintf(pathFormat, url.PathEscape(username))

	items := make([]Item, 0, max)
	parseErrors := 0

	for pageURL != "" && len(items) < max {
		doc, err := s.fetchDocument(ctx, username, pageURL)
		if err != nil {
			return nil, err
		}

		selector := "div.thing.link"
		if !isPosts {
			selector = "div.thing.comment"
		}

		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if len(items) >= max || sel.HasClass("promotedlink") {
				return
			}
			item, err := s.parseThing(sel, isPosts)
			if err != nil {
				parseErrors++
				s.logger.Debug("Failed to parse listing element",
					zap.String("username", username),
					zap.Error(err),
				)
				return
			}
			items = append(items, item)
		})

		pageURL = ""
		if len(items) < max {
			if next, exists := doc.Find("span.next-button a").First().Attr("href"); exists {
				pageURL = next
				time.Sleep(s.delay)
			}
		}
	}

	if parseErrors > 0 && parseErrors > len(items)/2 {
		s.logger.Warn("High parse error rate, the page structure may have changed",
			zap.Int("items", len(items)),
			zap.Int("parse_errors", parseErrors),
		)
	}

	s.logger.Info("Scraper fetched listing",
		zap.String("username", username),
		zap.Int("items", len(items)),
		zap.Int("parse_errors", parseErrors),
	)
	return items, nil
}

func (s *Scraper) fetchDocument(ctx context.Context, username, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constants.RedditAPI.UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkError("listing page request failed", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewProfileNotFoundError(username)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewNetworkError(
			fmt.Sprintf("listing page returned status %d", resp.StatusCode),
			resp.StatusCode, nil,
		)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkError("listing page parse failed", resp.StatusCode, err)
	}
	return doc, nil
}

func (s *Scraper) parseThing(sel *goquery.Selection, isPosts bool) (Item, error) {
	fullname := sel.AttrOr("data-fullname", "")
	permalink := sel.AttrOr("data-permalink", "")
	if permalink == "" {
		return Item{}, fmt.Errorf("element has no permalink")
	}

	item := Item{
		ID:        strings.TrimPrefix(strings.TrimPrefix(fullname, "t3_"), "t1_"),
		Name:      fullname,
		Subreddit: sel.AttrOr("data-subreddit", ""),
		Permalink: permalink,
	}

	if ts := sel.AttrOr("data-timestamp", ""); ts != "" {
		if millis, err := strconv.ParseInt(ts, 10, 64); err == nil {
			item.CreatedUTC = float64(millis) / 1000.0
		}
	}
	if item.CreatedUTC == 0 {
		if dt, exists := sel.Find("time").First().Attr("datetime"); exists {
			if t, err := time.Parse(time.RFC3339, dt); err == nil {
				item.CreatedUTC = float64(t.Unix())
			}
		}
	}

	if score := sel.Find("div.score.unvoted").First().AttrOr("title", ""); score != "" {
		if ups, err := strconv.Atoi(score); err == nil {
			item.Ups = ups
		}
	}

	body := s.extractBody(sel)
	if isPosts {
		item.Title = strings.TrimSpace(sel.Find("a.title").First().Text())
		item.Selftext = body
		if item.Title == "" {
			return Item{}, fmt.Errorf("post element has no title")
		}
	} else {
		item.Body = body
		if item.Body == "" {
			return Item{}, fmt.Errorf("comment element has no body")
		}
	}

	return item, nil
}

// extractBody converts the entry's rendered div.md HTML to Markdown so
// links and emphasis survive into the prompt, falling back to plain text.
func (s *Scraper) extractBody(sel *goquery.Selection) string {
	bodySel := sel.Find("div.md").First()
	if bodySel.Length() == 0 {
		return ""
	}

	html, err := bodySel.Html()
	if err == nil && html != "" {
		if markdown, err := md.ConvertString(html); err == nil {
			return strings.TrimSpace(markdown)
		}
	}
	return strings.TrimSpace(bodySel.Text())
}
