package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"

	"github.com/kapu/reddit-persona-go/internal/constants"
	"github.com/kapu/reddit-persona-go/internal/util"
	apperrors "github.com/kapu/reddit-persona-go/pkg/errors"
)

// Client fetches a user's submitted posts and comments through the public
// JSON listing endpoints, one page at a time with a fixed pause between
// requests. A non-nil scraper is used as a fallback when Reddit answers 403
// to scripted clients.
type Client struct {
	httpClient  *http.Client
	scraper     *Scraper
	logger      *zap.Logger
	baseURL     string
	delay       time.Duration
	retryDelay  time.Duration
	retryJitter time.Duration
}

func NewClient(httpClient *http.Client, scraper *Scraper, logger *zap.Logger) *Client {
	return &Client{
		httpClient:  httpClient,
		scraper:     scraper,
		logger:      logger,
		baseURL:     constants.RedditAPI.BaseURL,
		delay:       constants.RedditAPI.RequestDelay,
		retryDelay:  constants.RetryConfig.BaseDelay,
		retryJitter: constants.RetryConfig.MaxJitter,
	}
}

// FetchUserContent retrieves up to maxItems entries for username, split
// evenly between posts and comments. Both listings empty means the profile
// is private, suspended or nonexistent.
func (c *Client) FetchUserContent(ctx context.Context, username string, maxItems int) ([]Item, []Item, error) {
	perKind := maxItems / 2

	posts, err := c.FetchSubmitted(ctx, username, perKind)
	if err != nil {
		return nil, nil, err
	}

	time.Sleep(c.delay)

	comments, err := c.FetchComments(ctx, username, perKind)
	if err != nil {
		return nil, nil, err
	}

	if len(posts) == 0 && len(comments) == 0 {
		return nil, nil, apperrors.NewProfileEmptyError(username)
	}

	c.logger.Info("Fetched user content",
		zap.String("username", username),
		zap.Int("posts", len(posts)),
		zap.Int("comments", len(comments)),
	)
	return posts, comments, nil
}

func (c *Client) FetchSubmitted(ctx context.Context, username string, max int) ([]Item, error) {
	return c.fetchListing(ctx, username, constants.RedditAPI.SubmittedPath, max)
}

func (c *Client) FetchComments(ctx context.Context, username string, max int) ([]Item, error) {
	return c.fetchListing(ctx, username, constants.RedditAPI.CommentsPath, max)
}

func (c *Client) fetchListing(ctx context.Context, username, pathFormat string, max int) ([]Item, error) {
	if max <= 0 {
		return nil, nil
	}

	items := make([]Item, 0, max)
	after := ""

	for len(items) < max {
		listing, err := c.fetchPage(ctx, username, pathFormat, after, util.Min(constants.RedditAPI.PageLimit, max-len(items)))
		if err != nil {
			if c.scraper != nil && apperrors.StatusCodeOf(err) == http.StatusForbidden {
				c.logger.Warn("Listing endpoint refused the request, switching to HTML fallback",
					zap.String("username", username),
					zap.String("path", pathFormat),
				)
				return c.scraper.scrapeListing(ctx, username, pathFormat, max)
			}
			return nil, err
		}

		if len(listing.Data.Children) == 0 {
			break
		}
		for _, child := range listing.Data.Children {
			items = append(items, child.Data)
			if len(items) >= max {
				break
			}
		}

		if listing.Data.After == "" {
			break
		}
		after = listing.Data.After
		time.Sleep(c.delay)
	}

	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, username, pathFormat, after string, limit int) (*Listing, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("raw_json", "1")
	if after != "" {
		params.Set("after", after)
	}
	reqURL := c.baseURL + fmt.Sprintf(pathFormat, url.PathEscape(username)) + ".json?" + params.Encode()

	var listing Listing
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("User-Agent", constants.RedditAPI.UserAgent)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusNotFound:
				return retry.Unrecoverable(apperrors.NewProfileNotFoundError(username))
			case resp.StatusCode == http.StatusForbidden:
				return retry.Unrecoverable(apperrors.NewNetworkError("Reddit refused the listing request", resp.StatusCode, nil))
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				return apperrors.NewNetworkError(
					fmt.Sprintf("listing request failed with status %d", resp.StatusCode),
					resp.StatusCode, nil,
				)
			case resp.StatusCode >= 400:
				return retry.Unrecoverable(apperrors.NewNetworkError(
					fmt.Sprintf("listing request rejected with status %d", resp.StatusCode),
					resp.StatusCode, nil,
				))
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(body, &listing); err != nil {
				return retry.Unrecoverable(apperrors.NewNetworkError("malformed listing response", resp.StatusCode, err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(constants.RetryConfig.MaxAttempts)),
		retry.Delay(c.retryDelay),
		retry.MaxJitter(c.retryJitter),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("Listing request failed, retrying",
				zap.String("username", username),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if apperrors.CodeOf(err) == "" {
			return nil, apperrors.NewAnalyzerError("listing request failed", apperrors.CodeNetwork, 0, map[string]any{
				"username": username,
			}).WithCause(err)
		}
		return nil, err
	}

	return &listing, nil
}
