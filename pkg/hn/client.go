// Package hn implements a read-only client for the Hacker News story API.
package hn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/hnscope/pkg/domain"
)

// DefaultBaseURL is the public story API
const DefaultBaseURL = "https://hacker-news.firebaseio.com"

// ErrNotFound returned when the item doesn't exist upstream
var ErrNotFound = errors.New("item not found")

// ErrMalformed returned when an item lacks fields required to render it
var ErrMalformed = errors.New("malformed item")

// Item is the raw upstream representation of a story
type Item struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Text        string `json:"text"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Dead        bool   `json:"dead"`
	Deleted     bool   `json:"deleted"`
}

// Story converts raw item to domain story, rejecting records that can't be rendered
func (i Item) Story() (domain.Story, error) {
	if i.ID <= 0 {
		return domain.Story{}, fmt.Errorf("%w: missing id", ErrMalformed)
	}
	if i.Deleted || i.Dead {
		return domain.Story{}, fmt.Errorf("%w: item %d is deleted", ErrMalformed, i.ID)
	}
	if strings.TrimSpace(i.Title) == "" {
		return domain.Story{}, fmt.Errorf("%w: item %d has no title", ErrMalformed, i.ID)
	}

	res := domain.Story{
		ID:           domain.StoryID(i.ID),
		Title:        i.Title,
		URL:          i.URL,
		Score:        i.Score,
		Author:       i.By,
		CommentCount: i.Descendants,
		Text:         i.Text,
	}
	if i.Time > 0 {
		res.Time = time.Unix(i.Time, 0).UTC()
	}
	return res, nil
}

// Client fetches story lists and items via HTTP
type Client struct {
	client  *http.Client
	baseURL string
}

// New makes a client for the given base url, empty url means the public api
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 2 * domain.DefaultPageLimit, // a page is fetched in parallel
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// StoryIDs returns ordered story ids of the feed as ranked upstream
func (c *Client) StoryIDs(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
	u := fmt.Sprintf("%s/v0/%sstories.json", c.baseURL, kind.Upstream())

	var ids []domain.StoryID
	if err := c.get(ctx, u, &ids); err != nil {
		return nil, fmt.Errorf("get %s stories: %w", kind.Upstream(), err)
	}
	return ids, nil
}

// Story returns a single story by id
func (c *Client) Story(ctx context.Context, id domain.StoryID) (domain.Story, error) {
	u := fmt.Sprintf("%s/v0/item/%d.json", c.baseURL, id)

	var item Item
	if err := c.get(ctx, u, &item); err != nil {
		return domain.Story{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return item.Story()
}

func (c *Client) get(ctx context.Context, u string, res any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; hnscope/1.0)")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, u)
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
