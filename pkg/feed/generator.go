package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/hnscope/pkg/domain"
)

// Generator creates RSS feeds from fetched stories
type Generator struct {
	baseURL string
	siteURL string
	policy  *bluemonday.Policy
	now     func() time.Time
}

// NewGenerator creates a new feed generator. baseURL is where the app is served,
// siteURL is used for comments and author links.
func NewGenerator(baseURL, siteURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		siteURL: strings.TrimRight(siteURL, "/"),
		policy:  bluemonday.UGCPolicy(),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from a fetch result
func (g *Generator) GenerateRSS(res domain.FeedResult) (string, error) {
	rssItems := make([]*RSSItem, 0, len(res.Stories))
	for s := range res.All() {
		rssItems = append(rssItems, g.convertToRSSItem(s))
	}

	feed := &RSS{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "hnscope - " + res.Kind.Title(),
			Link:          g.baseURL + res.Kind.Path(),
			Description:   fmt.Sprintf("%s, first %d stories", res.Kind.Title(), len(rssItems)),
			Language:      "en",
			Generator:     "hnscope",
			SelfLink:      &AtomLink{Href: fmt.Sprintf("%s/rss/%s", g.baseURL, res.Kind), Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a story to an RSS item, self-posts link to their comments page
func (g *Generator) convertToRSSItem(s domain.Story) *RSSItem {
	comments := s.CommentsURL(g.siteURL)
	link := s.URL
	if !s.HasURL() {
		link = comments
	}

	desc := fmt.Sprintf("%d points by %s, %d comments", s.Score, s.Author, s.CommentCount)
	if s.Text != "" {
		desc += "\n\n" + g.policy.Sanitize(s.Text)
	}

	item := &RSSItem{
		Title:       s.Title,
		Link:        link,
		GUID:        RSSGUID{Value: comments, IsPermaLink: true},
		Description: desc,
		Author:      s.Author,
		Comments:    comments,
	}
	if !s.Time.IsZero() {
		item.PubDate = s.Time.Format(time.RFC1123Z)
	}
	return item
}
