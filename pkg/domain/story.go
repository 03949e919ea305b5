package domain

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// DefaultPageLimit is the number of stories rendered per feed
const DefaultPageLimit = 20

// StoryID identifies a story in the upstream system
type StoryID int64

// Story represents a single upstream story record
type Story struct {
	ID           StoryID
	Title        string
	URL          string // empty for self-posts
	Score        int
	Author       string
	CommentCount int
	Text         string // self-post body as html, may be empty
	Time         time.Time
}

// HasURL reports whether the story links to an external page
func (s Story) HasURL() bool {
	return s.URL != ""
}

// CommentsURL returns the discussion page of the story on the given site
func (s Story) CommentsURL(site string) string {
	return fmt.Sprintf("%s/item?id=%d", strings.TrimRight(site, "/"), s.ID)
}

// AuthorURL returns the profile page of the story author on the given site
func (s Story) AuthorURL(site string) string {
	return AuthorURL(site, s.Author)
}

// AuthorURL returns the profile page for the given user on the given site
func AuthorURL(site, author string) string {
	return fmt.Sprintf("%s/user?id=%s", strings.TrimRight(site, "/"), author)
}

// FeedKind is one of the named story collections
type FeedKind string

// enum of supported feeds
const (
	FeedHot  FeedKind = "hot"
	FeedAsk  FeedKind = "ask"
	FeedShow FeedKind = "show"
)

// FeedKinds lists all feeds in navigation order
var FeedKinds = []FeedKind{FeedHot, FeedAsk, FeedShow}

// ParseFeedKind converts a name to FeedKind
func ParseFeedKind(name string) (FeedKind, error) {
	k := FeedKind(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(FeedKinds, k) {
		return "", fmt.Errorf("unknown feed %q", name)
	}
	return k, nil
}

// Upstream returns the name used by the upstream list endpoint
func (k FeedKind) Upstream() string {
	switch k {
	case FeedAsk:
		return "ask"
	case FeedShow:
		return "show"
	default:
		return "top"
	}
}

// Title returns the page title of the feed
func (k FeedKind) Title() string {
	switch k {
	case FeedAsk:
		return "Ask HN"
	case FeedShow:
		return "Show HN"
	default:
		return "Hot posts"
	}
}

// Path returns the page path of the feed
func (k FeedKind) Path() string {
	if k == FeedHot {
		return "/"
	}
	return "/" + string(k)
}

// FeedRequest describes a single feed fetch
type FeedRequest struct {
	Kind      FeedKind
	PageLimit int
}

// Limit returns the effective page limit
func (r FeedRequest) Limit() int {
	if r.PageLimit <= 0 {
		return DefaultPageLimit
	}
	return r.PageLimit
}

// ViewState is the observable state of a feed view
type ViewState string

// enum of view states
const (
	ViewLoading    ViewState = "loading"
	ViewPopulated  ViewState = "populated"
	ViewEmpty      ViewState = "empty"
	ViewErrorEmpty ViewState = "error"
)

// FeedResult is the outcome of a feed fetch. Err is set only when the id list
// itself could not be retrieved, in which case Stories is always empty.
type FeedResult struct {
	Kind    FeedKind
	Stories []Story
	Err     error
}

// All returns the stories in feed order
func (r FeedResult) All() iter.Seq[Story] {
	return slices.Values(r.Stories)
}

// State maps the result to a terminal view state
func (r FeedResult) State() ViewState {
	switch {
	case r.Err != nil:
		return ViewErrorEmpty
	case len(r.Stories) == 0:
		return ViewEmpty
	default:
		return ViewPopulated
	}
}
