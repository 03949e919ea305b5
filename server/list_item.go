package server

import (
	"fmt"
	"net/http"

	"github.com/umputun/hnscope/pkg/domain"
)

// listItem is the presentation of a single story row
type listItem struct {
	ID            domain.StoryID
	Title         string
	URL           string // empty renders the title without a link
	Author        string
	AuthorURL     string // empty when the story has no author
	CommentsURL   string
	CommentsLabel string
	Score         int
	ShowScore     bool
}

// newListItem presents a story, the score flag is evaluated for every item
func newListItem(s domain.Story, flags FlagEvaluator, site string) listItem {
	res := listItem{
		ID:            s.ID,
		Title:         s.Title,
		URL:           s.URL,
		Author:        s.Author,
		CommentsURL:   s.CommentsURL(site),
		CommentsLabel: fmt.Sprintf("%d comments", s.CommentCount),
		Score:         s.Score,
		ShowScore:     flags.IsEnabled(domain.FlagScore),
	}
	if s.Author != "" {
		res.AuthorURL = s.AuthorURL(site)
	}
	return res
}

// navView drives the navigation bar
type navView struct {
	Active      domain.FeedKind
	HeaderColor string
	ShowAsk     bool
	ShowShow    bool
	LoggedIn    bool
	Username    string
	Beta        bool
	DevMode     bool
}

// pageView is the common data of all full pages
type pageView struct {
	Nav   navView
	Title string
}

// currentUser returns the logged in user of the request
func (s *Server) currentUser(r *http.Request) (domain.User, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return domain.User{}, false
	}
	return s.deps.Sessions.Get(c.Value)
}

func (s *Server) newPageView(r *http.Request, title string, active domain.FeedKind) pageView {
	nav := navView{
		Active:      active,
		HeaderColor: s.deps.Flags.Value(domain.FlagHeaderColor),
		ShowAsk:     s.deps.Flags.IsEnabled(domain.FlagAsk),
		ShowShow:    s.deps.Flags.IsEnabled(domain.FlagShow),
		DevMode:     s.cfg.DevMode && s.deps.Overrides != nil,
	}
	if user, ok := s.currentUser(r); ok {
		nav.LoggedIn, nav.Username, nav.Beta = true, user.Username, user.Beta
	}
	return pageView{Nav: nav, Title: title}
}
