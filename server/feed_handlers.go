package server

import (
	"log"
	"net/http"

	"github.com/umputun/hnscope/pkg/domain"
)

// feedPage is the data of a feed page shell
type feedPage struct {
	pageView
	Kind  domain.FeedKind
	State domain.ViewState
}

// feedItems is the data of the feed items fragment
type feedItems struct {
	Kind  domain.FeedKind
	State domain.ViewState
	Items []listItem
}

// Failed reports whether the list of stories could not be loaded
func (f feedItems) Failed() bool {
	return f.State == domain.ViewErrorEmpty
}

// feedPageHandler renders the page shell, stories are loaded by the items fragment
func (s *Server) feedPageHandler(kind domain.FeedKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := feedPage{pageView: s.newPageView(r, kind.Title(), kind), Kind: kind, State: domain.ViewLoading}
		s.renderPage(w, "feed", http.StatusOK, data)
	}
}

// feedItemsHandler fetches a feed and renders its list items
func (s *Server) feedItemsHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseFeedKind(r.PathValue("kind"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	res := s.deps.Feeds.Fetch(r.Context(), domain.FeedRequest{Kind: kind, PageLimit: s.cfg.PageLimit})
	if r.Context().Err() != nil {
		// client went away, nothing to render into
		log.Printf("[DEBUG] %s feed discarded: %v", kind, r.Context().Err())
		return
	}

	data := feedItems{Kind: kind, State: res.State()}
	for story := range res.All() {
		data.Items = append(data.Items, newListItem(story, s.deps.Flags, s.cfg.SiteURL))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "feed-items", data); err != nil {
		log.Printf("[ERROR] failed to render %s feed items: %v", kind, err)
	}
}
