package server

import (
	"log"
	"net/http"
	"time"

	"github.com/umputun/hnscope/pkg/domain"
)

// storyResponse is a story in API responses
type storyResponse struct {
	ID          domain.StoryID `json:"id"`
	Title       string         `json:"title"`
	URL         string         `json:"url,omitempty"`
	Score       int            `json:"score"`
	Author      string         `json:"by"`
	Comments    int            `json:"comments"`
	CommentsURL string         `json:"comments_url"`
	Time        *time.Time     `json:"time,omitempty"`
}

type feedResponse struct {
	Feed    domain.FeedKind  `json:"feed"`
	State   domain.ViewState `json:"state"`
	Stories []storyResponse  `json:"stories"`
	Error   string           `json:"error,omitempty"`
}

type flagResponse struct {
	domain.FlagDefinition
	Value    string `json:"value"`
	Override string `json:"override,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.cfg.Version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// flagsHandler returns current values of all flags
func (s *Server) flagsHandler(w http.ResponseWriter, r *http.Request) {
	var overrides map[string]string
	if s.deps.Overrides != nil {
		overrides = s.deps.Overrides.Overrides()
	}
	defs := s.deps.Flags.Definitions()
	values := s.deps.Flags.Values()
	res := make([]flagResponse, 0, len(defs))
	for _, d := range defs {
		res = append(res, flagResponse{FlagDefinition: d, Value: values[d.Name], Override: overrides[d.Name]})
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"flags": res})
}

// feedAPIHandler returns fetched stories of a feed
func (s *Server) feedAPIHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseFeedKind(r.PathValue("kind"))
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}

	res := s.deps.Feeds.Fetch(r.Context(), domain.FeedRequest{Kind: kind, PageLimit: s.cfg.PageLimit})
	resp := feedResponse{Feed: kind, State: res.State(), Stories: make([]storyResponse, 0, len(res.Stories))}
	for story := range res.All() {
		sr := storyResponse{
			ID:          story.ID,
			Title:       story.Title,
			URL:         story.URL,
			Score:       story.Score,
			Author:      story.Author,
			Comments:    story.CommentCount,
			CommentsURL: story.CommentsURL(s.cfg.SiteURL),
		}
		if !story.Time.IsZero() {
			ts := story.Time.UTC()
			sr.Time = &ts
		}
		resp.Stories = append(resp.Stories, sr)
	}

	code := http.StatusOK
	if res.Err != nil {
		log.Printf("[WARN] %s feed unavailable: %v", kind, res.Err)
		resp.Error = res.Err.Error()
		code = http.StatusBadGateway
	}
	renderJSON(w, r, code, resp)
}
