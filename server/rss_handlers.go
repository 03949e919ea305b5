package server

import (
	"log"
	"net/http"

	"github.com/umputun/hnscope/pkg/domain"
)

// rssHandler serves a feed as RSS
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseFeedKind(r.PathValue("kind"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	res := s.deps.Feeds.Fetch(r.Context(), domain.FeedRequest{Kind: kind, PageLimit: s.cfg.PageLimit})
	if res.Err != nil {
		log.Printf("[ERROR] failed to get %s stories for RSS: %v", kind, res.Err)
		http.Error(w, "Failed to generate RSS feed", http.StatusBadGateway)
		return
	}

	rss, err := s.generator.GenerateRSS(res)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
