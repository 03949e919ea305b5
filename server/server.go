package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/hnscope/pkg/auth"
	"github.com/umputun/hnscope/pkg/domain"
	"github.com/umputun/hnscope/pkg/feed"
)

//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher
//go:generate moq -out mocks/flags.go -pkg mocks -skip-ensure -fmt goimports . Flags
//go:generate moq -out mocks/overrides.go -pkg mocks -skip-ensure -fmt goimports . Overrides
//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator

//go:embed templates
var templateFS embed.FS

const sessionCookie = "hnscope_session"

// Server represents HTTP server instance
type Server struct {
	cfg  Config
	deps Deps

	generator     *feed.Generator
	templates     *template.Template
	pageTemplates map[string]*template.Template

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Config holds server settings
type Config struct {
	Listen    string
	Timeout   time.Duration
	Version   string
	Debug     bool
	DevMode   bool   // enables flag overrides page
	BaseURL   string // where the app is served, used in rss
	SiteURL   string // story site, used for author and comments links
	PageLimit int
}

// Deps are collaborators of the server, Overrides and Gatherer are optional
type Deps struct {
	Feeds     FeedFetcher
	Flags     Flags
	Overrides Overrides
	Users     Authenticator
	Sessions  *auth.Sessions
	Gatherer  prometheus.Gatherer
}

// FeedFetcher loads stories of a feed
type FeedFetcher interface {
	Fetch(ctx context.Context, req domain.FeedRequest) domain.FeedResult
}

// FlagEvaluator is the read side of feature flags used for rendering
type FlagEvaluator interface {
	IsEnabled(name string) bool
	Value(name string) string
}

// Flags evaluates flags and lists their definitions
type Flags interface {
	FlagEvaluator
	Definitions() []domain.FlagDefinition
	Values() map[string]string
}

// Overrides forces flag values in dev mode
type Overrides interface {
	SetOverride(name, value string) error
	ClearOverride(name string)
	Overrides() map[string]string
}

// Authenticator checks mock account credentials
type Authenticator interface {
	Authenticate(username, password string) (domain.User, error)
	Lookup(username string) (auth.Account, bool)
	Accounts() []auth.Account
}

// New initializes a new server instance
func New(cfg Config, deps Deps) *Server {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = domain.DefaultPageLimit
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "https://news.ycombinator.com"
	}
	if deps.Sessions == nil {
		deps.Sessions = auth.NewSessions(0)
	}

	s := &Server{
		cfg:       cfg,
		deps:      deps,
		generator: feed.NewGenerator(cfg.BaseURL, cfg.SiteURL),
		router:    routegroup.New(http.NewServeMux()),
	}
	s.templates, s.pageTemplates = mustLoadTemplates()

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Timeout,
		WriteTimeout:      s.cfg.Timeout,
		IdleTimeout:       s.cfg.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("hnscope", "umputun", s.cfg.Version))
	s.router.Use(rest.Ping)

	if s.cfg.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// pages
	s.router.HandleFunc("GET /{$}", s.feedPageHandler(domain.FeedHot))
	s.router.HandleFunc("GET /ask", s.feedPageHandler(domain.FeedAsk))
	s.router.HandleFunc("GET /show", s.feedPageHandler(domain.FeedShow))
	s.router.HandleFunc("GET /feeds/{kind}/items", s.feedItemsHandler)

	// login
	s.router.HandleFunc("GET /login", s.loginPageHandler)
	s.router.HandleFunc("POST /login", s.loginHandler)
	s.router.HandleFunc("POST /logout", s.logoutHandler)

	// flag overrides, dev mode only
	s.router.Group().Route(func(r *routegroup.Bundle) {
		r.Use(s.devOnly)
		r.HandleFunc("GET /dev/overrides", s.overridesPageHandler)
		r.HandleFunc("POST /dev/overrides", s.overridesHandler)
	})

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /flags", s.flagsHandler)
		r.HandleFunc("GET /feeds/{kind}", s.feedAPIHandler)
	})

	// RSS routes
	s.router.HandleFunc("GET /rss/{kind}", s.rssHandler)

	if s.deps.Gatherer != nil {
		s.router.Handle("GET /metrics", promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{}))
	}
}

// devOnly hides routes unless dev mode is on
func (s *Server) devOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.DevMode || s.deps.Overrides == nil {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// mustLoadTemplates parses shared components and one template set per page
func mustLoadTemplates() (components *template.Template, pages map[string]*template.Template) {
	components = template.Must(template.New("").ParseFS(templateFS, "templates/components/*.html"))

	pages = map[string]*template.Template{}
	entries, err := templateFS.ReadDir("templates/pages")
	if err != nil {
		panic(fmt.Sprintf("read page templates: %v", err))
	}
	for _, e := range entries {
		name := e.Name()
		tmpl := template.Must(template.Must(components.Clone()).ParseFS(templateFS, "templates/base.html", "templates/pages/"+name))
		pages[strings.TrimSuffix(name, ".html")] = tmpl
	}
	return components, pages
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, page string, code int, data any) {
	tmpl, ok := s.pageTemplates[page]
	if !ok {
		log.Printf("[ERROR] template %s not found", page)
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("[ERROR] failed to render page %s: %v", page, err)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
