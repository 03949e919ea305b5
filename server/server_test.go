package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/umputun/hnscope/pkg/auth"
	"github.com/umputun/hnscope/pkg/domain"
	"github.com/umputun/hnscope/server/mocks"
)

// flagValues makes a flags mock answering from a mutable map
func flagValues(values map[string]string) *mocks.FlagsMock {
	value := func(name string) string {
		if v, ok := values[name]; ok {
			return v
		}
		if name == domain.FlagHeaderColor {
			return "is-dark"
		}
		return "false"
	}
	return &mocks.FlagsMock{
		IsEnabledFunc:   func(name string) bool { return values[name] == "true" },
		ValueFunc:       value,
		DefinitionsFunc: func() []domain.FlagDefinition { return domain.DefaultFlags() },
		ValuesFunc: func() map[string]string {
			res := map[string]string{}
			for _, d := range domain.DefaultFlags() {
				res[d.Name] = value(d.Name)
			}
			return res
		},
	}
}

func staticFeed(res domain.FeedResult) *mocks.FeedFetcherMock {
	return &mocks.FeedFetcherMock{
		FetchFunc: func(ctx context.Context, req domain.FeedRequest) domain.FeedResult {
			res.Kind = req.Kind
			return res
		},
	}
}

func testUsers() *auth.Users {
	return auth.NewUsers([]auth.Account{
		{Username: "normaluser", Password: "normaluser"},
		{Username: "betauser", Password: "betauser", Beta: true},
	})
}

func testDeps(feeds FeedFetcher, flags Flags) Deps {
	return Deps{Feeds: feeds, Flags: flags, Users: testUsers(), Sessions: auth.NewSessions(0)}
}

func testServer(t *testing.T, cfg Config, deps Deps) *httptest.Server {
	t.Helper()
	cfg.Version = "test"
	ts := httptest.NewServer(New(cfg, deps).Handler())
	t.Cleanup(ts.Close)
	return ts
}

// noRedirectClient returns redirects instead of following them
func noRedirectClient() *http.Client {
	return &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
}

func get(t *testing.T, url string, cookies ...*http.Cookie) (code int, body string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func parseHTML(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// findAll returns element nodes matching the predicate in document order
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var res []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			res = append(res, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return res
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func texts(nodes []*html.Node) []string {
	res := make([]string, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, textOf(n))
	}
	return res
}

func TestServer_New(t *testing.T) {
	srv := New(Config{Version: "1.0.0"}, testDeps(staticFeed(domain.FeedResult{}), flagValues(nil)))
	require.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.cfg.Version)
	assert.Equal(t, domain.DefaultPageLimit, srv.cfg.PageLimit)
	assert.Equal(t, "https://news.ycombinator.com", srv.cfg.SiteURL)
	assert.NotNil(t, srv.deps.Sessions)
	assert.Contains(t, srv.pageTemplates, "feed")
	assert.Contains(t, srv.pageTemplates, "login")
	assert.Contains(t, srv.pageTemplates, "overrides")
	assert.NotNil(t, srv.templates.Lookup("list-item"))
	assert.NotNil(t, srv.templates.Lookup("feed-items"))
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := New(Config{Listen: fmt.Sprintf("127.0.0.1:%d", port), Timeout: 5 * time.Second, Version: "1.0.0"},
		testDeps(staticFeed(domain.FeedResult{}), flagValues(nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/ping", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Middleware(t *testing.T) {
	ts := testServer(t, Config{}, testDeps(staticFeed(domain.FeedResult{}), flagValues(nil)))

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "hnscope", resp.Header.Get("App-Name"))
	assert.Equal(t, "test", resp.Header.Get("App-Version"))

	code, _ := get(t, ts.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_Metrics(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "hnscope_test_total", Help: "test"})
		reg.MustRegister(counter)
		counter.Inc()

		deps := testDeps(staticFeed(domain.FeedResult{}), flagValues(nil))
		deps.Gatherer = reg
		ts := testServer(t, Config{}, deps)

		code, body := get(t, ts.URL+"/metrics")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "hnscope_test_total 1")
	})

	t.Run("not registered", func(t *testing.T) {
		ts := testServer(t, Config{}, testDeps(staticFeed(domain.FeedResult{}), flagValues(nil)))
		code, _ := get(t, ts.URL+"/metrics")
		assert.Equal(t, http.StatusNotFound, code)
	})
}
