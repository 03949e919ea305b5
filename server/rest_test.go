package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnscope/pkg/domain"
)

func TestStatusHandler(t *testing.T) {
	ts := testServer(t, Config{}, testDeps(staticFeed(domain.FeedResult{}), flagValues(nil)))

	code, body := get(t, ts.URL+"/api/v1/status")
	require.Equal(t, http.StatusOK, code)
	var status map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.NotEmpty(t, status["time"])
}

func TestFlagsHandler(t *testing.T) {
	deps := testDeps(staticFeed(domain.FeedResult{}), flagValues(map[string]string{domain.FlagScore: "true"}))
	deps.Overrides = overridesMock(map[string]string{domain.FlagScore: "true"})
	ts := testServer(t, Config{}, deps)

	code, body := get(t, ts.URL+"/api/v1/flags")
	require.Equal(t, http.StatusOK, code)

	var resp struct {
		Flags []struct {
			Name          string   `json:"name"`
			Kind          string   `json:"kind"`
			Default       string   `json:"default"`
			AllowedValues []string `json:"allowed_values"`
			Value         string   `json:"value"`
			Override      string   `json:"override"`
		} `json:"flags"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Flags, 4)

	assert.Equal(t, "score", resp.Flags[0].Name)
	assert.Equal(t, "boolean", resp.Flags[0].Kind)
	assert.Equal(t, "false", resp.Flags[0].Default)
	assert.Equal(t, "true", resp.Flags[0].Value)
	assert.Equal(t, "true", resp.Flags[0].Override)

	assert.Equal(t, "headerColor", resp.Flags[3].Name)
	assert.Equal(t, "is-dark", resp.Flags[3].Value)
	assert.Equal(t, []string{"is-dark", "is-primary", "is-white"}, resp.Flags[3].AllowedValues)
	assert.Empty(t, resp.Flags[3].Override)
}

func TestFeedAPIHandler(t *testing.T) {
	t.Run("stories", func(t *testing.T) {
		stories := showStories()
		stories[0].Time = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		stories[1].URL = ""
		ts := testServer(t, Config{}, testDeps(staticFeed(domain.FeedResult{Stories: stories}), flagValues(nil)))

		code, body := get(t, ts.URL+"/api/v1/feeds/show")
		require.Equal(t, http.StatusOK, code)

		var resp feedResponse
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Equal(t, domain.FeedShow, resp.Feed)
		assert.Equal(t, domain.ViewPopulated, resp.State)
		assert.Empty(t, resp.Error)
		require.Len(t, resp.Stories, 3)
		assert.Equal(t, "Show HN: First Project", resp.Stories[0].Title)
		require.NotNil(t, resp.Stories[0].Time)
		assert.Nil(t, resp.Stories[1].Time)
		assert.Empty(t, resp.Stories[1].URL)
		assert.Equal(t, "https://news.ycombinator.com/item?id=3", resp.Stories[2].CommentsURL)
		assert.NotContains(t, body, `"url":""`)
	})

	t.Run("list failure", func(t *testing.T) {
		ts := testServer(t, Config{}, testDeps(staticFeed(domain.FeedResult{Err: errors.New("api error")}), flagValues(nil)))

		code, body := get(t, ts.URL+"/api/v1/feeds/hot")
		require.Equal(t, http.StatusBadGateway, code)
		var resp feedResponse
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Equal(t, "api error", resp.Error)
		assert.Equal(t, domain.ViewErrorEmpty, resp.State)
		assert.Empty(t, resp.Stories)
		assert.Contains(t, body, `"stories":[]`)
	})

	t.Run("unknown feed", func(t *testing.T) {
		ts := testServer(t, Config{}, testDeps(staticFeed(domain.FeedResult{}), flagValues(nil)))
		code, body := get(t, ts.URL+"/api/v1/feeds/new")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, body, `unknown feed \"new\"`)
	})
}
