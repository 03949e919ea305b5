package hn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnscope/pkg/domain"
)

func TestClient_StoryIDs(t *testing.T) {
	tests := []struct {
		kind domain.FeedKind
		path string
	}{
		{kind: domain.FeedHot, path: "/v0/topstories.json"},
		{kind: domain.FeedAsk, path: "/v0/askstories.json"},
		{kind: domain.FeedShow, path: "/v0/showstories.json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[3, 1, 2]`))
			}))
			defer ts.Close()

			ids, err := New(ts.URL+"/", time.Second).StoryIDs(context.Background(), tt.kind)
			require.NoError(t, err)
			assert.Equal(t, []domain.StoryID{3, 1, 2}, ids)
		})
	}

	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		ids, err := New(ts.URL, time.Second).StoryIDs(context.Background(), domain.FeedHot)
		require.Error(t, err)
		assert.Nil(t, ids)
		assert.Contains(t, err.Error(), "get top stories")
		assert.Contains(t, err.Error(), "unexpected status code 500")
	})

	t.Run("invalid json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer ts.Close()

		_, err := New(ts.URL, time.Second).StoryIDs(context.Background(), domain.FeedAsk)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer ts.Close()

		_, err := New(ts.URL, 10*time.Millisecond).StoryIDs(context.Background(), domain.FeedShow)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[1]`))
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(ts.URL, time.Second).StoryIDs(ctx, domain.FeedHot)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_Story(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v0/item/1.json":
			_, _ = w.Write([]byte(`{"id":1,"type":"story","by":"user1","time":1700000000,"title":"First Story",` +
				`"url":"https://example.com/1","score":100,"descendants":50}`))
		case "/v0/item/2.json":
			_, _ = w.Write([]byte(`{"id":2,"type":"story","by":"user2","title":"Ask HN: Question","text":"<p>body</p>",` +
				`"score":7,"descendants":3}`))
		case "/v0/item/3.json":
			_, _ = w.Write([]byte(`null`))
		case "/v0/item/4.json":
			_, _ = w.Write([]byte(`{}`))
		case "/v0/item/5.json":
			_, _ = w.Write([]byte(`{"id":5,"deleted":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()
	client := New(ts.URL, time.Second)

	t.Run("story with url", func(t *testing.T) {
		story, err := client.Story(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Story{
			ID:           1,
			Title:        "First Story",
			URL:          "https://example.com/1",
			Score:        100,
			Author:       "user1",
			CommentCount: 50,
			Time:         time.Unix(1700000000, 0).UTC(),
		}, story)
		assert.True(t, story.HasURL())
	})

	t.Run("self post without url", func(t *testing.T) {
		story, err := client.Story(context.Background(), 2)
		require.NoError(t, err)
		assert.Empty(t, story.URL)
		assert.False(t, story.HasURL())
		assert.Equal(t, "<p>body</p>", story.Text)
		assert.True(t, story.Time.IsZero())
	})

	for _, id := range []domain.StoryID{3, 4, 5} {
		t.Run("malformed", func(t *testing.T) {
			_, err := client.Story(context.Background(), id)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := client.Story(context.Background(), 42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Contains(t, err.Error(), "get item 42")
	})
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c := New("", time.Second)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, time.Second, c.client.Timeout)
}
