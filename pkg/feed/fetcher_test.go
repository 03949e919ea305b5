package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnscope/pkg/domain"
	"github.com/umputun/hnscope/pkg/feed/mocks"
	"github.com/umputun/hnscope/pkg/hn"
)

func storyFor(id domain.StoryID) domain.Story {
	return domain.Story{
		ID:           id,
		Title:        fmt.Sprintf("Story %d", id),
		URL:          fmt.Sprintf("https://example.com/%d", id),
		Score:        100,
		Author:       fmt.Sprintf("user%d", id),
		CommentCount: 50,
	}
}

func idsUpTo(n int) []domain.StoryID {
	res := make([]domain.StoryID, n)
	for i := range res {
		res[i] = domain.StoryID(i + 1)
	}
	return res
}

func titles(stories []domain.Story) []string {
	res := make([]string, 0, len(stories))
	for _, s := range stories {
		res = append(res, s.Title)
	}
	return res
}

func TestStoryFetcher_Fetch_PreservesOrder(t *testing.T) {
	ids := []domain.StoryID{5, 4, 3, 2, 1}
	upstream := &mocks.UpstreamMock{
		StoryIDsFunc: func(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
			return ids, nil
		},
		StoryFunc: func(ctx context.Context, id domain.StoryID) (domain.Story, error) {
			// first ranked story resolves last
			time.Sleep(time.Duration(id) * 10 * time.Millisecond)
			return storyFor(id), nil
		},
	}

	res := NewStoryFetcher(upstream, nil).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedHot})
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"Story 5", "Story 4", "Story 3", "Story 2", "Story 1"}, titles(res.Stories))
	assert.Equal(t, domain.ViewPopulated, res.State())

	var iterated []domain.StoryID
	for s := range res.All() {
		iterated = append(iterated, s.ID)
	}
	assert.Equal(t, ids, iterated)
}

func TestStoryFetcher_Fetch_Cardinality(t *testing.T) {
	tests := []struct {
		name      string
		ids       int
		pageLimit int
		want      int
	}{
		{name: "empty feed", ids: 0, want: 0},
		{name: "fewer than limit", ids: 3, want: 3},
		{name: "exactly limit", ids: 20, want: 20},
		{name: "more than limit", ids: 30, want: 20},
		{name: "custom limit", ids: 30, pageLimit: 5, want: 5},
		{name: "negative limit uses default", ids: 25, pageLimit: -1, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &mocks.UpstreamMock{
				StoryIDsFunc: func(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
					return idsUpTo(tt.ids), nil
				},
				StoryFunc: func(ctx context.Context, id domain.StoryID) (domain.Story, error) {
					return storyFor(id), nil
				},
			}

			res := NewStoryFetcher(upstream, nil).Fetch(context.Background(),
				domain.FeedRequest{Kind: domain.FeedAsk, PageLimit: tt.pageLimit})
			require.NoError(t, res.Err)
			assert.Len(t, res.Stories, tt.want)
			assert.Len(t, upstream.StoryIDsCalls(), 1)
			assert.Len(t, upstream.StoryCalls(), tt.want)
			assert.Equal(t, domain.FeedAsk, upstream.StoryIDsCalls()[0].Kind)
			if tt.want > 0 {
				assert.Equal(t, domain.StoryID(1), res.Stories[0].ID)
				assert.Equal(t, domain.StoryID(tt.want), res.Stories[tt.want-1].ID)
			} else {
				assert.Equal(t, domain.ViewEmpty, res.State())
			}
		})
	}
}

func TestStoryFetcher_Fetch_ListFailure(t *testing.T) {
	upstream := &mocks.UpstreamMock{
		StoryIDsFunc: func(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
			return nil, errors.New("api error")
		},
		StoryFunc: func(ctx context.Context, id domain.StoryID) (domain.Story, error) {
			t.Fatal("detail fetch must not be issued")
			return domain.Story{}, nil
		},
	}
	recorder := &mocks.RecorderMock{
		FeedFetchedFunc:  func(kind domain.FeedKind, state domain.ViewState) {},
		ItemsDroppedFunc: func(kind domain.FeedKind, n int) {},
	}

	res := NewStoryFetcher(upstream, recorder).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedShow})
	require.Error(t, res.Err)
	assert.Empty(t, res.Stories)
	assert.Equal(t, domain.ViewErrorEmpty, res.State())
	assert.Equal(t, domain.FeedShow, res.Kind)
	assert.Empty(t, upstream.StoryCalls())

	require.Len(t, recorder.FeedFetchedCalls(), 1)
	assert.Equal(t, domain.ViewErrorEmpty, recorder.FeedFetchedCalls()[0].State)
}

func TestStoryFetcher_Fetch_PartialFailure(t *testing.T) {
	upstream := &mocks.UpstreamMock{
		StoryIDsFunc: func(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
			return []domain.StoryID{1, 2, 3, 4}, nil
		},
		StoryFunc: func(ctx context.Context, id domain.StoryID) (domain.Story, error) {
			switch id {
			case 2:
				return domain.Story{}, errors.New("network error")
			case 4:
				return domain.Story{}, hn.ErrMalformed
			}
			return storyFor(id), nil
		},
	}
	recorder := &mocks.RecorderMock{
		FeedFetchedFunc:  func(kind domain.FeedKind, state domain.ViewState) {},
		ItemsDroppedFunc: func(kind domain.FeedKind, n int) {},
	}

	res := NewStoryFetcher(upstream, recorder).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedHot})
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"Story 1", "Story 3"}, titles(res.Stories))

	require.Len(t, recorder.ItemsDroppedCalls(), 1)
	assert.Equal(t, 2, recorder.ItemsDroppedCalls()[0].N)
	assert.Equal(t, domain.ViewPopulated, recorder.FeedFetchedCalls()[0].State)
}

func TestStoryFetcher_Fetch_AllDetailsFail(t *testing.T) {
	upstream := &mocks.UpstreamMock{
		StoryIDsFunc: func(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
			return []domain.StoryID{1, 2}, nil
		},
		StoryFunc: func(ctx context.Context, id domain.StoryID) (domain.Story, error) {
			return domain.Story{}, errors.New("boom")
		},
	}

	res := NewStoryFetcher(upstream, nil).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedHot})
	require.NoError(t, res.Err, "detail failures are not a feed failure")
	assert.Empty(t, res.Stories)
	assert.Equal(t, domain.ViewEmpty, res.State())
}

func TestStoryFetcher_Fetch_KeepsMissingURL(t *testing.T) {
	upstream := &mocks.UpstreamMock{
		StoryIDsFunc: func(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
			return []domain.StoryID{1}, nil
		},
		StoryFunc: func(ctx context.Context, id domain.StoryID) (domain.Story, error) {
			return domain.Story{ID: 1, Title: "Story without URL", Score: 100, Author: "user1", CommentCount: 50}, nil
		},
	}

	res := NewStoryFetcher(upstream, nil).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedHot})
	require.Len(t, res.Stories, 1)
	assert.Equal(t, "Story without URL", res.Stories[0].Title)
	assert.Empty(t, res.Stories[0].URL)
}

func TestStoryFetcher_Fetch_Concurrent(t *testing.T) {
	var inFlight, maxInFlight int32
	release := make(chan struct{})
	var once sync.Once

	upstream := &mocks.UpstreamMock{
		StoryIDsFunc: func(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error) {
			return idsUpTo(10), nil
		},
		StoryFunc: func(ctx context.Context, id domain.StoryID) (domain.Story, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				cur := atomic.LoadInt32(&maxInFlight)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInFlight, cur, n) {
					break
				}
			}
			if n == 10 {
				once.Do(func() { close(release) })
			}
			select {
			case <-release:
			case <-time.After(time.Second):
			}
			atomic.AddInt32(&inFlight, -1)
			return storyFor(id), nil
		},
	}

	res := NewStoryFetcher(upstream, nil).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedHot})
	assert.Len(t, res.Stories, 10)
	assert.Equal(t, int32(10), atomic.LoadInt32(&maxInFlight), "all detail fetches should run at once")
}

// upstreamServer emulates the story api, counting every request
func upstreamServer(t *testing.T, list string, ids []int, items map[int]map[string]any) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v0/"+list+"stories.json" {
			_ = json.NewEncoder(w).Encode(ids)
			return
		}
		idStr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v0/item/"), ".json")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if item, ok := items[id]; ok {
			_ = json.NewEncoder(w).Encode(item)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": id, "title": fmt.Sprintf("Show HN: Project %d", id), "url": fmt.Sprintf("https://example.com/project%d", id),
			"score": 100, "by": fmt.Sprintf("user%d", id), "descendants": 50,
		})
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func TestStoryFetcher_WithClient(t *testing.T) {
	t.Run("show feed", func(t *testing.T) {
		items := map[int]map[string]any{
			1: {"id": 1, "title": "Show HN: First Project", "url": "https://github.com/user1/project1", "score": 100, "by": "user1", "descendants": 50},
			2: {"id": 2, "title": "Show HN: Second Project", "url": "https://github.com/user2/project2", "score": 200, "by": "user2", "descendants": 75},
			3: {"id": 3, "title": "Show HN: Third Project", "url": "https://github.com/user3/project3", "score": 300, "by": "user3", "descendants": 25},
		}
		ts, calls := upstreamServer(t, "show", []int{1, 2, 3}, items)

		res := NewStoryFetcher(hn.New(ts.URL, time.Second), nil).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedShow})
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"Show HN: First Project", "Show HN: Second Project", "Show HN: Third Project"}, titles(res.Stories))
		assert.Equal(t, "https://github.com/user2/project2", res.Stories[1].URL)
		assert.Equal(t, "user3", res.Stories[2].Author)
		assert.Equal(t, 25, res.Stories[2].CommentCount)
		assert.Equal(t, int32(4), atomic.LoadInt32(calls))
	})

	t.Run("limits to twenty", func(t *testing.T) {
		ids := make([]int, 30)
		for i := range ids {
			ids[i] = i + 1
		}
		ts, calls := upstreamServer(t, "show", ids, nil)

		res := NewStoryFetcher(hn.New(ts.URL, time.Second), nil).Fetch(context.Background(),
			domain.FeedRequest{Kind: domain.FeedShow, PageLimit: domain.DefaultPageLimit})
		require.NoError(t, res.Err)
		assert.Len(t, res.Stories, 20)
		assert.Equal(t, int32(21), atomic.LoadInt32(calls), "1 list call and 20 detail calls")
	})

	t.Run("malformed items dropped", func(t *testing.T) {
		items := map[int]map[string]any{2: {}}
		ts, _ := upstreamServer(t, "top", []int{1, 2, 3}, items)

		res := NewStoryFetcher(hn.New(ts.URL, time.Second), nil).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedHot})
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"Show HN: Project 1", "Show HN: Project 3"}, titles(res.Stories))
	})

	t.Run("list unavailable", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		res := NewStoryFetcher(hn.New(ts.URL, time.Second), nil).Fetch(context.Background(), domain.FeedRequest{Kind: domain.FeedAsk})
		require.Error(t, res.Err)
		assert.Empty(t, res.Stories)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
