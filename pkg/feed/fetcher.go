package feed

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/hnscope/pkg/domain"
)

//go:generate moq -out mocks/upstream.go -pkg mocks -skip-ensure -fmt goimports . Upstream
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// Upstream retrieves ranked story ids and story details
type Upstream interface {
	StoryIDs(ctx context.Context, kind domain.FeedKind) ([]domain.StoryID, error)
	Story(ctx context.Context, id domain.StoryID) (domain.Story, error)
}

// Recorder collects fetch outcomes
type Recorder interface {
	FeedFetched(kind domain.FeedKind, state domain.ViewState)
	ItemsDropped(kind domain.FeedKind, n int)
}

// StoryFetcher builds a feed page out of the upstream ranking and story details
type StoryFetcher struct {
	upstream Upstream
	recorder Recorder
}

// NewStoryFetcher makes a fetcher, recorder is optional
func NewStoryFetcher(upstream Upstream, recorder Recorder) *StoryFetcher {
	return &StoryFetcher{upstream: upstream, recorder: recorder}
}

// Fetch retrieves the feed's id list, truncates it to the page limit and loads all stories
// in parallel. Stories keep the upstream order, failed or malformed ones are dropped.
// A failed id list gives an empty result with Err set and issues no detail fetches.
func (f *StoryFetcher) Fetch(ctx context.Context, req domain.FeedRequest) domain.FeedResult {
	st := time.Now()
	res := domain.FeedResult{Kind: req.Kind}

	ids, err := f.upstream.StoryIDs(ctx, req.Kind)
	if err != nil {
		lgr.Printf("[WARN] failed to get %s feed: %v", req.Kind, err)
		res.Err = err
		f.record(res, 0)
		return res
	}

	if limit := req.Limit(); len(ids) > limit {
		ids = ids[:limit]
	}

	// slots are indexed by position in the ranking, not by completion order
	slots := make([]*domain.Story, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			story, err := f.upstream.Story(gctx, id)
			if err != nil {
				lgr.Printf("[DEBUG] drop story %d from %s feed: %v", id, req.Kind, err)
				return nil
			}
			slots[i] = &story
			return nil
		})
	}
	_ = g.Wait() // workers never fail, errors are dropped per item

	res.Stories = lo.FilterMap(slots, func(s *domain.Story, _ int) (domain.Story, bool) {
		if s == nil {
			return domain.Story{}, false
		}
		return *s, true
	})

	dropped := len(ids) - len(res.Stories)
	lgr.Printf("[DEBUG] fetched %s feed, %d stories, %d dropped in %v", req.Kind, len(res.Stories), dropped, time.Since(st))
	f.record(res, dropped)
	return res
}

func (f *StoryFetcher) record(res domain.FeedResult, dropped int) {
	if f.recorder == nil {
		return
	}
	f.recorder.FeedFetched(res.Kind, res.State())
	f.recorder.ItemsDropped(res.Kind, dropped)
}
