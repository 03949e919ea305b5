package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hnscope/pkg/domain"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Report(domain.Impression{Name: "score", Value: "true", Targeted: true})
	m.Report(domain.Impression{Name: "score", Value: "true", Targeted: true})
	m.Report(domain.Impression{Name: "ask", Value: "false"})
	m.FeedFetched(domain.FeedHot, domain.ViewPopulated)
	m.FeedFetched(domain.FeedAsk, domain.ViewErrorEmpty)
	m.ItemsDropped(domain.FeedHot, 3)
	m.ItemsDropped(domain.FeedHot, 0)

	assert.InDelta(t, 2, testutil.ToFloat64(m.impressions.WithLabelValues("score", "true", "true")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.impressions.WithLabelValues("ask", "false", "false")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.feedFetches.WithLabelValues("hot", "populated")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.feedFetches.WithLabelValues("ask", "error")), 0.001)
	assert.InDelta(t, 3, testutil.ToFloat64(m.droppedItems.WithLabelValues("hot")), 0.001)

	expected := `
# HELP hnscope_feed_dropped_items_total Stories dropped from a feed because their detail fetch failed
# TYPE hnscope_feed_dropped_items_total counter
hnscope_feed_dropped_items_total{feed="hot"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "hnscope_feed_dropped_items_total"))
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
