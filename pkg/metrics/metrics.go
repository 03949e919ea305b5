// Package metrics keeps prometheus collectors shared by feed fetching and flag evaluation.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/umputun/hnscope/pkg/domain"
)

// Metrics holds all collectors registered by the application
type Metrics struct {
	impressions  *prometheus.CounterVec
	feedFetches  *prometheus.CounterVec
	droppedItems *prometheus.CounterVec
}

// New creates collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		impressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hnscope_flag_impressions_total",
			Help: "The total number of feature flag evaluations",
		}, []string{"flag", "value", "targeted"}),

		feedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hnscope_feed_fetches_total",
			Help: "The total number of feed fetches by outcome",
		}, []string{"feed", "result"}),

		droppedItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hnscope_feed_dropped_items_total",
			Help: "Stories dropped from a feed because their detail fetch failed",
		}, []string{"feed"}),
	}
	reg.MustRegister(m.impressions, m.feedFetches, m.droppedItems)
	return m
}

// Report counts a flag impression, satisfies flags.ImpressionSink
func (m *Metrics) Report(imp domain.Impression) {
	m.impressions.WithLabelValues(imp.Name, imp.Value, strconv.FormatBool(imp.Targeted)).Inc()
}

// FeedFetched counts a feed fetch with its terminal state
func (m *Metrics) FeedFetched(kind domain.FeedKind, state domain.ViewState) {
	m.feedFetches.WithLabelValues(string(kind), string(state)).Inc()
}

// ItemsDropped counts stories dropped from a feed
func (m *Metrics) ItemsDropped(kind domain.FeedKind, n int) {
	if n <= 0 {
		return
	}
	m.droppedItems.WithLabelValues(string(kind)).Add(float64(n))
}
