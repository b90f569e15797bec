package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

var (
	richlistBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "croncoin",
		Subsystem: "richlist",
		Name:      "builds_total",
		Help:      "Count of rich-list scan attempts.",
	}, []string{"network", "status"})
	richlistBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "croncoin",
		Subsystem: "richlist",
		Name:      "build_duration_seconds",
		Help:      "Duration of full-chain rich-list scans.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 60, 300, 900},
	}, []string{"network", "status"})
	richlistCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "croncoin",
		Subsystem: "richlist",
		Name:      "cache_hits_total",
		Help:      "Count of rich-list requests served from the snapshot cache.",
	}, []string{"network"})
	richlistSnapshotHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "croncoin",
		Subsystem: "richlist",
		Name:      "snapshot_height",
		Help:      "Chain height of the latest rich-list snapshot.",
	}, []string{"network"})
)

// RichList tracks metrics for rich-list builds.
type RichList struct {
	network model.Network
}

// NewRichList constructs a metrics collector for rich-list scans.
func NewRichList(network model.Network) *RichList {
	if network == "" {
		network = "unknown"
	}
	return &RichList{network: network}
}

// ObserveBuild records the outcome of one full scan.
func (m RichList) ObserveBuild(err error, height int64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	richlistBuildsTotal.WithLabelValues(string(m.network), status).Inc()
	richlistBuildDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		richlistSnapshotHeight.WithLabelValues(string(m.network)).Set(float64(height))
	}
}

// ObserveCacheHit records a request served from the snapshot cache.
func (m RichList) ObserveCacheHit() {
	richlistCacheHitsTotal.WithLabelValues(string(m.network)).Inc()
}
