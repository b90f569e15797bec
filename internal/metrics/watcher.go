package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

var (
	watcherBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "croncoin",
		Subsystem: "chain_watcher",
		Name:      "blocks_total",
		Help:      "Count of new blocks pushed to the recent-blocks feed.",
	}, []string{"network", "status"})
	watcherBlockHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "croncoin",
		Subsystem: "chain_watcher",
		Name:      "last_height",
		Help:      "Last chain height observed by the watcher.",
	}, []string{"network"})
)

// Watcher tracks metrics for the chain watcher loop.
type Watcher struct {
	network model.Network
}

// NewWatcher constructs a metrics collector for the chain watcher.
func NewWatcher(network model.Network) *Watcher {
	if network == "" {
		network = "unknown"
	}
	return &Watcher{network: network}
}

// ObserveBlock records one observed block and the height reached.
func (m Watcher) ObserveBlock(err error, height int64, _ time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	watcherBlocksTotal.WithLabelValues(string(m.network), status).Inc()
	if err == nil {
		watcherBlockHeight.WithLabelValues(string(m.network)).Set(float64(height))
	}
}
