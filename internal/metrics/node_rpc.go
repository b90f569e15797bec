// Package metrics defines Prometheus collectors for the dashboard backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

var (
	nodeRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "croncoin",
		Subsystem: "node_rpc",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	nodeRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "croncoin",
		Subsystem: "node_rpc",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeRPC tracks metrics for RPC calls to the croncoind node.
type NodeRPC struct {
	network model.Network
}

// NewNodeRPC constructs a metrics collector for node RPC calls.
func NewNodeRPC(network model.Network) *NodeRPC {
	if network == "" {
		network = "unknown"
	}
	return &NodeRPC{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m NodeRPC) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeRPCRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	nodeRPCRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
