package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestNodeRPCRecords(t *testing.T) {
	m := NewNodeRPC("")
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, nodeRPCRequestsTotal.WithLabelValues("get_block_hash", "unknown", "success"), func() {
		m.Observe("get_block_hash", nil, start)
	}); inc != 1 {
		t.Fatalf("expected rpc call counter increment, got %v", inc)
	}

	if inc := delta(t, nodeRPCRequestsTotal.WithLabelValues("get_block_hash", "unknown", "error"), func() {
		m.Observe("get_block_hash", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected rpc error counter increment, got %v", inc)
	}
}

func TestRichListRecords(t *testing.T) {
	m := NewRichList("regtest")
	start := time.Now().Add(-time.Second)

	if inc := delta(t, richlistBuildsTotal.WithLabelValues("regtest", "success"), func() {
		m.ObserveBuild(nil, 42, start)
	}); inc != 1 {
		t.Fatalf("expected build counter increment, got %v", inc)
	}

	if got := testutil.ToFloat64(richlistSnapshotHeight.WithLabelValues("regtest")); got != 42 {
		t.Fatalf("expected snapshot height 42, got %v", got)
	}

	if inc := delta(t, richlistCacheHitsTotal.WithLabelValues("regtest"), m.ObserveCacheHit); inc != 1 {
		t.Fatalf("expected cache hit increment, got %v", inc)
	}

	m.ObserveBuild(errors.New("boom"), 0, start)
	if got := testutil.ToFloat64(richlistSnapshotHeight.WithLabelValues("regtest")); got != 42 {
		t.Fatalf("failed build must not move snapshot height, got %v", got)
	}
}

func TestWatcherRecords(t *testing.T) {
	m := NewWatcher("regtest")
	start := time.Now()

	if inc := delta(t, watcherBlocksTotal.WithLabelValues("regtest", "success"), func() {
		m.ObserveBlock(nil, 7, start)
	}); inc != 1 {
		t.Fatalf("expected watcher block increment, got %v", inc)
	}

	if got := testutil.ToFloat64(watcherBlockHeight.WithLabelValues("regtest")); got != 7 {
		t.Fatalf("expected watcher height 7, got %v", got)
	}
}
