package service

import (
	"context"
	"sync"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

// MemorySnapshotCache is the in-process fallback snapshot cache used when no
// redis endpoint is configured. It holds a single snapshot.
type MemorySnapshotCache struct {
	mu       sync.RWMutex
	snapshot *model.RichListSnapshot
}

// NewMemorySnapshotCache builds an empty in-process cache.
func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{}
}

// RichListSnapshot returns the held snapshot, or nil when none is stored.
func (c *MemorySnapshotCache) RichListSnapshot(_ context.Context) (*model.RichListSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, nil
}

// StoreRichListSnapshot replaces the held snapshot.
func (c *MemorySnapshotCache) StoreRichListSnapshot(_ context.Context, snapshot *model.RichListSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snapshot
	return nil
}
