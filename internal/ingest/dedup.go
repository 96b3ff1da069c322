// Package ingest polls the shared guest-request mailbox and feeds
// unread messages into the processing pipeline one at a time.
package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// dedupTTL is how long a seen message ID is remembered. The
	// durable dedup record is the mailbox UNREAD label; this cache
	// only absorbs overlapping polls.
	dedupTTL = 24 * time.Hour

	keyPrefix = "sric:seen:"

	// memoryFilterCap bounds the in-process fallback cache.
	memoryFilterCap = 1024
)

// Filter tracks which message IDs have already been handed to the
// processor. Best-effort: a restart or cache eviction may let a
// message through again, and the pipeline must tolerate that.
type Filter interface {
	IsNew(ctx context.Context, messageID string) (bool, error)
}

// RedisFilter remembers seen message IDs in Redis so they survive
// process restarts.
type RedisFilter struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisFilter(rdb *redis.Client) *RedisFilter {
	return &RedisFilter{
		rdb: rdb,
		ttl: dedupTTL,
	}
}

// IsNew returns true if the message ID has NOT been seen before.
// If true, the ID is marked as seen atomically (SETNX).
func (f *RedisFilter) IsNew(ctx context.Context, messageID string) (bool, error) {
	key := keyPrefix + messageID
	set, err := f.rdb.SetNX(ctx, key, 1, f.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup SETNX: %w", err)
	}
	return set, nil
}

// MemoryFilter is the in-process fallback when no Redis is configured.
// Bounded FIFO eviction; process-local only.
type MemoryFilter struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	order []string
	cap   int
}

func NewMemoryFilter() *MemoryFilter {
	return &MemoryFilter{
		seen: make(map[string]struct{}),
		cap:  memoryFilterCap,
	}
}

func (f *MemoryFilter) IsNew(_ context.Context, messageID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.seen[messageID]; ok {
		return false, nil
	}

	f.seen[messageID] = struct{}{}
	f.order = append(f.order, messageID)
	if len(f.order) > f.cap {
		oldest := f.order[0]
		f.order = f.order[1:]
		delete(f.seen, oldest)
	}
	return true, nil
}
