package reconciliation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/config"
	redispkg "github.com/arogyahq/arogya_backend/pkg/redis"
)

// projectionCache holds reconciliation projections in Redis with a TTL.
// A nil or disabled cache degrades to recomputing every call; a cache read
// failure is treated as a miss, never as an error.
type projectionCache struct {
	rc  *redispkg.Client
	ttl time.Duration
}

func newProjectionCache(rc *redispkg.Client, cfg *config.Config) *projectionCache {
	if rc == nil || !cfg.Reconciliation.CacheEnabled {
		return &projectionCache{}
	}
	ttl := time.Duration(cfg.Reconciliation.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &projectionCache{rc: rc, ttl: ttl}
}

func (c *projectionCache) enabled() bool { return c.rc != nil }

func pendingKey(id uuid.UUID) string { return fmt.Sprintf("recon:pending:%s", id) }
func agingKey(id uuid.UUID) string   { return fmt.Sprintf("recon:aging:%s", id) }
func summaryKey(id uuid.UUID) string { return fmt.Sprintf("recon:summary:%s", id) }

func (c *projectionCache) getPending(ctx context.Context, id uuid.UUID) (int64, bool) {
	if !c.enabled() {
		return 0, false
	}
	v, err := c.rc.Get(ctx, pendingKey(id)).Int64()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *projectionCache) setPending(ctx context.Context, id uuid.UUID, v int64) {
	if !c.enabled() {
		return
	}
	c.rc.Set(ctx, pendingKey(id), v, c.ttl)
}

func (c *projectionCache) getAging(ctx context.Context, id uuid.UUID) ([]AgingBucket, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.rc.Get(ctx, agingKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var buckets []AgingBucket
	if err := json.Unmarshal(raw, &buckets); err != nil {
		return nil, false
	}
	return buckets, true
}

func (c *projectionCache) setAging(ctx context.Context, id uuid.UUID, buckets []AgingBucket) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(buckets)
	if err != nil {
		return
	}
	c.rc.Set(ctx, agingKey(id), raw, c.ttl)
}

func (c *projectionCache) getSummary(ctx context.Context, id uuid.UUID) (*FacilitySummary, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.rc.Get(ctx, summaryKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var sum FacilitySummary
	if err := json.Unmarshal(raw, &sum); err != nil {
		return nil, false
	}
	return &sum, true
}

func (c *projectionCache) setSummary(ctx context.Context, id uuid.UUID, sum *FacilitySummary) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(sum)
	if err != nil {
		return
	}
	c.rc.Set(ctx, summaryKey(id), raw, c.ttl)
}

func (c *projectionCache) invalidate(ctx context.Context, id uuid.UUID) {
	if !c.enabled() {
		return
	}
	c.rc.Del(ctx, pendingKey(id), agingKey(id), summaryKey(id))
}
