package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CacheBackend is the slice of the redis client the report cache needs.
type CacheBackend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	PublicReportKey(sellerID string) string
}

// Cache stores rendered public reports for a short TTL. Public reports are
// idempotent for a fixed input window, which makes them safe to serve stale
// for the few seconds the TTL allows.
type Cache struct {
	backend CacheBackend
	ttl     time.Duration
}

// NewCache wraps a cache backend. A nil backend or non-positive TTL yields a
// disabled cache; every method on a nil or disabled cache is a no-op.
func NewCache(backend CacheBackend, ttl time.Duration) *Cache {
	if backend == nil || ttl <= 0 {
		return nil
	}
	return &Cache{backend: backend, ttl: ttl}
}

// GetPublic returns the cached public report for the seller, if fresh.
func (c *Cache) GetPublic(ctx context.Context, sellerID uuid.UUID) (*PublicReport, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.backend.Get(ctx, c.backend.PublicReportKey(sellerID.String()))
	if err != nil || raw == "" {
		return nil, false
	}
	var report PublicReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, false
	}
	return &report, true
}

// SetPublic stores the public report. Failures are swallowed; the cache is an
// optimization, never a source of truth.
func (c *Cache) SetPublic(ctx context.Context, sellerID uuid.UUID, report *PublicReport) {
	if c == nil || report == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = c.backend.Set(ctx, c.backend.PublicReportKey(sellerID.String()), string(raw), c.ttl)
}
