// Package cache provides the Redis-backed dashboard summary cache.
// The cache is best-effort; every failure degrades to a direct database
// read.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"salespoint/internal/domain/reports"
	"salespoint/pkg/logger"
)

const (
	summaryKey = "salespoint:dashboard:summary"
	summaryTTL = 30 * time.Second
)

// SummaryCache implements reports.SummaryCache on Redis.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new summary cache.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client, ttl: summaryTTL}
}

// GetSummary returns the cached summary entries, if present.
func (c *SummaryCache) GetSummary(ctx context.Context) ([]reports.SummaryEntry, bool) {
	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(ctx, "summary cache read failed", "error", err)
		}
		return nil, false
	}

	var entries []reports.SummaryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Warn(ctx, "summary cache decode failed", "error", err)
		return nil, false
	}
	return entries, true
}

// SetSummary stores the summary entries with a short TTL.
func (c *SummaryCache) SetSummary(ctx context.Context, entries []reports.SummaryEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		logger.Warn(ctx, "summary cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, summaryKey, raw, c.ttl).Err(); err != nil {
		logger.Warn(ctx, "summary cache write failed", "error", err)
	}
}

// Ensure interface compliance
var _ reports.SummaryCache = (*SummaryCache)(nil)
