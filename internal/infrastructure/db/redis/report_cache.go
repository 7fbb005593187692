package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache stores dashboard aggregates as JSON under short-TTL keys.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get unmarshals the cached value for key into v. Returns false on a miss.
func (c *ReportCache) Get(ctx context.Context, key string, v any) (bool, error) {
	data, err := c.client.Get(ctx, "report:"+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("report cache get: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("report cache decode: %w", err)
	}
	return true, nil
}

// Set stores v as JSON under key for ttl.
func (c *ReportCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, "report:"+key, data, ttl).Err()
}
