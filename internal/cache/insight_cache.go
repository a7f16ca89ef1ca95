package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"surveyinsights/internal/model"
)

// DefaultTTL is how long a cached report lives
const DefaultTTL = 24 * time.Hour

// InsightCache stores synthesized reports keyed by survey fingerprint
type InsightCache interface {
	// Get returns nil, nil on a miss
	Get(ctx context.Context, fingerprint string) (*model.InsightReport, error)
	Set(ctx context.Context, report *model.InsightReport) error
}

type insightCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewInsightCache creates a Redis-backed insight cache. A non-positive ttl
// means DefaultTTL.
func NewInsightCache(client redis.Cmdable, ttl time.Duration) InsightCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &insightCache{
		client: client,
		ttl:    ttl,
	}
}

// ReportKey is the Redis key of a report
func ReportKey(fingerprint string) string {
	return fmt.Sprintf("insight:%s:report", fingerprint)
}

func (c *insightCache) Get(ctx context.Context, fingerprint string) (*model.InsightReport, error) {
	data, err := c.client.Get(ctx, ReportKey(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.InsightReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode cached report %s: %w", fingerprint, err)
	}
	return &report, nil
}

func (c *insightCache) Set(ctx context.Context, report *model.InsightReport) error {
	if report == nil || report.Fingerprint == "" {
		return errors.New("report without fingerprint")
	}
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ReportKey(report.Fingerprint), data, c.ttl).Err()
}
