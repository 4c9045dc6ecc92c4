// Package history provides a Redis-backed analysis history store.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	"jobmatch_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultTTL is used when a non-positive TTL is given.
	DefaultTTL = 24 * time.Hour
	// DefaultPrefix is used when an empty prefix is given.
	DefaultPrefix = "analysis"
)

// HistoryRedis implements usecase.HistoryRepository using Redis.
// Records expire after ttl.
type HistoryRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.HistoryRepository = (*HistoryRedis)(nil)

// NewHistoryRedis creates a new HistoryRedis instance.
func NewHistoryRedis(client *redis.Client, prefix string, ttl time.Duration) *HistoryRedis {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &HistoryRedis{client: client, prefix: prefix, ttl: ttl}
}

// recordKey returns the Redis key for a record.
func (r *HistoryRedis) recordKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Save stores a record under its ID.
func (r *HistoryRedis) Save(ctx context.Context, record *entity.AnalysisRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}
	return r.client.Set(ctx, r.recordKey(record.ID), data, r.ttl).Err()
}

// FindByID retrieves a record by its ID.
func (r *HistoryRedis) FindByID(ctx context.Context, id string) (*entity.AnalysisRecord, error) {
	data, err := r.client.Get(ctx, r.recordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	var record entity.AnalysisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis record: %w", err)
	}
	return &record, nil
}
