package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nftsub_backend/platform/apperr"

	"github.com/redis/go-redis/v9"
)

const merchantNotFoundMessage = "Merchant not found"

const (
	// merchantKeyPrefix namespaces one entry per merchant.
	merchantKeyPrefix = "merchant:"
	// merchantSetKey holds every known merchant ID so List needs no key scan.
	merchantSetKey = "merchants:all"
)

// Redis implements Store on a durable Redis backend.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed merchant store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Compile-time check that Redis implements Store.
var _ Store = (*Redis)(nil)

func merchantKey(merchantID string) string {
	return merchantKeyPrefix + merchantID
}

// Put stores the record and adds its ID to the global merchant set.
func (r *Redis) Put(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal merchant record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, merchantKey(record.MerchantID), payload, 0)
	pipe.SAdd(ctx, merchantSetKey, record.MerchantID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put merchant %s: %w", record.MerchantID, err)
	}

	return nil
}

// Get retrieves a record by merchant ID.
func (r *Redis) Get(ctx context.Context, merchantID string) (Record, error) {
	payload, err := r.client.Get(ctx, merchantKey(merchantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, apperr.NotFound(merchantNotFoundMessage)
		}
		return Record{}, fmt.Errorf("get merchant %s: %w", merchantID, err)
	}

	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return Record{}, fmt.Errorf("unmarshal merchant %s: %w", merchantID, err)
	}

	return record, nil
}

// List resolves the full ID set and fetches each record. IDs whose record
// fails to resolve (e.g. concurrently deleted) are dropped from the result.
func (r *Redis) List(ctx context.Context) ([]Record, error) {
	ids, err := r.client.SMembers(ctx, merchantSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list merchant ids: %w", err)
	}

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		record, err := r.Get(ctx, id)
		if err != nil {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Delete removes the record and its ID from the set.
func (r *Redis) Delete(ctx context.Context, merchantID string) (bool, error) {
	removed, err := r.client.Del(ctx, merchantKey(merchantID)).Result()
	if err != nil {
		return false, fmt.Errorf("delete merchant %s: %w", merchantID, err)
	}
	if err := r.client.SRem(ctx, merchantSetKey, merchantID).Err(); err != nil {
		return false, fmt.Errorf("remove merchant id %s from set: %w", merchantID, err)
	}

	return removed > 0, nil
}

// Ping reports whether the Redis backend is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
