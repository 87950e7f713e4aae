package repository

import (
	"context"
)

// Record is the persisted representation of a merchant's display metadata.
// The store exclusively owns this shape; merchantId is the stable key and is
// never rewritten once set. Timestamps are ISO-8601 strings set by the
// service layer, never by callers.
type Record struct {
	MerchantID  string  `json:"merchantId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Logo        *string `json:"logo"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Store is the key-value persistence contract for merchant records. Both
// backends (durable Redis and in-memory fallback) implement it, so the rest
// of the system is indifferent to which is active.
type Store interface {
	// Put writes the record keyed by its merchant ID, overwriting any
	// existing record (upsert).
	Put(ctx context.Context, record Record) error
	// Get returns the record for the given ID, or apperr.NotFound. A missing
	// ID is a result, not a backend failure.
	Get(ctx context.Context, merchantID string) (Record, error)
	// List returns every known record. Records that fail to resolve are
	// silently dropped rather than failing the whole call.
	List(ctx context.Context) ([]Record, error)
	// Delete removes the record and reports whether one existed.
	Delete(ctx context.Context, merchantID string) (bool, error)
	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
}
