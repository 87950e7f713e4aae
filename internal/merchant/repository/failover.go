package repository

import (
	"context"

	"nftsub_backend/platform/apperr"
	"nftsub_backend/platform/logger"
)

// Failover decorates a primary (durable) store with an in-memory fallback.
// Every operation tries the primary exactly once, without retries, and on a backend
// failure serves the same operation from the fallback instead, so callers
// never see the outage, only a possibly stale or empty result.
//
// The fallback is one-way per call: nothing written to the fallback is
// reconciled back to the primary once it recovers, so data written before an
// outage stays invisible until the backend returns. That tradeoff is
// accepted; the degraded flag on the health endpoint is the observability
// hook for it.
type Failover struct {
	primary  Store
	fallback Store
	log      *logger.Logger
}

// NewFailover wraps the primary store with a fallback.
func NewFailover(primary, fallback Store, log *logger.Logger) *Failover {
	return &Failover{primary: primary, fallback: fallback, log: log}
}

// Compile-time check that Failover implements Store.
var _ Store = (*Failover)(nil)

// isBackendFailure distinguishes infrastructure errors from domain results.
// A not-found record is an answer from a healthy backend, not an outage.
func isBackendFailure(err error) bool {
	if err == nil {
		return false
	}
	return !apperr.Is(err, apperr.KindNotFound)
}

// Put writes to the primary, falling back to memory on backend failure.
func (f *Failover) Put(ctx context.Context, record Record) error {
	if err := f.primary.Put(ctx, record); err != nil {
		f.log.StoreFallback("put", err)
		return f.fallback.Put(ctx, record)
	}
	return nil
}

// Get reads from the primary, falling back to memory on backend failure.
func (f *Failover) Get(ctx context.Context, merchantID string) (Record, error) {
	record, err := f.primary.Get(ctx, merchantID)
	if isBackendFailure(err) {
		f.log.StoreFallback("get", err)
		return f.fallback.Get(ctx, merchantID)
	}
	return record, err
}

// List reads from the primary, falling back to memory on backend failure.
func (f *Failover) List(ctx context.Context) ([]Record, error) {
	records, err := f.primary.List(ctx)
	if err != nil {
		f.log.StoreFallback("list", err)
		return f.fallback.List(ctx)
	}
	return records, nil
}

// Delete removes from the primary, falling back to memory on backend failure.
func (f *Failover) Delete(ctx context.Context, merchantID string) (bool, error) {
	existed, err := f.primary.Delete(ctx, merchantID)
	if err != nil {
		f.log.StoreFallback("delete", err)
		return f.fallback.Delete(ctx, merchantID)
	}
	return existed, nil
}

// Ping reports the primary's reachability so health checks can surface
// degraded mode. The fallback keeps serving regardless.
func (f *Failover) Ping(ctx context.Context) error {
	return f.primary.Ping(ctx)
}
