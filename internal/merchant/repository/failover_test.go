package repository

import (
	"context"
	"errors"
	"testing"

	"nftsub_backend/platform/apperr"
	"nftsub_backend/platform/logger"
)

var errBackendDown = errors.New("backend unreachable")

// downStore simulates a durable backend outage: every operation fails.
type downStore struct{}

func (downStore) Put(context.Context, Record) error          { return errBackendDown }
func (downStore) Get(context.Context, string) (Record, error) { return Record{}, errBackendDown }
func (downStore) List(context.Context) ([]Record, error)     { return nil, errBackendDown }
func (downStore) Delete(context.Context, string) (bool, error) {
	return false, errBackendDown
}
func (downStore) Ping(context.Context) error { return errBackendDown }

func newTestFailover(primary Store) (*Failover, *Memory) {
	fallback := NewMemory()
	return NewFailover(primary, fallback, logger.New("development")), fallback
}

func TestFailoverServesWritesFromFallback(t *testing.T) {
	store, fallback := newTestFailover(downStore{})
	ctx := context.Background()

	if err := store.Put(ctx, Record{MerchantID: "1", Name: "Acme"}); err != nil {
		t.Fatalf("expected put to succeed via fallback, got %v", err)
	}

	got, err := fallback.Get(ctx, "1")
	if err != nil {
		t.Fatalf("expected record in fallback: %v", err)
	}
	if got.Name != "Acme" {
		t.Fatalf("unexpected fallback record: %+v", got)
	}
}

func TestFailoverServesReadsFromFallback(t *testing.T) {
	store, fallback := newTestFailover(downStore{})
	ctx := context.Background()

	if err := fallback.Put(ctx, Record{MerchantID: "1", Name: "Acme"}); err != nil {
		t.Fatalf("seed fallback: %v", err)
	}

	got, err := store.Get(ctx, "1")
	if err != nil {
		t.Fatalf("expected get to succeed via fallback, got %v", err)
	}
	if got.Name != "Acme" {
		t.Fatalf("unexpected record: %+v", got)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("expected list to succeed via fallback, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
}

func TestFailoverNeverSurfacesBackendError(t *testing.T) {
	store, _ := newTestFailover(downStore{})
	ctx := context.Background()

	// The fallback is empty: the caller sees not-found, never the outage.
	_, err := store.Get(ctx, "missing")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}

	existed, err := store.Delete(ctx, "missing")
	if err != nil {
		t.Fatalf("expected delete to succeed via fallback, got %v", err)
	}
	if existed {
		t.Fatal("expected no record deleted")
	}
}

func TestFailoverNotFoundDoesNotTriggerFallback(t *testing.T) {
	// Healthy primary answering not-found; a stale fallback copy must not
	// shadow the primary's answer.
	primary := NewMemory()
	store, fallback := newTestFailover(primary)
	ctx := context.Background()

	if err := fallback.Put(ctx, Record{MerchantID: "1", Name: "Stale"}); err != nil {
		t.Fatalf("seed fallback: %v", err)
	}

	_, err := store.Get(ctx, "1")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected primary's not-found to pass through, got %v", err)
	}
}

func TestFailoverPingReportsPrimary(t *testing.T) {
	store, _ := newTestFailover(downStore{})
	if err := store.Ping(context.Background()); err == nil {
		t.Fatal("expected ping to report the primary outage")
	}

	healthy, _ := newTestFailover(NewMemory())
	if err := healthy.Ping(context.Background()); err != nil {
		t.Fatalf("expected healthy ping, got %v", err)
	}
}
