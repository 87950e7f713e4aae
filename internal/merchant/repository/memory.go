package repository

import (
	"context"
	"sync"

	"nftsub_backend/platform/apperr"
)

// Memory implements Store on a process-local map. It serves as the
// development backend and as the degraded-mode fallback when the durable
// backend is unreachable. Data does not survive a restart.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory creates an in-memory merchant store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

// Compile-time check that Memory implements Store.
var _ Store = (*Memory)(nil)

// Put stores the record, overwriting any existing one.
func (m *Memory) Put(_ context.Context, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.MerchantID] = record
	return nil
}

// Get retrieves a record by merchant ID.
func (m *Memory) Get(_ context.Context, merchantID string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[merchantID]
	if !ok {
		return Record{}, apperr.NotFound(merchantNotFoundMessage)
	}
	return record, nil
}

// List returns every stored record.
func (m *Memory) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]Record, 0, len(m.records))
	for _, record := range m.records {
		records = append(records, record)
	}
	return records, nil
}

// Delete removes the record and reports whether one existed.
func (m *Memory) Delete(_ context.Context, merchantID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.records[merchantID]
	delete(m.records, merchantID)
	return ok, nil
}

// Ping always succeeds; the map is local to the process.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}
