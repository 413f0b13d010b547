// Package history keeps the bounded, most-recent-first list of regions a
// user has looked up, persisted across restarts through a small key-value
// store boundary.
package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// maxEntries bounds the watch list length.
const maxEntries = 10

// Manager owns the watch list. Entries are region display strings (original
// casing), newest first, persisted after every mutation.
type Manager struct {
	store  Store
	logger *slog.Logger

	mu      sync.Mutex
	regions []string
}

// NewManager creates a Manager rehydrated from store. An unreadable store or
// a corrupt persisted list resets to empty rather than failing startup; the
// list is best-effort state, not a precondition for lookups.
func NewManager(ctx context.Context, store Store, logger *slog.Logger) *Manager {
	m := &Manager{store: store, logger: logger}

	value, ok, err := store.Get(ctx, storageKey)
	if err != nil {
		logger.Warn("history load failed, starting empty", "error", err)
		return m
	}
	if ok {
		if err := json.Unmarshal([]byte(value), &m.regions); err != nil {
			logger.Warn("discarding unreadable history", "error", err)
			m.regions = nil
		}
		if len(m.regions) > maxEntries {
			m.regions = m.regions[:maxEntries]
		}
	}
	return m
}

// Record notes a successfully looked-up region. A region already on the list
// (exact, case-sensitive match) keeps its position and nothing is written; a
// new one is prepended, the list truncated to maxEntries, and the result
// persisted.
func (m *Manager) Record(ctx context.Context, region string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.regions {
		if r == region {
			return nil
		}
	}

	m.regions = append([]string{region}, m.regions...)
	if len(m.regions) > maxEntries {
		m.regions = m.regions[:maxEntries]
	}

	data, err := json.Marshal(m.regions)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storageKey, string(data))
}

// Regions returns a copy of the list, most recent first.
func (m *Manager) Regions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.regions))
	copy(out, m.regions)
	return out
}
