package memory

import (
	"context"
	"fmt"

	"github.com/HeyBatlle1/Argus1/internal/telemetry"
)

// Options configures backend resolution for one invocation.
type Options struct {
	Driver      string // local driver: sqlite, memory
	DBPath      string // local database file path
	Collection  string // remote table name
	SupabaseURL string
	SupabaseKey string
}

// Bridge runs each operation against an ordered list of backends: the
// remote store first when one could be constructed, then the local store.
// The first backend to succeed services the operation; remote failures are
// swallowed and demote to the next backend, local failures propagate.
type Bridge struct {
	stores []Store
	logger *telemetry.Logger
}

// NewBridge composes stores into an ordered attempt list.
func NewBridge(logger *telemetry.Logger, stores ...Store) *Bridge {
	return &Bridge{stores: stores, logger: logger}
}

// Resolve builds the backend attempt list from the options. The remote store
// joins the list only when both credentials are present and the client is
// constructible; a remote that cannot be constructed is "not available",
// never an error.
func Resolve(opts Options, logger *telemetry.Logger) (*Bridge, error) {
	var stores []Store

	if opts.SupabaseURL != "" && opts.SupabaseKey != "" {
		remote, err := NewSupabaseStore(opts.SupabaseURL, opts.SupabaseKey, opts.Collection)
		if err != nil {
			logger.Debug("supabase client unavailable", "error", err)
		} else {
			stores = append(stores, remote)
		}
	}

	var local Store
	switch opts.Driver {
	case "memory":
		local = NewMemStore()
	case "sqlite", "":
		s, err := NewSQLiteStore(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite store: %w", err)
		}
		local = s
	default:
		return nil, fmt.Errorf("unsupported memory driver: %s", opts.Driver)
	}
	stores = append(stores, local)

	return NewBridge(logger, stores...), nil
}

// Insert persists the record, reporting which backend serviced the write.
func (b *Bridge) Insert(ctx context.Context, rec Record) (string, error) {
	var lastErr error
	for i, s := range b.stores {
		err := s.Insert(ctx, rec)
		if err == nil {
			return s.Name(), nil
		}
		lastErr = err
		if i < len(b.stores)-1 {
			b.logger.Debug("insert failed, falling back", "backend", s.Name(), "error", err)
		}
	}
	return "", lastErr
}

// Search returns the matching records and the backend that produced them.
func (b *Bridge) Search(ctx context.Context, q Query) ([]Record, string, error) {
	var lastErr error
	for i, s := range b.stores {
		recs, err := s.Search(ctx, q)
		if err == nil {
			return recs, s.Name(), nil
		}
		lastErr = err
		if i < len(b.stores)-1 {
			b.logger.Debug("search failed, falling back", "backend", s.Name(), "error", err)
		}
	}
	return nil, "", lastErr
}

// Delete removes matching records, reporting the count and backend.
func (b *Bridge) Delete(ctx context.Context, match string) (int, string, error) {
	var lastErr error
	for i, s := range b.stores {
		n, err := s.Delete(ctx, match)
		if err == nil {
			return n, s.Name(), nil
		}
		lastErr = err
		if i < len(b.stores)-1 {
			b.logger.Debug("delete failed, falling back", "backend", s.Name(), "error", err)
		}
	}
	return 0, "", lastErr
}

// Close releases every backend, error or not.
func (b *Bridge) Close() error {
	var firstErr error
	for _, s := range b.stores {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
