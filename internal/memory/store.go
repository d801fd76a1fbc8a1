package memory

import "context"

// Store persists memory records in one backend.
//
// All implementations share the same query semantics: exact type match when
// Query.Type is set, case-insensitive substring match on content when
// Query.Text is set, results ordered by importance descending and capped at
// Query.Limit. Delete removes every record whose content contains the match,
// case-insensitively, and reports how many were removed.
type Store interface {
	// Name identifies the backend ("supabase", "sqlite", "memory").
	Name() string

	// Insert persists a record.
	Insert(ctx context.Context, rec Record) error

	// Search returns the records matching the query.
	Search(ctx context.Context, q Query) ([]Record, error)

	// Delete removes records whose content contains match and
	// returns the number removed.
	Delete(ctx context.Context, match string) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
