package memory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_InsertSearch(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSQLiteStore(filepath.Join(dir, "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()

	recs := []Record{
		{Type: "task", Content: "buy milk", Importance: 8},
		{Type: "fact", Content: "the sky is blue", Importance: 5},
		{Type: "fact", Content: "Milk expires fast", Importance: 3},
	}
	for _, r := range recs {
		if err := store.Insert(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	// Substring match is case-insensitive.
	found, err := store.Search(ctx, Query{Text: "milk", Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 records, got %d", len(found))
	}

	// Ordered by importance descending.
	if found[0].Content != "buy milk" {
		t.Errorf("expected highest-importance record first, got %q", found[0].Content)
	}

	// Exact type filter.
	tasks, err := store.Search(ctx, Query{Type: "task", Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Type != "task" {
		t.Fatalf("expected 1 task record, got %+v", tasks)
	}

	// Combined filters.
	both, err := store.Search(ctx, Query{Text: "milk", Type: "fact", Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(both) != 1 || both[0].Content != "Milk expires fast" {
		t.Fatalf("expected the fact record only, got %+v", both)
	}
}

func TestSQLiteStore_SearchLimit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSQLiteStore(filepath.Join(dir, "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := store.Insert(ctx, Record{Type: "fact", Content: "note", Importance: float64(i)}); err != nil {
			t.Fatal(err)
		}
	}

	found, err := store.Search(ctx, Query{Limit: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(found))
	}
	if found[0].Importance != 4 {
		t.Errorf("expected most important record first, got %v", found[0].Importance)
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSQLiteStore(filepath.Join(dir, "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	store.Insert(ctx, Record{Type: "task", Content: "buy milk", Importance: 8})
	store.Insert(ctx, Record{Type: "task", Content: "drink MILK", Importance: 2})
	store.Insert(ctx, Record{Type: "task", Content: "walk the dog", Importance: 5})

	deleted, err := store.Delete(ctx, "milk")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	remaining, err := store.Search(ctx, Query{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].Content != "walk the dog" {
		t.Fatalf("unexpected remaining records: %+v", remaining)
	}

	// Deleting again matches nothing.
	deleted, err = store.Delete(ctx, "milk")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}
}

func TestSQLiteStore_TagsStoredOpaque(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "memory.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	rec := Record{Type: "fact", Content: "tagged", Importance: 5, Tags: json.RawMessage(`["a","b"]`)}
	if err := store.Insert(ctx, rec); err != nil {
		t.Fatal(err)
	}

	var tags string
	if err := store.db.QueryRow(`SELECT tags FROM memories WHERE content = 'tagged'`).Scan(&tags); err != nil {
		t.Fatal(err)
	}
	if tags != `["a","b"]` {
		t.Errorf("expected tags stored verbatim, got %q", tags)
	}
}

func TestSQLiteStore_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "deeper", "memory.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file to exist: %v", err)
	}
}
