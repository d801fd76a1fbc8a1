package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/HeyBatlle1/Argus1/internal/telemetry"
)

// brokenStore fails every operation, standing in for an unreachable remote.
type brokenStore struct{}

func (brokenStore) Name() string                         { return "supabase" }
func (brokenStore) Insert(context.Context, Record) error { return errors.New("connection refused") }
func (brokenStore) Search(context.Context, Query) ([]Record, error) {
	return nil, errors.New("connection refused")
}
func (brokenStore) Delete(context.Context, string) (int, error) {
	return 0, errors.New("connection refused")
}
func (brokenStore) Close() error { return nil }

func testLogger() *telemetry.Logger {
	return telemetry.NewLogger("error")
}

func TestBridge_RemoteServicesOperation(t *testing.T) {
	remote := NewMemStore()
	local := NewMemStore()
	// Two working stores: the first one must win.
	bridge := NewBridge(testLogger(), namedStore{remote, "supabase"}, namedStore{local, "memory"})
	defer bridge.Close()

	ctx := context.Background()
	backend, err := bridge.Insert(ctx, Record{Type: "fact", Content: "hello", Importance: 5})
	if err != nil {
		t.Fatal(err)
	}
	if backend != "supabase" {
		t.Errorf("expected supabase backend, got %q", backend)
	}

	recs, err := remote.Search(ctx, Query{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected record in remote store, got %d", len(recs))
	}
	localRecs, err := local.Search(ctx, Query{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(localRecs) != 0 {
		t.Error("local store must not be touched when remote succeeds")
	}
}

// namedStore overrides Name so two MemStores can be told apart.
type namedStore struct {
	*MemStore
	name string
}

func (n namedStore) Name() string { return n.name }

func TestBridge_FallsBackOnRemoteFailure(t *testing.T) {
	local := NewMemStore()
	bridge := NewBridge(testLogger(), brokenStore{}, local)
	defer bridge.Close()

	ctx := context.Background()

	backend, err := bridge.Insert(ctx, Record{Type: "task", Content: "buy milk", Importance: 8})
	if err != nil {
		t.Fatal(err)
	}
	if backend != "memory" {
		t.Errorf("expected fallback to memory, got %q", backend)
	}

	recs, backend, err := bridge.Search(ctx, Query{Text: "milk", Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if backend != "memory" {
		t.Errorf("expected fallback to memory, got %q", backend)
	}
	if len(recs) != 1 || recs[0].Content != "buy milk" {
		t.Fatalf("unexpected records: %+v", recs)
	}

	deleted, backend, err := bridge.Delete(ctx, "milk")
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 1 || backend != "memory" {
		t.Errorf("expected 1 deleted via memory, got %d via %q", deleted, backend)
	}
}

func TestBridge_LocalFailurePropagates(t *testing.T) {
	bridge := NewBridge(testLogger(), brokenStore{})
	defer bridge.Close()

	ctx := context.Background()
	if _, err := bridge.Insert(ctx, Record{Type: "fact", Content: "x", Importance: 5}); err == nil {
		t.Error("expected insert error when the last backend fails")
	}
	if _, _, err := bridge.Search(ctx, Query{Limit: 10}); err == nil {
		t.Error("expected search error when the last backend fails")
	}
	if _, _, err := bridge.Delete(ctx, "x"); err == nil {
		t.Error("expected delete error when the last backend fails")
	}
}

func TestResolve_NoCredentials(t *testing.T) {
	bridge, err := Resolve(Options{Driver: "memory"}, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	if len(bridge.stores) != 1 {
		t.Fatalf("expected local store only, got %d stores", len(bridge.stores))
	}
	if bridge.stores[0].Name() != "memory" {
		t.Errorf("expected memory store, got %q", bridge.stores[0].Name())
	}
}

func TestResolve_WithCredentials(t *testing.T) {
	bridge, err := Resolve(Options{
		Driver:      "memory",
		Collection:  "argus_memories",
		SupabaseURL: "https://example.supabase.co",
		SupabaseKey: "key",
	}, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	if len(bridge.stores) != 2 {
		t.Fatalf("expected remote + local stores, got %d", len(bridge.stores))
	}
	if bridge.stores[0].Name() != "supabase" {
		t.Errorf("expected supabase first, got %q", bridge.stores[0].Name())
	}
}

func TestResolve_BadRemoteURLIsNotAnError(t *testing.T) {
	bridge, err := Resolve(Options{
		Driver:      "memory",
		SupabaseURL: "not-a-url",
		SupabaseKey: "key",
	}, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer bridge.Close()

	if len(bridge.stores) != 1 {
		t.Fatalf("expected local store only, got %d stores", len(bridge.stores))
	}
}

func TestResolve_UnsupportedDriver(t *testing.T) {
	if _, err := Resolve(Options{Driver: "postgres"}, testLogger()); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
