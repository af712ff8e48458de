package kv

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestMemoryGetAbsent(t *testing.T) {
	repo := NewMemory()
	_, err := repo.Get(context.Background(), "default", KeyCart)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemorySetGetRoundTrip(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	if err := repo.Set(ctx, "default", KeyCart, []byte(`[{"name":"Shirt"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := repo.Get(ctx, "default", KeyCart)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"name":"Shirt"}]` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestMemoryLastWriterWins(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	if err := repo.Set(ctx, "default", KeyCheckoutTotal, []byte(`100`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "default", KeyCheckoutTotal, []byte(`250`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := repo.Get(ctx, "default", KeyCheckoutTotal)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `250` {
		t.Fatalf("expected last write, got %s", got)
	}
}

func TestMemoryProfilesIsolated(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	if err := repo.Set(ctx, "alice", KeyUserName, []byte(`"Alice"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := repo.Get(ctx, "bob", KeyUserName); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for other profile, got %v", err)
	}
}

func TestMemoryDeleteIdempotent(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	if err := repo.Set(ctx, "default", KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Delete(ctx, "default", KeyCart); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "default", KeyCart); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := repo.Get(ctx, "default", KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	if err := repo.Set(ctx, "default", KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := repo.Get(ctx, "default", KeyCart)
	got[0] = 'x'
	again, _ := repo.Get(ctx, "default", KeyCart)
	if string(again) != `[]` {
		t.Fatalf("stored value mutated through returned slice: %s", again)
	}
}
