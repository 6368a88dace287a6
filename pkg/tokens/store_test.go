package tokens

import (
	"context"
	"testing"
)

func TestMemoryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(Pair{})

	pair, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !pair.Empty() {
		t.Fatalf("expected empty pair, got %+v", pair)
	}

	if err := store.Set(ctx, Pair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	pair, _ = store.Get(ctx)
	if pair.AccessToken != "a" || pair.RefreshToken != "r" {
		t.Fatalf("unexpected pair %+v", pair)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	pair, _ = store.Get(ctx)
	if !pair.Empty() || pair.RefreshToken != "" {
		t.Fatalf("expected cleared pair, got %+v", pair)
	}
}
