package state

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SingleUse(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "tok", TTL); err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err := store.Consume(ctx, "tok")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if !ok {
		t.Fatal("first consume of a live token failed")
	}

	ok, err = store.Consume(ctx, "tok")
	if err != nil {
		t.Fatalf("replay consume: %v", err)
	}
	if ok {
		t.Fatal("token redeemed twice")
	}
}

func TestMemoryStore_NeverIssued(t *testing.T) {
	store := NewMemoryStore()

	ok, err := store.Consume(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if ok {
		t.Fatal("unknown token redeemed")
	}
}

func TestMemoryStore_Expired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "tok", -time.Second); err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err := store.Consume(ctx, "tok")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if ok {
		t.Fatal("expired token redeemed")
	}

	// Expiry also burns the token: it must not turn live again.
	ok, _ = store.Consume(ctx, "tok")
	if ok {
		t.Fatal("expired token redeemed on second attempt")
	}
}
