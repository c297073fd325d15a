package snapshot_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/neonthreads/storefront/internal/cart/app"
	"github.com/neonthreads/storefront/internal/cart/domain"
	"github.com/neonthreads/storefront/internal/cart/infra/snapshot"
)

func sampleItems() []domain.LineItem {
	return []domain.LineItem{
		{ID: "A", Name: "Neon Glow Sneakers", Price: decimal.RequireFromString("199"), Image: "sneakers.jpg", Quantity: 2},
		{ID: "B", Name: "Holographic Bag", Price: decimal.RequireFromString("149.50"), Image: "bag.jpg", Quantity: 1},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	data, err := snapshot.Encode(sampleItems())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := snapshot.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := sampleItems()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Quantity != want[i].Quantity || !got[i].Price.Equal(want[i].Price) {
			t.Fatalf("item %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestCodec_DropsMalformedEntries(t *testing.T) {
	data := []byte(`{"items":[
		{"id":"A","name":"ok","price":"10","quantity":1},
		{"name":"no id","price":"5","quantity":1},
		{"id":"C","name":"no price","quantity":1},
		{"id":"D","name":"zero qty","price":"5","quantity":0}
	]}`)

	items, err := snapshot.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "A" {
		t.Fatalf("expected only A to survive, got %+v", items)
	}
}

func TestCodec_CorruptRecord(t *testing.T) {
	if _, err := snapshot.Decode([]byte(`{"items":[`)); err == nil {
		t.Fatal("expected error for corrupt record")
	}
}

func TestFileStore(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		fs := snapshot.NewFileStore(path)
		ctx := context.Background()

		if err := fs.Save(ctx, sampleItems()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := fs.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "A" || got[1].ID != "B" {
			t.Fatalf("unexpected items after reload: %+v", got)
		}
	})

	t.Run("absent file", func(t *testing.T) {
		fs := snapshot.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

		_, err := fs.Load(context.Background())
		if !errors.Is(err, app.ErrNoSnapshot) {
			t.Fatalf("expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := snapshot.NewFileStore(path).Load(context.Background())
		if err == nil || errors.Is(err, app.ErrNoSnapshot) {
			t.Fatalf("expected decode error, got %v", err)
		}
	})

	t.Run("save overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		fs := snapshot.NewFileStore(path)
		ctx := context.Background()

		if err := fs.Save(ctx, sampleItems()); err != nil {
			t.Fatal(err)
		}
		if err := fs.Save(ctx, nil); err != nil {
			t.Fatal(err)
		}

		got, err := fs.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty snapshot, got %+v", got)
		}
	})
}
