package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/neonthreads/storefront/internal/cart/app"
)

type stubCatalog struct {
	products map[string]app.CatalogProduct
	err      error
}

func (c *stubCatalog) Product(ctx context.Context, id string) (app.CatalogProduct, error) {
	if c.err != nil {
		return app.CatalogProduct{}, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return app.CatalogProduct{}, app.ErrProductNotFound
	}
	return p, nil
}

func TestSummaryService_Summarize(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddItemN(product("A", "19.99"), 2)
	s.AddItem(product("B", "5"))

	catalog := &stubCatalog{products: map[string]app.CatalogProduct{
		"A": {ID: "A", Name: "Neon Glow Sneakers", Image: "sneakers.jpg", InStock: true},
		"B": {ID: "B", Name: "Holographic Bag", Image: "bag.jpg", InStock: false},
	}}
	svc := app.NewSummaryService(s, catalog, 4)

	sum, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if len(sum.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(sum.Lines))
	}

	first := sum.Lines[0]
	if first.ProductID != "A" || first.Name != "Neon Glow Sneakers" || !first.InStock {
		t.Fatalf("unexpected first line: %+v", first)
	}
	if first.UnitPrice != "19.99" || first.LineTotal != "39.98" {
		t.Fatalf("unexpected amounts: unit=%s total=%s", first.UnitPrice, first.LineTotal)
	}

	if sum.TotalItems != 3 {
		t.Fatalf("expected 3 total items, got %d", sum.TotalItems)
	}
	if sum.TotalPrice != "44.98" {
		t.Fatalf("expected total 44.98, got %s", sum.TotalPrice)
	}
}

func TestSummaryService_EmptyCart(t *testing.T) {
	s, _ := newTestStore(t)
	svc := app.NewSummaryService(s, &stubCatalog{}, 0)

	sum, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(sum.Lines) != 0 || sum.TotalItems != 0 || sum.TotalPrice != "0.00" {
		t.Fatalf("unexpected empty summary: %+v", sum)
	}
}

func TestSummaryService_DelistedProduct(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddItem(product("gone", "10"))

	svc := app.NewSummaryService(s, &stubCatalog{products: map[string]app.CatalogProduct{}}, 4)

	sum, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	line := sum.Lines[0]
	if line.InStock {
		t.Fatal("delisted product must be flagged out of stock")
	}
	if line.Name != "product gone" {
		t.Fatalf("expected name from add time, got %q", line.Name)
	}
}

func TestSummaryService_CatalogFailure(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddItem(product("A", "10"))

	svc := app.NewSummaryService(s, &stubCatalog{err: errors.New("content api down")}, 4)

	if _, err := svc.Summarize(context.Background()); err == nil {
		t.Fatal("expected error when the catalog is unreachable")
	}
}
