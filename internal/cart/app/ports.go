package app

import (
	"context"
	"errors"

	"github.com/neonthreads/storefront/internal/cart/domain"
)

// SnapshotStore persists the cart between runs. Implementations are expected
// to return ErrNoSnapshot from Load when nothing has been saved yet.
type SnapshotStore interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}

var ErrNoSnapshot = errors.New("no snapshot")

// CatalogReader supplies live product details for summary lines.
type CatalogReader interface {
	Product(ctx context.Context, id string) (CatalogProduct, error)
}

// CatalogProduct is the slice of a catalog entry the summary cares about.
type CatalogProduct struct {
	ID      string
	Name    string
	Image   string
	InStock bool
}

var ErrProductNotFound = errors.New("product not found")
