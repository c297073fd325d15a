package app

import (
	"context"

	"github.com/neonthreads/storefront/internal/catalog/domain"
)

// ContentSource is the remote catalog the storefront reads from. The service
// never writes to it.
type ContentSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug string) (domain.Product, error)
	Collections(ctx context.Context) ([]domain.Collection, error)
	CollectionBySlug(ctx context.Context, slug string) (domain.Collection, error)
}
