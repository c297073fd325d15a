package adapter

import (
	"context"
	"errors"

	cartapp "github.com/neonthreads/storefront/internal/cart/app"
	catalogapp "github.com/neonthreads/storefront/internal/catalog/app"
)

// CatalogServiceReader lets the cart summary read product details through
// the catalog service without the cart package depending on it.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Product(ctx context.Context, id string) (cartapp.CatalogProduct, error) {
	p, err := r.svc.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) {
			return cartapp.CatalogProduct{}, cartapp.ErrProductNotFound
		}
		return cartapp.CatalogProduct{}, err
	}

	return cartapp.CatalogProduct{
		ID:      p.ID,
		Name:    p.Name,
		Image:   p.Image,
		InStock: p.InStock,
	}, nil
}
