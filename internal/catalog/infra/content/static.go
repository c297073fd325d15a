package content

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/neonthreads/storefront/internal/catalog/app"
	"github.com/neonthreads/storefront/internal/catalog/domain"
)

// Static serves a fixed in-memory catalog. It backs the storefront when no
// content API is configured, mirroring the mock data the pages fall back to.
type Static struct {
	products    []domain.Product
	collections []domain.Collection
}

func NewStatic() *Static {
	products := []domain.Product{
		{
			ID:            "1",
			Slug:          "neon-glow-sneakers",
			Name:          "Neon Glow Sneakers",
			Price:         decimal.NewFromInt(199),
			OriginalPrice: decimal.NewFromInt(249),
			Description:   "Futuristic sneakers with LED accents",
			Category:      "footwear",
			InStock:       true,
			Image:         "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500",
			Featured:      true,
		},
		{
			ID:            "2",
			Slug:          "cyber-jacket",
			Name:          "Cyber Jacket",
			Price:         decimal.NewFromInt(299),
			OriginalPrice: decimal.NewFromInt(399),
			Description:   "High-tech jacket with smart fabric",
			Category:      "outerwear",
			InStock:       true,
			Image:         "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500",
			Featured:      true,
		},
		{
			ID:          "3",
			Slug:        "holographic-bag",
			Name:        "Holographic Bag",
			Price:       decimal.NewFromInt(149),
			Description: "Shimmering holographic messenger bag",
			Category:    "accessories",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
			Featured:    true,
		},
	}

	return &Static{
		products: products,
		collections: []domain.Collection{
			{
				ID:          "c1",
				Slug:        "featured",
				Name:        "Featured",
				Description: "Editor picks for the season",
				Products:    products,
			},
		},
	}
}

func (s *Static) Products(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Static) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Static) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %s: %w", slug, app.ErrNotFound)
}

func (s *Static) Collections(ctx context.Context) ([]domain.Collection, error) {
	out := make([]domain.Collection, len(s.collections))
	copy(out, s.collections)
	return out, nil
}

func (s *Static) CollectionBySlug(ctx context.Context, slug string) (domain.Collection, error) {
	for _, c := range s.collections {
		if c.Slug == slug {
			return c, nil
		}
	}
	return domain.Collection{}, fmt.Errorf("collection %s: %w", slug, app.ErrNotFound)
}
