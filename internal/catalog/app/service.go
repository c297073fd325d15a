package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/neonthreads/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service fronts the content source. Slug lookups are memoized for the life
// of the process; catalog content is published immutably, so a hit never
// goes stale within a session.
type Service struct {
	source ContentSource

	bySlug sync.Map // slug -> domain.Product
}

func NewService(source ContentSource) *Service {
	return &Service{
		source: source,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.source.Products(ctx)
}

func (s *Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.source.FeaturedProducts(ctx)
}

func (s *Service) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Product{}, ErrInvalidInput
	}

	if v, ok := s.bySlug.Load(slug); ok {
		return v.(domain.Product), nil
	}

	p, err := s.source.ProductBySlug(ctx, slug)
	if err != nil {
		return domain.Product{}, err
	}

	s.bySlug.Store(slug, p)
	return p, nil
}

func (s *Service) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.source.Collections(ctx)
}

func (s *Service) CollectionBySlug(ctx context.Context, slug string) (domain.Collection, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Collection{}, ErrInvalidInput
	}
	return s.source.CollectionBySlug(ctx, slug)
}

// ProductByID scans the catalog for a product id. Used by the cart summary,
// which keys by id rather than slug.
func (s *Service) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}

	products, err := s.source.Products(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}
