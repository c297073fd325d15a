package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/neonthreads/storefront/internal/catalog/app"
	"github.com/neonthreads/storefront/internal/catalog/domain"
)

// Client reads the hosted content API over HTTP JSON. Paths are rooted at
// {base}/{dataset}.
type Client struct {
	base    string
	dataset string
	http    *http.Client
}

func NewClient(baseURL, dataset string) *Client {
	return &Client{
		base:    baseURL,
		dataset: dataset,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type productDTO struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	InStock       bool            `json:"inStock"`
	Image         string          `json:"image"`
	Featured      bool            `json:"featured"`
}

type collectionDTO struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Products    []productDTO `json:"products"`
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, "/products", nil, &dtos); err != nil {
		return nil, err
	}
	return toProducts(dtos), nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, "/products", url.Values{"featured": {"true"}}, &dtos); err != nil {
		return nil, err
	}
	return toProducts(dtos), nil
}

func (c *Client) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	var dto productDTO
	if err := c.get(ctx, "/products/"+url.PathEscape(slug), nil, &dto); err != nil {
		return domain.Product{}, err
	}
	return toProduct(dto), nil
}

func (c *Client) Collections(ctx context.Context) ([]domain.Collection, error) {
	var dtos []collectionDTO
	if err := c.get(ctx, "/collections", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Collection, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toCollection(dto))
	}
	return out, nil
}

func (c *Client) CollectionBySlug(ctx context.Context, slug string) (domain.Collection, error) {
	var dto collectionDTO
	if err := c.get(ctx, "/collections/"+url.PathEscape(slug), nil, &dto); err != nil {
		return domain.Collection{}, err
	}
	return toCollection(dto), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := fmt.Sprintf("%s/%s%s", c.base, c.dataset, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("content %s: %w", path, app.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("content %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("content %s: decode: %w", path, err)
	}
	return nil
}

func toProduct(dto productDTO) domain.Product {
	return domain.Product{
		ID:            dto.ID,
		Slug:          dto.Slug,
		Name:          dto.Name,
		Price:         dto.Price,
		OriginalPrice: dto.OriginalPrice,
		Description:   dto.Description,
		Category:      dto.Category,
		InStock:       dto.InStock,
		Image:         dto.Image,
		Featured:      dto.Featured,
	}
}

func toProducts(dtos []productDTO) []domain.Product {
	out := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toProduct(dto))
	}
	return out
}

func toCollection(dto collectionDTO) domain.Collection {
	return domain.Collection{
		ID:          dto.ID,
		Slug:        dto.Slug,
		Name:        dto.Name,
		Description: dto.Description,
		Image:       dto.Image,
		Products:    toProducts(dto.Products),
	}
}
