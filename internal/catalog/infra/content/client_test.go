package content_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neonthreads/storefront/internal/catalog/app"
	"github.com/neonthreads/storefront/internal/catalog/infra/content"
)

func contentServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/production/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("featured") == "true" {
			w.Write([]byte(`[{"id":"1","slug":"neon-glow-sneakers","name":"Neon Glow Sneakers","price":199,"originalPrice":249,"inStock":true,"featured":true}]`))
			return
		}
		w.Write([]byte(`[
			{"id":"1","slug":"neon-glow-sneakers","name":"Neon Glow Sneakers","price":199,"originalPrice":249,"inStock":true,"featured":true},
			{"id":"2","slug":"cyber-jacket","name":"Cyber Jacket","price":"299.90","inStock":true}
		]`))
	})

	mux.HandleFunc("/production/products/cyber-jacket", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"2","slug":"cyber-jacket","name":"Cyber Jacket","price":"299.90","inStock":true}`))
	})

	mux.HandleFunc("/production/collections/featured", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","slug":"featured","name":"Featured","products":[{"id":"1","slug":"neon-glow-sneakers","name":"Neon Glow Sneakers","price":199}]}`))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Products(t *testing.T) {
	srv := contentServer(t)
	c := content.NewClient(srv.URL, "production")

	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	// Prices arrive as JSON numbers or strings; both must decode exactly.
	if got := products[0].Price.StringFixed(2); got != "199.00" {
		t.Fatalf("expected price 199.00, got %s", got)
	}
	if got := products[1].Price.StringFixed(2); got != "299.90" {
		t.Fatalf("expected price 299.90, got %s", got)
	}
	if !products[0].Discounted() {
		t.Fatal("expected first product to be discounted")
	}
}

func TestClient_FeaturedProducts(t *testing.T) {
	srv := contentServer(t)
	c := content.NewClient(srv.URL, "production")

	featured, err := c.FeaturedProducts(context.Background())
	if err != nil {
		t.Fatalf("FeaturedProducts failed: %v", err)
	}
	if len(featured) != 1 || !featured[0].Featured {
		t.Fatalf("unexpected featured set: %+v", featured)
	}
}

func TestClient_ProductBySlug(t *testing.T) {
	srv := contentServer(t)
	c := content.NewClient(srv.URL, "production")

	p, err := c.ProductBySlug(context.Background(), "cyber-jacket")
	if err != nil {
		t.Fatalf("ProductBySlug failed: %v", err)
	}
	if p.ID != "2" || p.Name != "Cyber Jacket" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := c.ProductBySlug(context.Background(), "missing"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing slug, got %v", err)
	}
}

func TestClient_CollectionBySlug(t *testing.T) {
	srv := contentServer(t)
	c := content.NewClient(srv.URL, "production")

	col, err := c.CollectionBySlug(context.Background(), "featured")
	if err != nil {
		t.Fatalf("CollectionBySlug failed: %v", err)
	}
	if col.Slug != "featured" || len(col.Products) != 1 {
		t.Fatalf("unexpected collection: %+v", col)
	}
}

func TestStatic(t *testing.T) {
	s := content.NewStatic()
	ctx := context.Background()

	products, err := s.Products(ctx)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("static catalog must not be empty")
	}

	p, err := s.ProductBySlug(ctx, "neon-glow-sneakers")
	if err != nil {
		t.Fatalf("ProductBySlug failed: %v", err)
	}
	if !p.Discounted() {
		t.Fatal("expected the sneakers to be discounted")
	}

	if _, err := s.ProductBySlug(ctx, "nope"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
