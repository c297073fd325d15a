package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/neonthreads/storefront/internal/catalog/domain"
)

type productDTO struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice,omitempty"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	InStock       bool   `json:"inStock"`
	Image         string `json:"image"`
	Featured      bool   `json:"featured"`
}

type collectionDTO struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Image       string       `json:"image,omitempty"`
	Products    []productDTO `json:"products"`
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProductDTOs(products))
}

func (s *Server) handleFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.FeaturedProducts(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProductDTOs(products))
}

func (s *Server) handleProductBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := s.catalog.ProductBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProductDTO(product))
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.catalog.ListCollections(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]collectionDTO, 0, len(collections))
	for _, c := range collections {
		out = append(out, toCollectionDTO(c))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCollectionBySlug(w http.ResponseWriter, r *http.Request) {
	collection, err := s.catalog.CollectionBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toCollectionDTO(collection))
}

func toProductDTO(p domain.Product) productDTO {
	dto := productDTO{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		Category:    p.Category,
		InStock:     p.InStock,
		Image:       p.Image,
		Featured:    p.Featured,
	}
	if p.Discounted() {
		dto.OriginalPrice = p.OriginalPrice.StringFixed(2)
	}
	return dto
}

func toProductDTOs(products []domain.Product) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toCollectionDTO(c domain.Collection) collectionDTO {
	return collectionDTO{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		Products:    toProductDTOs(c.Products),
	}
}
