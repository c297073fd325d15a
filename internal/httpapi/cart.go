package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	cartapp "github.com/neonthreads/storefront/internal/cart/app"
	"github.com/neonthreads/storefront/internal/cart/domain"
)

type lineItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type cartDTO struct {
	Items      []lineItemDTO `json:"items"`
	IsOpen     bool          `json:"isOpen"`
	TotalItems int           `json:"totalItems"`
	TotalPrice string        `json:"totalPrice"`
}

type addItemRequest struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Image    string           `json:"image"`
	Quantity int              `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.cartDTO())
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: invalid json", errBadRequest))
		return
	}
	if req.ID == "" {
		s.writeError(w, fmt.Errorf("%w: missing product id", errBadRequest))
		return
	}
	if req.Price == nil || req.Price.IsNegative() {
		s.writeError(w, fmt.Errorf("%w: missing or negative price", errBadRequest))
		return
	}

	p := cartapp.Product{
		ID:    req.ID,
		Name:  req.Name,
		Price: *req.Price,
		Image: req.Image,
	}
	if req.Quantity > 0 {
		s.store.AddItemN(p, req.Quantity)
	} else {
		s.store.AddItem(p)
	}

	s.writeJSON(w, http.StatusOK, s.cartDTO())
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: invalid json", errBadRequest))
		return
	}

	s.store.SetQuantity(id, req.Quantity)
	s.writeJSON(w, http.StatusOK, s.cartDTO())
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	s.store.RemoveItem(mux.Vars(r)["id"])
	s.writeJSON(w, http.StatusOK, s.cartDTO())
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	s.store.ToggleOpen()
	s.writeJSON(w, http.StatusOK, map[string]bool{"isOpen": s.store.IsOpen()})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summary.Summarize(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	lines := make([]map[string]any, 0, len(sum.Lines))
	for _, l := range sum.Lines {
		lines = append(lines, map[string]any{
			"id":        l.ProductID,
			"name":      l.Name,
			"image":     l.Image,
			"inStock":   l.InStock,
			"quantity":  l.Quantity,
			"unitPrice": l.UnitPrice,
			"lineTotal": l.LineTotal,
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"lines":      lines,
		"totalItems": sum.TotalItems,
		"totalPrice": sum.TotalPrice,
	})
}

func (s *Server) cartDTO() cartDTO {
	items := s.store.Items()
	dto := cartDTO{
		Items:      make([]lineItemDTO, 0, len(items)),
		IsOpen:     s.store.IsOpen(),
		TotalItems: s.store.TotalItems(),
		TotalPrice: s.store.TotalPrice().StringFixed(2),
	}
	for _, it := range items {
		dto.Items = append(dto.Items, toLineItemDTO(it))
	}
	return dto
}

func toLineItemDTO(it domain.LineItem) lineItemDTO {
	return lineItemDTO{
		ID:       it.ID,
		Name:     it.Name,
		Price:    it.Price.StringFixed(2),
		Image:    it.Image,
		Quantity: it.Quantity,
		Subtotal: it.Subtotal().StringFixed(2),
	}
}
