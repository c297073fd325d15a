package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	cartapp "github.com/neonthreads/storefront/internal/cart/app"
	catalogapp "github.com/neonthreads/storefront/internal/catalog/app"
)

// Server is the HTTP JSON gateway the view layer drives the store through.
type Server struct {
	log     *slog.Logger
	store   *cartapp.Store
	summary *cartapp.SummaryService
	catalog *catalogapp.Service
}

func NewServer(store *cartapp.Store, summary *cartapp.SummaryService, catalog *catalogapp.Service, log *slog.Logger) *Server {
	return &Server{
		log:     log,
		store:   store,
		summary: summary,
		catalog: catalog,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/cart", s.handleGetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", s.handleAddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", s.handleSetQuantity).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{id}", s.handleRemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/cart/toggle", s.handleToggle).Methods(http.MethodPost)
	api.HandleFunc("/cart/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/cart/events", s.handleEvents).Methods(http.MethodGet)

	api.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/featured", s.handleFeaturedProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{slug}", s.handleProductBySlug).Methods(http.MethodGet)
	api.HandleFunc("/collections", s.handleListCollections).Methods(http.MethodGet)
	api.HandleFunc("/collections/{slug}", s.handleCollectionBySlug).Methods(http.MethodGet)

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", slog.Any("err", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, code, msg := httpStatusFromErr(err)
	s.writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": msg},
	})
}
