package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	cartapp "github.com/neonthreads/storefront/internal/cart/app"
)

// handleEvents streams cart mutations as server-sent events, so the
// presentation layer can react to changes without polling. A consumer that
// falls behind loses events rather than stalling the store.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := make(chan cartapp.Event, 16)
	unsubscribe := s.store.Subscribe(func(ev cartapp.Event) {
		select {
		case ch <- ev:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			payload, err := json.Marshal(map[string]string{
				"op":        string(ev.Op),
				"productId": ev.ProductID,
			})
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: cart\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
