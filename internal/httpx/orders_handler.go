package httpx

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lumintechservices-ai/reggies/internal/orders"
)

// OrderHistory is the slice of the order repo the handler needs.
// *orders.Repo satisfies it.
type OrderHistory interface {
	ListByEmail(ctx context.Context, email string) ([]orders.Order, error)
}

type OrdersHandler struct {
	History OrderHistory
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/orders", h.listByEmail)
}

func (h *OrdersHandler) listByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "missing email")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	list, err := h.History.ListByEmail(ctx, email)
	if err != nil {
		// a fetch failure reads as "no orders found", it never fails the page
		log.Printf("orders: history for %s: %v", email, err)
		list = nil
	}
	if list == nil {
		list = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": list})
}
