package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lumintechservices-ai/reggies/internal/cart"
	"github.com/lumintechservices-ai/reggies/internal/catalog"
)

type CartHandler struct {
	Cart    *cart.Manager
	Catalog *catalog.Fetcher
}

type addLineReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

type cartResp struct {
	Items  []cart.Line `json:"items"`
	Total  int         `json:"total"`
	Count  int         `json:"count"`
	IsOpen bool        `json:"is_open"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/cart", h.get)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items/{productID}", h.setQuantity)
	r.Delete("/cart/items/{productID}", h.removeItem)
	r.Delete("/cart", h.clear)
	r.Post("/cart/toggle", h.toggle)
}

func (h *CartHandler) payload(ctx context.Context, sid string) cartResp {
	return cartResp{
		Items:  h.Cart.Lines(ctx, sid),
		Total:  h.Cart.Total(ctx, sid),
		Count:  h.Cart.Count(ctx, sid),
		IsOpen: h.Cart.IsOpen(sid),
	}
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	var req addLineReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing product_id")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// the line snapshot is priced from the catalog, never from the client
	p, _, err := h.Catalog.Product(ctx, req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	h.Cart.AddLine(ctx, sid, cart.Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  req.Quantity,
	})
	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}

func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	var req setQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.Cart.SetQuantity(ctx, sid, chi.URLParam(r, "productID"), req.Quantity)
	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.Cart.RemoveLine(ctx, sid, chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.Cart.Clear(ctx, sid)
	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}

func (h *CartHandler) toggle(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	open := h.Cart.ToggleOpen(sid)
	writeJSON(w, http.StatusOK, map[string]bool{"is_open": open})
}
