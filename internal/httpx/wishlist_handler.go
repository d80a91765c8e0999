package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lumintechservices-ai/reggies/internal/catalog"
	"github.com/lumintechservices-ai/reggies/internal/wishlist"
)

type WishlistHandler struct {
	Wishlist *wishlist.Manager
	Catalog  *catalog.Fetcher
}

type wishlistResp struct {
	IDs      []string          `json:"ids"`
	Count    int               `json:"count"`
	Source   catalog.Source    `json:"source"`
	Products []catalog.Product `json:"products"`
}

func (h *WishlistHandler) Register(r *chi.Mux) {
	r.Get("/wishlist", h.get)
	r.Put("/wishlist/{productID}", h.add)
	r.Delete("/wishlist/{productID}", h.remove)
}

func (h *WishlistHandler) payload(ctx context.Context, sid string) wishlistResp {
	ids := h.Wishlist.IDs(ctx, sid)
	list := h.Catalog.Products(ctx)
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	products := make([]catalog.Product, 0, len(ids))
	for _, p := range list.Products {
		if wanted[p.ID] {
			products = append(products, p)
		}
	}
	return wishlistResp{IDs: ids, Count: len(ids), Source: list.Source, Products: products}
}

func (h *WishlistHandler) get(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}

func (h *WishlistHandler) add(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.Wishlist.Add(ctx, sid, chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}

func (h *WishlistHandler) remove(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.Wishlist.Remove(ctx, sid, chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, h.payload(ctx, sid))
}
