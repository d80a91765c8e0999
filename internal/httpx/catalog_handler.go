package httpx

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lumintechservices-ai/reggies/internal/catalog"
)

type CatalogHandler struct {
	Fetch   *catalog.Fetcher
	Ranking *catalog.Ranking
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/popular", h.popularProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/blog", h.listPosts)
	r.Get("/blog/{id}", h.getPost)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, h.Fetch.Products(ctx))
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, src, err := h.Fetch.Product(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"source": src, "product": p})
}

func (h *CatalogHandler) popularProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	limit := int64(4)
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	list := h.Fetch.Products(ctx)
	ids, err := h.Ranking.TopIDs(ctx, limit)
	if err != nil {
		// no ranking yet is not an error worth failing the page for
		log.Printf("catalog: popularity ranking: %v", err)
	}

	byID := make(map[string]catalog.Product, len(list.Products))
	for _, p := range list.Products {
		byID[p.ID] = p
	}
	ranked := make([]catalog.Product, 0, limit)
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ranked = append(ranked, p)
		}
	}
	// pad with catalog order until the ranking has data
	for _, p := range list.Products {
		if int64(len(ranked)) >= limit {
			break
		}
		if !containsProduct(ranked, p.ID) {
			ranked = append(ranked, p)
		}
	}
	writeJSON(w, http.StatusOK, catalog.ProductList{Source: list.Source, Products: ranked})
}

func containsProduct(ps []catalog.Product, id string) bool {
	for _, p := range ps {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (h *CatalogHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, h.Fetch.Posts(ctx))
}

func (h *CatalogHandler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	b, src, err := h.Fetch.Post(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"source": src, "post": b})
}
