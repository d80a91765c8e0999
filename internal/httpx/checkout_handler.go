package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lumintechservices-ai/reggies/internal/checkout"
)

type CheckoutHandler struct {
	Orchestrator *checkout.Orchestrator
}

type startCheckoutReq struct {
	Email string `json:"email"`
}

func (h *CheckoutHandler) Register(r *chi.Mux) {
	r.Post("/checkout", h.start)
	r.Get("/checkout/callback", h.callback)
	r.Get("/checkout/{reference}", h.status)
	r.Post("/checkout/{reference}/cancel", h.cancel)
}

func (h *CheckoutHandler) start(w http.ResponseWriter, r *http.Request) {
	sid := requireSession(w, r)
	if sid == "" {
		return
	}
	var req startCheckoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	a, authURL, err := h.Orchestrator.Start(ctx, sid, req.Email)
	switch {
	case errors.Is(err, checkout.ErrEmailRequired):
		writeError(w, http.StatusBadRequest, "Please enter your email address.")
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "Your cart is empty.")
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, "Could not start payment. Please try again.")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"reference":         a.Reference,
		"authorization_url": authURL,
		"amount_kobo":       a.AmountKobo,
		"state":             a.State,
	})
}

// callback is the provider redirect target after the hosted payment page.
func (h *CheckoutHandler) callback(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		writeError(w, http.StatusBadRequest, "missing reference")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	a, err := h.Orchestrator.Complete(ctx, reference)
	switch {
	case errors.Is(err, checkout.ErrNoAttempt):
		writeError(w, http.StatusNotFound, "unknown reference")
		return
	case errors.Is(err, checkout.ErrPaymentNotConfirmed):
		writeError(w, http.StatusPaymentRequired, "Payment was not confirmed.")
		return
	case errors.Is(err, checkout.ErrOrderRecordFailed):
		writeError(w, http.StatusBadGateway, "Failed to create order. Please contact support.")
		return
	case errors.Is(err, checkout.ErrItemsRecordFailed):
		writeError(w, http.StatusBadGateway, "Failed to save order details. Please contact support.")
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, "Could not confirm payment. Please contact support.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Payment successful! Your order has been placed.",
		"reference": a.Reference,
		"state":     a.State,
	})
}

func (h *CheckoutHandler) status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	a, err := h.Orchestrator.State(ctx, chi.URLParam(r, "reference"))
	if errors.Is(err, checkout.ErrNoAttempt) {
		writeError(w, http.StatusNotFound, "unknown reference")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// cancel handles the user closing the payment widget.
func (h *CheckoutHandler) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := h.Orchestrator.Cancel(ctx, chi.URLParam(r, "reference"))
	switch {
	case errors.Is(err, checkout.ErrNoAttempt):
		writeError(w, http.StatusNotFound, "unknown reference")
		return
	case errors.Is(err, checkout.ErrAlreadyCompleted):
		writeError(w, http.StatusConflict, "attempt already settled")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment window closed."})
}
