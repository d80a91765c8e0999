package httpx

import (
	"net/http"
	"strings"
)

// The storefront client generates a stable id per browser and sends it on
// every cart/wishlist/checkout call.
const sessionHeader = "X-Session-ID"

func sessionID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(sessionHeader))
}

// requireSession answers 400 and returns "" when the header is missing.
func requireSession(w http.ResponseWriter, r *http.Request) string {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, http.StatusBadRequest, "missing "+sessionHeader+" header")
	}
	return sid
}
