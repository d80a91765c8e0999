package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumintechservices-ai/reggies/internal/checkout"
)

func TestInitialize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_x", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(700000), body["amount"])
		assert.Equal(t, "ref-1", body["reference"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         "ref-1",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "sk_test_x")
	res, err := c.Initialize(context.Background(), checkout.InitRequest{
		Email: "ada@example.com", AmountKobo: 700000, Reference: "ref-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", res.AuthorizationURL)
	assert.Equal(t, "ref-1", res.Reference)
}

func TestVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Verification successful",
			"data":    map[string]any{"status": "success", "reference": "ref-1", "amount": 700000},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "sk_test_x")
	res, err := c.Verify(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, 700000, res.AmountKobo)
}

func TestAPIErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "Invalid key"})
	}))
	defer srv.Close()

	c := New(srv.URL, "bad")
	_, err := c.Verify(context.Background(), "ref-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid key")
}
