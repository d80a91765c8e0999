// Package paystack implements the checkout payment-provider port against the
// Paystack transaction API.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lumintechservices-ai/reggies/internal/checkout"
)

type Client struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

func New(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Paystack wraps every response in {status, message, data}.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int    `json:"amount"`
}

func (c *Client) Initialize(ctx context.Context, req checkout.InitRequest) (checkout.InitResponse, error) {
	body := map[string]any{
		"email":     req.Email,
		"amount":    req.AmountKobo,
		"reference": req.Reference,
	}
	if req.CallbackURL != "" {
		body["callback_url"] = req.CallbackURL
	}
	var data initData
	if err := c.call(ctx, http.MethodPost, "/transaction/initialize", body, &data); err != nil {
		return checkout.InitResponse{}, err
	}
	return checkout.InitResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (checkout.VerifyResult, error) {
	var data verifyData
	if err := c.call(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return checkout.VerifyResult{}, err
	}
	return checkout.VerifyResult{
		Reference:  data.Reference,
		Status:     data.Status,
		AmountKobo: data.Amount,
	}, nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("paystack %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("paystack %s %s: decode: %w", method, path, err)
	}
	if resp.StatusCode >= 300 || !env.Status {
		return fmt.Errorf("paystack %s %s: %s (http %d)", method, path, env.Message, resp.StatusCode)
	}
	return json.Unmarshal(env.Data, out)
}
