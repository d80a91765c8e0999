package checkout

import "context"

// The payment provider is opaque to the orchestrator: it only needs the
// authorization URL from Initialize and a confirmed/not-confirmed answer
// from Verify.

type InitRequest struct {
	Email       string
	AmountKobo  int
	Reference   string
	CallbackURL string
}

type InitResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type VerifyResult struct {
	Reference  string
	Status     string // "success", "abandoned", "failed"
	AmountKobo int
}

type PaymentProvider interface {
	Initialize(ctx context.Context, req InitRequest) (InitResponse, error)
	Verify(ctx context.Context, reference string) (VerifyResult, error)
}
