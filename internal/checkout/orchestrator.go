// Package checkout drives a cart through payment and order recording:
// Idle -> AwaitingPayment -> Recording -> Succeeded | Failed.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/lumintechservices-ai/reggies/internal/cart"
	kafkax "github.com/lumintechservices-ai/reggies/internal/kafka"
	"github.com/lumintechservices-ai/reggies/internal/orders"
)

var (
	ErrEmailRequired       = errors.New("checkout: email is required")
	ErrEmptyCart           = errors.New("checkout: cart is empty")
	ErrPaymentNotConfirmed = errors.New("checkout: payment not confirmed")
	ErrOrderRecordFailed   = errors.New("checkout: failed to record order")
	ErrItemsRecordFailed   = errors.New("checkout: failed to record order items")
	ErrAlreadyCompleted    = errors.New("checkout: attempt already settled")
)

// CartService is the slice of the cart manager the orchestrator needs.
// *cart.Manager satisfies it.
type CartService interface {
	Lines(ctx context.Context, session string) []cart.Line
	Total(ctx context.Context, session string) int
	Clear(ctx context.Context, session string)
	SetOpen(session string, open bool)
}

// OrderStore is the two-step order writer. *orders.Repo satisfies it.
type OrderStore interface {
	CreateOrder(ctx context.Context, reference, email string, totalAmount int) (string, error)
	InsertItems(ctx context.Context, orderID string, items []orders.ItemInput) error
}

// Publisher is satisfied by *kafka.Producer. Nil disables event publishing.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type Orchestrator struct {
	Cart        CartService
	Payments    PaymentProvider
	Orders      OrderStore
	Attempts    AttemptStore
	Producer    Publisher
	Service     string
	CallbackURL string
}

// NewReference generates the client-side payment reference the provider
// echoes back on success.
func NewReference() string {
	return strconv.FormatInt(rand.Int63n(1_000_000_000)+1, 10)
}

// Start validates the guards, initializes the hosted payment and moves the
// attempt to AwaitingPayment. Guard violations refuse the transition with no
// side effects.
func (o *Orchestrator) Start(ctx context.Context, session, email string) (Attempt, string, error) {
	if strings.TrimSpace(email) == "" {
		return Attempt{}, "", ErrEmailRequired
	}
	if len(o.Cart.Lines(ctx, session)) == 0 {
		return Attempt{}, "", ErrEmptyCart
	}

	a := Attempt{
		Reference:  NewReference(),
		Session:    session,
		Email:      email,
		AmountKobo: o.Cart.Total(ctx, session) * 100, // naira -> kobo
		State:      StateAwaitingPayment,
	}
	init, err := o.Payments.Initialize(ctx, InitRequest{
		Email:       a.Email,
		AmountKobo:  a.AmountKobo,
		Reference:   a.Reference,
		CallbackURL: o.CallbackURL,
	})
	if err != nil {
		return Attempt{}, "", fmt.Errorf("initialize payment: %w", err)
	}
	if err := o.Attempts.Put(ctx, a); err != nil {
		return Attempt{}, "", fmt.Errorf("store attempt: %w", err)
	}
	return a, init.AuthorizationURL, nil
}

// Cancel handles the user closing the payment widget: the attempt is dropped
// and nothing else changes.
func (o *Orchestrator) Cancel(ctx context.Context, reference string) error {
	a, err := o.Attempts.Get(ctx, reference)
	if err != nil {
		return err
	}
	if a.State != StateAwaitingPayment {
		return ErrAlreadyCompleted
	}
	return o.Attempts.Delete(ctx, reference)
}

// Complete verifies the charge and performs the two-step order write: header
// first, items only after the header succeeded. An items failure leaves the
// header row behind for manual review; no compensating delete is attempted.
func (o *Orchestrator) Complete(ctx context.Context, reference string) (Attempt, error) {
	a, err := o.Attempts.Get(ctx, reference)
	if err != nil {
		return Attempt{}, err
	}
	if a.State == StateSucceeded || a.State == StateFailed {
		return a, nil // replayed callback
	}
	if !CanTransition(a.State, StateRecording) {
		return a, fmt.Errorf("checkout: cannot record from state %s", a.State)
	}

	v, err := o.Payments.Verify(ctx, reference)
	if err != nil {
		return a, fmt.Errorf("verify payment: %w", err)
	}
	if v.Status != "success" {
		a.State = StateFailed
		o.putAttempt(ctx, a)
		return a, fmt.Errorf("%w: provider reported %q", ErrPaymentNotConfirmed, v.Status)
	}

	a.State = StateRecording
	o.putAttempt(ctx, a)

	lines := o.Cart.Lines(ctx, a.Session)
	items := make([]orders.ItemInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, orders.ItemInput{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price})
	}
	total := a.AmountKobo / 100

	orderID, err := o.Orders.CreateOrder(ctx, a.Reference, a.Email, total)
	if err != nil {
		a.State = StateFailed
		o.putAttempt(ctx, a)
		return a, fmt.Errorf("%w: %v", ErrOrderRecordFailed, err)
	}
	if err := o.Orders.InsertItems(ctx, orderID, items); err != nil {
		log.Printf("checkout: order %s recorded without items, needs manual review: %v", orderID, err)
		a.State = StateFailed
		o.putAttempt(ctx, a)
		return a, fmt.Errorf("%w: %v", ErrItemsRecordFailed, err)
	}

	a.State = StateSucceeded
	o.putAttempt(ctx, a)
	o.Cart.Clear(ctx, a.Session)
	o.Cart.SetOpen(a.Session, false)
	o.publishPlaced(orderID, a, items, total)
	return a, nil
}

// State reports the current attempt state for polling.
func (o *Orchestrator) State(ctx context.Context, reference string) (Attempt, error) {
	return o.Attempts.Get(ctx, reference)
}

func (o *Orchestrator) putAttempt(ctx context.Context, a Attempt) {
	if err := o.Attempts.Put(ctx, a); err != nil {
		log.Printf("checkout: store attempt %s: %v", a.Reference, err)
	}
}

func (o *Orchestrator) publishPlaced(orderID string, a Attempt, items []orders.ItemInput, total int) {
	if o.Producer == nil {
		return
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      o.Service,
		CorrelationID: orderID,
	}
	ev.Payload = kafkax.MustMarshal(orders.OrderPlacedPayload{
		OrderID:       orderID,
		Reference:     a.Reference,
		CustomerEmail: a.Email,
		Items:         items,
		TotalAmount:   total,
	})
	o.Producer.Publish(orders.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
