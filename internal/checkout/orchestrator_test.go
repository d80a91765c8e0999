package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumintechservices-ai/reggies/internal/cart"
	"github.com/lumintechservices-ai/reggies/internal/orders"
)

type memCartStore struct {
	m    sync.Mutex
	data map[string][]cart.Line
}

func (s *memCartStore) Load(_ context.Context, session string) ([]cart.Line, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.data[session], nil
}

func (s *memCartStore) Save(_ context.Context, session string, lines []cart.Line) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.data == nil {
		s.data = make(map[string][]cart.Line)
	}
	s.data[session] = lines
	return nil
}

type mockProvider struct {
	initCalls   int
	verifyCalls int
	initErr     error
	verifyRes   VerifyResult
	verifyErr   error
	lastInit    InitRequest
}

func (p *mockProvider) Initialize(_ context.Context, req InitRequest) (InitResponse, error) {
	p.initCalls++
	p.lastInit = req
	if p.initErr != nil {
		return InitResponse{}, p.initErr
	}
	return InitResponse{
		AuthorizationURL: "https://checkout.example/" + req.Reference,
		AccessCode:       "ac_" + req.Reference,
		Reference:        req.Reference,
	}, nil
}

func (p *mockProvider) Verify(_ context.Context, reference string) (VerifyResult, error) {
	p.verifyCalls++
	if p.verifyErr != nil {
		return VerifyResult{}, p.verifyErr
	}
	res := p.verifyRes
	if res.Status == "" {
		res.Status = "success"
	}
	res.Reference = reference
	return res, nil
}

type mockOrderStore struct {
	headerErr error
	itemsErr  error
	header    *orders.Order
	items     []orders.ItemInput
}

func (s *mockOrderStore) CreateOrder(_ context.Context, reference, email string, total int) (string, error) {
	if s.headerErr != nil {
		return "", s.headerErr
	}
	s.header = &orders.Order{ID: "order-1", Reference: reference, CustomerEmail: email, TotalAmount: total}
	return s.header.ID, nil
}

func (s *mockOrderStore) InsertItems(_ context.Context, orderID string, items []orders.ItemInput) error {
	if s.itemsErr != nil {
		return s.itemsErr
	}
	s.items = append(s.items, items...)
	return nil
}

type memAttempts struct {
	m    sync.Mutex
	data map[string]Attempt
}

func (s *memAttempts) Put(_ context.Context, a Attempt) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.data == nil {
		s.data = make(map[string]Attempt)
	}
	s.data[a.Reference] = a
	return nil
}

func (s *memAttempts) Get(_ context.Context, reference string) (Attempt, error) {
	s.m.Lock()
	defer s.m.Unlock()
	a, ok := s.data[reference]
	if !ok {
		return Attempt{}, ErrNoAttempt
	}
	return a, nil
}

func (s *memAttempts) Delete(_ context.Context, reference string) error {
	s.m.Lock()
	defer s.m.Unlock()
	delete(s.data, reference)
	return nil
}

type mockPublisher struct {
	msgs [][]byte
}

func (p *mockPublisher) Publish(_, value []byte, _ ...kafkago.Header) {
	p.msgs = append(p.msgs, value)
}

const sid = "session-1"

func fixture(t *testing.T) (*Orchestrator, *cart.Manager, *mockProvider, *mockOrderStore, *mockPublisher) {
	t.Helper()
	cm := cart.NewManager(&memCartStore{})
	provider := &mockProvider{}
	store := &mockOrderStore{}
	pub := &mockPublisher{}
	o := &Orchestrator{
		Cart:     cm,
		Payments: provider,
		Orders:   store,
		Attempts: &memAttempts{},
		Producer: pub,
		Service:  "storefront-api-test",
	}
	return o, cm, provider, store, pub
}

func TestStartRefusedWithoutEmail(t *testing.T) {
	ctx := context.Background()
	o, cm, provider, _, _ := fixture(t)
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 1000, Quantity: 1})

	_, _, err := o.Start(ctx, sid, "  ")

	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Zero(t, provider.initCalls, "no payment call may be issued")
}

func TestStartRefusedWithEmptyCart(t *testing.T) {
	ctx := context.Background()
	o, _, provider, _, _ := fixture(t)

	_, _, err := o.Start(ctx, sid, "ada@example.com")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, provider.initCalls)
}

func TestStartMovesToAwaitingPayment(t *testing.T) {
	ctx := context.Background()
	o, cm, provider, _, _ := fixture(t)
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 3500, Quantity: 2})

	a, authURL, err := o.Start(ctx, sid, "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, StateAwaitingPayment, a.State)
	assert.Equal(t, 3500*2*100, a.AmountKobo, "amount is converted to kobo")
	assert.Equal(t, a.AmountKobo, provider.lastInit.AmountKobo)
	assert.NotEmpty(t, a.Reference)
	assert.Contains(t, authURL, a.Reference)

	stored, err := o.State(ctx, a.Reference)
	require.NoError(t, err)
	assert.Equal(t, a, stored)
}

func TestCancelDropsAttemptAndKeepsCart(t *testing.T) {
	ctx := context.Background()
	o, cm, _, _, _ := fixture(t)
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 1000, Quantity: 1})
	a, _, err := o.Start(ctx, sid, "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, o.Cancel(ctx, a.Reference))

	_, err = o.State(ctx, a.Reference)
	assert.ErrorIs(t, err, ErrNoAttempt)
	assert.Len(t, cm.Lines(ctx, sid), 1, "cancellation leaves the cart alone")
}

func TestCompleteRecordsOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	o, cm, provider, store, pub := fixture(t)
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 3500, Quantity: 2})
	cm.AddLine(ctx, sid, cart.Line{ProductID: "b", Price: 3000, Quantity: 1})
	cm.SetOpen(sid, true)
	a, _, err := o.Start(ctx, sid, "ada@example.com")
	require.NoError(t, err)

	done, err := o.Complete(ctx, a.Reference)
	require.NoError(t, err)

	assert.Equal(t, StateSucceeded, done.State)
	assert.Equal(t, 1, provider.verifyCalls)
	require.NotNil(t, store.header)
	assert.Equal(t, a.Reference, store.header.Reference)
	assert.Equal(t, 10000, store.header.TotalAmount)
	require.Len(t, store.items, 2)
	assert.Equal(t, "a", store.items[0].ProductID)
	assert.Empty(t, cm.Lines(ctx, sid), "cart is cleared on success")
	assert.False(t, cm.IsOpen(sid), "panel is closed on success")
	assert.Len(t, pub.msgs, 1, "order placed event is published")
}

func TestCompleteHeaderFailureAttemptsNoItems(t *testing.T) {
	ctx := context.Background()
	o, cm, _, store, pub := fixture(t)
	store.headerErr = errors.New("insert refused")
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 1000, Quantity: 1})
	a, _, err := o.Start(ctx, sid, "ada@example.com")
	require.NoError(t, err)

	done, err := o.Complete(ctx, a.Reference)

	assert.ErrorIs(t, err, ErrOrderRecordFailed)
	assert.Equal(t, StateFailed, done.State)
	assert.Nil(t, store.header)
	assert.Empty(t, store.items, "items must not be attempted after a header failure")
	assert.Len(t, cm.Lines(ctx, sid), 1, "cart is not cleared")
	assert.Empty(t, pub.msgs)
}

func TestCompleteItemsFailureLeavesHeaderOrphaned(t *testing.T) {
	ctx := context.Background()
	o, cm, _, store, pub := fixture(t)
	store.itemsErr = errors.New("insert refused")
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 1000, Quantity: 1})
	a, _, err := o.Start(ctx, sid, "ada@example.com")
	require.NoError(t, err)

	done, err := o.Complete(ctx, a.Reference)

	assert.ErrorIs(t, err, ErrItemsRecordFailed)
	assert.Equal(t, StateFailed, done.State)
	require.NotNil(t, store.header, "header row stays behind, no compensating delete")
	assert.Empty(t, store.items)
	assert.Len(t, cm.Lines(ctx, sid), 1, "cart is not cleared")
	assert.Empty(t, pub.msgs)
}

func TestCompleteRefusedWhenPaymentNotConfirmed(t *testing.T) {
	ctx := context.Background()
	o, cm, provider, store, _ := fixture(t)
	provider.verifyRes = VerifyResult{Status: "abandoned"}
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 1000, Quantity: 1})
	a, _, err := o.Start(ctx, sid, "ada@example.com")
	require.NoError(t, err)

	done, err := o.Complete(ctx, a.Reference)

	assert.ErrorIs(t, err, ErrPaymentNotConfirmed)
	assert.Equal(t, StateFailed, done.State)
	assert.Nil(t, store.header, "nothing is written without a confirmed charge")
}

func TestCompleteUnknownReference(t *testing.T) {
	ctx := context.Background()
	o, _, _, _, _ := fixture(t)

	_, err := o.Complete(ctx, "missing")

	assert.ErrorIs(t, err, ErrNoAttempt)
}

func TestCompleteReplayedCallbackIsIdempotent(t *testing.T) {
	ctx := context.Background()
	o, cm, _, store, pub := fixture(t)
	cm.AddLine(ctx, sid, cart.Line{ProductID: "a", Price: 1000, Quantity: 1})
	a, _, err := o.Start(ctx, sid, "ada@example.com")
	require.NoError(t, err)

	_, err = o.Complete(ctx, a.Reference)
	require.NoError(t, err)
	done, err := o.Complete(ctx, a.Reference)
	require.NoError(t, err)

	assert.Equal(t, StateSucceeded, done.State)
	assert.Len(t, store.items, 1, "items are not recorded twice")
	assert.Len(t, pub.msgs, 1)
}
