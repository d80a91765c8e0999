package trends

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkax "github.com/lumintechservices-ai/reggies/internal/kafka"
	"github.com/lumintechservices-ai/reggies/internal/orders"
)

type memRecorder struct {
	counts map[string]int
}

func (r *memRecorder) Record(_ context.Context, productID string, qty int) error {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[productID] += qty
	return nil
}

type memDedup struct {
	seen map[string]bool
}

func (d *memDedup) Seen(_ context.Context, eventID string) (bool, error) {
	return d.seen[eventID], nil
}

func (d *memDedup) Mark(_ context.Context, eventID string) error {
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	d.seen[eventID] = true
	return nil
}

func placedMessage(t *testing.T, eventID string) kafkago.Message {
	t.Helper()
	env := orders.Envelope{
		EventID:      eventID,
		EventType:    orders.EventOrderPlaced,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "test",
	}
	env.Payload = kafkax.MustMarshal(orders.OrderPlacedPayload{
		OrderID: "order-1",
		Items: []orders.ItemInput{
			{ProductID: "jollof-rice-chicken", Quantity: 2, Price: 3500},
			{ProductID: "fried-dodo-egg-sauce", Quantity: 1, Price: 3000},
		},
		TotalAmount: 10000,
	})
	return kafkago.Message{Value: kafkax.MustMarshal(env)}
}

func TestHandleOrderPlacedRecordsUnits(t *testing.T) {
	rec := &memRecorder{}
	s := &Service{Ranking: rec, Dedup: &memDedup{}}

	require.NoError(t, s.HandleOrderPlaced(context.Background(), placedMessage(t, uuid.NewString())))

	assert.Equal(t, 2, rec.counts["jollof-rice-chicken"])
	assert.Equal(t, 1, rec.counts["fried-dodo-egg-sauce"])
}

func TestHandleOrderPlacedDeduplicates(t *testing.T) {
	rec := &memRecorder{}
	s := &Service{Ranking: rec, Dedup: &memDedup{}}
	msg := placedMessage(t, "evt-1")

	require.NoError(t, s.HandleOrderPlaced(context.Background(), msg))
	require.NoError(t, s.HandleOrderPlaced(context.Background(), msg))

	assert.Equal(t, 2, rec.counts["jollof-rice-chicken"], "replayed event must not double-count")
}

func TestHandleIgnoresOtherEventTypes(t *testing.T) {
	rec := &memRecorder{}
	s := &Service{Ranking: rec, Dedup: &memDedup{}}
	env := orders.Envelope{EventID: "evt-2", EventType: "SomethingElse", Payload: kafkax.MustMarshal(struct{}{})}

	require.NoError(t, s.HandleOrderPlaced(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(env)}))

	assert.Empty(t, rec.counts)
}
