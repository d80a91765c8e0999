// Package trends consumes order-placed events and maintains the best-seller
// ranking served on the storefront.
package trends

import (
	"context"
	"encoding/json"
	"log"

	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/lumintechservices-ai/reggies/internal/kafka"
	"github.com/lumintechservices-ai/reggies/internal/orders"
)

// Recorder is satisfied by *catalog.Ranking.
type Recorder interface {
	Record(ctx context.Context, productID string, qty int) error
}

// Deduper remembers processed event ids so replayed deliveries are no-ops.
type Deduper interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

type Service struct {
	Ranking Recorder
	Dedup   Deduper
}

// HandleOrderPlaced is wired as the consumer handler.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderPlaced {
		return nil
	}

	if seen, err := s.Dedup.Seen(ctx, env.EventID); err != nil {
		log.Printf("trends: dedup check %s: %v", env.EventID, err)
	} else if seen {
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}
	for _, it := range p.Items {
		if err := s.Ranking.Record(ctx, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	if err := s.Dedup.Mark(ctx, env.EventID); err != nil {
		log.Printf("trends: dedup mark %s: %v", env.EventID, err)
	}
	return nil
}
