package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/lumintechservices-ai/reggies/internal/redisx"
)

// RedisStore keeps each session's cart as a JSON array under cart:{session}.
type RedisStore struct {
	Client *redis.Client
}

func (s *RedisStore) Load(ctx context.Context, session string) ([]Line, error) {
	b, err := s.Client.Get(ctx, fmt.Sprintf(redisx.KeyCart, session)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(b, &lines); err != nil {
		// unreadable state counts as an empty cart, not a failure
		log.Printf("cart: unparseable state for session %s: %v", session, err)
		return nil, nil
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, session string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, fmt.Sprintf(redisx.KeyCart, session), b, redisx.TTLCart).Err()
}
