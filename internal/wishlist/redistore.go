package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/lumintechservices-ai/reggies/internal/redisx"
)

// RedisStore keeps each session's wishlist as a JSON array of product ids
// under wishlist:{session}.
type RedisStore struct {
	Client *redis.Client
}

func (s *RedisStore) Load(ctx context.Context, session string) ([]string, error) {
	b, err := s.Client.Get(ctx, fmt.Sprintf(redisx.KeyWishlist, session)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		log.Printf("wishlist: unparseable state for session %s: %v", session, err)
		return nil, nil
	}
	return ids, nil
}

func (s *RedisStore) Save(ctx context.Context, session string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, fmt.Sprintf(redisx.KeyWishlist, session), b, redisx.TTLWishlist).Err()
}
