package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/lumintechservices-ai/reggies/internal/redisx"
)

// Attempt is one checkout in flight, keyed by its payment reference.
type Attempt struct {
	Reference  string `json:"reference"`
	Session    string `json:"session"`
	Email      string `json:"email"`
	AmountKobo int    `json:"amount_kobo"`
	State      State  `json:"state"`
}

var ErrNoAttempt = errors.New("checkout: unknown reference")

type AttemptStore interface {
	Put(ctx context.Context, a Attempt) error
	Get(ctx context.Context, reference string) (Attempt, error)
	Delete(ctx context.Context, reference string) error
}

// RedisAttempts keeps each attempt as a hash under checkout:{reference}.
type RedisAttempts struct {
	Client *redis.Client
}

func (s *RedisAttempts) Put(ctx context.Context, a Attempt) error {
	key := fmt.Sprintf(redisx.KeyCheckout, a.Reference)
	pipe := s.Client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"reference":   a.Reference,
		"session":     a.Session,
		"email":       a.Email,
		"amount_kobo": a.AmountKobo,
		"state":       string(a.State),
	})
	pipe.Expire(ctx, key, redisx.TTLCheckout)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisAttempts) Get(ctx context.Context, reference string) (Attempt, error) {
	m, err := s.Client.HGetAll(ctx, fmt.Sprintf(redisx.KeyCheckout, reference)).Result()
	if err != nil {
		return Attempt{}, err
	}
	if len(m) == 0 {
		return Attempt{}, ErrNoAttempt
	}
	amount, _ := strconv.Atoi(m["amount_kobo"])
	return Attempt{
		Reference:  m["reference"],
		Session:    m["session"],
		Email:      m["email"],
		AmountKobo: amount,
		State:      State(m["state"]),
	}, nil
}

func (s *RedisAttempts) Delete(ctx context.Context, reference string) error {
	return s.Client.Del(ctx, fmt.Sprintf(redisx.KeyCheckout, reference)).Err()
}
