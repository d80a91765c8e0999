package trends

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lumintechservices-ai/reggies/internal/redisx"
)

// RedisDedup keys processed events under dedup:trends:{event_id}.
type RedisDedup struct {
	Client *redis.Client
}

func (d *RedisDedup) Seen(ctx context.Context, eventID string) (bool, error) {
	return redisx.Exists(ctx, d.Client, fmt.Sprintf(redisx.KeyDedup, "trends", eventID))
}

func (d *RedisDedup) Mark(ctx context.Context, eventID string) error {
	return d.Client.Set(ctx, fmt.Sprintf(redisx.KeyDedup, "trends", eventID), "1", redisx.TTLDedup).Err()
}
