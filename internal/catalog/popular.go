package catalog

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/lumintechservices-ai/reggies/internal/redisx"
)

// Ranking tracks units sold per product in a redis sorted set. The trends
// worker writes it; the products handler reads it.
type Ranking struct {
	Redis *redis.Client
}

func (r *Ranking) Record(ctx context.Context, productID string, qty int) error {
	return r.Redis.ZIncrBy(ctx, redisx.KeyPopularProducts, float64(qty), productID).Err()
}

// TopIDs returns up to n product ids, best sellers first.
func (r *Ranking) TopIDs(ctx context.Context, n int64) ([]string, error) {
	if n <= 0 {
		n = 10
	}
	return r.Redis.ZRevRange(ctx, redisx.KeyPopularProducts, 0, n-1).Result()
}
