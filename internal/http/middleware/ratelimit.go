package middlewarex

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CounterStore is the slice of Redis the limiter needs. Tests substitute an
// in-memory counter.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter implements CounterStore with INCR plus EXPIRE.
type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		// First hit in the window owns the expiry.
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// RateLimit rejects clients that exceed perMin requests inside a fixed
// one-minute window. Counter failures let the request through; losing the
// limiter must not take the API down with it.
func RateLimit(store CounterStore, perMin int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n, err := store.Incr(r.Context(), clientKey(r), time.Minute)
			if err != nil {
				log.Warn().Err(err).Msg("rate limit counter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if n > int64(perMin) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{"data": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey buckets requests by client IP and current minute.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return fmt.Sprintf("ratelimit:%s:%d", host, time.Now().Unix()/60)
}
