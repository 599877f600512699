package postgres

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Open creates a pgx pool and verifies it with a ping, retrying with
// exponential backoff so startup survives a database that is still coming up.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	ping := func() error {
		return pool.Ping(ctx)
	}
	if err := backoff.Retry(ping, backoff.WithContext(bo, ctx)); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func MustOpen(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := Open(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect fail")
	}
	return pool
}
