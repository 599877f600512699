package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokedex/internal/config"
	httpx "pokedex/internal/http"
	middlewarex "pokedex/internal/http/middleware"
	"pokedex/internal/services/pokemon"
	"pokedex/internal/store/postgres"
	"pokedex/internal/store/repositories"
	"pokedex/internal/store/sqlite"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init store; the single repository shared by every request
	var repo repositories.PokemonRepository
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		store := sqlite.MustOpen(cfg.Store.SQLitePath)
		defer store.Close()
		repo = store
	default:
		pool := postgres.MustOpen(ctx, cfg.Store.DSN)
		defer pool.Close()
		pg := postgres.NewPokemonRepository(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("schema bootstrap fail")
		}
		repo = pg
	}

	svc := pokemon.NewService(repo)

	// Optional rate limiter; the API runs fine without Redis
	var limiter middlewarex.CounterStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, rate limiting disabled")
		} else {
			limiter = middlewarex.NewRedisCounter(rdb)
		}
		pingCancel()
	}

	// Router
	r := httpx.NewRouter(httpx.RouterDependencies{
		Config:         cfg,
		PokemonService: svc,
		RateLimiter:    limiter,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Pokedex API listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}
