package main

import (
	"context"
	"fmt"
	"os"

	"pokedex/internal/config"
	"pokedex/internal/domain/pokemon"
	"pokedex/internal/store/postgres"
	"pokedex/internal/store/repositories"
	"pokedex/internal/store/sqlite"
)

// usage: go run tools/pd_seed.go
// Seeds the configured store with the starter set for local poking.

var starters = []pokemon.Pokemon{
	{Name: "Bulbasaur", Type: "Grass"},
	{Name: "Charmander", Type: "Fire"},
	{Name: "Squirtle", Type: "Water"},
	{Name: "Pikachu", Type: "Electric"},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

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
			fmt.Println("schema bootstrap failed:", err)
			os.Exit(1)
		}
		repo = pg
	}

	for _, p := range starters {
		if err := repo.Insert(ctx, &p); err != nil {
			fmt.Println("insert failed:", err)
			os.Exit(1)
		}
	}

	total, err := repo.Count(ctx)
	if err != nil {
		fmt.Println("count failed:", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d pokemon (store total %d)\n", len(starters), total)
}
