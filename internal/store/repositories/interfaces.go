package repositories

import (
	"context"
	"errors"

	"pokedex/internal/domain/pokemon"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("pokemon not found")

// PokemonRepository defines the contract for pokemon data access.
// FindAndCount returns one page ordered by name ascending together with the
// total row count; FindByName returns ErrNotFound when nothing matches.
type PokemonRepository interface {
	Insert(ctx context.Context, p *pokemon.Pokemon) error
	FindAndCount(ctx context.Context, limit, offset int) ([]pokemon.Pokemon, int64, error)
	Count(ctx context.Context) (int64, error)
	FindByName(ctx context.Context, name string) (*pokemon.Pokemon, error)
	DeleteAll(ctx context.Context) error
}
