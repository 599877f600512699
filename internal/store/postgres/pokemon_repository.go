package postgres

import (
	"context"
	"errors"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pokemonRepository implements PokemonRepository interface with pure data access
type pokemonRepository struct {
	db *pgxpool.Pool
}

var _ repositories.PokemonRepository = (*pokemonRepository)(nil)

// NewPokemonRepository creates a new pokemon repository
func NewPokemonRepository(db *pgxpool.Pool) *pokemonRepository {
	return &pokemonRepository{db: db}
}

// EnsureSchema creates the pokemon table when it does not exist yet.
// Startup bootstrap only, not a migration system.
func (r *pokemonRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pokemon (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL
		)`)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `CREATE INDEX IF NOT EXISTS pokemon_name_idx ON pokemon (name)`)
	return err
}

// Insert saves one pokemon. Duplicate names are allowed.
func (r *pokemonRepository) Insert(ctx context.Context, p *pokemon.Pokemon) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO pokemon (name, type)
		VALUES ($1, $2)`, p.Name, p.Type)
	return err
}

// FindAndCount returns one page ordered by name ascending plus the table total.
// The id tiebreaker keeps pages stable when names repeat.
func (r *pokemonRepository) FindAndCount(ctx context.Context, limit, offset int) ([]pokemon.Pokemon, int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, type
		FROM pokemon
		ORDER BY name ASC, id ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]pokemon.Pokemon, 0)
	for rows.Next() {
		var p pokemon.Pokemon
		if err := rows.Scan(&p.Name, &p.Type); err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Count returns the number of stored pokemon
func (r *pokemonRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pokemon`).Scan(&total)
	return total, err
}

// FindByName finds the first pokemon with the given name
func (r *pokemonRepository) FindByName(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	row := r.db.QueryRow(ctx, `
		SELECT name, type
		FROM pokemon
		WHERE name = $1
		ORDER BY id ASC
		LIMIT 1`, name)

	var p pokemon.Pokemon
	if err := row.Scan(&p.Name, &p.Type); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeleteAll removes every pokemon
func (r *pokemonRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM pokemon`)
	return err
}
