// Package sqlite provides a SQLite-backed pokemon repository so the service
// can run (and its tests can exercise real SQL) without an external database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/store/repositories"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Store persists pokemon in a SQLite file.
type Store struct {
	sqlDB *sql.DB
}

var _ repositories.PokemonRepository = (*Store)(nil)

// Open opens (or creates) the database file and bootstraps the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(`
		CREATE TABLE IF NOT EXISTS pokemon (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			type TEXT NOT NULL
		)`); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if _, err := sqlDB.Exec(`CREATE INDEX IF NOT EXISTS pokemon_name_idx ON pokemon (name)`); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func MustOpen(path string) *Store {
	store, err := Open(path)
	if err != nil {
		log.Fatal().Err(err).Msg("sqlite open fail")
	}
	return store
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Insert saves one pokemon. Duplicate names are allowed.
func (s *Store) Insert(ctx context.Context, p *pokemon.Pokemon) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO pokemon (name, type)
		VALUES (?, ?)`, p.Name, p.Type)
	return err
}

// FindAndCount returns one page ordered by name ascending plus the table total.
// The id tiebreaker keeps pages stable when names repeat.
func (s *Store) FindAndCount(ctx context.Context, limit, offset int) ([]pokemon.Pokemon, int64, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT name, type
		FROM pokemon
		ORDER BY name ASC, id ASC
		LIMIT ? OFFSET ?`, limit, offset)
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

	total, err := s.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Count returns the number of stored pokemon.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`).Scan(&total)
	return total, err
}

// FindByName finds the first pokemon with the given name.
func (s *Store) FindByName(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT name, type
		FROM pokemon
		WHERE name = ?
		ORDER BY id ASC
		LIMIT 1`, name)

	var p pokemon.Pokemon
	if err := row.Scan(&p.Name, &p.Type); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeleteAll removes every pokemon.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.sqlDB.ExecContext(ctx, `DELETE FROM pokemon`)
	return err
}
