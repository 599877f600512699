package pokemon

import (
	"context"
	"errors"
	"fmt"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/store/repositories"
)

// Service handles pokemon catalog operations
type Service struct {
	repo repositories.PokemonRepository
}

// NewService creates a new pokemon service
func NewService(repo repositories.PokemonRepository) *Service {
	return &Service{repo: repo}
}

// Create validates the request and persists one pokemon, returning the
// stored entity.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*pokemon.Pokemon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &pokemon.Pokemon{Name: req.Name, Type: req.Type}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, &ServiceError{Op: "create", Err: err}
	}
	return p, nil
}

// List retrieves the requested page ordered by name ascending.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	offset := (req.Page - 1) * req.Limit
	items, total, err := s.repo.FindAndCount(ctx, req.Limit, offset)
	if err != nil {
		return nil, &ServiceError{Op: "list", Err: err}
	}
	if items == nil {
		items = []pokemon.Pokemon{}
	}

	return &ListResponse{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages(total, req.Limit),
	}, nil
}

// totalPages is ceil(total/limit); an empty store has zero pages.
func totalPages(total int64, limit int) int64 {
	if total == 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}

// Count returns how many pokemon are stored.
func (s *Service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, &ServiceError{Op: "count", Err: err}
	}
	return total, nil
}

// GetByName retrieves one pokemon by exact name. Absence surfaces as
// repositories.ErrNotFound, not as a ServiceError.
func (s *Service) GetByName(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, &ServiceError{Op: "get", Err: err}
	}
	return p, nil
}

// DeleteAll clears the catalog.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return &ServiceError{Op: "delete_all", Err: err}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// ServiceError represents a service operation error
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("pokemon service [%s]: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
