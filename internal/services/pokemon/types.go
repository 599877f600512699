package pokemon

import (
	"errors"
	"strconv"
	"strings"

	"pokedex/internal/domain/pokemon"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

var validate = validator.New()

// CreateRequest is the typed schema for the create operation. Both fields
// are required; beyond presence nothing about them is validated.
type CreateRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// Validate checks the request against its schema tags.
func (req *CreateRequest) Validate() error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{Field: strings.ToLower(verrs[0].Field()), Message: "is required"}
		}
		return &ValidationError{Field: "body", Message: err.Error()}
	}
	return nil
}

// ListRequest carries validated pagination parameters.
type ListRequest struct {
	Page  int
	Limit int
}

// ParseListRequest parses raw page and limit query values, defaulting to
// page 1 and limit 10 when absent. Page is checked before limit; anything
// that is not an integer >= 1 is rejected.
func ParseListRequest(pageRaw, limitRaw string) (ListRequest, error) {
	req := ListRequest{Page: defaultPage, Limit: defaultLimit}
	if pageRaw != "" {
		n, err := strconv.Atoi(pageRaw)
		if err != nil || n < 1 {
			return ListRequest{}, &ValidationError{Field: "page", Message: "must be a positive integer"}
		}
		req.Page = n
	}
	if limitRaw != "" {
		n, err := strconv.Atoi(limitRaw)
		if err != nil || n < 1 {
			return ListRequest{}, &ValidationError{Field: "limit", Message: "must be a positive integer"}
		}
		req.Limit = n
	}
	return req, nil
}

// ListResponse represents one page of pokemon plus pagination bookkeeping.
type ListResponse struct {
	Items      []pokemon.Pokemon `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int64             `json:"totalPages"`
}
