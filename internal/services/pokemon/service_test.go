package pokemon

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/store/repositories"
)

// fakeRepo is an in-memory PokemonRepository with injectable failures.
type fakeRepo struct {
	items     []pokemon.Pokemon
	insertErr error
	findErr   error
	countErr  error
	deleteErr error
}

var _ repositories.PokemonRepository = (*fakeRepo)(nil)

func (f *fakeRepo) Insert(_ context.Context, p *pokemon.Pokemon) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.items = append(f.items, *p)
	return nil
}

func (f *fakeRepo) FindAndCount(_ context.Context, limit, offset int) ([]pokemon.Pokemon, int64, error) {
	if f.findErr != nil {
		return nil, 0, f.findErr
	}
	sorted := make([]pokemon.Pokemon, len(f.items))
	copy(sorted, f.items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	total := int64(len(sorted))
	if offset >= len(sorted) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], total, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.items)), nil
}

func (f *fakeRepo) FindByName(_ context.Context, name string) (*pokemon.Pokemon, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.items {
		if f.items[i].Name == name {
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRepo) DeleteAll(_ context.Context) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.items = nil
	return nil
}

func TestParseListRequestDefaults(t *testing.T) {
	t.Parallel()

	req, err := ParseListRequest("", "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Page != 1 {
		t.Fatalf("page = %d, want 1", req.Page)
	}
	if req.Limit != 10 {
		t.Fatalf("limit = %d, want 10", req.Limit)
	}
}

func TestParseListRequestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      string
		limit     string
		wantField string
	}{
		{"page zero", "0", "", "page"},
		{"page negative", "-3", "", "page"},
		{"page not a number", "abc", "", "page"},
		{"page fractional", "1.5", "", "page"},
		{"limit zero", "", "0", "limit"},
		{"limit negative", "", "-1", "limit"},
		{"limit not a number", "", "ten", "limit"},
		{"page reported before limit", "x", "y", "page"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseListRequest(tc.page, tc.limit)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Fatalf("field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

func TestParseListRequestExplicitValues(t *testing.T) {
	t.Parallel()

	req, err := ParseListRequest("2", "25")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if req.Page != 2 {
		t.Fatalf("page = %d, want 2", req.Page)
	}
	if req.Limit != 25 {
		t.Fatalf("limit = %d, want 25", req.Limit)
	}
}

func TestCreateRequiresNameAndType(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})

	tests := []struct {
		name      string
		req       CreateRequest
		wantField string
	}{
		{"missing name", CreateRequest{Type: "Electric"}, "name"},
		{"missing type", CreateRequest{Name: "Pikachu"}, "type"},
		{"missing both", CreateRequest{}, "name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Create(context.Background(), tc.req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Fatalf("field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

func TestCreatePersistsAndEchoes(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	got, err := svc.Create(context.Background(), CreateRequest{Name: "Pikachu", Type: "Electric"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Name != "Pikachu" || got.Type != "Electric" {
		t.Fatalf("created = %+v, want Pikachu/Electric", got)
	}
	if len(repo.items) != 1 {
		t.Fatalf("stored %d items, want 1", len(repo.items))
	}
}

func TestCreateWrapsStoreFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	svc := NewService(&fakeRepo{insertErr: boom})

	_, err := svc.Create(context.Background(), CreateRequest{Name: "Pikachu", Type: "Electric"})
	var serr *ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *ServiceError", err)
	}
	if serr.Op != "create" {
		t.Fatalf("op = %q, want %q", serr.Op, "create")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestListSecondPageOfFifteen(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	// Inserted out of order; listing must sort by name.
	for _, i := range []int{9, 3, 15, 1, 12, 7, 5, 14, 2, 10, 6, 13, 4, 11, 8} {
		repo.items = append(repo.items, pokemon.Pokemon{Name: fmt.Sprintf("P%02d", i), Type: "Normal"})
	}
	svc := NewService(repo)

	res, err := svc.List(context.Background(), ListRequest{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 15 {
		t.Fatalf("total = %d, want 15", res.Total)
	}
	if res.Page != 2 || res.Limit != 10 {
		t.Fatalf("page/limit = %d/%d, want 2/10", res.Page, res.Limit)
	}
	if res.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", res.TotalPages)
	}
	if len(res.Items) != 5 {
		t.Fatalf("len(items) = %d, want 5", len(res.Items))
	}
	if res.Items[0].Name != "P11" || res.Items[4].Name != "P15" {
		t.Fatalf("page 2 spans %q..%q, want P11..P15", res.Items[0].Name, res.Items[4].Name)
	}
}

func TestListEmptyStore(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})

	res, err := svc.List(context.Background(), ListRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("total = %d, want 0", res.Total)
	}
	if res.TotalPages != 0 {
		t.Fatalf("totalPages = %d, want 0", res.TotalPages)
	}
	if res.Items == nil {
		t.Fatal("items is nil, want empty slice")
	}
	if len(res.Items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(res.Items))
	}
}

func TestListPageBeyondData(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{items: []pokemon.Pokemon{{Name: "Pikachu", Type: "Electric"}}}
	svc := NewService(repo)

	res, err := svc.List(context.Background(), ListRequest{Page: 5, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(res.Items))
	}
	if res.Items == nil {
		t.Fatal("items is nil, want empty slice")
	}
	if res.Total != 1 {
		t.Fatalf("total = %d, want 1", res.Total)
	}
	if res.TotalPages != 1 {
		t.Fatalf("totalPages = %d, want 1", res.TotalPages)
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
		{5, 1, 5},
	}

	for _, tc := range tests {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestGetByName(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{items: []pokemon.Pokemon{{Name: "Snorlax", Type: "Normal"}}}
	svc := NewService(repo)

	got, err := svc.GetByName(context.Background(), "Snorlax")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != "Normal" {
		t.Fatalf("type = %q, want %q", got.Type, "Normal")
	}

	if _, err := svc.GetByName(context.Background(), "Missingno"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteAllThenCount(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{items: []pokemon.Pokemon{
		{Name: "Mew", Type: "Psychic"},
		{Name: "Mewtwo", Type: "Psychic"},
	}}
	svc := NewService(repo)

	if err := svc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	total, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}

func TestListWrapsStoreFailure(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{findErr: errors.New("boom")})

	_, err := svc.List(context.Background(), ListRequest{Page: 1, Limit: 10})
	var serr *ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *ServiceError", err)
	}
	if serr.Op != "list" {
		t.Fatalf("op = %q, want %q", serr.Op, "list")
	}
}
