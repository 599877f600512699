package pokemon

// Pokemon represents a single catalog entry. Name doubles as the lookup key
// for reads, but uniqueness is not enforced anywhere.
type Pokemon struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
