package httpx

import (
	"encoding/json"
	"net/http"

	"pokedex/internal/config"
	"pokedex/internal/http/handlers"
	middlewarex "pokedex/internal/http/middleware"
	"pokedex/internal/services/pokemon"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config         config.Cfg
	PokemonService *pokemon.Service
	RateLimiter    middlewarex.CounterStore // nil disables rate limiting
}

// NewRouter creates the HTTP router around the shared pokemon service
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// Health check (public, never rate limited)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
		})
	})

	// Pokemon resource
	r.Route("/pokemon", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(middlewarex.RateLimit(deps.RateLimiter, deps.Config.Redis.RateLimitPerMin))
		}

		r.Post("/", handlers.CreatePokemon(deps.PokemonService))
		r.Get("/", handlers.ListPokemon(deps.PokemonService))
		r.Delete("/", handlers.DeleteAllPokemon(deps.PokemonService))

		// The static segment wins over {name}, so a pokemon named
		// "count" is only reachable through the list.
		r.Get("/count", handlers.CountPokemon(deps.PokemonService))
		r.Get("/{name}", handlers.GetPokemon(deps.PokemonService))
	})

	return r
}
