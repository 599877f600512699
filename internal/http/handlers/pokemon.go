package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"pokedex/internal/services/pokemon"
	"pokedex/internal/store/repositories"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CreatePokemon handles create requests using the pokemon service
func CreatePokemon(svc *pokemon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in pokemon.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeData(w, http.StatusBadRequest, "bad json")
			return
		}

		created, err := svc.Create(r.Context(), in)
		if err != nil {
			var verr *pokemon.ValidationError
			if errors.As(err, &verr) {
				writeData(w, http.StatusBadRequest, verr.Error())
				return
			}
			log.Error().Err(err).
				Str("name", in.Name).
				Msg("create pokemon failed")
			writeData(w, http.StatusInternalServerError, "failed to create pokemon")
			return
		}

		writeData(w, http.StatusCreated, created)
	}
}

// ListPokemon handles paginated listing using the pokemon service
func ListPokemon(svc *pokemon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := pokemon.ParseListRequest(
			r.URL.Query().Get("page"),
			r.URL.Query().Get("limit"),
		)
		if err != nil {
			writeData(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := svc.List(r.Context(), req)
		if err != nil {
			log.Error().Err(err).
				Int("page", req.Page).
				Int("limit", req.Limit).
				Msg("list pokemon failed")
			writeData(w, http.StatusInternalServerError, "failed to list pokemon")
			return
		}

		writeData(w, http.StatusOK, res)
	}
}

// CountPokemon reports the stored total. The body is {"total": n}, not the
// data envelope.
func CountPokemon(svc *pokemon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("count pokemon failed")
			writeData(w, http.StatusInternalServerError, "failed to count pokemon")
			return
		}

		writeJSON(w, http.StatusOK, map[string]int64{"total": total})
	}
}

// GetPokemon looks one pokemon up by exact name. A miss is 404 with
// {"data": null} so clients can treat both outcomes uniformly.
func GetPokemon(svc *pokemon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}

		p, err := svc.GetByName(r.Context(), name)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				writeData(w, http.StatusNotFound, nil)
				return
			}
			log.Error().Err(err).
				Str("name", name).
				Msg("get pokemon failed")
			writeData(w, http.StatusInternalServerError, "failed to get pokemon")
			return
		}

		writeData(w, http.StatusOK, p)
	}
}

// DeleteAllPokemon clears the catalog. There is no undo.
func DeleteAllPokemon(svc *pokemon.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteAll(r.Context()); err != nil {
			log.Error().Err(err).Msg("delete all pokemon failed")
			writeData(w, http.StatusInternalServerError, "failed to delete pokemon")
			return
		}

		writeData(w, http.StatusOK, "all pokemon deleted")
	}
}
