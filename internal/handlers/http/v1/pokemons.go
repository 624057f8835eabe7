package v1

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/roster"
)

// ListPokemons handles GET /pokemons?skip=&limit=
func (h *Handler) ListPokemons(w http.ResponseWriter, r *http.Request) {
	win, err := parseWindow(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if win.empty {
		respondJSON(w, r, http.StatusOK, []*Pokemon{})
		return
	}

	out, err := h.roster.ListPokemons(r.Context(), &roster.ListPokemonsInput{Offset: win.offset, Limit: win.limit})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toPokemons(out.Pokemons))
}

// GetPokemon handles GET /pokemons/{pokemonID}
func (h *Handler) GetPokemon(w http.ResponseWriter, r *http.Request) {
	pokemonID, err := parseIDParam(r, "pokemonID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	out, err := h.roster.GetPokemon(r.Context(), &roster.GetPokemonInput{PokemonID: pokemonID})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toPokemon(out.Pokemon))
}

// Battle handles GET /pokemons/battle/{first}/{second}.
// The body is {"Result": id}, {"Result": "Draw"}, or null when either
// creature could not be resolved.
func (h *Handler) Battle(w http.ResponseWriter, r *http.Request) {
	firstID, err := parseAPIIDParam(r, "first")
	if err != nil {
		respondError(w, r, err)
		return
	}
	secondID, err := parseAPIIDParam(r, "second")
	if err != nil {
		respondError(w, r, err)
		return
	}

	out, err := h.battle.Battle(r.Context(), &battle.BattleInput{FirstID: firstID, SecondID: secondID})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, out.Outcome)
}

func parseAPIIDParam(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer, got %q", param, raw)
	}
	return id, nil
}
