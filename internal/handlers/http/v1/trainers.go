package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/roster"
)

// CreateTrainer handles POST /trainers
func (h *Handler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	birthdate, err := time.Parse(entities.BirthdateLayout, strings.TrimSpace(req.Birthdate))
	if err != nil {
		respondError(w, r, errors.InvalidArgumentf("birthdate must be a YYYY-MM-DD date, got %q", req.Birthdate))
		return
	}

	out, err := h.roster.CreateTrainer(r.Context(), &roster.CreateTrainerInput{
		Name:      strings.TrimSpace(req.Name),
		Birthdate: birthdate,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toTrainer(out.Trainer, h.clock.Now()))
}

// ListTrainers handles GET /trainers?skip=&limit=&name=
func (h *Handler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	win, err := parseWindow(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if win.empty {
		respondJSON(w, r, http.StatusOK, []*Trainer{})
		return
	}

	out, err := h.roster.ListTrainers(r.Context(), &roster.ListTrainersInput{
		Offset: win.offset,
		Limit:  win.limit,
		Name:   r.URL.Query().Get("name"),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	now := h.clock.Now()
	trainers := make([]*Trainer, 0, len(out.Trainers))
	for _, t := range out.Trainers {
		trainers = append(trainers, toTrainer(t, now))
	}

	respondJSON(w, r, http.StatusOK, trainers)
}

// GetTrainer handles GET /trainers/{trainerID}
func (h *Handler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	trainerID, err := parseIDParam(r, "trainerID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	out, err := h.roster.GetTrainer(r.Context(), &roster.GetTrainerInput{TrainerID: trainerID})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toTrainer(out.Trainer, h.clock.Now()))
}

// AddItem handles POST /trainers/{trainerID}/item
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	trainerID, err := parseIDParam(r, "trainerID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req CreateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	out, err := h.roster.AddItem(r.Context(), &roster.AddItemInput{
		TrainerID:   trainerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toItem(out.Item))
}

// AddPokemon handles POST /trainers/{trainerID}/pokemon
func (h *Handler) AddPokemon(w http.ResponseWriter, r *http.Request) {
	trainerID, err := parseIDParam(r, "trainerID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req CreatePokemonRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	out, err := h.roster.AddPokemon(r.Context(), &roster.AddPokemonInput{
		TrainerID:  trainerID,
		APIID:      req.APIID,
		CustomName: strings.TrimSpace(req.CustomName),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toPokemon(out.Pokemon))
}
