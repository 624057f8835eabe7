package v1

import (
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

// CreateTrainerRequest is the body of POST /trainers
type CreateTrainerRequest struct {
	Name string `json:"name"`
	// Birthdate is a calendar date, YYYY-MM-DD
	Birthdate string `json:"birthdate"`
}

// CreateItemRequest is the body of POST /trainers/{trainerID}/item
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePokemonRequest is the body of POST /trainers/{trainerID}/pokemon
type CreatePokemonRequest struct {
	APIID      int    `json:"api_id"`
	CustomName string `json:"custom_name"`
}

// Trainer is the JSON form of a trainer
type Trainer struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Birthdate string     `json:"birthdate"`
	Age       int        `json:"age"`
	Inventory []*Item    `json:"inventory"`
	Pokemons  []*Pokemon `json:"pokemons"`
}

// Item is the JSON form of an inventory item
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TrainerID   int64  `json:"trainer_id"`
}

// Pokemon is the JSON form of an owned pokemon
type Pokemon struct {
	ID         int64  `json:"id"`
	APIID      int    `json:"api_id"`
	Name       string `json:"name"`
	CustomName string `json:"custom_name"`
	TrainerID  int64  `json:"trainer_id"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

func toTrainer(t *entities.Trainer, now time.Time) *Trainer {
	out := &Trainer{
		ID:        t.ID,
		Name:      t.Name,
		Birthdate: t.Birthdate.Format(entities.BirthdateLayout),
		Age:       t.Age(now),
		Inventory: make([]*Item, 0, len(t.Inventory)),
		Pokemons:  make([]*Pokemon, 0, len(t.Pokemons)),
	}
	for _, i := range t.Inventory {
		out.Inventory = append(out.Inventory, toItem(i))
	}
	for _, p := range t.Pokemons {
		out.Pokemons = append(out.Pokemons, toPokemon(p))
	}
	return out
}

func toItem(i *entities.Item) *Item {
	return &Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		TrainerID:   i.TrainerID,
	}
}

func toPokemon(p *entities.Pokemon) *Pokemon {
	return &Pokemon{
		ID:         p.ID,
		APIID:      p.APIID,
		Name:       p.Name,
		CustomName: p.CustomName,
		TrainerID:  p.TrainerID,
	}
}

func toItems(items []*entities.Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, i := range items {
		out = append(out, toItem(i))
	}
	return out
}

func toPokemons(pokemons []*entities.Pokemon) []*Pokemon {
	out := make([]*Pokemon, 0, len(pokemons))
	for _, p := range pokemons {
		out = append(out, toPokemon(p))
	}
	return out
}
