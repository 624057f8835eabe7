// Package entities contains the domain records persisted by the repositories
package entities

import "time"

// BirthdateLayout is the calendar-date format trainers are created with
const BirthdateLayout = "2006-01-02"

// Trainer is a Pokémon trainer owning zero or more pokemons and items
type Trainer struct {
	ID        int64
	Name      string
	Birthdate time.Time

	// Inventory and Pokemons are hydrated by the roster orchestrator,
	// repositories never populate them.
	Inventory []*Item
	Pokemons  []*Pokemon
}

// Age returns the trainer's age in whole years at now
func (t *Trainer) Age(now time.Time) int {
	if t.Birthdate.IsZero() {
		return 0
	}

	age := now.Year() - t.Birthdate.Year()
	if now.Month() < t.Birthdate.Month() ||
		(now.Month() == t.Birthdate.Month() && now.Day() < t.Birthdate.Day()) {
		age--
	}
	return age
}

// PokemonCount returns the number of pokemons owned by the trainer
func (t *Trainer) PokemonCount() int {
	return len(t.Pokemons)
}

// Pokemon is a creature owned by a trainer.
// Name is copied from the reference API when the pokemon is created.
type Pokemon struct {
	ID         int64
	APIID      int
	Name       string
	CustomName string
	TrainerID  int64
}

// Item is an object in a trainer's inventory
type Item struct {
	ID          int64
	Name        string
	Description string
	TrainerID   int64
}
