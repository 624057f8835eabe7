package testutils

import (
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

const (
	// TestTrainerName is the default trainer name for test fixtures
	TestTrainerName = "Ash Ketchum"

	// Reference-API ids used across tests
	BulbasaurID  = 1
	CharmanderID = 4
	PikachuID    = 25
)

// TestBirthdate is the default trainer birthdate for test fixtures
var TestBirthdate = time.Date(1987, time.May, 22, 0, 0, 0, 0, time.UTC)

// CreateTestTrainer creates an unsaved trainer with sensible defaults
func CreateTestTrainer() *entities.Trainer {
	return &entities.Trainer{
		Name:      TestTrainerName,
		Birthdate: TestBirthdate,
	}
}

// CreateTestItem creates an unsaved item owned by trainerID
func CreateTestItem(trainerID int64) *entities.Item {
	return &entities.Item{
		Name:        "Potion",
		Description: "Restores 20 HP",
		TrainerID:   trainerID,
	}
}

// CreateTestPokemon creates an unsaved pokemon owned by trainerID
func CreateTestPokemon(trainerID int64) *entities.Pokemon {
	return &entities.Pokemon{
		APIID:      PikachuID,
		Name:       "pikachu",
		CustomName: "Sparky",
		TrainerID:  trainerID,
	}
}

// CreateTestCreature returns reference-API data for one of the known test ids.
// Unknown ids get a single zero stat.
func CreateTestCreature(id int) *entities.Creature {
	switch id {
	case BulbasaurID:
		return &entities.Creature{ID: id, Name: "bulbasaur", Stats: sixStats(45, 49, 49, 65, 65, 45)}
	case CharmanderID:
		return &entities.Creature{ID: id, Name: "charmander", Stats: sixStats(39, 52, 43, 60, 50, 65)}
	case PikachuID:
		return &entities.Creature{ID: id, Name: "pikachu", Stats: sixStats(35, 55, 40, 50, 50, 90)}
	default:
		return &entities.Creature{ID: id, Name: "missingno", Stats: []entities.Stat{{Name: "hp", BaseStat: 0}}}
	}
}

func sixStats(hp, attack, defense, spAttack, spDefense, speed int) []entities.Stat {
	return []entities.Stat{
		{Name: "hp", BaseStat: hp},
		{Name: "attack", BaseStat: attack},
		{Name: "defense", BaseStat: defense},
		{Name: "special-attack", BaseStat: spAttack},
		{Name: "special-defense", BaseStat: spDefense},
		{Name: "speed", BaseStat: speed},
	}
}
