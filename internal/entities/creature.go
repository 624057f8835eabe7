package entities

// Stat is a named base value of a creature, e.g. attack or defense
type Stat struct {
	Name     string
	BaseStat int
}

// Creature is a reference-API Pokémon record. Stats keep the order the
// source returned them in.
type Creature struct {
	ID    int
	Name  string
	Stats []Stat
}
