package battle

// BattleInput names the two creatures to pit against each other by their
// reference-API ids
type BattleInput struct {
	FirstID  int
	SecondID int
}

// BattleOutput carries the verdict. Outcome is nil when either creature could
// not be resolved.
type BattleOutput struct {
	Outcome *Outcome
}
