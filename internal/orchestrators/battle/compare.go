package battle

import (
	"encoding/json"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// drawResult is the JSON value reported when neither side wins
const drawResult = "Draw"

// Outcome is the verdict of a battle: either a winner id or a draw
type Outcome struct {
	WinnerID int
	Draw     bool
}

// Winner returns an outcome naming id as the winner
func Winner(id int) *Outcome {
	return &Outcome{WinnerID: id}
}

// DrawOutcome returns an outcome with no winner
func DrawOutcome() *Outcome {
	return &Outcome{Draw: true}
}

// MarshalJSON renders {"Result": <id>} or {"Result": "Draw"}
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Draw {
		return json.Marshal(struct {
			Result string `json:"Result"`
		}{Result: drawResult})
	}
	return json.Marshal(struct {
		Result int `json:"Result"`
	}{Result: o.WinnerID})
}

// UnmarshalJSON accepts both result forms produced by MarshalJSON
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var doc struct {
		Result json.RawMessage `json:"Result"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var label string
	if err := json.Unmarshal(doc.Result, &label); err == nil {
		if label != drawResult {
			return errors.InvalidArgumentf("unknown battle result %q", label)
		}
		*o = Outcome{Draw: true}
		return nil
	}

	var id int
	if err := json.Unmarshal(doc.Result, &id); err != nil {
		return errors.InvalidArgumentf("battle result must be an id or %q", drawResult)
	}
	*o = Outcome{WinnerID: id}
	return nil
}

// Compare sums first[i].BaseStat - second[i].BaseStat over paired stats.
//
// When every stat on both sides has a distinct, non-empty name the stats are
// paired by name and both sides must carry the same set of names. Otherwise
// they are paired by position. Either way the lists must be the same length.
// Returns errors.FailedPrecondition when the lists cannot be paired.
func Compare(first, second []entities.Stat) (int, error) {
	if len(first) != len(second) {
		return 0, errors.FailedPreconditionf(
			"comparison failure: stat counts differ (%d vs %d)", len(first), len(second))
	}

	if hasUniqueNames(first) && hasUniqueNames(second) {
		return compareByName(first, second)
	}

	total := 0
	for i := range first {
		total += first[i].BaseStat - second[i].BaseStat
	}
	return total, nil
}

func compareByName(first, second []entities.Stat) (int, error) {
	opposing := make(map[string]int, len(second))
	for _, s := range second {
		opposing[s.Name] = s.BaseStat
	}

	total := 0
	for _, s := range first {
		other, ok := opposing[s.Name]
		if !ok {
			return 0, errors.FailedPreconditionf(
				"comparison failure: stat %q missing from second creature", s.Name)
		}
		total += s.BaseStat - other
	}
	return total, nil
}

func hasUniqueNames(stats []entities.Stat) bool {
	seen := make(map[string]struct{}, len(stats))
	for _, s := range stats {
		if s.Name == "" {
			return false
		}
		if _, dup := seen[s.Name]; dup {
			return false
		}
		seen[s.Name] = struct{}{}
	}
	return true
}

// Decide maps a comparison result onto an outcome
func Decide(result, firstID, secondID int) *Outcome {
	switch {
	case result > 0:
		return Winner(firstID)
	case result < 0:
		return Winner(secondID)
	default:
		return DrawOutcome()
	}
}
