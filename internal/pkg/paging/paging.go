// Package paging normalizes offset/limit windows for list queries
package paging

import "github.com/KirkDiggler/pokemon-api/internal/errors"

const (
	// DefaultLimit applies when no limit is given
	DefaultLimit = 100
	// MaxLimit caps any requested limit
	MaxLimit = 500
)

// Window is a validated offset/limit pair
type Window struct {
	Offset int
	Limit  int
}

// Normalize validates offset and limit. A zero limit becomes DefaultLimit and
// anything above MaxLimit is capped.
func Normalize(offset, limit int) (Window, error) {
	vb := errors.NewValidationBuilder()
	if offset < 0 {
		vb.Fieldf("skip", "must not be negative, got %d", offset)
	}
	if limit < 0 {
		vb.Fieldf("limit", "must not be negative, got %d", limit)
	}
	if err := vb.Build(); err != nil {
		return Window{}, err
	}

	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Window{Offset: offset, Limit: limit}, nil
}

// End is the exclusive upper bound of the window
func (w Window) End() int {
	return w.Offset + w.Limit
}
