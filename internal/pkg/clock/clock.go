// Package clock abstracts the wall clock so trainer ages and birthdate
// checks can be tested against a fixed date.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/pokemon-api/internal/pkg/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

type system struct{}

// Now returns the current time in UTC, the zone birthdates are stored in
func (system) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return system{}
}
