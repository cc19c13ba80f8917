package domain

import "github.com/jonboulle/clockwork"

// clock is the package time source, swappable so tests and fixture
// generators get reproducible ProcessedAt values.
var clock = clockwork.NewRealClock()

// SetClock swaps the package time source. Pass nil to restore real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
