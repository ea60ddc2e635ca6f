package game

import "time"

// Clock supplies the monotonic time used by spawn cooldowns, the
// invulnerability window and the score's survival timer. Injected so tests
// can advance simulated time instead of sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock
func SystemClock() Clock { return systemClock{} }
