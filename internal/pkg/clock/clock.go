// Package clock provides an injectable time source so that date-sensitive
// business logic (order placement, shipment recording) stays deterministic
// in tests instead of reading system time directly.
package clock

import "time"

// Clock supplies the current moment to business operations.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// System is a Clock backed by the operating system time.
type System struct{}

// NewSystem creates a system-backed clock for production wiring.
func NewSystem() System {
	return System{}
}

// Now returns the current system time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a single instant, intended for tests.
type Fixed struct {
	instant time.Time
}

// NewFixed creates a clock that always reports the given instant.
func NewFixed(instant time.Time) Fixed {
	return Fixed{instant: instant}
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.instant
}
