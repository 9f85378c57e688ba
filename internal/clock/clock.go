package clock

import "time"

// Clock abstracts time so the day boundary can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Used by tests and by the CLI's
// --date override.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
