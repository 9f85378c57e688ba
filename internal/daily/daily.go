// internal/daily/daily.go
//
// Daily puzzle identity.
// Every player sees the same game number for a given UTC calendar day:
//   - GameNumber: whole days since the Unix epoch, minus StartDay.
//   - DateKey:    YYYY-MM-DD for the same UTC day (logging / display).
//   - DayStart:   inverse of GameNumber (UTC midnight of game n).

package daily

import "time"

// StartDay is the Unix day index of game zero (2022-06-04 UTC).
const StartDay = 19147

const secondsPerDay = 24 * 60 * 60

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// GameNumber returns the puzzle number for the UTC day containing t.
// Instants before the epoch still floor toward the earlier day.
func GameNumber(t time.Time) int {
	return int(floorDiv(t.Unix(), secondsPerDay)) - StartDay
}

// DayStart returns UTC midnight of the day game n is played.
func DayStart(n int) time.Time {
	return time.Unix(int64(n+StartDay)*secondsPerDay, 0).UTC()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
