package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameNumberDayZero(t *testing.T) {
	start := time.Date(2022, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, GameNumber(start))
	assert.Equal(t, -1, GameNumber(start.Add(-time.Second)))
}

func TestGameNumberStableWithinUTCDay(t *testing.T) {
	midnight := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	want := GameNumber(midnight)

	for _, off := range []time.Duration{time.Second, time.Hour, 12 * time.Hour, 24*time.Hour - time.Nanosecond} {
		assert.Equal(t, want, GameNumber(midnight.Add(off)), "offset %v", off)
	}
}

func TestGameNumberIncrementsDaily(t *testing.T) {
	day := time.Date(2024, 2, 27, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		next := day.Add(24 * time.Hour)
		assert.Equal(t, GameNumber(day)+1, GameNumber(next))
		day = next
	}
}

func TestGameNumberIgnoresLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 08:00 in Tokyo on the 10th is still the 9th in UTC.
	local := time.Date(2025, 3, 10, 8, 0, 0, 0, tokyo)
	utc := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, GameNumber(utc), GameNumber(local))
}

func TestDayStartInvertsGameNumber(t *testing.T) {
	for _, n := range []int{0, 1, 42, 1000} {
		start := DayStart(n)
		assert.Equal(t, n, GameNumber(start))
		assert.Equal(t, n, GameNumber(start.Add(23*time.Hour)))
		assert.Equal(t, 0, start.Hour())
	}
	assert.Equal(t, "2022-06-04", DateKey(DayStart(0)))
}

func TestDateKeyUsesUTC(t *testing.T) {
	la := time.FixedZone("PDT", -7*60*60)
	assert.Equal(t, "2025-03-10", DateKey(time.Date(2025, 3, 9, 20, 0, 0, 0, la)))
}
