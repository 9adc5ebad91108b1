package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// America/Regina is UTC-6 year round, so a local wall time is always the
// UTC time plus six hours.
func utc(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsHappyHour(t *testing.T) {
	cases := []struct {
		instant string
		want    bool
	}{
		{"2024-06-01T22:59:00Z", false}, // 16:59 local
		{"2024-06-01T23:00:00Z", true},  // 17:00 local, boundary is inclusive
		{"2024-06-02T05:59:00Z", true},  // 23:59 local, still the 1st
		{"2024-06-02T06:00:00Z", false}, // local midnight resets the window
		{"2024-06-01T18:00:00Z", false}, // noon local
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsHappyHour(utc(c.instant)), "instant %s", c.instant)
	}
}

func TestIsHappyHourWinter(t *testing.T) {
	// no DST shift: the UTC offset in January matches June
	assert.False(t, IsHappyHour(utc("2024-01-15T22:59:00Z")))
	assert.True(t, IsHappyHour(utc("2024-01-15T23:00:00Z")))
}

func TestLocalDateCrossesUTCMidnight(t *testing.T) {
	// 01:30 UTC on the 2nd is 19:30 local on the 1st
	assert.Equal(t, "2024-06-01", LocalDate(utc("2024-06-02T01:30:00Z")))
	assert.Equal(t, "2024-06-01", LocalDate(utc("2024-06-01T12:00:00Z")))
}

func TestDayOfWeek(t *testing.T) {
	// 2024-06-02 is a Sunday; 01:30 UTC that day is still Saturday local
	assert.Equal(t, 6, DayOfWeek(utc("2024-06-02T01:30:00Z")))
	// Tuesday local
	assert.Equal(t, 2, DayOfWeek(utc("2024-06-04T18:00:00Z")))
}

func TestLocalTimeOfDay(t *testing.T) {
	assert.Equal(t, "19:30", LocalTimeOfDay(utc("2024-06-02T01:30:00Z")))
}

func TestRealClockTicks(t *testing.T) {
	now := RealClock().Now()
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}
