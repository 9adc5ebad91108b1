// Package timewindow makes every time-of-day and day-of-week decision
// against the restaurant's fixed civil time zone, never against the
// server's or client's own zone.
package timewindow

import "time"

// Zone is Saskatoon's zone: always CST (UTC-6), no daylight saving.
const Zone = "America/Regina"

// HappyHourStart is the local hour (24h) at which the blanket staff
// discount switches on; it stays on until local midnight.
const HappyHourStart = 17

var location = mustLoad()

func mustLoad() *time.Location {
	loc, err := time.LoadLocation(Zone)
	if err != nil {
		panic("timewindow: " + err.Error())
	}
	return loc
}

// Clock supplies the current instant. Services take a Clock so tests can
// pin the wall clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

// Local converts an instant to restaurant civil time.
func Local(t time.Time) time.Time { return t.In(location) }

// IsHappyHour reports whether the discount window is active at t: local
// hour >= 17. Pure function of the wall-clock hour.
func IsHappyHour(t time.Time) bool { return Local(t).Hour() >= HappyHourStart }

// DayOfWeek returns the local weekday, 0=Sunday..6, the same convention
// used to tag specials with available_day.
func DayOfWeek(t time.Time) int { return int(Local(t).Weekday()) }

// LocalDate formats t's local civil date as YYYY-MM-DD. Date-range
// bucketing and reports use this, so instants on either side of local
// midnight land on the right day even when they share a UTC date.
func LocalDate(t time.Time) string { return Local(t).Format("2006-01-02") }

// LocalTimeOfDay formats t's local wall clock as HH:MM (24h).
func LocalTimeOfDay(t time.Time) string { return Local(t).Format("15:04") }
