package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindping/internal/constants"
)

// Day is a calendar date with no time-of-day component. It is the identity
// key for reflections and the unit of streak arithmetic.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return DayOf(t), nil
}

// DayFromEpoch is the inverse of EpochDay.
func DayFromEpoch(n int64) Day {
	return DayOf(time.Unix(n*86400, 0).UTC())
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// EpochDay returns the number of days since 1970-01-01.
func (d Day) EpochDay() int64 {
	// Computed in UTC so DST transitions never change the result.
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) Before(o Day) bool { return d.EpochDay() < o.EpochDay() }
func (d Day) After(o Day) bool  { return d.EpochDay() > o.EpochDay() }
func (d Day) Equal(o Day) bool  { return d == o }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}
