package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindping/internal/constants"
	"github.com/julianstephens/mindping/internal/models"
)

// TodayInTimezone returns the calendar day it currently is in timezone.
// "Today" follows the user's configured zone, not the system zone.
func TodayInTimezone(timezone string) (models.Day, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return models.Day{}, err
	}
	return models.DayOf(now), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ParseMonth parses a YYYY-MM string and returns the first day of that month.
func ParseMonth(monthStr string) (models.Day, error) {
	t, err := time.Parse(constants.MonthFormat, monthStr)
	if err != nil {
		return models.Day{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", monthStr, err)
	}
	return models.Day{Year: t.Year(), Month: t.Month(), Day: 1}, nil
}

// DaysInMonth returns every day of the month containing d, in order.
func DaysInMonth(d models.Day) []models.Day {
	first := models.Day{Year: d.Year, Month: d.Month, Day: 1}
	var days []models.Day
	for day := first; day.Month == first.Month; day = day.AddDays(1) {
		days = append(days, day)
	}
	return days
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
