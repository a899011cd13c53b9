package models

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    Day
		wantErr bool
	}{
		{"2024-02-29", Day{2024, time.February, 29}, false},
		{"1999-12-31", Day{1999, time.December, 31}, false},
		{"2023-02-29", Day{}, true},
		{"2024/01/01", Day{}, true},
		{"", Day{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDay() = %v, want %v", got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestDayOfUsesOwnLocation(t *testing.T) {
	// 23:30 in New York is already the next day in UTC
	ny := time.FixedZone("EST", -5*3600)
	ts := time.Date(2024, time.January, 1, 23, 30, 0, 0, ny)

	if got := DayOf(ts); got != (Day{2024, time.January, 1}) {
		t.Errorf("DayOf(local) = %v, want 2024-01-01", got)
	}
	if got := DayOf(ts.UTC()); got != (Day{2024, time.January, 2}) {
		t.Errorf("DayOf(utc) = %v, want 2024-01-02", got)
	}
}

func TestEpochDay(t *testing.T) {
	tests := []struct {
		day  Day
		want int64
	}{
		{Day{1970, time.January, 1}, 0},
		{Day{1970, time.January, 2}, 1},
		{Day{1969, time.December, 31}, -1},
		{Day{2024, time.March, 1}, 19783},
	}

	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			if got := tt.day.EpochDay(); got != tt.want {
				t.Errorf("EpochDay() = %d, want %d", got, tt.want)
			}
			if back := DayFromEpoch(tt.want); back != tt.day {
				t.Errorf("DayFromEpoch(%d) = %v, want %v", tt.want, back, tt.day)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		from Day
		n    int
		want Day
	}{
		{"leap day", Day{2024, time.February, 28}, 1, Day{2024, time.February, 29}},
		{"after leap day", Day{2024, time.February, 29}, 1, Day{2024, time.March, 1}},
		{"common year", Day{2023, time.February, 28}, 1, Day{2023, time.March, 1}},
		{"year boundary", Day{2023, time.December, 31}, 1, Day{2024, time.January, 1}},
		{"backwards over year", Day{2024, time.January, 1}, -1, Day{2023, time.December, 31}},
		{"month", Day{2024, time.January, 15}, 31, Day{2024, time.February, 15}},
		{"zero", Day{2024, time.June, 6}, 0, Day{2024, time.June, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.AddDays(tt.n)
			if got != tt.want {
				t.Errorf("AddDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
			if diff := got.EpochDay() - tt.from.EpochDay(); diff != int64(tt.n) {
				t.Errorf("epoch difference = %d, want %d", diff, tt.n)
			}
		})
	}
}

func TestDayOrdering(t *testing.T) {
	a := Day{2023, time.December, 31}
	b := Day{2024, time.January, 1}

	if !a.Before(b) || a.After(b) {
		t.Error("2023-12-31 should be before 2024-01-01")
	}
	if !b.After(a) || b.Before(a) {
		t.Error("2024-01-01 should be after 2023-12-31")
	}
	if !a.Equal(Day{2023, time.December, 31}) {
		t.Error("Equal() = false for identical days")
	}
	if !(Day{}).IsZero() || a.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestDayTime(t *testing.T) {
	loc := time.FixedZone("TEST", 2*3600)
	got := Day{2024, time.May, 5}.Time(loc)
	if got.Location() != loc || got.Hour() != 0 || got.Day() != 5 {
		t.Errorf("Time() = %v", got)
	}
	if (Day{2024, time.May, 5}).Time(nil).Location() != time.Local {
		t.Error("Time(nil) should use the local zone")
	}
}

func TestReflectionPredicates(t *testing.T) {
	tests := []struct {
		name       string
		r          Reflection
		wantText   bool
		wantEmojis bool
	}{
		{"empty", Reflection{}, false, false},
		{"whitespace text", Reflection{Text: " \n\t "}, false, false},
		{"text", Reflection{Text: "hi"}, true, false},
		{"emoji only", Reflection{Emojis: []string{"😀"}}, false, true},
		{"both", Reflection{Text: "hi", Emojis: []string{"😀"}}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.HasText(); got != tt.wantText {
				t.Errorf("HasText() = %v, want %v", got, tt.wantText)
			}
			if got := tt.r.HasEmojis(); got != tt.wantEmojis {
				t.Errorf("HasEmojis() = %v, want %v", got, tt.wantEmojis)
			}
		})
	}
}
