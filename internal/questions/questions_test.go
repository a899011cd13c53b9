package questions

import (
	"slices"
	"testing"
	"time"

	"github.com/julianstephens/mindping/internal/models"
)

func TestQuestionForIsStableWithinDay(t *testing.T) {
	s := Default()
	morning := time.Date(2024, 6, 10, 6, 15, 0, 0, time.UTC)
	night := time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)

	a := s.QuestionFor(models.DayOf(morning))
	b := s.QuestionFor(models.DayOf(night))
	if a != b {
		t.Errorf("QuestionFor() differs within one day: %q vs %q", a, b)
	}
	if a == "" {
		t.Error("QuestionFor() returned empty prompt")
	}
}

func TestQuestionForIsStableAcrossSelectors(t *testing.T) {
	day := models.Day{Year: 2025, Month: time.March, Day: 14}
	// A restart builds a fresh selector over the same list
	if Default().QuestionFor(day) != Default().QuestionFor(day) {
		t.Error("QuestionFor() changed between selector instances")
	}
}

func TestQuestionForAlwaysFromList(t *testing.T) {
	s := Default()
	start := models.Day{Year: 2024, Month: time.January, Day: 1}
	seen := make(map[string]bool)
	for i := 0; i < 366; i++ {
		q := s.QuestionFor(start.AddDays(i))
		if !slices.Contains(DefaultPrompts, q) {
			t.Fatalf("QuestionFor(%s) = %q, not in prompt list", start.AddDays(i), q)
		}
		seen[q] = true
	}
	if len(seen) < 2 {
		t.Errorf("a year of days used %d distinct prompts, want rotation", len(seen))
	}
}

func TestQuestionForEmptyList(t *testing.T) {
	s := New(nil)
	if got := s.QuestionFor(models.Day{Year: 2024, Month: time.May, Day: 1}); got != "" {
		t.Errorf("QuestionFor() with no prompts = %q, want empty", got)
	}
}

func TestNewCopiesPrompts(t *testing.T) {
	prompts := []string{"one", "two"}
	s := New(prompts)
	prompts[0] = "changed"
	if s.Prompts()[0] != "one" {
		t.Error("Selector shares its prompt slice with the caller")
	}
}

func TestSinglePrompt(t *testing.T) {
	s := New([]string{"only"})
	if got := s.QuestionFor(models.Day{Year: 2030, Month: time.December, Day: 31}); got != "only" {
		t.Errorf("QuestionFor() = %q, want %q", got, "only")
	}
}
