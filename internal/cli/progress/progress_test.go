package progress

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/storage"
)

func setupTestContext(t *testing.T, records []models.Reflection) *cli.Context {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "mindping.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	// seeded records are stamped in UTC
	prefs, err := store.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	prefs.Timezone = "UTC"
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}

	if err := store.ReplaceReflections(records); err != nil {
		t.Fatalf("failed to seed reflections: %v", err)
	}
	ctx := &cli.Context{Store: store}
	if err := ctx.Open(); err != nil {
		t.Fatalf("failed to open app: %v", err)
	}
	return ctx
}

// weekOfEntries returns seven consecutive days of text-and-emoji reflections.
func weekOfEntries() []models.Reflection {
	var week []models.Reflection
	for i := 1; i <= 7; i++ {
		week = append(week, models.Reflection{
			ID:       string(rune('a' + i)),
			Date:     time.Date(2024, time.April, i, 21, 0, 0, 0, time.UTC),
			Question: "q",
			Text:     "entry",
			Emojis:   []string{"😊"},
		})
	}
	return week
}

func TestProgressCommands(t *testing.T) {
	week := weekOfEntries()

	tests := []struct {
		name    string
		records []models.Reflection
	}{
		{"empty journal", []models.Reflection{}},
		{"one week", week},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestContext(t, tt.records)
			if err := (&AchievementsCmd{}).Run(ctx); err != nil {
				t.Errorf("achievements failed: %v", err)
			}
			if err := (&AchievementsCmd{Unlocked: true}).Run(ctx); err != nil {
				t.Errorf("achievements --unlocked failed: %v", err)
			}
			if err := (&StatsCmd{}).Run(ctx); err != nil {
				t.Errorf("stats failed: %v", err)
			}
		})
	}
}

func TestWeekUnlocksStreakAchievements(t *testing.T) {
	ctx := setupTestContext(t, weekOfEntries())

	s := ctx.App.Stats(ctx.App.Now())
	if s.LongestStreak != 7 {
		t.Errorf("LongestStreak = %d, want 7", s.LongestStreak)
	}
	unlocked := make(map[string]bool)
	for _, a := range ctx.App.Unlocked() {
		unlocked[a.Title] = true
	}
	for _, title := range []string{"First Step", "Diary Started", "Week of Awareness", "Full Week", "Positive Outlook"} {
		if !unlocked[title] {
			t.Errorf("%s should be unlocked after a week of entries", title)
		}
	}
}
