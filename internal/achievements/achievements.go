// Package achievements derives milestone unlocks from the reflection history.
package achievements

import (
	"github.com/rivo/uniseg"

	"github.com/julianstephens/mindping/internal/constants"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/streak"
)

// Achievement ids, in catalog order.
const (
	FirstStep = iota + 1
	DiaryStarted
	WeekOfAwareness
	PositiveOutlook
	HonestJournal
	ComboExpression
	FullWeek
	LunarObserver
	EmotionalSpectrum
	InspiringMoment
	StoryCollected
	MasterOfReflection
)

var catalog = []models.Achievement{
	{ID: FirstStep, Title: "First Step", Description: "Complete your first reflection."},
	{ID: DiaryStarted, Title: "Diary Started", Description: "Answered questions for 3 consecutive days."},
	{ID: WeekOfAwareness, Title: "Week of Awareness", Description: "Answered daily for 7 consecutive days."},
	{ID: PositiveOutlook, Title: "Positive Outlook", Description: "Used emojis with positive emotions 5 times."},
	{ID: HonestJournal, Title: "Honest Journal", Description: "Wrote a text response to every question for the day."},
	{ID: ComboExpression, Title: "Combo Expression", Description: "Answered with text and emojis in one day."},
	{ID: FullWeek, Title: "Full Week", Description: "Completed entries every day of a week."},
	{ID: LunarObserver, Title: "Lunar Observer", Description: "Answered for 30 consecutive days."},
	{ID: EmotionalSpectrum, Title: "Emotional Spectrum", Description: "Used at least 5 different emojis."},
	{ID: InspiringMoment, Title: "Inspiring Moment", Description: "Wrote an especially long or detailed response."},
	{ID: StoryCollected, Title: "Story Collected", Description: "Viewed all previous reflections at least once."},
	{ID: MasterOfReflection, Title: "Master of Reflection", Description: "Completed 100 days of reflections."},
}

// PositiveEmojis counts toward Positive Outlook.
var PositiveEmojis = map[string]struct{}{
	"😀": {}, "😄": {}, "😊": {}, "🥰": {}, "😍": {}, "🤩": {},
	"😎": {}, "😇": {}, "😌": {}, "😁": {}, "😺": {}, "😻": {},
}

// Catalog returns the canonical achievements, all locked, in id order.
func Catalog() []models.Achievement {
	out := make([]models.Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// IsSticky reports whether id is unlocked by an external event rather than
// derived from history.
func IsSticky(id int) bool {
	return id == StoryCollected
}

// StickyIDs lists the event-driven achievements.
func StickyIDs() []int {
	return []int{StoryCollected}
}

// Stats are the aggregates the rules are evaluated against.
type Stats struct {
	Entries        int
	DistinctDays   int
	LongestStreak  int
	PositiveCount  int
	DistinctEmojis int
	HasText        bool
	HasCombo       bool
	HasLongForm    bool
}

// Compute aggregates history in one pass.
func Compute(history []models.Reflection) Stats {
	st := Stats{Entries: len(history)}

	days := make([]models.Day, 0, len(history))
	distinctDays := make(map[models.Day]struct{})
	emojis := make(map[string]struct{})

	for _, r := range history {
		d := r.Day()
		days = append(days, d)
		distinctDays[d] = struct{}{}

		for _, e := range r.Emojis {
			emojis[e] = struct{}{}
			if _, ok := PositiveEmojis[e]; ok {
				st.PositiveCount++
			}
		}

		if r.HasText() {
			st.HasText = true
			if r.HasEmojis() {
				st.HasCombo = true
			}
		}
		if uniseg.GraphemeClusterCount(r.Text) >= constants.LongFormMinChars {
			st.HasLongForm = true
		}
	}

	st.DistinctDays = len(distinctDays)
	st.DistinctEmojis = len(emojis)
	st.LongestStreak = streak.Longest(days)
	return st
}

var rules = map[int]func(Stats) bool{
	FirstStep:          func(s Stats) bool { return s.Entries > 0 },
	DiaryStarted:       func(s Stats) bool { return s.LongestStreak >= 3 },
	WeekOfAwareness:    func(s Stats) bool { return s.LongestStreak >= 7 },
	PositiveOutlook:    func(s Stats) bool { return s.PositiveCount >= 5 },
	HonestJournal:      func(s Stats) bool { return s.HasText },
	ComboExpression:    func(s Stats) bool { return s.HasCombo },
	FullWeek:           func(s Stats) bool { return s.LongestStreak >= 7 },
	LunarObserver:      func(s Stats) bool { return s.LongestStreak >= 30 },
	EmotionalSpectrum:  func(s Stats) bool { return s.DistinctEmojis >= 5 },
	InspiringMoment:    func(s Stats) bool { return s.HasLongForm },
	MasterOfReflection: func(s Stats) bool { return s.DistinctDays >= 100 },
}

// Recompute regenerates all achievements from history. Every entry starts
// locked; sticky achievements take their state from priorSticky and are
// never derived from history.
func Recompute(history []models.Reflection, priorSticky map[int]bool) []models.Achievement {
	st := Compute(history)
	updated := Catalog()
	for i := range updated {
		id := updated[i].ID
		if IsSticky(id) {
			updated[i].IsUnlocked = priorSticky[id]
			continue
		}
		if rule, ok := rules[id]; ok {
			updated[i].IsUnlocked = rule(st)
		}
	}
	return updated
}

// Unlocked filters list down to unlocked achievements.
func Unlocked(list []models.Achievement) []models.Achievement {
	var out []models.Achievement
	for _, a := range list {
		if a.IsUnlocked {
			out = append(out, a)
		}
	}
	return out
}

// NewlyUnlocked returns achievements unlocked in after but not in before.
func NewlyUnlocked(before, after []models.Achievement) []models.Achievement {
	was := make(map[int]bool, len(before))
	for _, a := range before {
		was[a.ID] = a.IsUnlocked
	}
	var out []models.Achievement
	for _, a := range after {
		if a.IsUnlocked && !was[a.ID] {
			out = append(out, a)
		}
	}
	return out
}
