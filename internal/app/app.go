// Package app composes the reflection store, question selector and
// achievement engine behind the state the CLI reads and mutates.
package app

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindping/internal/achievements"
	"github.com/julianstephens/mindping/internal/constants"
	apperrors "github.com/julianstephens/mindping/internal/errors"
	"github.com/julianstephens/mindping/internal/journal"
	"github.com/julianstephens/mindping/internal/logger"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/questions"
	"github.com/julianstephens/mindping/internal/storage"
	"github.com/julianstephens/mindping/internal/streak"
	"github.com/julianstephens/mindping/internal/utils"
)

var log = logger.Component("app")

// App is the single owner of journal state for a process. It is not safe for
// concurrent use.
type App struct {
	store    *journal.Store
	provider storage.Provider
	selector *questions.Selector
	clock    func() time.Time

	prefs        models.Preferences
	sticky       map[int]bool
	achievements []models.Achievement

	draft          string
	selectedEmojis []string
	today          models.Day
	todayQuestion  string
	selectedDate   models.Day
}

// Option configures an App.
type Option func(*App)

// WithSelector replaces the default question selector.
func WithSelector(s *questions.Selector) Option {
	return func(a *App) {
		a.selector = s
	}
}

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) Option {
	return func(a *App) {
		a.clock = now
	}
}

// New loads history, preferences and event-driven achievement flags from
// provider and derives the initial achievement list. provider must already
// be loaded.
func New(store *journal.Store, provider storage.Provider, opts ...Option) (*App, error) {
	a := &App{
		store:    store,
		provider: provider,
		selector: questions.Default(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	store.Load()

	prefs, err := provider.GetPreferences()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	a.prefs = prefs
	if a.prefs.FirstLaunch.IsZero() {
		a.prefs.FirstLaunch = a.clock().Truncate(time.Second)
		if err := provider.SavePreferences(a.prefs); err != nil {
			log.Warn("Failed to record first launch", "error", err)
		}
	}

	sticky, err := provider.GetStickyAchievements()
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement flags: %w", err)
	}
	if sticky == nil {
		sticky = make(map[int]bool)
	}
	a.sticky = sticky

	store.InLocation(a.location())
	a.achievements = achievements.Recompute(store.All(), a.sticky)

	now := a.Now()
	a.selectedDate = models.DayOf(now)
	a.LoadToday(now)
	return a, nil
}

// Now returns the current time in the configured timezone. An unusable
// timezone falls back to the system zone.
func (a *App) Now() time.Time {
	return a.clock().In(a.location())
}

func (a *App) location() *time.Location {
	loc, err := utils.LoadLocation(a.prefs.Timezone)
	if err != nil {
		log.Warn("Invalid timezone, using local time", "timezone", a.prefs.Timezone, "error", err)
		return time.Local
	}
	return loc
}

// Today is the calendar day of Now.
func (a *App) Today() models.Day {
	return models.DayOf(a.Now())
}

// Draft returns the text being composed for today.
func (a *App) Draft() string {
	return a.draft
}

func (a *App) SetDraft(text string) {
	a.draft = text
}

// SelectedEmojis returns a copy of the current emoji selection.
func (a *App) SelectedEmojis() []string {
	return slices.Clone(a.selectedEmojis)
}

// ToggleEmoji adds e to the selection, or removes it if already selected.
func (a *App) ToggleEmoji(e string) {
	if i := slices.Index(a.selectedEmojis, e); i >= 0 {
		a.selectedEmojis = slices.Delete(a.selectedEmojis, i, i+1)
		return
	}
	a.selectedEmojis = append(a.selectedEmojis, e)
}

func (a *App) SetEmojis(emojis []string) {
	a.selectedEmojis = slices.Clone(emojis)
}

// CanSave reports whether the draft has non-blank text or at least one emoji.
func (a *App) CanSave() bool {
	return strings.TrimSpace(a.draft) != "" || len(a.selectedEmojis) > 0
}

// LoadToday sets today's question for now's day and, when a reflection
// already exists for that day, restores the draft from it.
func (a *App) LoadToday(now time.Time) {
	a.today = models.DayOf(now)
	a.todayQuestion = a.selector.QuestionFor(a.today)

	existing := a.store.QueryByDay(a.today)
	if len(existing) == 0 {
		return
	}
	r := existing[0]
	a.draft = r.Text
	a.selectedEmojis = slices.Clone(r.Emojis)
}

// QuestionFor returns the prompt assigned to day.
func (a *App) QuestionFor(day models.Day) string {
	return a.selector.QuestionFor(day)
}

func (a *App) TodayQuestion() string {
	return a.todayQuestion
}

// SavedToday returns the reflection recorded for the day last loaded.
func (a *App) SavedToday() (models.Reflection, bool) {
	existing := a.store.QueryByDay(a.today)
	if len(existing) == 0 {
		return models.Reflection{}, false
	}
	return existing[0], true
}

// SaveToday records the draft as now's reflection, replacing any earlier
// entry for the same day, and recomputes achievements. The draft is kept.
// A persistence failure is returned, but the in-memory state is updated.
func (a *App) SaveToday(now time.Time) (models.Reflection, error) {
	if !a.CanSave() {
		return models.Reflection{}, apperrors.ErrEmptyDraft
	}

	day := models.DayOf(now)
	if day != a.today {
		a.today = day
		a.todayQuestion = a.selector.QuestionFor(day)
	}

	emojis := slices.Clone(a.selectedEmojis)
	if emojis == nil {
		emojis = []string{}
	}
	record := models.Reflection{
		ID:       uuid.NewString(),
		Date:     now,
		Question: a.todayQuestion,
		Text:     strings.TrimSpace(a.draft),
		Emojis:   emojis,
	}

	a.store.Upsert(record)
	a.achievements = achievements.Recompute(a.store.All(), a.priorSticky())

	if err := a.store.Persist(); err != nil {
		return record, fmt.Errorf("reflection for %s not saved: %w", day, err)
	}
	log.Info("Reflection saved", "day", day.String(), "emojis", len(record.Emojis))
	return record, nil
}

// MarkHistoryViewed unlocks Story Collected. Nothing else changes.
func (a *App) MarkHistoryViewed() error {
	if a.sticky[achievements.StoryCollected] {
		return nil
	}
	next := maps.Clone(a.sticky)
	if next == nil {
		next = make(map[int]bool)
	}
	next[achievements.StoryCollected] = true
	// unlock only once the flag is on disk so a failed write is retried
	if err := a.provider.SaveStickyAchievements(next); err != nil {
		return fmt.Errorf("failed to save achievement flags: %w", err)
	}
	a.sticky = next
	for i := range a.achievements {
		if a.achievements[i].ID == achievements.StoryCollected {
			a.achievements[i].IsUnlocked = true
		}
	}
	log.Info("Achievement unlocked", "id", achievements.StoryCollected)
	return nil
}

// priorSticky reads the event-driven flags off the current achievement list.
func (a *App) priorSticky() map[int]bool {
	prior := make(map[int]bool)
	for _, ach := range a.achievements {
		if achievements.IsSticky(ach.ID) {
			prior[ach.ID] = ach.IsUnlocked
		}
	}
	return prior
}

// History returns every reflection, newest first.
func (a *App) History() []models.Reflection {
	return a.store.SortedDescending()
}

// Days returns the distinct days that have a reflection, ascending.
func (a *App) Days() []models.Day {
	return a.store.Days()
}

func (a *App) SetSelectedDate(day models.Day) {
	a.selectedDate = day
}

func (a *App) SelectedDate() models.Day {
	return a.selectedDate
}

func (a *App) ReflectionsForSelectedDate() []models.Reflection {
	return a.store.QueryByDay(a.selectedDate)
}

// ReflectionsOn returns the reflections written on day.
func (a *App) ReflectionsOn(day models.Day) []models.Reflection {
	return a.store.QueryByDay(day)
}

// EmojisFor returns up to limit distinct emojis used on day, in first-seen
// order.
func (a *App) EmojisFor(day models.Day, limit int) []string {
	out := []string{}
	if limit <= 0 {
		return out
	}
	seen := make(map[string]struct{})
	for _, r := range a.store.QueryByDay(day) {
		for _, e := range r.Emojis {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

// Achievements returns the full catalog with current lock state.
func (a *App) Achievements() []models.Achievement {
	return slices.Clone(a.achievements)
}

func (a *App) Unlocked() []models.Achievement {
	return achievements.Unlocked(a.achievements)
}

// Summary is the aggregate view printed by the stats command.
type Summary struct {
	achievements.Stats
	CurrentStreak int
	Unlocked      int
	Total         int
	Since         string
}

// Stats summarizes the history as of now.
func (a *App) Stats(now time.Time) Summary {
	return Summary{
		Stats:         achievements.Compute(a.store.All()),
		CurrentStreak: streak.Current(a.store.Days(), models.DayOf(now)),
		Unlocked:      len(achievements.Unlocked(a.achievements)),
		Total:         len(a.achievements),
		Since:         a.prefs.ReflectingSince(),
	}
}

// Preferences returns the current profile state.
func (a *App) Preferences() models.Preferences {
	return a.prefs
}

func (a *App) SetUsername(name string) (models.Preferences, error) {
	return a.updatePreferences(func(p *models.Preferences) {
		p.Username = strings.TrimSpace(name)
	})
}

func (a *App) SetAvatar(name string) (models.Preferences, error) {
	return a.updatePreferences(func(p *models.Preferences) {
		p.AvatarName = name
	})
}

func (a *App) SetTheme(index int) (models.Preferences, error) {
	return a.updatePreferences(func(p *models.Preferences) {
		p.ThemeIndex = index
	})
}

func (a *App) SetLanguage(code string) (models.Preferences, error) {
	return a.updatePreferences(func(p *models.Preferences) {
		p.LanguageCode = code
	})
}

func (a *App) SetTextSize(size string) (models.Preferences, error) {
	return a.updatePreferences(func(p *models.Preferences) {
		p.TextSize = size
	})
}

func (a *App) SetTimezone(tz string) (models.Preferences, error) {
	return a.updatePreferences(func(p *models.Preferences) {
		p.Timezone = tz
	})
}

// updatePreferences applies fn to a copy, validates and persists it, and only
// then makes it current.
func (a *App) updatePreferences(fn func(*models.Preferences)) (models.Preferences, error) {
	next := a.prefs
	fn(&next)
	if err := models.ValidatePreferences(next); err != nil {
		return a.prefs, err
	}
	if err := a.provider.SavePreferences(next); err != nil {
		return a.prefs, fmt.Errorf("failed to save preferences: %w", err)
	}
	a.prefs = next
	log.Debug("Preferences updated", "username", next.Username, "theme", next.ThemeIndex, "textSize", next.TextSize)
	return next, nil
}

// BadgeEmojis is EmojisFor with the default badge limit.
func (a *App) BadgeEmojis(day models.Day) []string {
	return a.EmojisFor(day, constants.BadgeLimit)
}
