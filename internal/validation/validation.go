package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/mindping/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateDay ConflictType = "duplicate_day"
	ConflictMissingID    ConflictType = "missing_reflection_id"
	ConflictDuplicateID  ConflictType = "duplicate_reflection_id"
	ConflictMissingDate  ConflictType = "missing_date"
	ConflictFutureDate   ConflictType = "future_date"
	ConflictEmptyEntry   ConflictType = "empty_entry"
	ConflictBlankEmoji   ConflictType = "blank_emoji"
)

// Conflict represents a detected problem in the stored reflections
type Conflict struct {
	Type          ConflictType
	Description   string
	Date          string   // YYYY-MM-DD format (if applicable)
	ReflectionIDs []string // IDs of reflections involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var report strings.Builder
	report.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&report, "- %s\n", conflict.Description)
	}
	return report.String()
}

// Validator checks a reflection list for integrity problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateReflections checks records for conflicts. Reflections dated after
// the end of now's day are reported as future entries.
func (v *Validator) ValidateReflections(records []models.Reflection, now time.Time) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byDay := make(map[models.Day][]string)
	byID := make(map[string]int)
	today := models.DayOf(now)

	for i, r := range records {
		label := r.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		if r.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("Reflection %s has no id", label),
			})
		} else {
			byID[r.ID]++
		}

		if r.Date.IsZero() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:          ConflictMissingDate,
				Description:   fmt.Sprintf("Reflection %s has no date", label),
				ReflectionIDs: []string{r.ID},
			})
			continue
		}

		day := r.Day()
		byDay[day] = append(byDay[day], label)

		if day.After(today) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:          ConflictFutureDate,
				Description:   fmt.Sprintf("Reflection %s is dated in the future (%s)", label, day),
				Date:          day.String(),
				ReflectionIDs: []string{r.ID},
			})
		}

		if !r.HasText() && !r.HasEmojis() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:          ConflictEmptyEntry,
				Description:   fmt.Sprintf("Reflection on %s has neither text nor emoji", day),
				Date:          day.String(),
				ReflectionIDs: []string{r.ID},
			})
		}

		for _, e := range r.Emojis {
			if strings.TrimSpace(e) == "" {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:          ConflictBlankEmoji,
					Description:   fmt.Sprintf("Reflection on %s contains a blank emoji", day),
					Date:          day.String(),
					ReflectionIDs: []string{r.ID},
				})
				break
			}
		}
	}

	days := make([]models.Day, 0, len(byDay))
	for day, ids := range byDay {
		if len(ids) > 1 {
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	for _, day := range days {
		ids := byDay[day]
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:          ConflictDuplicateDay,
			Description:   fmt.Sprintf("Multiple reflections for %s (IDs: %v)", day, ids),
			Date:          day.String(),
			ReflectionIDs: ids,
		})
	}

	ids := make([]string, 0)
	for id, n := range byID {
		if n > 1 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:          ConflictDuplicateID,
			Description:   fmt.Sprintf("Reflection id %s is used %d times", id, byID[id]),
			ReflectionIDs: []string{id},
		})
	}

	return result
}

// AutoFixDuplicateDays collapses every day that has more than one reflection
// down to its newest entry, which is what an upsert would have kept. It
// returns the repaired list in original order and the actions taken.
func AutoFixDuplicateDays(conflicts []Conflict, records []models.Reflection) ([]models.Reflection, []FixAction) {
	actions := []FixAction{}

	dupDays := make(map[string]Conflict)
	for _, c := range conflicts {
		if c.Type == ConflictDuplicateDay {
			dupDays[c.Date] = c
		}
	}
	if len(dupDays) == 0 {
		return records, actions
	}

	// Newest record index per duplicated day
	keep := make(map[string]int)
	for i, r := range records {
		if r.Date.IsZero() {
			continue
		}
		day := r.Day().String()
		if _, ok := dupDays[day]; !ok {
			continue
		}
		if j, ok := keep[day]; !ok || !records[j].Date.After(r.Date) {
			keep[day] = i
		}
	}

	removed := make(map[string][]string)
	fixed := make([]models.Reflection, 0, len(records))
	for i, r := range records {
		if !r.Date.IsZero() {
			day := r.Day().String()
			if k, ok := keep[day]; ok && k != i {
				removed[day] = append(removed[day], r.ID)
				continue
			}
		}
		fixed = append(fixed, r)
	}

	days := make([]string, 0, len(removed))
	for day := range removed {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		actions = append(actions, FixAction{
			Action: fmt.Sprintf("Removed %d older reflection(s) for %s (kept ID: %s, removed: %v)",
				len(removed[day]), day, records[keep[day]].ID, removed[day]),
			SourceConflict: dupDays[day],
		})
	}
	return fixed, actions
}
