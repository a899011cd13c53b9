// Package journal holds the in-memory reflection list and its persistence.
package journal

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/julianstephens/mindping/internal/logger"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/storage"
)

var log = logger.Component("journal")

// Store owns the reflection list. It is the only writer of the list and is
// not safe for concurrent use.
type Store struct {
	provider storage.Provider
	records  []models.Reflection
}

// NewStore creates an empty Store backed by provider. Call Load to read
// persisted records.
func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		records:  []models.Reflection{},
	}
}

// Load replaces the in-memory list with the persisted records. Read or parse
// failures leave the journal empty instead of failing.
func (s *Store) Load() []models.Reflection {
	records, err := s.provider.GetReflections()
	if err != nil {
		log.Warn("Starting with an empty journal", "path", s.provider.GetConfigPath(), "error", err)
		records = []models.Reflection{}
	}
	s.records = records
	log.Debug("Loaded reflections", "count", len(records))
	return s.All()
}

// InLocation moves records stamped in UTC ("Z" timestamps, as written by
// other tools) into loc so they key to the day the user saw. Records with
// an explicit offset already carry their local day and are left alone.
func (s *Store) InLocation(loc *time.Location) {
	if loc == nil || loc == time.UTC {
		return
	}
	moved := 0
	for i := range s.records {
		if s.records[i].Date.Location() == time.UTC {
			s.records[i].Date = s.records[i].Date.In(loc)
			moved++
		}
	}
	if moved > 0 {
		log.Debug("Moved UTC reflections into local zone", "count", moved, "zone", loc.String())
	}
}

// Save writes all as the full persisted record set.
func (s *Store) Save(all []models.Reflection) error {
	if err := s.provider.ReplaceReflections(all); err != nil {
		log.Error("Failed to save reflections", "count", len(all), "error", err)
		return fmt.Errorf("failed to save reflections: %w", err)
	}
	log.Debug("Saved reflections", "count", len(all))
	return nil
}

// Persist saves the current in-memory list.
func (s *Store) Persist() error {
	return s.Save(s.records)
}

// Upsert inserts record into the in-memory list, replacing any record for
// the same day, and returns the updated list.
func (s *Store) Upsert(record models.Reflection) []models.Reflection {
	s.records = Upsert(s.records, record)
	return s.All()
}

// Upsert replaces the record sharing record's day in place, or appends.
// The newest record wins entirely, including its id.
func Upsert(records []models.Reflection, record models.Reflection) []models.Reflection {
	day := record.Day()
	for i := range records {
		if records[i].Day() == day {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

// QueryByDay returns the records written on day.
func (s *Store) QueryByDay(day models.Day) []models.Reflection {
	var out []models.Reflection
	for _, r := range s.records {
		if r.Day() == day {
			out = append(out, r)
		}
	}
	return out
}

// SortedDescending returns the history newest first. Equal timestamps keep
// their stored order.
func (s *Store) SortedDescending() []models.Reflection {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Days returns the distinct days that have a record, ascending.
func (s *Store) Days() []models.Day {
	seen := make(map[models.Day]struct{}, len(s.records))
	days := make([]models.Day, 0, len(s.records))
	for _, r := range s.records {
		d := r.Day()
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// All returns a copy of the in-memory list in stored order.
func (s *Store) All() []models.Reflection {
	return slices.Clone(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
