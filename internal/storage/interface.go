package storage

import "github.com/julianstephens/mindping/internal/models"

// Provider is a persistence backend for the journal.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Reflections. ReplaceReflections swaps the whole persisted set; callers
	// never see a partially written snapshot.
	GetReflections() ([]models.Reflection, error)
	ReplaceReflections([]models.Reflection) error

	// Preferences
	GetPreferences() (models.Preferences, error)
	SavePreferences(models.Preferences) error

	// Event-driven achievement flags, keyed by achievement id
	GetStickyAchievements() (map[int]bool, error)
	SaveStickyAchievements(map[int]bool) error

	// Utils
	GetConfigPath() string
}
