package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/mindping/internal/app"
	"github.com/julianstephens/mindping/internal/backup"
	"github.com/julianstephens/mindping/internal/journal"
	"github.com/julianstephens/mindping/internal/logger"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/storage"
)

// Context is handed to every command. App and Journal are nil until Open.
type Context struct {
	Store   storage.Provider
	Journal *journal.Store
	App     *app.App
}

// Open builds the journal and the facade over the loaded store.
func (c *Context) Open(opts ...app.Option) error {
	c.Journal = journal.NewStore(c.Store)
	a, err := app.New(c.Journal, c.Store, opts...)
	if err != nil {
		return err
	}
	c.App = a
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDayOrToday parses a YYYY-MM-DD flag value, or returns today in the
// configured timezone when s is empty.
func (c *Context) ParseDayOrToday(s string) (models.Day, error) {
	if strings.TrimSpace(s) == "" {
		return c.App.Today(), nil
	}
	day, err := models.ParseDay(strings.TrimSpace(s))
	if err != nil {
		return models.Day{}, fmt.Errorf("invalid --date: %w", err)
	}
	return day, nil
}

// FormatEmojis joins emojis for display, or returns a placeholder.
func FormatEmojis(emojis []string) string {
	if len(emojis) == 0 {
		return "-"
	}
	return strings.Join(emojis, " ")
}
