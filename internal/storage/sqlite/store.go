package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/mindping/internal/constants"
	apperrors "github.com/julianstephens/mindping/internal/errors"
	"github.com/julianstephens/mindping/internal/logger"
	"github.com/julianstephens/mindping/internal/migration"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/migrations"
)

var log = logger.Component("storage")

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default preferences on a fresh database
	settings, err := s.getSettingsMap()
	if err != nil {
		return err
	}
	if _, ok := settings[constants.SettingUsername]; !ok {
		prefs := models.Preferences{}
		models.ApplyDefaultPreferences(&prefs)
		if err := s.SavePreferences(prefs); err != nil {
			return fmt.Errorf("failed to save default preferences: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return apperrors.ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Older databases are brought forward; newer ones are refused
	if err := s.runMigrations(); err != nil {
		return err
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

// Runner returns a migration runner bound to this database.
func (s *Store) Runner() (*migration.Runner, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

func (s *Store) runMigrations() error {
	runner, err := s.Runner()
	if err != nil {
		return err
	}
	_, err = runner.ApplyMigrations(func(msg string) {
		log.Info(msg, "db", s.path)
	})
	return err
}
