package sqlite

import (
	"fmt"

	"github.com/julianstephens/mindping/internal/models"
)

func (s *Store) getSettingsMap() (map[string]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (s *Store) putSettings(values map[string]string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetPreferences() (models.Preferences, error) {
	settings, err := s.getSettingsMap()
	if err != nil {
		return models.Preferences{}, err
	}
	prefs, err := models.MapToPreferences(settings)
	if err != nil {
		return models.Preferences{}, err
	}
	models.ApplyDefaultPreferences(&prefs)
	return prefs, nil
}

func (s *Store) SavePreferences(prefs models.Preferences) error {
	return s.putSettings(models.PreferencesToMap(prefs))
}

func (s *Store) GetStickyAchievements() (map[int]bool, error) {
	settings, err := s.getSettingsMap()
	if err != nil {
		return nil, err
	}
	return models.MapToSticky(settings), nil
}

func (s *Store) SaveStickyAchievements(sticky map[int]bool) error {
	return s.putSettings(models.StickyToMap(sticky))
}
