package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/julianstephens/mindping/internal/constants"
	apperrors "github.com/julianstephens/mindping/internal/errors"
	"github.com/julianstephens/mindping/internal/logger"
	"github.com/julianstephens/mindping/internal/models"
)

var log = logger.Component("storage")

// JSONStore keeps reflections in a pretty-printed JSON array and scalar
// preferences in a sibling preferences.json.
type JSONStore struct {
	path      string
	prefsPath string
	settings  map[string]string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path:      path,
		prefsPath: filepath.Join(filepath.Dir(path), constants.PreferencesFileName),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.ReplaceReflections([]models.Reflection{}); err != nil {
		return err
	}

	prefs := models.Preferences{}
	models.ApplyDefaultPreferences(&prefs)
	s.settings = models.PreferencesToMap(prefs)
	return s.writeSettings()
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrNotInitialized
		}
		return fmt.Errorf("failed to access storage: %w", err)
	}

	settings, err := s.readSettings()
	if err != nil {
		// A broken preferences file only costs the profile, not the journal
		log.Warn("Ignoring unreadable preferences file", "path", s.prefsPath, "error", err)
		settings = make(map[string]string)
	}
	s.settings = settings
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) GetReflections() ([]models.Reflection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reflections: %w", err)
	}

	var reflections []models.Reflection
	if err := json.Unmarshal(data, &reflections); err != nil {
		return nil, fmt.Errorf("failed to parse reflections: %w", err)
	}
	return reflections, nil
}

func (s *JSONStore) ReplaceReflections(reflections []models.Reflection) error {
	out := make([]models.Reflection, len(reflections))
	for i, r := range reflections {
		if r.Emojis == nil {
			r.Emojis = []string{}
		}
		out[i] = r
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize reflections: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write reflections: %w", err)
	}
	return nil
}

func (s *JSONStore) GetPreferences() (models.Preferences, error) {
	if s.settings == nil {
		return models.Preferences{}, fmt.Errorf("storage not loaded")
	}
	prefs, err := models.MapToPreferences(s.settings)
	if err != nil {
		return models.Preferences{}, err
	}
	models.ApplyDefaultPreferences(&prefs)
	return prefs, nil
}

func (s *JSONStore) SavePreferences(prefs models.Preferences) error {
	if s.settings == nil {
		return fmt.Errorf("storage not loaded")
	}
	for k, v := range models.PreferencesToMap(prefs) {
		s.settings[k] = v
	}
	return s.writeSettings()
}

func (s *JSONStore) GetStickyAchievements() (map[int]bool, error) {
	if s.settings == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return models.MapToSticky(s.settings), nil
}

func (s *JSONStore) SaveStickyAchievements(sticky map[int]bool) error {
	if s.settings == nil {
		return fmt.Errorf("storage not loaded")
	}
	for k, v := range models.StickyToMap(sticky) {
		s.settings[k] = v
	}
	return s.writeSettings()
}

func (s *JSONStore) readSettings() (map[string]string, error) {
	data, err := os.ReadFile(s.prefsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	raw := make(map[string]interface{})
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			settings[key] = v
		case float64:
			settings[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			settings[key] = strconv.FormatBool(v)
		default:
			settings[key] = fmt.Sprint(v)
		}
	}
	return settings, nil
}

// writeSettings stores each entry with its natural JSON type so the file
// reads like a plain key/value preference list.
func (s *JSONStore) writeSettings() error {
	out := make(map[string]interface{}, len(s.settings))
	for key, value := range s.settings {
		out[key] = typedSetting(key, value)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}
	if err := writeFileAtomic(s.prefsPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func typedSetting(key, value string) interface{} {
	switch {
	case key == constants.SettingThemeIndex || key == constants.SettingFirstLaunch:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case strings.HasPrefix(key, constants.SettingStickyPrefix):
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return value
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
