package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mindping/internal/constants"
	apperrors "github.com/julianstephens/mindping/internal/errors"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/storage/sqlite"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), constants.ReflectionsFileName))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestJSONStoreLoadNotInitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "reflections.json"))
	if err := store.Load(); !errors.Is(err, apperrors.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
	if _, err := store.GetPreferences(); err == nil {
		t.Error("GetPreferences() succeeded before Load")
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	store := setupTestJSONStore(t)
	if err := NewJSONStore(store.GetConfigPath()).Init(); err == nil {
		t.Error("second Init() succeeded over existing store")
	}
}

func TestJSONStoreReflectionsFile(t *testing.T) {
	store := setupTestJSONStore(t)

	records := []models.Reflection{
		{ID: "a", Date: time.Date(2024, time.March, 1, 9, 15, 0, 0, time.UTC), Question: "Q?", Text: "hello", Emojis: []string{"😀"}},
		{ID: "b", Date: time.Date(2024, time.March, 2, 9, 15, 0, 0, time.UTC), Question: "Q?"},
	}
	if err := store.ReplaceReflections(records); err != nil {
		t.Fatalf("ReplaceReflections failed: %v", err)
	}

	data, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "\n  {") {
		t.Errorf("reflections file is not pretty-printed:\n%s", text)
	}
	if !strings.Contains(text, `"date": "2024-03-01T09:15:00Z"`) {
		t.Errorf("date not written as RFC 3339:\n%s", text)
	}
	if strings.Contains(text, "null") {
		t.Errorf("nil emojis written as null:\n%s", text)
	}

	got, err := store.GetReflections()
	if err != nil {
		t.Fatalf("GetReflections failed: %v", err)
	}
	if len(got) != 2 || got[0].Text != "hello" || !got[0].Date.Equal(records[0].Date) {
		t.Errorf("GetReflections() = %+v", got)
	}
	if got[1].Emojis == nil || len(got[1].Emojis) != 0 {
		t.Errorf("emojis = %#v, want empty list", got[1].Emojis)
	}
}

func TestJSONStoreCorruptReflections(t *testing.T) {
	store := setupTestJSONStore(t)
	if err := os.WriteFile(store.GetConfigPath(), []byte(`[{"id": 1,`), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := store.GetReflections(); err == nil {
		t.Error("GetReflections() succeeded on corrupt file")
	}
}

func TestJSONStorePreferences(t *testing.T) {
	store := setupTestJSONStore(t)

	prefs, err := store.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if prefs.Username != constants.DefaultUsername || prefs.TextSize != constants.DefaultTextSize {
		t.Errorf("default preferences = %+v", prefs)
	}

	prefs.Username = "Jordan"
	prefs.ThemeIndex = 3
	prefs.FirstLaunch = time.Unix(1710000000, 0)
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}
	if err := store.SaveStickyAchievements(map[int]bool{11: true}); err != nil {
		t.Fatalf("SaveStickyAchievements failed: %v", err)
	}

	// The sidecar holds typed values
	data, err := os.ReadFile(filepath.Join(filepath.Dir(store.GetConfigPath()), constants.PreferencesFileName))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("preferences file is not JSON: %v", err)
	}
	if raw[constants.SettingThemeIndex] != float64(3) {
		t.Errorf("themeIndex = %#v, want number", raw[constants.SettingThemeIndex])
	}
	if raw[constants.SettingFirstLaunch] != float64(1710000000) {
		t.Errorf("firstLaunchTimestamp = %#v, want epoch seconds", raw[constants.SettingFirstLaunch])
	}
	if raw["achievement.11.unlocked"] != true {
		t.Errorf("sticky flag = %#v, want true", raw["achievement.11.unlocked"])
	}

	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reopened.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if got.Username != "Jordan" || got.ThemeIndex != 3 || !got.FirstLaunch.Equal(prefs.FirstLaunch) {
		t.Errorf("reloaded preferences = %+v", got)
	}
	sticky, err := reopened.GetStickyAchievements()
	if err != nil {
		t.Fatalf("GetStickyAchievements failed: %v", err)
	}
	if !sticky[11] {
		t.Errorf("sticky = %v, want 11 unlocked", sticky)
	}
}

func TestJSONStoreCorruptPreferences(t *testing.T) {
	store := setupTestJSONStore(t)
	prefsPath := filepath.Join(filepath.Dir(store.GetConfigPath()), constants.PreferencesFileName)
	if err := os.WriteFile(prefsPath, []byte("{{{"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v, want broken preferences ignored", err)
	}
	prefs, err := reopened.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if prefs.Username != constants.DefaultUsername {
		t.Errorf("Username = %q, want default", prefs.Username)
	}
}

func TestIsJSONPath(t *testing.T) {
	tests := map[string]bool{
		"reflections.json":   true,
		"/a/b/REFLECT.JSON":  true,
		"mindping.db":        false,
		"journal":            false,
		"/tmp/json/store.db": false,
	}
	for path, want := range tests {
		if got := IsJSONPath(path); got != want {
			t.Errorf("IsJSONPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	if _, ok := New("x/reflections.json").(*JSONStore); !ok {
		t.Error("New(*.json) did not return a JSONStore")
	}
	if _, ok := New("x/mindping.db").(*sqlite.Store); !ok {
		t.Error("New(*.db) did not return a sqlite.Store")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/.config/mindping/mindping.db", filepath.Join(home, ".config/mindping/mindping.db")},
		{"/abs/path.db", "/abs/path.db"},
		{"relative.json", "relative.json"},
		{"~other/file", "~other/file"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.input)
		if err != nil {
			t.Errorf("ExpandPath(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
