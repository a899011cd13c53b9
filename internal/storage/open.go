package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/mindping/internal/storage/sqlite"
)

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// IsJSONPath reports whether path selects the JSON file provider.
func IsJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// New returns the provider for path: JSON for *.json, SQLite otherwise.
func New(path string) Provider {
	if IsJSONPath(path) {
		return NewJSONStore(path)
	}
	return sqlite.NewStore(path)
}
