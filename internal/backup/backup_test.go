package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/mindping/internal/constants"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/storage"
)

func sampleReflections(n int) []models.Reflection {
	out := make([]models.Reflection, n)
	for i := range out {
		out[i] = models.Reflection{
			ID:       "id-" + string(rune('a'+i)),
			Date:     time.Date(2024, time.May, 1+i, 9, 0, 0, 0, time.UTC),
			Question: "How did today go?",
			Text:     "entry",
			Emojis:   []string{"😊"},
		}
	}
	return out
}

// setupTestStore creates an initialized store at a path with the given
// extension holding n reflections.
func setupTestStore(t *testing.T, ext string, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal"+ext)
	provider := storage.New(path)
	if err := provider.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := provider.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := provider.ReplaceReflections(sampleReflections(n)); err != nil {
		t.Fatalf("ReplaceReflections failed: %v", err)
	}
	if err := provider.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func countReflections(t *testing.T, path string) int {
	t.Helper()
	provider := storage.New(path)
	if err := provider.Load(); err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	defer provider.Close()
	records, err := provider.GetReflections()
	if err != nil {
		t.Fatalf("GetReflections(%s) failed: %v", path, err)
	}
	return len(records)
}

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	now := time.Date(2024, time.May, 20, 8, 0, 0, 0, time.Local)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestCreateBackup(t *testing.T) {
	for _, ext := range []string{".db", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := setupTestStore(t, ext, 2)
			mgr := NewManager(path)

			backupPath, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup failed: %v", err)
			}
			if filepath.Ext(backupPath) != ext {
				t.Errorf("backup %s does not keep store extension %s", backupPath, ext)
			}
			if !strings.HasPrefix(filepath.Base(backupPath), constants.BackupFilePrefix) {
				t.Errorf("backup name %s missing prefix", backupPath)
			}
			if got := countReflections(t, backupPath); got != 2 {
				t.Errorf("expected 2 reflections in backup, got %d", got)
			}
		})
	}
}

func TestBackupRotation(t *testing.T) {
	path := setupTestStore(t, ".db", 1)
	mgr := NewManager(path)
	mgr.now = steppingClock()

	numBackups := constants.MaxBackups + 5
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted correctly: backup %d is newer than backup %d", i, i-1)
		}
	}
}

func TestListBackups(t *testing.T) {
	path := setupTestStore(t, ".json", 1)
	mgr := NewManager(path)
	mgr.now = steppingClock()

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	// Unrelated files are ignored
	os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600)
	os.WriteFile(filepath.Join(mgr.GetBackupDir(), constants.BackupFilePrefix+"garbage.json"), []byte("[]"), 0600)

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("expected 3 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Path == "" || b.Size == 0 || b.Timestamp.IsZero() {
			t.Errorf("incomplete backup info: %+v", b)
		}
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	path := setupTestStore(t, ".db", 1)
	mgr := NewManager(path)
	fixed := time.Date(2024, time.May, 20, 8, 0, 30, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	seen := make(map[string]bool)
	for i := 0; i < 4; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup filename %s", p)
		}
		seen[p] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 4 {
		t.Errorf("expected 4 backups, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	for _, ext := range []string{".db", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := setupTestStore(t, ext, 2)
			mgr := NewManager(path)
			mgr.now = steppingClock()

			backupPath, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup failed: %v", err)
			}

			// Diverge from the backup
			provider := storage.New(path)
			if err := provider.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if err := provider.ReplaceReflections(sampleReflections(5)); err != nil {
				t.Fatalf("ReplaceReflections failed: %v", err)
			}
			provider.Close()
			if got := countReflections(t, path); got != 5 {
				t.Fatalf("expected 5 reflections before restore, got %d", got)
			}

			preRestore, err := mgr.RestoreBackup(backupPath)
			if err != nil {
				t.Fatalf("RestoreBackup failed: %v", err)
			}
			if got := countReflections(t, path); got != 2 {
				t.Errorf("expected 2 reflections after restore, got %d", got)
			}

			if preRestore == "" {
				t.Fatal("no pre-restore backup reported")
			}
			if got := countReflections(t, preRestore); got != 5 {
				t.Errorf("pre-restore backup holds %d reflections, want 5", got)
			}
			if _, err := os.Stat(path + ".restore.tmp"); !os.IsNotExist(err) {
				t.Error("temporary restore file left behind")
			}
		})
	}
}

func TestRestoreWithCorruptedBackup(t *testing.T) {
	for _, ext := range []string{".db", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := setupTestStore(t, ext, 1)
			mgr := NewManager(path)

			bad := filepath.Join(t.TempDir(), "corrupt"+ext)
			if err := os.WriteFile(bad, []byte("this is not a journal store, just junk bytes padded out"), 0600); err != nil {
				t.Fatalf("failed to write corrupt file: %v", err)
			}

			if _, err := mgr.RestoreBackup(bad); err == nil {
				t.Error("expected error restoring corrupted backup")
			}
			if got := countReflections(t, path); got != 1 {
				t.Errorf("store changed after failed restore: %d reflections", got)
			}
		})
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	mgr := NewManager(setupTestStore(t, ".db", 1))
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup")
	}
}

func TestBackupWithNoStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when store does not exist")
	}
}

func TestResolveBackupPath(t *testing.T) {
	path := setupTestStore(t, ".db", 1)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	got, err := mgr.ResolveBackupPath(filepath.Base(backupPath))
	if err != nil {
		t.Fatalf("ResolveBackupPath by name failed: %v", err)
	}
	if got != backupPath {
		t.Errorf("ResolveBackupPath() = %s, want %s", got, backupPath)
	}

	if got, err := mgr.ResolveBackupPath(backupPath); err != nil || got != backupPath {
		t.Errorf("ResolveBackupPath(abs) = %s, %v", got, err)
	}

	if _, err := mgr.ResolveBackupPath("mindping-19990101-0000.db"); err == nil {
		t.Error("expected error for unknown backup")
	}
}

func TestParseStamp(t *testing.T) {
	tests := []struct {
		stamp       string
		wantCounter int
		wantOK      bool
	}{
		{"20240520-0800", 0, true},
		{"20240520-080030", 0, true},
		{"20240520-080030-3", 3, true},
		{"20240520", 0, false},
		{"garbage", 0, false},
		{"20240520-0800-x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.stamp, func(t *testing.T) {
			_, counter, ok := parseStamp(tt.stamp)
			if ok != tt.wantOK || counter != tt.wantCounter {
				t.Errorf("parseStamp(%q) = %d, %v, want %d, %v", tt.stamp, counter, ok, tt.wantCounter, tt.wantOK)
			}
		})
	}
}

func TestJSONStoreSiblingPreferencesUntouched(t *testing.T) {
	path := setupTestStore(t, ".json", 1)
	mgr := NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	for _, b := range backups {
		if filepath.Base(b.Path) == constants.PreferencesFileName {
			t.Errorf("preferences file listed as backup: %s", b.Path)
		}
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), constants.PreferencesFileName)); err != nil {
		t.Errorf("preferences file missing: %v", err)
	}
}
