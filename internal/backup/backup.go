package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/mindping/internal/constants"
	"github.com/julianstephens/mindping/internal/logger"
	"github.com/julianstephens/mindping/internal/models"
	"github.com/julianstephens/mindping/internal/storage"
)

var log = logger.Component("backup")

const (
	minuteStamp = "20060102-1504"
	secondStamp = "20060102-150405"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for one store file. Backups live in a
// directory next to the store and share its extension.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
	jsonStore bool
	now       func() time.Time
}

// NewManager creates a new backup manager
func NewManager(storePath string) *Manager {
	suffix := filepath.Ext(storePath)
	if suffix == "" {
		suffix = ".db"
	}
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		suffix:    suffix,
		jsonStore: storage.IsJSONPath(storePath),
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup creates a new backup of the store and prunes old ones.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup skips rotation when called as part of a restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if m.jsonStore {
		err = m.verifyBackup(m.storePath)
		if err == nil {
			err = copyFile(m.storePath, backupPath)
		}
	} else {
		err = m.backupDatabase(backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to backup store: %w", err)
	}
	log.Info("Backup created", "path", backupPath)

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			log.Warn("Failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// nextBackupPath names a backup by the current minute, falling back to
// seconds and then a counter when that name is taken.
func (m *Manager) nextBackupPath() (string, error) {
	now := m.now()
	candidate := func(stamp string) string {
		return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	}

	path := candidate(now.Format(minuteStamp))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	stamp := now.Format(secondStamp)
	path = candidate(stamp)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = candidate(fmt.Sprintf("%s-%d", stamp, counter))
	}
}

// backupDatabase copies a SQLite store with VACUUM INTO, falling back to a
// plain file copy.
func (m *Manager) backupDatabase(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		log.Debug("VACUUM INTO failed, copying file", "error", err)
		srcDB.Close()
		return copyFile(m.storePath, destPath)
	}
	return nil
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	type ranked struct {
		info    BackupInfo
		counter int
	}
	var found []ranked
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		timestamp, counter, ok := parseStamp(stamp)
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := entry.Info()
		if err != nil {
			continue
		}

		found = append(found, ranked{
			info:    BackupInfo{Path: path, Timestamp: timestamp, Size: info.Size()},
			counter: counter,
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].info.Timestamp.Equal(found[j].info.Timestamp) {
			return found[i].info.Timestamp.After(found[j].info.Timestamp)
		}
		return found[i].counter > found[j].counter
	})

	backups := make([]BackupInfo, len(found))
	for i, f := range found {
		backups[i] = f.info
	}
	return backups, nil
}

// parseStamp reads YYYYMMDD-HHMM, YYYYMMDD-HHMMSS or either with a -N counter.
func parseStamp(stamp string) (time.Time, int, bool) {
	parts := strings.Split(stamp, "-")
	counter := 0
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, 0, false
		}
		counter = n
		stamp = parts[0] + "-" + parts[1]
	} else if len(parts) != 2 {
		return time.Time{}, 0, false
	}

	for _, layout := range []string{minuteStamp, secondStamp} {
		if len(stamp) != len(layout) {
			continue
		}
		if t, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return t, counter, true
		}
	}
	return time.Time{}, 0, false
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		log.Debug("Removed old backup", "path", backups[i].Path)
	}
	return nil
}

// RestoreBackup replaces the store with backupPath. When a store already
// exists it is backed up first, and that backup's path is returned. The
// store must be closed by the caller.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var preRestore string
	if _, err := os.Stat(m.storePath); err == nil {
		path, err := m.createBackup(true)
		if err != nil {
			return "", fmt.Errorf("failed to backup current store before restore: %w", err)
		}
		preRestore = path
	}

	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return preRestore, fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			log.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return preRestore, fmt.Errorf("failed to restore store: %w", err)
	}

	log.Info("Store restored", "from", backupPath)
	return preRestore, nil
}

// ResolveBackupPath finds name as given, relative to the working directory,
// or inside the backup directory.
func (m *Manager) ResolveBackupPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		abs, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return abs, nil
	}
	candidate := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", m.backupDir)
}

// verifyBackup checks that path holds a readable store of this manager's kind.
func (m *Manager) verifyBackup(path string) error {
	if m.jsonStore {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var reflections []models.Reflection
		return json.Unmarshal(data, &reflections)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
