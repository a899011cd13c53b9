package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/constants"
	"github.com/julianstephens/mindping/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing journal before initialization."`
	Source string `help:"Existing journal (reflections.json or SQLite file) to copy entries and profile from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	storePath := ctx.Store.GetConfigPath()

	if c.Source != "" {
		absStore, err := filepath.Abs(storePath)
		if err == nil {
			storePath = absStore
		}
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == storePath {
			return fmt.Errorf("source and destination are the same: %s", storePath)
		}
	}

	if c.Force {
		if _, err := os.Stat(storePath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing journal: %w", err)
			}
			if err := os.Remove(storePath); err != nil {
				return fmt.Errorf("failed to delete existing journal: %w", err)
			}
			if storage.IsJSONPath(storePath) {
				prefsPath := filepath.Join(filepath.Dir(storePath), constants.PreferencesFileName)
				if err := os.Remove(prefsPath); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to delete existing preferences: %w", err)
				}
			}
			fmt.Printf("Deleted existing journal at: %s\n", storePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing journal: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized mindping storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}
	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	sourceStore := storage.New(sourcePath)
	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source journal: %w", err)
	}
	defer sourceStore.Close()

	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load destination journal: %w", err)
	}

	fmt.Println("  Migrating profile...")
	prefs, err := sourceStore.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences from source: %w", err)
	}
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences to destination: %w", err)
	}

	sticky, err := sourceStore.GetStickyAchievements()
	if err != nil {
		return fmt.Errorf("failed to get achievement flags from source: %w", err)
	}
	if err := ctx.Store.SaveStickyAchievements(sticky); err != nil {
		return fmt.Errorf("failed to save achievement flags to destination: %w", err)
	}

	fmt.Println("  Migrating reflections...")
	reflections, err := sourceStore.GetReflections()
	if err != nil {
		return fmt.Errorf("failed to get reflections from source: %w", err)
	}
	if err := ctx.Store.ReplaceReflections(reflections); err != nil {
		return fmt.Errorf("failed to save reflections to destination: %w", err)
	}
	fmt.Printf("    Migrated %d reflections\n", len(reflections))

	return nil
}
