package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindping/internal/backup"
	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/storage/sqlite"
	"github.com/julianstephens/mindping/internal/utils"
	"github.com/julianstephens/mindping/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	gate     bool // later checks that need the journal depend on this one
	needsDB  bool
	advisory bool
}

var checks = []check{
	{name: "Journal reachable", run: checkStoreReachable, gate: true},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, advisory: true},
	{name: "Reflection integrity", run: checkValidation, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	reachable := false

	for _, c := range checks {
		if c.needsDB && !reachable {
			fmt.Printf("⊘ %s: SKIPPED (journal not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
			if c.gate {
				reachable = true
			}
		case c.advisory:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	if _, err := ctx.Store.GetReflections(); err != nil {
		return fmt.Errorf("failed to read reflections: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// The JSON store has no schema version
		return nil
	}

	runner, err := sqliteStore.Runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	runner, err := sqliteStore.Runner()
	if err != nil {
		return err
	}
	pending, err := runner.Pending()
	if err != nil {
		return err
	}
	if pending > 0 {
		return fmt.Errorf("migrations incomplete: %d pending", pending)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'mindping backup create'")
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	reflections, err := ctx.Store.GetReflections()
	if err != nil {
		return fmt.Errorf("failed to get reflections: %w", err)
	}

	result := validation.New().ValidateReflections(reflections, time.Now())
	if result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found, run 'mindping validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		// Reported by the reachability check
		return nil
	}
	if !utils.ValidateTimezone(prefs.Timezone) {
		return fmt.Errorf("configured timezone %q is not recognized", prefs.Timezone)
	}
	return nil
}
