package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/cli/backups"
	"github.com/julianstephens/mindping/internal/cli/profile"
	"github.com/julianstephens/mindping/internal/cli/progress"
	"github.com/julianstephens/mindping/internal/cli/reflections"
	"github.com/julianstephens/mindping/internal/cli/system"
	"github.com/julianstephens/mindping/internal/constants"
	apperrors "github.com/julianstephens/mindping/internal/errors"
	"github.com/julianstephens/mindping/internal/logger"
	"github.com/julianstephens/mindping/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Journal store path. A .json path uses the JSON file store, anything else SQLite." type:"string" default:"~/.config/mindping/mindping.db" env:"MINDPING_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init         system.InitCmd           `cmd:"" help:"Initialize mindping storage."`
	Doctor       system.DoctorCmd         `cmd:"" help:"Run health checks and diagnostics."`
	Validate     system.ValidateCmd       `cmd:"" help:"Check stored reflections for integrity problems."`
	DebugTools   system.DebugCmd          `cmd:"" name:"debug" help:"Debugging utilities."`
	Today        reflections.TodayCmd     `cmd:"" help:"Show today's question and reflection." default:"1"`
	Reflect      reflections.ReflectCmd   `cmd:"" help:"Write or update today's reflection."`
	Question     reflections.QuestionCmd  `cmd:"" help:"Show the question for a day."`
	History      reflections.HistoryCmd   `cmd:"" help:"List past reflections, newest first."`
	Calendar     reflections.CalendarCmd  `cmd:"" help:"Show a month with emoji badges."`
	Achievements progress.AchievementsCmd `cmd:"" help:"List achievements."`
	Stats        progress.StatsCmd        `cmd:"" help:"Show streaks and totals."`
	Profile      profile.ProfileCmd       `cmd:"" help:"View or change profile settings."`
	Tui          system.TuiCmd            `cmd:"" help:"Browse the journal in an interactive view."`
	Backup       struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage journal backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A daily reflection journal: one question a day, streaks and achievements."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath, err := storage.ExpandPath(CLI.Config)
	if err != nil {
		apperrors.Fatalf("failed to resolve config path: %v", err)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Warning(fmt.Errorf("logging disabled: %w", err)))
	}

	store := storage.New(configPath)
	appCtx := &cli.Context{Store: store}

	// init manages the store itself; everything else runs against a loaded journal
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := openStore(store); err != nil {
			apperrors.Fatal(err)
		}
		if err := appCtx.Open(); err != nil {
			store.Close()
			apperrors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	apperrors.Fatal(err)
	logger.Close()
}

// openStore loads the store, creating it on first use.
func openStore(store storage.Provider) error {
	err := store.Load()
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotInitialized) {
		return err
	}

	logger.Info("Creating journal store", "path", store.GetConfigPath())
	if err := store.Init(); err != nil {
		return err
	}
	return store.Load()
}
