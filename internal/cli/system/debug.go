package system

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/logger"
)

type DebugCmd struct {
	DBPath           *DebugDBPathCmd           `cmd:"" help:"Show journal and log file paths."`
	DumpDay          *DebugDumpDayCmd          `cmd:"" help:"Dump the reflections of one day as JSON."`
	DumpSettings     *DebugDumpSettingsCmd     `cmd:"" help:"Dump profile and achievement flags as JSON."`
	DumpAchievements *DebugDumpAchievementsCmd `cmd:"" help:"Dump computed achievements as JSON."`
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	// Machine-readable
	return printJSON(map[string]string{
		"path": ctx.Store.GetConfigPath(),
		"log":  logger.Path(filepath.Dir(ctx.Store.GetConfigPath())),
	})
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Day to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *cli.Context) error {
	date := cmd.Date
	if date == "today" {
		date = ""
	}
	day, err := ctx.ParseDayOrToday(date)
	if err != nil {
		return err
	}

	reflections := ctx.App.ReflectionsOn(day)
	if len(reflections) == 0 {
		return fmt.Errorf("no reflection found for date: %s", day)
	}
	return printJSON(reflections)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	sticky, err := ctx.Store.GetStickyAchievements()
	if err != nil {
		return fmt.Errorf("failed to get achievement flags: %w", err)
	}

	return printJSON(struct {
		Preferences any          `json:"preferences"`
		Sticky      map[int]bool `json:"sticky_achievements"`
	}{prefs, sticky})
}

type DebugDumpAchievementsCmd struct{}

func (cmd *DebugDumpAchievementsCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx.App.Achievements())
}
