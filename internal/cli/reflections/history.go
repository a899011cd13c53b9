package reflections

import (
	"fmt"
	"strings"

	"github.com/julianstephens/mindping/internal/achievements"
	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/models"
)

type HistoryCmd struct {
	Date  string `help:"Only show the reflection for this day (YYYY-MM-DD)." short:"d"`
	Limit int    `help:"Maximum number of entries to show (0 for all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	a := ctx.App
	styles := cli.ThemeStyles(a.Preferences().ThemeIndex)
	before := a.Achievements()

	var entries []models.Reflection
	if strings.TrimSpace(c.Date) != "" {
		day, err := ctx.ParseDayOrToday(c.Date)
		if err != nil {
			return err
		}
		a.SetSelectedDate(day)
		entries = a.ReflectionsForSelectedDate()
		if len(entries) == 0 {
			fmt.Printf("No reflection on %s.\n", day)
		}
	} else {
		entries = a.History()
		if len(entries) == 0 {
			fmt.Println("No reflections yet.")
		}
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	for i, r := range entries {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s  %s\n", styles.Title.Render(r.Day().String()), cli.FormatEmojis(r.Emojis))
		fmt.Printf("  %s\n", styles.Muted.Render(r.Question))
		if r.Text != "" {
			for _, line := range strings.Split(r.Text, "\n") {
				fmt.Printf("  %s\n", line)
			}
		}
	}

	if err := a.MarkHistoryViewed(); err != nil {
		return err
	}
	for _, ach := range achievements.NewlyUnlocked(before, a.Achievements()) {
		fmt.Println()
		fmt.Println(styles.Unlocked.Render(fmt.Sprintf("🏆 Achievement unlocked: %s", ach.Title)))
	}
	return nil
}
