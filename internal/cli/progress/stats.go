package progress

import (
	"fmt"

	"github.com/julianstephens/mindping/internal/cli"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	a := ctx.App
	styles := cli.ThemeStyles(a.Preferences().ThemeIndex)
	s := a.Stats(a.Now())

	fmt.Println(styles.Title.Render(a.Preferences().Username))
	if s.Since != "" {
		fmt.Println(styles.Muted.Render(s.Since))
	}
	fmt.Println()
	fmt.Printf("  Reflections:       %d\n", s.Entries)
	fmt.Printf("  Days reflected:    %d\n", s.DistinctDays)
	fmt.Printf("  Current streak:    %d day(s)\n", s.CurrentStreak)
	fmt.Printf("  Longest streak:    %d day(s)\n", s.LongestStreak)
	fmt.Printf("  Positive moods:    %d\n", s.PositiveCount)
	fmt.Printf("  Distinct emoji:    %d\n", s.DistinctEmojis)
	fmt.Printf("  Achievements:      %d/%d\n", s.Unlocked, s.Total)
	return nil
}
