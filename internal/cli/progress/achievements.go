package progress

import (
	"fmt"

	"github.com/julianstephens/mindping/internal/cli"
)

type AchievementsCmd struct {
	Unlocked bool `help:"Only show unlocked achievements."`
}

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
	a := ctx.App
	styles := cli.ThemeStyles(a.Preferences().ThemeIndex)
	list := a.Achievements()

	fmt.Println(styles.Title.Render(fmt.Sprintf("Achievements (%d/%d unlocked)", len(a.Unlocked()), len(list))))
	fmt.Println()

	for _, ach := range list {
		if c.Unlocked && !ach.IsUnlocked {
			continue
		}
		if ach.IsUnlocked {
			fmt.Printf("🏆 %s\n", styles.Unlocked.Render(ach.Title))
			fmt.Printf("   %s\n", ach.Description)
		} else {
			fmt.Printf("🔒 %s\n", styles.Locked.Render(ach.Title))
			fmt.Printf("   %s\n", styles.Locked.Render(ach.Description))
		}
	}
	return nil
}
