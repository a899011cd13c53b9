package reflections

import (
	"fmt"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/streak"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	a := ctx.App
	styles := cli.ThemeStyles(a.Preferences().ThemeIndex)
	today := a.Today()

	fmt.Println(styles.Title.Render(fmt.Sprintf("Hi %s, it's %s", a.Preferences().Username, a.Now().Format("Monday, Jan 2"))))
	fmt.Println()
	fmt.Printf("Today's question: %s\n", styles.Accent.Render(a.TodayQuestion()))

	saved, ok := a.SavedToday()
	if !ok {
		fmt.Println()
		fmt.Println("No reflection yet today. Run 'mindping reflect' to write one.")
	} else {
		fmt.Println()
		if saved.Text != "" {
			fmt.Println(saved.Text)
		}
		fmt.Printf("Mood: %s\n", cli.FormatEmojis(saved.Emojis))
		fmt.Println(styles.Muted.Render(fmt.Sprintf("Saved at %s", saved.Date.Format("15:04"))))
	}

	if current := streak.Current(a.Days(), today); current > 0 {
		fmt.Println()
		fmt.Printf("🔥 Current streak: %d day(s)\n", current)
	}
	return nil
}
