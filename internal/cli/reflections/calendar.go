package reflections

import (
	"fmt"
	"strings"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/utils"
)

type CalendarCmd struct {
	Month string `help:"Month to show (YYYY-MM). Defaults to the current month." short:"m"`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	a := ctx.App
	month := a.Today()
	if strings.TrimSpace(c.Month) != "" {
		parsed, err := utils.ParseMonth(strings.TrimSpace(c.Month))
		if err != nil {
			return err
		}
		month = parsed
	}

	fmt.Println(cli.RenderMonth(a, month, a.Today(), cli.ThemeStyles(a.Preferences().ThemeIndex)))

	days := utils.DaysInMonth(month)
	written := 0
	for _, d := range days {
		if len(a.ReflectionsOn(d)) > 0 {
			written++
		}
	}
	fmt.Printf("\n%d of %d days reflected.\n", written, len(days))
	return nil
}
