package reflections

import (
	"fmt"

	"github.com/julianstephens/mindping/internal/cli"
)

type QuestionCmd struct {
	Date string `help:"Day to show the question for (YYYY-MM-DD). Defaults to today." short:"d"`
}

func (c *QuestionCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ParseDayOrToday(c.Date)
	if err != nil {
		return err
	}
	fmt.Println(ctx.App.QuestionFor(day))
	return nil
}
