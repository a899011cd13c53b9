package system

import (
	"fmt"

	"github.com/julianstephens/mindping/internal/cli"
	"github.com/julianstephens/mindping/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Collapse days with several reflections down to the newest one."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	records := ctx.Journal.All()

	fmt.Println("Validating reflections...")
	result := validation.New().ValidateReflections(records, ctx.App.Now())

	fmt.Println()
	fmt.Println(result.FormatReport())

	if !cmd.Fix || !result.HasConflicts() {
		return nil
	}

	fixed, actions := validation.AutoFixDuplicateDays(result.Conflicts, records)
	if len(actions) == 0 {
		fmt.Println("Nothing to fix automatically.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Journal.Save(fixed); err != nil {
		return err
	}
	ctx.Journal.Load()

	fmt.Println("Applied fixes:")
	for _, action := range actions {
		fmt.Printf("  ✓ %s\n", action.Action)
	}
	return nil
}
