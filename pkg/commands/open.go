package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/commands/options"
	"tableflip.dev/punch/pkg/runner/open"
	"tableflip.dev/punch/pkg/store"
)

func addOpen(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "open <id> [day]",
		Short: "open a timesheet's name with the OS handler",
		Example: `
punch open 2
punch open 2 yesterday
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a timesheet id")
			}
			if len(args) > 2 {
				return errors.New("accepts an id and at most one day")
			}
			io.ID = args[0]
			if len(args) == 2 {
				do.DayString = args[1]
			}
			return nil
		},

		ValidArgsFunction: dayArgCompletion(1),

		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := do.Day()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := open.Open{
				ID:          io.ID,
				Day:         day,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddDayArgs(cmd, do)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
