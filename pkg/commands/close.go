package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/commands/options"
	closer "tableflip.dev/punch/pkg/runner/close"
	"tableflip.dev/punch/pkg/store"
)

func addClose(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "close [day]",
		Short: "close out the day: stop, reconcile unnamed time, and hand off",
		Long: `Close out a day. The running timesheet is stopped, unnamed ("...")
timesheets are removed and their time optionally sprinkled across the named
ones in proportion to their recorded time, and each remaining timesheet is
handed to the OS opener in turn.`,
		Example: `
punch close
punch close yesterday
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one day")
			}
			if len(args) == 1 {
				do.DayString = args[0]
			}
			return nil
		},

		ValidArgsFunction: dayArgCompletion(0),

		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := do.Day()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := closer.Close{
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
