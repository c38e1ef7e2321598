package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/commands/options"
	"tableflip.dev/punch/pkg/runner/start"
	"tableflip.dev/punch/pkg/store"
)

func addStart(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "start [name]",
		Short: "start a new timesheet, stopping any running one",
		Example: `
punch start "code review"
punch start
`,
		Args: func(_ *cobra.Command, args []string) error {
			name = strings.Join(args, " ")
			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := do.Day()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := start.Start{
				Name:        name,
				Day:         day,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
