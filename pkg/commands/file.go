package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/commands/options"
	"tableflip.dev/punch/pkg/runner/file"
	"tableflip.dev/punch/pkg/store"
)

func addFile(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "file [day]",
		Short: "print the path of the day's ledger file",
		Example: `
punch file
punch file yesterday
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
			s := file.File{
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
