package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/commands/options"
	"tableflip.dev/punch/pkg/runner/resume"
	"tableflip.dev/punch/pkg/store"
)

func addResume(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "resume [id]",
		Short: "resume a stopped timesheet, defaulting to the last active one",
		Example: `
punch resume
punch resume 2
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one timesheet id")
			}
			if len(args) == 1 {
				io.ID = args[0]
			}
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
			s := resume.Resume{
				ID:          io.ID,
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
