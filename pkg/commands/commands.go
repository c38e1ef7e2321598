// Package commands wires the punch CLI surface. Each verb stays thin and
// delegates to a runner under pkg/runner.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/punch/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "punch",
		Short: base.Wrap80("Track time against named timesheets, one ledger per day."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addStart(topLevel)
	addStop(topLevel)
	addResume(topLevel)
	addShow(topLevel)
	addRemove(topLevel)
	addFile(topLevel)
	addOpen(topLevel)
	addClose(topLevel)
	addWatch(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
