package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/punch/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(punch completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(punch completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func dayCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	days := p.Days(context.Background())
	out := make([]string, 0, len(days))
	for _, day := range days {
		if strings.HasPrefix(day, toComplete) {
			out = append(out, day)
		}
	}
	return out
}

// dayArgCompletion completes the day selector at the given positional index.
func dayArgCompletion(position int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != position {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}
