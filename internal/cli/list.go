package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajagopal17/KDD19-tutorial/internal/lesson"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered lessons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, l := range lesson.All() {
				fmt.Fprintf(out, "%-16s %s\n", l.Name(), l.Summary())
			}
			return nil
		},
	}
}
