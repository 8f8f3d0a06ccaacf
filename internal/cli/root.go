// Package cli implements the kdd19 command: list the registered
// lessons, run one with optional configuration, and print build info.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd assembles the kdd19 command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "kdd19",
		Short:        "Hands-on deep learning lessons",
		Long:         "Runnable lessons on tensors, automatic differentiation and linear regression.",
		SilenceUsage: true,
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(runCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
