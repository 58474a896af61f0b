// Package cli wires configuration, rate tables and services into the
// mortgage-affordability command.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mortgage-affordability",
		Short:        "Mortgage affordability and stamp duty calculator",
		SilenceUsage: true,
	}
	cmd.AddCommand(serveCmd(), tablesCmd())
	return cmd
}
