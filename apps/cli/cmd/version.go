package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		PersistentPreRunE: skipResolve,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coverout version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", buildTime)
		},
	}
}
