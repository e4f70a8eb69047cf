package cmd

import (
	"github.com/abdul-hamid-achik/coverout/packages/output"
	"github.com/spf13/cobra"
)

func newColorsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the known color and style tokens",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range output.ANSIPalette().Tokens() {
				if err := opts.out.Puts(token, output.Color(token)); err != nil {
					return withExitCode(ExitWriteFailure, err)
				}
			}
			return nil
		},
	}
}
