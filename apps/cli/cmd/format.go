package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newFormatCmd(opts *rootOptions) *cobra.Command {
	var (
		colorFlag string
		quoteFlag bool
	)
	cmd := &cobra.Command{
		Use:   "format <text...>",
		Short: "Show the styled form of text",
		Long: `Render text with the given color tokens and write the result.
With --quote the result is printed as a Go string literal so the escape
codes are visible.

Examples:
  coverout format --color "red underline" --quote "Hi dog!"`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted := opts.out.Format(strings.Join(args, " "), opts.colorOption(colorFlag))
			if quoteFlag {
				formatted = strconv.Quote(formatted)
			}
			return withExitCode(ExitWriteFailure, opts.out.Puts(formatted))
		},
	}
	cmd.Flags().StringVar(&colorFlag, "color", "", "Space-separated color/style tokens")
	cmd.Flags().BoolVarP(&quoteFlag, "quote", "q", false, "Print the result as a quoted Go string")
	return cmd
}
