package cmd

import (
	"strings"

	"github.com/abdul-hamid-achik/coverout/packages/output"
	"github.com/spf13/cobra"
)

func newPutsCmd(opts *rootOptions) *cobra.Command {
	var colorFlag string
	cmd := &cobra.Command{
		Use:   "puts <text...>",
		Short: "Write text followed by a newline",
		Long: `Write the arguments, joined by spaces, followed by a newline.

Examples:
  coverout puts "Coverage is at 93%"
  coverout puts --color "green bold" done`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(ExitWriteFailure, opts.out.Puts(strings.Join(args, " "), opts.colorOption(colorFlag)))
		},
	}
	cmd.Flags().StringVar(&colorFlag, "color", "", "Space-separated color/style tokens, e.g. \"red underline\"")
	return cmd
}

func newPrintCmd(opts *rootOptions) *cobra.Command {
	var colorFlag string
	cmd := &cobra.Command{
		Use:   "print <text...>",
		Short: "Write text without a trailing newline",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(ExitWriteFailure, opts.out.Print(strings.Join(args, " "), opts.colorOption(colorFlag)))
		},
	}
	cmd.Flags().StringVar(&colorFlag, "color", "", "Space-separated color/style tokens, e.g. \"red underline\"")
	return cmd
}

// colorOption falls back to the configured default tokens when no --color
// flag was given.
func (o *rootOptions) colorOption(flag string) output.WriteOption {
	if flag == "" && o.cfg != nil {
		flag = o.cfg.Color
	}
	return output.Color(flag)
}
