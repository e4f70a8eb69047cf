package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/coverout/packages/core/config"
	"github.com/abdul-hamid-achik/coverout/packages/logging"
	"github.com/abdul-hamid-achik/coverout/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// rootOptions holds the persistent flags and the state resolved from them
// before any subcommand runs.
type rootOptions struct {
	silent     bool
	noColor    bool
	configPath string
	verbose    int

	lookupEnv func(string) (string, bool)

	cfg *config.Config
	out *output.Output
}

func newRootCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{lookupEnv: lookupEnv}

	rootCmd := &cobra.Command{
		Use:   "coverout",
		Short: "Write text to the console, with optional color.",
		Long: `coverout writes text to standard output, optionally styled with
ANSI color tokens such as "red underline". Output can be muted with
--silent and styling disabled with --no-color.

Settings are read from .coverout.json / .coverout.yml, then the
COVEROUT_SILENT and NO_COLOR environment variables, then flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              usageArgs(cobra.NoArgs),
		PersistentPreRunE: opts.resolve,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.silent, "silent", "s", false, "Suppress all output (env: COVEROUT_SILENT)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output (env: NO_COLOR)")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "Diagnostic logging on stderr (-v, -vv, -vvv)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return withExitCode(ExitUsageError, err)
	})

	rootCmd.AddCommand(newPutsCmd(opts))
	rootCmd.AddCommand(newPrintCmd(opts))
	rootCmd.AddCommand(newFormatCmd(opts))
	rootCmd.AddCommand(newColorsCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolve layers defaults, config file, environment and flags, then builds
// the Output every subcommand writes through.
func (o *rootOptions) resolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}
	cfg = cfg.Merge(config.FromEnv(o.lookupEnv))

	flags := &config.Config{}
	if cmd.Flags().Changed("silent") {
		flags.Silent = config.BoolPtr(o.silent)
	}
	if cmd.Flags().Changed("no-color") {
		flags.NoColor = config.BoolPtr(o.noColor)
	}
	cfg = cfg.Merge(flags)

	logging.Setup(cmd.ErrOrStderr(), o.verbose, cfg.GetNoColor())
	logger := logging.Get("cli")
	logger.Debug().
		Bool("silent", cfg.GetSilent()).
		Bool("noColor", cfg.GetNoColor()).
		Str("color", cfg.Color).
		Msg("resolved settings")

	o.cfg = cfg
	o.out = output.New(output.WithWriter(cmd.OutOrStdout()))
	cfg.Apply(o.out)
	return nil
}

// skipResolve replaces resolve for commands that never write through Output,
// so a broken config file cannot fail them.
func skipResolve(*cobra.Command, []string) error { return nil }

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withExitCode(ExitUsageError, validate(cmd, args))
	}
}

func run(args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	rootCmd := newRootCmd(lookupEnv)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}
