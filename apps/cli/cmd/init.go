package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/coverout/packages/core/config"
	"github.com/abdul-hamid-achik/coverout/packages/output"
	"github.com/spf13/cobra"
)

// defaultConfigFile is the file written by init.
const defaultConfigFile = ".coverout.yml"

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		forceInit bool
		dirFlag   string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a .coverout.yml with default settings to the current directory.

Examples:
  coverout init
  coverout init --force`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := dirFlag
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = cwd
			}

			configFile := filepath.Join(dir, defaultConfigFile)
			if !forceInit {
				if _, err := os.Stat(configFile); err == nil {
					return withExitCode(ExitConfigError, fmt.Errorf("file already exists: %s (use --force to overwrite)", configFile))
				}
			}

			if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
				return withExitCode(ExitConfigError, fmt.Errorf("failed to create config file: %w", err))
			}
			return withExitCode(ExitWriteFailure, opts.out.Puts("Created: "+configFile, output.Color("green")))
		},
	}
	cmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Directory to write the config file to (default: current directory)")
	return cmd
}
