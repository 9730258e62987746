package main

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Replay a navigation script",
	Long: `Replays every [[step]] of a script in order. For example:

  [[step]]
  op = "push"
  route = "detail"
  arg = "1"

  [[step]]
  op = "notify"
  message = "Saved"
  duration = "2s"

  [[step]]
  op = "advance"
  duration = "2s"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		logLevel, _ := cmd.Flags().GetString("log-level")
		return runScript(cmd.Context(), cmd, args[0], configPath, logLevel)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(ctx context.Context, cmd *cobra.Command, scriptPath, configPath, logLevel string) error {
	script, err := LoadScript(scriptPath)
	if err != nil {
		return err
	}

	var opts navstack.Options
	if configPath != "" {
		if opts, err = navstack.LoadOptions(configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if logLevel != "" {
		opts.LogLevel = logLevel
	}
	defer navstack.CloseLogger()

	if ctx == nil {
		ctx = context.Background()
	}
	return Play(ctx, cmd.OutOrStdout(), script, opts)
}
