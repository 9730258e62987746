package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "navreplay",
	Short: "Replay navigation scripts against a navstack controller",
	Long: `navreplay drives a navigation controller from a TOML script of steps
and prints the route stack, notification queue and modal after each one.

Time is simulated, so "advance" steps expire notifications deterministically.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Controller log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("config", "", "navstack options file (TOML)")
}
