// Package cmd is the jumia command line.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/yaoapp/jumia/cmd.Version=...".
var Version = "0.1.0"

var envFile string

var rootCmd = &cobra.Command{
	Use:           "jumia",
	Short:         "Extensible Discord gateway client",
	Long:          "jumia connects a bot to the Discord gateway and dispatches every event to the callbacks registered by its extensions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env", "environment file loaded before reading configuration")
	rootCmd.AddCommand(startCmd, versionCmd, eventsCmd)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("✗ %s", err.Error())
		os.Exit(1)
	}
}
