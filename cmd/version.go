package cmd

import (
	"fmt"
	"runtime"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jumia %s (discordgo %s, %s)\n", Version, discordgo.VERSION, runtime.Version())
	},
}
