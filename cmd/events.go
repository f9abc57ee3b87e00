package cmd

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/yaoapp/jumia/client"
)

var eventsJSON bool

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the gateway events extensions can register for",
	RunE: func(cmd *cobra.Command, _ []string) error {
		kinds := client.Catalogue()
		out := cmd.OutOrStdout()
		if eventsJSON {
			data, err := jsoniter.MarshalIndent(kinds, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}
		for _, k := range kinds {
			fmt.Fprintln(out, k)
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "print as a JSON array")
}
