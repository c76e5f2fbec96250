package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keywordsCmd lists the suggested keywords with the numbers --suggested takes.
var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the suggested keywords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, k := range GetConfig().Keywords.Suggested {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
