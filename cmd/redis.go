package cmd

import "github.com/spf13/cobra"

// redisCmd groups the commands that inspect the job queue backend.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Redis and job queue utilities",
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
