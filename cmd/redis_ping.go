package cmd

import (
	"context"
	"fmt"
	"time"

	"content-studio/internal/queue"
	"content-studio/internal/redisclient"

	"github.com/spf13/cobra"
)

// pingCmd pings the configured Redis server.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping Redis and print PONG",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		res, err := redisclient.Check(cmd.Context(), rdb, 2*time.Second)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

// queueLenCmd prints how many generation jobs are waiting.
var queueLenCmd = &cobra.Command{
	Use:   "queue",
	Short: "Print the number of queued generation jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		defer cancel()

		n, err := queue.NewRedisQueue(rdb, cfg.Worker.Queue).Len(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", cfg.Worker.Queue, n)
		return nil
	},
}

func init() {
	redisCmd.AddCommand(pingCmd, queueLenCmd)
}
