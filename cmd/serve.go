package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-studio/internal/content"
	"content-studio/internal/queue"
	"content-studio/internal/redisclient"
	"content-studio/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation workers",
	Long: `Run worker.concurrency generation workers that pop jobs from the Redis
queue, generate the requested content and store the results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		d, err := cfg.ParseDurations()
		if err != nil {
			return err
		}

		// Redis client
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		if _, err := redisclient.Check(cmd.Context(), rdb, 2*time.Second); err != nil {
			return err
		}
		q := queue.NewRedisQueue(rdb, cfg.Worker.Queue)

		gen := content.Generator{Latency: d.Latency}
		ws := make([]worker.Worker, 0, cfg.Worker.Concurrency)
		for i := 0; i < cfg.Worker.Concurrency; i++ {
			ws = append(ws, &worker.GenerationWorker{
				ID:          i,
				Queue:       q,
				Generator:   gen,
				Style:       cfg.Generator.Style,
				PollTimeout: d.PollTimeout,
				ResultTTL:   d.ResultTTL,
			})
		}
		slog.Info("starting generation workers", "queue", cfg.Worker.Queue, "concurrency", len(ws), "latency", d.Latency)

		mgr := worker.NewManager(ws...)
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		go func() {
			select {
			case s := <-sigc:
				slog.Info("received signal, shutting down", "signal", s.String())
				cancel()
			case <-ctx.Done():
			}
		}()

		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
