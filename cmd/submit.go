package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-studio/internal/content"
	"content-studio/internal/model"
	"content-studio/internal/queue"
	"content-studio/internal/redisclient"

	"github.com/spf13/cobra"
)

var (
	submitProduct string
	submitSession string
	submitFormat  string
	submitOut     string
	submitWait    time.Duration
	submitStyle   *styleFlags
)

var submitCmd = &cobra.Command{
	Use:   "submit <kind>",
	Short: "Queue a generation job and wait for its result",
	Long: `Queue a generation job for the workers started by serve and print the
result. Kinds: title, description, card, meta. A session holds at most one
job in flight; submitting again while one is pending fails.

A job cancelled by a shutting-down serve stores no result. submit stops
waiting as soon as the job no longer holds the session lock, released or
expired after worker.lock_ttl, without having stored a result, instead of
waiting for --wait to pass.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		d, err := cfg.ParseDurations()
		if err != nil {
			return err
		}
		kind, err := content.ParseKind(args[0])
		if err != nil {
			return err
		}
		p, err := loadProduct(submitProduct)
		if err != nil {
			return err
		}
		// validate locally; the worker applies the options to its own style
		if _, err := submitStyle.apply(cfg.Generator.Style, cfg.Keywords.Suggested); err != nil {
			return err
		}
		opts, err := submitStyle.form(cfg.Keywords.Suggested)
		if err != nil {
			return err
		}

		session := submitSession
		if session == "" {
			if session, err = os.Hostname(); err != nil {
				return fmt.Errorf("default session: %w", err)
			}
		}

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		q := queue.NewRedisQueue(rdb, cfg.Worker.Queue)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		job := model.NewJob(session, kind, p, opts)
		if err := submitJob(ctx, q, job, d.LockTTL); err != nil {
			return err
		}
		slog.Info("job queued", "job", job.ID, "session", session, "kind", kind)

		res, err := waitResult(ctx, q, session, job.ID, submitWait)
		if err != nil {
			return err
		}
		if res.Error != "" {
			return fmt.Errorf("job %s failed: %s", job.ID, res.Error)
		}
		if res.Content == nil {
			return fmt.Errorf("job %s: empty result", job.ID)
		}
		return writeContent(cmd.OutOrStdout(), *res.Content, p, submitFormat, submitOut)
	},
}

// jobSubmitter is the part of the queue submitJob uses.
type jobSubmitter interface {
	AcquireSession(ctx context.Context, session, jobID string, ttl time.Duration) error
	Enqueue(ctx context.Context, job model.Job) error
	ReleaseSession(ctx context.Context, session, jobID string) error
}

// submitJob takes the session lock for job and queues it. The lock is given
// back if the job cannot be queued.
func submitJob(ctx context.Context, q jobSubmitter, job model.Job, lockTTL time.Duration) error {
	if err := q.AcquireSession(ctx, job.Session, job.ID, lockTTL); err != nil {
		if errors.Is(err, queue.ErrSessionBusy) {
			return fmt.Errorf("session %s: %w", job.Session, err)
		}
		return err
	}
	if err := q.Enqueue(ctx, job); err != nil {
		if rerr := q.ReleaseSession(context.WithoutCancel(ctx), job.Session, job.ID); rerr != nil {
			slog.Warn("release session failed", "session", job.Session, "job", job.ID, "err", rerr)
		}
		return fmt.Errorf("enqueue job: %w", err)
	}
	return nil
}

// errJobAbandoned reports a job that released its session without
// storing a result.
var errJobAbandoned = errors.New("job ended without a result")

// resultSource is the part of the queue waitResult polls.
type resultSource interface {
	Result(ctx context.Context, id string) (model.JobResult, bool, error)
	SessionHolder(ctx context.Context, session string) (string, bool, error)
}

// waitResult polls for the result of job id until it appears, the job stops
// holding the session lock, wait passes or ctx ends.
func waitResult(ctx context.Context, src resultSource, session, id string, wait time.Duration) (model.JobResult, error) {
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()
	for {
		res, ok, err := src.Result(ctx, id)
		if err != nil && ctx.Err() == nil {
			return model.JobResult{}, fmt.Errorf("fetch result: %w", err)
		}
		if ok {
			return res, nil
		}
		if err == nil {
			holder, held, herr := src.SessionHolder(ctx, session)
			if herr != nil && ctx.Err() == nil {
				return model.JobResult{}, fmt.Errorf("check session: %w", herr)
			}
			if herr == nil && (!held || holder != id) {
				// the worker stores the result before releasing the lock
				if res, ok, err := src.Result(ctx, id); err == nil && ok {
					return res, nil
				}
				return model.JobResult{}, fmt.Errorf("job %s: %w", id, errJobAbandoned)
			}
		}
		select {
		case <-ctx.Done():
			return model.JobResult{}, fmt.Errorf("waiting for job %s: %w", id, ctx.Err())
		case <-tick.C:
		}
	}
}

func init() {
	f := submitCmd.Flags()
	f.StringVarP(&submitProduct, "product", "p", "", "product file (.md with frontmatter, .yaml or .json); sample product when empty")
	f.StringVar(&submitSession, "session", "", "session holding the in-flight lock (default: hostname)")
	f.StringVarP(&submitFormat, "format", "f", "text", "output format: text, json, html, markdown")
	f.StringVarP(&submitOut, "out", "o", "", "write to this path instead of stdout (supports {.CurrentDate}, {.Slug}, {.Kind})")
	f.DurationVar(&submitWait, "wait", 30*time.Second, "how long to wait for the result")
	submitStyle = addStyleFlags(f)
	rootCmd.AddCommand(submitCmd)
}
