package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"content-studio/internal/content"
	"content-studio/internal/model"
)

// JobQueue is the queue side a GenerationWorker consumes.
type JobQueue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*model.Job, error)
	StoreResult(ctx context.Context, res model.JobResult, ttl time.Duration) error
	ReleaseSession(ctx context.Context, session, jobID string) error
}

// GenerationWorker pops generation jobs, runs them and stores the results.
type GenerationWorker struct {
	ID          int
	Queue       JobQueue
	Generator   content.Generator
	Style       content.StyleConfig // base style, overlaid by job options
	PollTimeout time.Duration
	ResultTTL   time.Duration
	RetryDelay  time.Duration // wait after a queue error
}

func (w *GenerationWorker) Start(ctx context.Context) error {
	if w.PollTimeout <= 0 {
		w.PollTimeout = 5 * time.Second
	}
	if w.ResultTTL <= 0 {
		w.ResultTTL = time.Hour
	}
	if w.RetryDelay <= 0 {
		w.RetryDelay = time.Second
	}
	slog.Info("worker: generation worker started", "id", w.ID)
	for {
		if ctx.Err() != nil {
			return nil
		}
		job, err := w.Queue.Dequeue(ctx, w.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Warn("worker: dequeue failed", "id", w.ID, "err", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(w.RetryDelay):
			}
			continue
		}
		if job == nil {
			continue
		}
		w.runOnce(ctx, *job)
	}
}

func (w *GenerationWorker) runOnce(ctx context.Context, job model.Job) {
	log := slog.With("id", w.ID, "job", job.ID, "session", job.Session, "kind", job.Kind)
	// the in-flight mark is cleared even when ctx is already cancelled,
	// but only while this job still holds it
	defer func() {
		if job.Session == "" {
			return
		}
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := w.Queue.ReleaseSession(rctx, job.Session, job.ID); err != nil {
			log.Warn("worker: release session failed", "err", err)
		}
	}()

	res := model.JobResult{JobID: job.ID, Session: job.Session}
	kind, err := content.ParseKind(string(job.Kind))
	if err != nil {
		res.Error = err.Error()
	} else {
		style := content.StyleFromForm(w.Style, job.Options)
		gc, err := w.Generator.Generate(ctx, content.Request{Kind: kind, Product: job.Product, Style: style})
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Info("worker: generation cancelled, no result stored")
			return
		}
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Content = &gc
		}
	}
	res.FinishedAt = time.Now().UTC()

	if err := w.Queue.StoreResult(ctx, res, w.ResultTTL); err != nil {
		log.Error("worker: store result failed", "err", err)
		return
	}
	if res.Error != "" {
		log.Warn("worker: job failed", "err", res.Error)
		return
	}
	log.Info("worker: job done")
}
