package worker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Worker is a long-running task that returns when ctx is cancelled.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager runs a pool of workers sharing one lifetime.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start blocks until every worker has returned. Workers stop when ctx is
// cancelled or when any of them fails; the first failure is returned.
func (m *Manager) Start(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)
	for i, w := range m.workers {
		i, w := i, w
		eg.Go(func() error {
			if err := w.Start(egCtx); err != nil {
				slog.Error("worker: exited with error, stopping pool", "worker", i, "err", err)
				return err
			}
			return nil
		})
	}
	return eg.Wait()
}
