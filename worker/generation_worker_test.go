package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"content-studio/internal/content"
	"content-studio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	mu       sync.Mutex
	jobs     []model.Job
	results  map[string]model.JobResult
	released []string
	failNext error
}

func newFakeQueue(jobs ...model.Job) *fakeQueue {
	return &fakeQueue{jobs: jobs, results: map[string]model.JobResult{}}
}

func (q *fakeQueue) Dequeue(ctx context.Context, timeout time.Duration) (*model.Job, error) {
	q.mu.Lock()
	if err := q.failNext; err != nil {
		q.failNext = nil
		q.mu.Unlock()
		return nil, err
	}
	if len(q.jobs) > 0 {
		j := q.jobs[0]
		q.jobs = q.jobs[1:]
		q.mu.Unlock()
		return &j, nil
	}
	q.mu.Unlock()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(timeout):
		return nil, nil
	}
}

func (q *fakeQueue) StoreResult(ctx context.Context, res model.JobResult, ttl time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.results[res.JobID] = res
	return nil
}

func (q *fakeQueue) ReleaseSession(ctx context.Context, session, jobID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.released = append(q.released, session+"/"+jobID)
	return nil
}

func (q *fakeQueue) snapshot() (map[string]model.JobResult, []string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	res := make(map[string]model.JobResult, len(q.results))
	for k, v := range q.results {
		res[k] = v
	}
	return res, append([]string(nil), q.released...)
}

var phone = content.ProductAttributes{Name: "Phone", Brand: "Acme", Category: "Electronics", Images: []string{"img0.jpg"}}

func startWorker(t *testing.T, w *GenerationWorker) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	return func() {
		cancelCtx()
		require.NoError(t, <-done)
	}
}

func TestGenerationWorkerProcessesJobs(t *testing.T) {
	meta := model.NewJob("s1", content.KindMetaTags, phone, map[string]string{content.FormIncludeBrand: "false"})
	bad := model.NewJob("s2", content.Kind("poem"), phone, nil)
	q := newFakeQueue(meta, bad)

	stop := startWorker(t, &GenerationWorker{Queue: q, Style: content.DefaultStyle(), PollTimeout: 10 * time.Millisecond})
	require.Eventually(t, func() bool {
		res, _ := q.snapshot()
		return len(res) == 2
	}, time.Second, 5*time.Millisecond)
	stop()

	res, released := q.snapshot()
	got := res[meta.ID]
	require.NotNil(t, got.Content)
	assert.Empty(t, got.Error)
	assert.Equal(t, "Phone - Electronics", got.Content.MetaTitle)
	assert.Equal(t, "Acme Phone - Immagine principale del prodotto Electronics", got.Content.AltTags[0].AltText)

	assert.Nil(t, res[bad.ID].Content)
	assert.Contains(t, res[bad.ID].Error, "unknown content kind")

	assert.ElementsMatch(t, []string{"s1/" + meta.ID, "s2/" + bad.ID}, released)
}

func TestGenerationWorkerCancelledJobStoresNothing(t *testing.T) {
	job := model.NewJob("s1", content.KindProductCard, phone, nil)
	q := newFakeQueue(job)
	w := &GenerationWorker{Queue: q, Generator: content.Generator{Latency: time.Minute}, PollTimeout: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	res, released := q.snapshot()
	assert.Empty(t, res)
	assert.Equal(t, []string{"s1/" + job.ID}, released)
}

func TestGenerationWorkerRetriesAfterQueueError(t *testing.T) {
	job := model.NewJob("", content.KindTitle, phone, nil)
	q := newFakeQueue(job)
	q.failNext = errors.New("connection reset")

	stop := startWorker(t, &GenerationWorker{Queue: q, Style: content.DefaultStyle(), PollTimeout: 10 * time.Millisecond, RetryDelay: time.Millisecond})
	require.Eventually(t, func() bool {
		res, _ := q.snapshot()
		return len(res) == 1
	}, time.Second, 5*time.Millisecond)
	stop()

	res, released := q.snapshot()
	assert.Equal(t, "Acme Phone - Electronics", res[job.ID].Content.Title)
	assert.Empty(t, released)
}

type stubWorker struct{ err error }

func (s stubWorker) Start(ctx context.Context) error {
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return nil
}

func TestManagerStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, NewManager(stubWorker{}, stubWorker{}).Start(ctx))

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	boom := errors.New("boom")
	assert.ErrorIs(t, NewManager(stubWorker{}, stubWorker{err: boom}).Start(ctx), boom)
}

func TestManagerStopsPoolOnFailure(t *testing.T) {
	boom := errors.New("boom")
	done := make(chan error, 1)
	go func() {
		done <- NewManager(stubWorker{}, stubWorker{}, stubWorker{err: boom}).Start(context.Background())
	}()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("pool kept running after a worker failed")
	}
}
