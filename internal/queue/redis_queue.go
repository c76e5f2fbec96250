package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"content-studio/internal/model"

	"github.com/redis/go-redis/v9"
)

// ErrSessionBusy is returned when a session already has a generation in flight.
var ErrSessionBusy = errors.New("generation already in progress for session")

type RedisQueue struct {
	rdb   *redis.Client
	queue string
}

func NewRedisQueue(rdb *redis.Client, queue string) *RedisQueue {
	return &RedisQueue{rdb: rdb, queue: queue}
}

func resultKey(id string) string {
	return fmt.Sprintf("content:result:%s", id)
}

func inflightKey(session string) string {
	return fmt.Sprintf("content:inflight:%s", session)
}

// Enqueue pushes a job onto the queue.
func (q *RedisQueue) Enqueue(ctx context.Context, job model.Job) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.queue, b).Err()
}

// Dequeue blocks up to timeout for the oldest job. It returns nil, nil when
// the timeout passes with the queue empty.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*model.Job, error) {
	res, err := q.rdb.BRPop(ctx, timeout, q.queue).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// res is [key, value]
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply: %v", res)
	}
	var job model.Job
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	return &job, nil
}

// StoreResult saves the result of a job for ttl.
func (q *RedisQueue) StoreResult(ctx context.Context, res model.JobResult, ttl time.Duration) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return q.rdb.Set(ctx, resultKey(res.JobID), b, ttl).Err()
}

// Result fetches the stored result of a job. ok is false while the job is pending.
func (q *RedisQueue) Result(ctx context.Context, id string) (res model.JobResult, ok bool, err error) {
	b, err := q.rdb.Get(ctx, resultKey(id)).Bytes()
	if err == redis.Nil {
		return model.JobResult{}, false, nil
	}
	if err != nil {
		return model.JobResult{}, false, err
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return model.JobResult{}, false, fmt.Errorf("decode result: %w", err)
	}
	return res, true, nil
}

// AcquireSession marks a session as having a generation in flight for at
// most ttl. It returns ErrSessionBusy if the session is already marked.
func (q *RedisQueue) AcquireSession(ctx context.Context, session string, jobID string, ttl time.Duration) error {
	ok, err := q.rdb.SetNX(ctx, inflightKey(session), jobID, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionBusy
	}
	return nil
}

// releaseScript deletes KEYS[1] only while it still holds ARGV[1].
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ReleaseSession clears the in-flight mark of a session if jobID still
// holds it. A mark that expired and was taken by a later job is left alone.
func (q *RedisQueue) ReleaseSession(ctx context.Context, session, jobID string) error {
	return releaseScript.Run(ctx, q.rdb, []string{inflightKey(session)}, jobID).Err()
}

// SessionHolder returns the job holding the in-flight mark of a session.
// ok is false when no job holds it.
func (q *RedisQueue) SessionHolder(ctx context.Context, session string) (jobID string, ok bool, err error) {
	jobID, err = q.rdb.Get(ctx, inflightKey(session)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return jobID, true, nil
}

// Len reports how many jobs are waiting.
func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, q.queue).Result()
}
