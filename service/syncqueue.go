package service

import (
	"context"
	"log"
	"sync"
	"time"
)

// RemoteSyncer accepts reconciliation tasks for the remote store. Local
// mutations are applied first and never rolled back; the task only brings the
// remote store up to date.
type RemoteSyncer interface {
	Enqueue(name string, run func(ctx context.Context) error)
}

// SyncQueue runs reconciliation tasks on a single worker with bounded retry.
// A task that still fails after the last attempt is logged and dropped; the
// local and remote states then diverge until the next successful sync.
type SyncQueue struct {
	tasks       chan syncTask
	maxAttempts int
	baseDelay   time.Duration
	wg          sync.WaitGroup
}

type syncTask struct {
	name string
	run  func(ctx context.Context) error
}

// NewSyncQueue creates a queue holding up to buffer pending tasks,
// each retried up to maxAttempts times with doubling backoff.
func NewSyncQueue(buffer, maxAttempts int, baseDelay time.Duration) *SyncQueue {
	return &SyncQueue{
		tasks:       make(chan syncTask, buffer),
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}
}

// Ensure SyncQueue implements RemoteSyncer
var _ RemoteSyncer = (*SyncQueue)(nil)

// Start launches the worker. It drains until ctx is cancelled.
func (q *SyncQueue) Start(ctx context.Context) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case task := <-q.tasks:
				q.process(ctx, task)
			}
		}
	}()
}

// Wait blocks until the worker has stopped.
func (q *SyncQueue) Wait() {
	q.wg.Wait()
}

// Enqueue schedules a task without blocking the caller. When the queue is
// full the task is dropped with a log line; the local mutation stands.
func (q *SyncQueue) Enqueue(name string, run func(ctx context.Context) error) {
	select {
	case q.tasks <- syncTask{name: name, run: run}:
	default:
		log.Printf("⚠️ sync queue full, dropping task %s", name)
	}
}

func (q *SyncQueue) process(ctx context.Context, task syncTask) {
	delay := q.baseDelay
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err := task.run(ctx)
		if err == nil {
			return
		}
		if attempt == q.maxAttempts {
			log.Printf("❌ sync task %s failed after %d attempts: %v", task.name, attempt, err)
			return
		}
		log.Printf("⚠️ sync task %s attempt %d failed: %v", task.name, attempt, err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
	}
}
