// Package tasks provides an in-process task dispatcher implementing
// domain.TaskDispatcher: named jobs, a buffered queue drained by a worker
// pool, and bounded per-task retry. Delivery is at-least-once from the
// handler's point of view; handlers are expected to be idempotent.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HandlerFunc processes one task. Returning an error triggers a retry until
// the attempt budget is exhausted.
type HandlerFunc func(ctx context.Context, params map[string]string) error

type task struct {
	id     string
	job    string
	params map[string]string
}

// Dispatcher runs registered handlers asynchronously. Register all handlers
// before calling Start.
type Dispatcher struct {
	logger      *slog.Logger
	queue       chan task
	workers     int
	maxAttempts int
	retryDelay  time.Duration
	taskTimeout time.Duration

	mu       sync.RWMutex
	handlers map[string]HandlerFunc

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher returns a stopped dispatcher with the given worker count and
// queue capacity.
func NewDispatcher(logger *slog.Logger, workers, queueSize int) *Dispatcher {
	return &Dispatcher{
		logger:      logger,
		queue:       make(chan task, queueSize),
		workers:     workers,
		maxAttempts: 3,
		retryDelay:  2 * time.Second,
		taskTimeout: 30 * time.Second,
		handlers:    make(map[string]HandlerFunc),
	}
}

// Register binds a handler to a job name.
func (d *Dispatcher) Register(job string, h HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[job] = h
}

// Start launches the worker pool.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Enqueue queues a job for asynchronous execution. It fails fast when the
// job name is unknown or the queue is full; it never blocks the caller on
// task execution.
func (d *Dispatcher) Enqueue(ctx context.Context, job string, params map[string]string) error {
	d.mu.RLock()
	_, known := d.handlers[job]
	d.mu.RUnlock()
	if !known {
		return fmt.Errorf("unknown job %q", job)
	}

	t := task{id: uuid.NewString(), job: job, params: params}
	select {
	case d.queue <- t:
		d.logger.Debug("task enqueued", "task_id", t.id, "job", job)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("task queue full, dropping job %q", job)
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for t := range d.queue {
		d.run(t)
	}
}

func (d *Dispatcher) run(t task) {
	d.mu.RLock()
	h := d.handlers[t.job]
	d.mu.RUnlock()

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), d.taskTimeout)
		err := h(ctx, t.params)
		cancel()
		if err == nil {
			d.logger.Debug("task done", "task_id", t.id, "job", t.job, "attempt", attempt)
			return
		}
		d.logger.Warn("task failed", "task_id", t.id, "job", t.job, "attempt", attempt, "err", err)
		if attempt < d.maxAttempts {
			time.Sleep(d.retryDelay * time.Duration(attempt))
		}
	}
	d.logger.Error("task dropped after retries", "task_id", t.id, "job", t.job)
}
