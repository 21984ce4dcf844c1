// Package tasks runs document extraction asynchronously. Submissions are
// validated synchronously, written to a scratch file, and handed to a bounded
// worker pool; callers poll the task until it reaches a terminal status.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/pipeline"
)

const retryBackoffBase = 500 * time.Millisecond

// Processor runs the extraction pipeline for one scratch file.
type Processor interface {
	Process(ctx context.Context, path string, docType constants.DocumentType) (pipeline.Result, error)
}

// Outcome is a finished extraction handed to the persistence sink.
type Outcome struct {
	RequestID    uuid.UUID
	DocumentType constants.DocumentType
	Result       pipeline.Result
}

// Sink persists a terminal extraction outcome onto the request's document
// row. FAILED runs never reach the sink.
type Sink interface {
	SaveOutcome(ctx context.Context, o Outcome) error
}

// Coordinator owns the in-memory task registry and the worker pool.
type Coordinator struct {
	processor Processor
	sink      Sink
	logger    *slog.Logger

	workers        int
	queueSize      int
	scratchDir     string
	pollInterval   time.Duration
	pollCeiling    time.Duration
	maxAttempts    int
	processTimeout time.Duration

	mu    sync.RWMutex
	tasks map[uuid.UUID]*task

	queue chan *task
	wg    sync.WaitGroup
	stop  chan struct{}
	once  sync.Once
}

// Option configures a Coordinator.
type Option func(*Coordinator)

func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

func WithScratchDir(dir string) Option {
	return func(c *Coordinator) { c.scratchDir = dir }
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

func WithPollCeiling(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.pollCeiling = d
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.processTimeout = d
		}
	}
}

func NewCoordinator(processor Processor, sink Sink, logger *slog.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{
		processor:      processor,
		sink:           sink,
		logger:         logger,
		workers:        4,
		queueSize:      256,
		pollInterval:   2 * time.Second,
		pollCeiling:    45 * time.Second,
		maxAttempts:    3,
		processTimeout: 2 * time.Minute,
		tasks:          make(map[uuid.UUID]*task),
		stop:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.queue = make(chan *task, c.queueSize)
	return c
}

// Start launches the worker pool.
func (c *Coordinator) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(i)
	}
	c.logger.Info("task coordinator started", "workers", c.workers, "queue_size", c.queueSize)
}

// Submit validates the upload, writes it to a scratch file, and enqueues an
// extraction task. Validation failures are reported synchronously; nothing is
// enqueued for them.
func (c *Coordinator) Submit(_ context.Context, up Upload) (Snapshot, error) {
	if !up.DocumentType.IsValid() {
		return Snapshot{}, common.NewValidationError("document_type",
			fmt.Sprintf("unknown document type %q", up.DocumentType))
	}
	ext := constants.NormalizeExt(filepath.Ext(up.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return Snapshot{}, common.NewValidationError("filename",
			fmt.Sprintf("unsupported file extension %q", ext))
	}
	if len(up.Content) == 0 {
		return Snapshot{}, common.NewValidationError("content", "is empty")
	}

	path, cleanup, err := writeScratch(c.scratchDir, up.Filename, up.Content)
	if err != nil {
		return Snapshot{}, err
	}

	t := &task{
		id:          uuid.New(),
		requestID:   up.RequestID,
		docType:     up.DocumentType,
		scratchPath: path,
		cleanup:     cleanup,
		status:      constants.TaskPending,
		submitted:   time.Now(),
	}

	c.mu.Lock()
	c.tasks[t.id] = t
	c.mu.Unlock()

	select {
	case c.queue <- t:
	case <-c.stop:
		cleanup()
		c.mu.Lock()
		delete(c.tasks, t.id)
		c.mu.Unlock()
		return Snapshot{}, fmt.Errorf("task coordinator is shutting down")
	default:
		cleanup()
		c.mu.Lock()
		delete(c.tasks, t.id)
		c.mu.Unlock()
		return Snapshot{}, fmt.Errorf("task queue is full")
	}

	c.logger.Info("task submitted",
		"task_id", t.id, "request_id", up.RequestID, "doc_type", up.DocumentType, "bytes", len(up.Content))
	return t.snapshot(), nil
}

// Poll returns the current snapshot of a task.
func (c *Coordinator) Poll(_ context.Context, id uuid.UUID) (Snapshot, error) {
	c.mu.RLock()
	t, ok := c.tasks[id]
	c.mu.RUnlock()
	if !ok {
		return Snapshot{}, common.ErrNotFound
	}
	return t.snapshot(), nil
}

// Await polls the task until it turns terminal or the polling ceiling
// elapses. Hitting the ceiling reports FAILED to the caller without touching
// the server-side task, which keeps running and may still finish.
func (c *Coordinator) Await(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	snap, err := c.Poll(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	if snap.Status.IsTerminal() {
		return snap, nil
	}

	deadline := time.NewTimer(c.pollCeiling)
	defer deadline.Stop()
	tick := time.NewTicker(c.pollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return Snapshot{}, ctx.Err()
		case <-deadline.C:
			snap.Status = constants.TaskFailed
			snap.Message = common.NewExtractionError(common.ExtractionTimeout,
				fmt.Sprintf("extraction did not finish within %s", c.pollCeiling), nil).Error()
			return snap, nil
		case <-tick.C:
			snap, err = c.Poll(ctx, id)
			if err != nil {
				return Snapshot{}, err
			}
			if snap.Status.IsTerminal() {
				return snap, nil
			}
		}
	}
}

// Shutdown stops accepting work and waits for in-flight tasks, up to the
// context deadline.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.once.Do(func() {
		close(c.stop)
		close(c.queue)
	})

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("task coordinator stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown wait: %w", ctx.Err())
	}
}

func (c *Coordinator) worker(n int) {
	defer c.wg.Done()
	logger := c.logger.With("worker", n)
	for t := range c.queue {
		c.run(t, logger)
	}
}

func (c *Coordinator) run(t *task, logger *slog.Logger) {
	defer t.cleanup()
	t.set(constants.TaskProcessing, 0, "", nil)

	ctx, cancel := context.WithTimeout(context.Background(), c.processTimeout)
	defer cancel()

	var res pipeline.Result
	var err error
	backoff := retryBackoffBase
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		res, err = c.processor.Process(ctx, t.scratchPath, t.docType)
		if err == nil {
			break
		}
		logger.Warn("extraction attempt failed",
			"task_id", t.id, "attempt", attempt, "max_attempts", c.maxAttempts, "error", err)
		if attempt == c.maxAttempts || ctx.Err() != nil {
			break
		}
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
		}
		backoff *= 2
	}
	if err != nil {
		xerr := common.NewExtractionError(common.ExtractionTechnicalFailure, "extraction failed", err)
		t.set(constants.TaskFailed, 0, xerr.Error(), nil)
		logger.Error("task failed", "task_id", t.id, "request_id", t.requestID, "error", err)
		return
	}

	if c.sink != nil {
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer saveCancel()
		if serr := c.sink.SaveOutcome(saveCtx, Outcome{
			RequestID:    t.requestID,
			DocumentType: t.docType,
			Result:       res,
		}); serr != nil {
			xerr := common.NewExtractionError(common.ExtractionTechnicalFailure, "persist outcome", serr)
			t.set(constants.TaskFailed, 0, xerr.Error(), nil)
			logger.Error("outcome persist failed", "task_id", t.id, "request_id", t.requestID, "error", serr)
			return
		}
	}

	t.set(res.Status, res.Score, res.Message, res.Fields)
	logger.Info("task finished",
		"task_id", t.id, "request_id", t.requestID, "doc_type", t.docType,
		"status", res.Status, "score", res.Score)
}
