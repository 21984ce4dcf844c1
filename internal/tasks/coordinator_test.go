package tasks

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/pipeline"
)

type stubProcessor struct {
	mu    sync.Mutex
	fn    func(path string) (pipeline.Result, error)
	calls int
	paths []string
}

func (s *stubProcessor) Process(_ context.Context, path string, _ constants.DocumentType) (pipeline.Result, error) {
	s.mu.Lock()
	s.calls++
	s.paths = append(s.paths, path)
	fn := s.fn
	s.mu.Unlock()
	return fn(path)
}

func (s *stubProcessor) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingSink struct {
	mu       sync.Mutex
	outcomes []Outcome
	err      error
}

func (s *recordingSink) SaveOutcome(_ context.Context, o Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.outcomes = append(s.outcomes, o)
	return nil
}

func (s *recordingSink) saved() []Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Outcome(nil), s.outcomes...)
}

func okResult() (pipeline.Result, error) {
	return pipeline.Result{
		Status: constants.TaskSuccess,
		Fields: map[string]string{"cui": "1234567890123"},
		Score:  80,
		Valid:  true,
	}, nil
}

func newTestCoordinator(t *testing.T, proc Processor, sink Sink, opts ...Option) *Coordinator {
	t.Helper()
	base := []Option{
		WithWorkers(2),
		WithScratchDir(t.TempDir()),
		WithPollInterval(10 * time.Millisecond),
		WithPollCeiling(time.Second),
	}
	c := NewCoordinator(proc, sink, nil, append(base, opts...)...)
	c.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = c.Shutdown(ctx)
	})
	return c
}

func TestSubmitAndAwaitSuccess(t *testing.T) {
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) { return okResult() }}
	sink := &recordingSink{}
	c := newTestCoordinator(t, proc, sink)

	reqID := uuid.New()
	snap, err := c.Submit(context.Background(), Upload{
		RequestID:    reqID,
		DocumentType: constants.DocIDFront,
		Filename:     "dpi.pdf",
		Content:      []byte("%PDF-1.4 fake"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, snap.TaskID)

	final, err := c.Await(context.Background(), snap.TaskID)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskSuccess, final.Status)
	assert.Equal(t, 80, final.Score)
	assert.Equal(t, "1234567890123", final.Fields["cui"])
	require.NotNil(t, final.FinishedAt)

	saved := sink.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, reqID, saved[0].RequestID)
	assert.Equal(t, constants.DocIDFront, saved[0].DocumentType)
}

func TestSubmitRejectsUnknownDocumentType(t *testing.T) {
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) { return okResult() }}
	c := newTestCoordinator(t, proc, nil)

	_, err := c.Submit(context.Background(), Upload{
		RequestID:    uuid.New(),
		DocumentType: constants.DocumentType("PASSPORT"),
		Filename:     "p.pdf",
		Content:      []byte("x"),
	})
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "document_type", verr.Field)
	assert.Zero(t, proc.callCount())
}

func TestSubmitRejectsUnsupportedExtension(t *testing.T) {
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) { return okResult() }}
	c := newTestCoordinator(t, proc, nil)

	_, err := c.Submit(context.Background(), Upload{
		RequestID:    uuid.New(),
		DocumentType: constants.DocIDFront,
		Filename:     "dpi.docx",
		Content:      []byte("x"),
	})
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "filename", verr.Field)
}

func TestPollUnknownTask(t *testing.T) {
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) { return okResult() }}
	c := newTestCoordinator(t, proc, nil)

	_, err := c.Poll(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFailedTaskSkipsSinkAndRetries(t *testing.T) {
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) {
		return pipeline.Result{}, errors.New("pdftoppm: exit status 1")
	}}
	sink := &recordingSink{}
	c := newTestCoordinator(t, proc, sink, WithMaxAttempts(2))

	snap, err := c.Submit(context.Background(), Upload{
		RequestID:    uuid.New(),
		DocumentType: constants.DocIDFront,
		Filename:     "dpi.pdf",
		Content:      []byte("x"),
	})
	require.NoError(t, err)

	final, err := c.Await(context.Background(), snap.TaskID)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskFailed, final.Status)
	assert.Contains(t, final.Message, "extraction failed")
	assert.Contains(t, final.Message, string(common.ExtractionTechnicalFailure))
	assert.Equal(t, 2, proc.callCount())
	assert.Empty(t, sink.saved())
}

func TestScratchFileCleanedUp(t *testing.T) {
	dir := t.TempDir()
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) { return okResult() }}
	c := newTestCoordinator(t, proc, nil, WithScratchDir(dir))

	snap, err := c.Submit(context.Background(), Upload{
		RequestID:    uuid.New(),
		DocumentType: constants.DocTaxRegistry,
		Filename:     "rtu.png",
		Content:      []byte("fake png"),
	})
	require.NoError(t, err)

	_, err = c.Await(context.Background(), snap.TaskID)
	require.NoError(t, err)

	proc.mu.Lock()
	require.NotEmpty(t, proc.paths)
	path := proc.paths[0]
	proc.mu.Unlock()
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "scratch file should be removed after the task finishes")
}

// A task that outlives the polling ceiling is reported FAILED to the caller
// even though the server-side run keeps going and may still succeed.
func TestAwaitCeilingDoesNotKillTask(t *testing.T) {
	release := make(chan struct{})
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) {
		<-release
		return okResult()
	}}
	sink := &recordingSink{}
	c := newTestCoordinator(t, proc, sink, WithPollCeiling(50*time.Millisecond))

	snap, err := c.Submit(context.Background(), Upload{
		RequestID:    uuid.New(),
		DocumentType: constants.DocIDFront,
		Filename:     "dpi.jpg",
		Content:      []byte("x"),
	})
	require.NoError(t, err)

	timedOut, err := c.Await(context.Background(), snap.TaskID)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskFailed, timedOut.Status)
	assert.Contains(t, timedOut.Message, "did not finish")
	assert.Contains(t, timedOut.Message, string(common.ExtractionTimeout))

	close(release)
	require.Eventually(t, func() bool {
		got, perr := c.Poll(context.Background(), snap.TaskID)
		return perr == nil && got.Status == constants.TaskSuccess
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, sink.saved(), 1)
}

func TestSinkErrorMarksTaskFailed(t *testing.T) {
	proc := &stubProcessor{fn: func(string) (pipeline.Result, error) { return okResult() }}
	sink := &recordingSink{err: errors.New("db down")}
	c := newTestCoordinator(t, proc, sink)

	snap, err := c.Submit(context.Background(), Upload{
		RequestID:    uuid.New(),
		DocumentType: constants.DocIDFront,
		Filename:     "dpi.pdf",
		Content:      []byte("x"),
	})
	require.NoError(t, err)

	final, err := c.Await(context.Background(), snap.TaskID)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskFailed, final.Status)
	assert.Contains(t, final.Message, "persist outcome")
}
