package tasks

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
)

// Upload is a document submission accepted by the coordinator.
type Upload struct {
	RequestID    uuid.UUID
	DocumentType constants.DocumentType
	Filename     string
	Content      []byte
}

// Snapshot is the poll-able view of one task.
type Snapshot struct {
	TaskID      uuid.UUID
	Status      constants.TaskStatus
	Score       int
	Message     string
	Fields      map[string]string
	SubmittedAt time.Time
	FinishedAt  *time.Time
}

type task struct {
	id          uuid.UUID
	requestID   uuid.UUID
	docType     constants.DocumentType
	scratchPath string
	cleanup     func()

	mu         sync.Mutex
	status     constants.TaskStatus
	score      int
	message    string
	fields     map[string]string
	submitted  time.Time
	finishedAt *time.Time
}

func (t *task) set(status constants.TaskStatus, score int, message string, fields map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	t.score = score
	t.message = message
	t.fields = fields
	if status.IsTerminal() {
		now := time.Now()
		t.finishedAt = &now
	}
}

func (t *task) snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	fields := make(map[string]string, len(t.fields))
	for k, v := range t.fields {
		fields[k] = v
	}
	return Snapshot{
		TaskID:      t.id,
		Status:      t.status,
		Score:       t.score,
		Message:     t.message,
		Fields:      fields,
		SubmittedAt: t.submitted,
		FinishedAt:  t.finishedAt,
	}
}
