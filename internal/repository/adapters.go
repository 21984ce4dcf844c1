package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/graduation"
	"github.com/jmonzon-gt/distribuidores/internal/workflow"
)

// WorkflowStore adapts Store to the workflow service's transactional surface.
type WorkflowStore struct {
	*Store
}

func NewWorkflowStore(s *Store) *WorkflowStore { return &WorkflowStore{Store: s} }

func (w *WorkflowStore) WithinTx(ctx context.Context, fn func(ctx context.Context, s workflow.Store) error) error {
	return w.withinTx(ctx, func(ctx context.Context, txs *Store) error {
		return fn(ctx, &WorkflowStore{Store: txs})
	})
}

func (w *WorkflowStore) UpdateRequestState(ctx context.Context, id uuid.UUID, state constants.RequestState, reviewer *uuid.UUID) error {
	return w.setState(ctx, id, state, reviewer)
}

// GraduationStore adapts Store to the graduation service's surface.
type GraduationStore struct {
	*Store
}

func NewGraduationStore(s *Store) *GraduationStore { return &GraduationStore{Store: s} }

func (g *GraduationStore) WithinTx(ctx context.Context, fn func(ctx context.Context, s graduation.Store) error) error {
	return g.withinTx(ctx, func(ctx context.Context, txs *Store) error {
		return fn(ctx, &GraduationStore{Store: txs})
	})
}

func (g *GraduationStore) UpdateRequestState(ctx context.Context, id uuid.UUID, state constants.RequestState) error {
	return g.setState(ctx, id, state, nil)
}
