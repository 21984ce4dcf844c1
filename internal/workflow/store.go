package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

// Store is the persistence surface the workflow service needs. Inside
// WithinTx, GetRequestForUpdate must take a row lock so concurrent
// transitions on the same request serialize.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error

	GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*entity.Request, error)
	UpdateRequestState(ctx context.Context, id uuid.UUID, state constants.RequestState, reviewer *uuid.UUID) error
	UpdateRequestFields(ctx context.Context, req *entity.Request) error

	GetChildren(ctx context.Context, requestID uuid.UUID) (*entity.Children, error)
	SetDocumentReview(ctx context.Context, docID uuid.UUID, status constants.ReviewStatus, notes string) error
	SetBranchReview(ctx context.Context, branchID uuid.UUID, status constants.ReviewStatus, notes string) error
	SetReferenceReview(ctx context.Context, refID uuid.UUID, status constants.ReviewStatus, notes string) error

	AddTracking(ctx context.Context, e entity.TrackingEntry) error
	AddRevision(ctx context.Context, r entity.RequestRevision) error
}
