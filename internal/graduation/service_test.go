package graduation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

type fakeStore struct {
	requests map[uuid.UUID]*entity.Request
	children map[uuid.UUID]*entity.Children
	taken    map[string]string // field -> taken value
	created  []*Bundle
	tracking []entity.TrackingEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests: make(map[uuid.UUID]*entity.Request),
		children: make(map[uuid.UUID]*entity.Children),
		taken:    make(map[string]string),
	}
}

func (f *fakeStore) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return fn(ctx, f)
}

func (f *fakeStore) GetRequestForUpdate(_ context.Context, id uuid.UUID) (*entity.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (f *fakeStore) GetChildren(_ context.Context, id uuid.UUID) (*entity.Children, error) {
	if c, ok := f.children[id]; ok {
		return c, nil
	}
	return &entity.Children{}, nil
}

func (f *fakeStore) DistributorFieldTaken(_ context.Context, field, value string) (bool, error) {
	return f.taken[field] == value, nil
}

func (f *fakeStore) CreateDistributor(_ context.Context, b *Bundle) error {
	f.created = append(f.created, b)
	return nil
}

func (f *fakeStore) UpdateRequestState(_ context.Context, id uuid.UUID, state constants.RequestState) error {
	f.requests[id].State = state
	return nil
}

func (f *fakeStore) AddTracking(_ context.Context, e entity.TrackingEntry) error {
	f.tracking = append(f.tracking, e)
	return nil
}

func seedAuthorized(f *fakeStore) uuid.UUID {
	id := uuid.New()
	f.requests[id] = &entity.Request{
		ID:           id,
		State:        constants.StateEnviadoAutorizacion,
		BusinessName: "ABARROTERIA EL BUEN PRECIO",
		OwnerName:    "JUAN CARLOS LOPEZ GARCIA",
		NIT:          "1234567-8",
		DPI:          "1234567890123",
		Email:        "jc@elbuenprecio.gt",
	}
	f.children[id] = &entity.Children{
		Documents: []entity.RequestDocument{
			{ID: uuid.New(), DocumentType: constants.DocIDFront, ReviewStatus: constants.ReviewApproved,
				StructuredFields: map[string]string{"cui": "1234567890123"}},
			{ID: uuid.New(), DocumentType: constants.DocTaxRegistry, ReviewStatus: constants.ReviewApproved},
		},
		Branches: []entity.RequestBranch{
			{ID: uuid.New(), Name: "EL BUEN PRECIO CENTRO", ReviewStatus: constants.ReviewApproved},
		},
		References: []entity.RequestReference{
			{ID: uuid.New(), Name: "MARIA PEREZ", ReviewStatus: constants.ReviewVerified},
		},
	}
	return id
}

func TestGraduateHappyPath(t *testing.T) {
	store := newFakeStore()
	id := seedAuthorized(store)
	actor := uuid.New()
	svc := NewService(store, nil)

	dist, err := svc.Graduate(context.Background(), id, &actor)
	require.NoError(t, err)
	assert.Equal(t, id, dist.RequestID)
	assert.Equal(t, "1234567-8", dist.NIT)

	require.Len(t, store.created, 1)
	bundle := store.created[0]
	assert.Len(t, bundle.Documents, 2)
	assert.Len(t, bundle.Branches, 1)
	assert.Len(t, bundle.References, 1)
	assert.Equal(t, "1234567890123", bundle.Documents[0].StructuredFields["cui"])

	assert.Equal(t, constants.StateAprobado, store.requests[id].State)
	require.Len(t, store.tracking, 1)
	assert.Equal(t, constants.StateEnviadoAutorizacion, store.tracking[0].PreviousState)
	assert.Equal(t, constants.StateAprobado, store.tracking[0].NewState)
}

func TestGraduateWrongState(t *testing.T) {
	store := newFakeStore()
	id := seedAuthorized(store)
	store.requests[id].State = constants.StateEnRevision
	svc := NewService(store, nil)

	_, err := svc.Graduate(context.Background(), id, nil)
	var terr *common.StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Empty(t, store.created)
}

// A verdict flipped back to pending after authorization still blocks the
// copy; the check at graduation time is authoritative.
func TestGraduateBlockedByPendingReference(t *testing.T) {
	store := newFakeStore()
	id := seedAuthorized(store)
	store.children[id].References[0].ReviewStatus = constants.ReviewPending
	svc := NewService(store, nil)

	_, err := svc.Graduate(context.Background(), id, nil)
	var gerr *common.GraduationBlockedError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Offenders[0], "MARIA PEREZ")
	assert.Empty(t, store.created)
	assert.Equal(t, constants.StateEnviadoAutorizacion, store.requests[id].State)
}

func TestGraduateDuplicateNIT(t *testing.T) {
	store := newFakeStore()
	id := seedAuthorized(store)
	store.taken["nit"] = "1234567-8"
	svc := NewService(store, nil)

	_, err := svc.Graduate(context.Background(), id, nil)
	var ierr *common.IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "nit", ierr.Field)
	assert.Empty(t, store.created)
	assert.Empty(t, store.tracking)
}

func TestGraduateDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	id := seedAuthorized(store)
	store.taken["email"] = "jc@elbuenprecio.gt"
	svc := NewService(store, nil)

	_, err := svc.Graduate(context.Background(), id, nil)
	var ierr *common.IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "email", ierr.Field)
}

func TestGraduateUnknownRequest(t *testing.T) {
	svc := NewService(newFakeStore(), nil)
	_, err := svc.Graduate(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
