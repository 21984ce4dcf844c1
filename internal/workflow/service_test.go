package workflow

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
	requests   map[uuid.UUID]*entity.Request
	children   map[uuid.UUID]*entity.Children
	tracking   []entity.TrackingEntry
	revisions  []entity.RequestRevision
	docStatus  map[uuid.UUID]constants.ReviewStatus
	refStatus  map[uuid.UUID]constants.ReviewStatus
	brStatus   map[uuid.UUID]constants.ReviewStatus
	lockCalls  int
	rolledBack bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests:  make(map[uuid.UUID]*entity.Request),
		children:  make(map[uuid.UUID]*entity.Children),
		docStatus: make(map[uuid.UUID]constants.ReviewStatus),
		refStatus: make(map[uuid.UUID]constants.ReviewStatus),
		brStatus:  make(map[uuid.UUID]constants.ReviewStatus),
	}
}

func (f *fakeStore) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	err := fn(ctx, f)
	if err != nil {
		f.rolledBack = true
	}
	return err
}

func (f *fakeStore) GetRequestForUpdate(_ context.Context, id uuid.UUID) (*entity.Request, error) {
	f.lockCalls++
	req, ok := f.requests[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (f *fakeStore) UpdateRequestState(_ context.Context, id uuid.UUID, state constants.RequestState, reviewer *uuid.UUID) error {
	req := f.requests[id]
	req.State = state
	req.AssignedReviewer = reviewer
	return nil
}

func (f *fakeStore) UpdateRequestFields(_ context.Context, req *entity.Request) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeStore) GetChildren(_ context.Context, id uuid.UUID) (*entity.Children, error) {
	if c, ok := f.children[id]; ok {
		return c, nil
	}
	return &entity.Children{}, nil
}

func (f *fakeStore) SetDocumentReview(_ context.Context, id uuid.UUID, status constants.ReviewStatus, _ string) error {
	f.docStatus[id] = status
	return nil
}

func (f *fakeStore) SetBranchReview(_ context.Context, id uuid.UUID, status constants.ReviewStatus, _ string) error {
	f.brStatus[id] = status
	return nil
}

func (f *fakeStore) SetReferenceReview(_ context.Context, id uuid.UUID, status constants.ReviewStatus, _ string) error {
	f.refStatus[id] = status
	return nil
}

func (f *fakeStore) AddTracking(_ context.Context, e entity.TrackingEntry) error {
	f.tracking = append(f.tracking, e)
	return nil
}

func (f *fakeStore) AddRevision(_ context.Context, r entity.RequestRevision) error {
	f.revisions = append(f.revisions, r)
	return nil
}

func seedRequest(f *fakeStore, state constants.RequestState) uuid.UUID {
	id := uuid.New()
	f.requests[id] = &entity.Request{ID: id, State: state, BusinessName: "EL BUEN PRECIO"}
	return id
}

func TestTransitionHappyPath(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StatePendiente)
	reviewer := uuid.New()
	svc := NewService(store, nil)

	req, err := svc.Transition(context.Background(), id, constants.StateAsignada, &reviewer, "taking this one")
	require.NoError(t, err)
	assert.Equal(t, constants.StateAsignada, req.State)
	require.NotNil(t, req.AssignedReviewer)
	assert.Equal(t, reviewer, *req.AssignedReviewer)

	require.Len(t, store.tracking, 1)
	assert.Equal(t, constants.StatePendiente, store.tracking[0].PreviousState)
	assert.Equal(t, constants.StateAsignada, store.tracking[0].NewState)
	assert.Equal(t, "taking this one", store.tracking[0].Comment)
	assert.Equal(t, 1, store.lockCalls)
}

func TestTransitionIllegalEdge(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StatePendiente)
	svc := NewService(store, nil)

	_, err := svc.Transition(context.Background(), id, constants.StateAprobado, nil, "")
	var terr *common.StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Empty(t, store.tracking, "failed transitions leave no ledger entry")
	assert.Equal(t, constants.StatePendiente, store.requests[id].State)
}

func TestTransitionTerminalRefusesEverything(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateAprobado)
	svc := NewService(store, nil)

	for _, to := range constants.RequestStates {
		_, err := svc.Transition(context.Background(), id, to, nil, "")
		require.Error(t, err, "APROBADO -> %s must be refused", to)
	}
}

func TestTransitionCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []constants.RequestState{
		constants.StatePendiente, constants.StateEnRevision, constants.StateEnviadoAutorizacion,
	} {
		store := newFakeStore()
		id := seedRequest(store, from)
		svc := NewService(store, nil)

		req, err := svc.Transition(context.Background(), id, constants.StateCancelado, nil, "applicant withdrew")
		require.NoError(t, err, "cancel from %s", from)
		assert.Equal(t, constants.StateCancelado, req.State)
	}
}

func TestTransitionAssignRequiresActor(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StatePendiente)
	svc := NewService(store, nil)

	_, err := svc.Transition(context.Background(), id, constants.StateAsignada, nil, "")
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "actor", verr.Field)
}

func TestTransitionFinalValidationBlockedByUnsettledChildren(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	store.children[id] = &entity.Children{
		Documents: []entity.RequestDocument{
			{DocumentType: constants.DocIDFront, ReviewStatus: constants.ReviewApproved},
			{DocumentType: constants.DocTaxRegistry, ReviewStatus: constants.ReviewPending},
		},
		References: []entity.RequestReference{
			{Name: "MARIA PEREZ", ReviewStatus: constants.ReviewRejected},
		},
	}
	svc := NewService(store, nil)

	_, err := svc.Transition(context.Background(), id, constants.StateEnValidacionFinal, nil, "")
	var terr *common.StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Message, "TAX_REGISTRY")
	assert.Contains(t, terr.Message, "MARIA PEREZ")
}

func TestTransitionFinalValidationWhenAllSettled(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	store.children[id] = &entity.Children{
		Documents:  []entity.RequestDocument{{DocumentType: constants.DocIDFront, ReviewStatus: constants.ReviewApproved}},
		References: []entity.RequestReference{{Name: "MARIA PEREZ", ReviewStatus: constants.ReviewVerified}},
	}
	svc := NewService(store, nil)

	req, err := svc.Transition(context.Background(), id, constants.StateEnValidacionFinal, nil, "")
	require.NoError(t, err)
	assert.Equal(t, constants.StateEnValidacionFinal, req.State)
}

func TestTransitionFinalValidationBlockedByOpenObservation(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	store.children[id] = &entity.Children{
		Documents: []entity.RequestDocument{
			{DocumentType: constants.DocIDFront, ReviewStatus: constants.ReviewApproved},
		},
		Revisions: []entity.RequestRevision{
			{Section: "nit", Approved: false, Observation: "digit mismatch vs RTU"},
		},
	}
	svc := NewService(store, nil)

	_, err := svc.Transition(context.Background(), id, constants.StateEnValidacionFinal, nil, "")
	var terr *common.StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Message, `section "nit"`)
	assert.Equal(t, constants.StateEnRevision, store.requests[id].State)
}

// A later approving verdict on the same section resolves the earlier
// rejection; only the newest revision per section counts.
func TestTransitionFinalValidationAfterObservationResolved(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	store.children[id] = &entity.Children{
		Revisions: []entity.RequestRevision{
			{Section: "nit", Approved: false, Observation: "digit mismatch vs RTU"},
			{Section: "nit", Approved: true},
		},
	}
	svc := NewService(store, nil)

	req, err := svc.Transition(context.Background(), id, constants.StateEnValidacionFinal, nil, "")
	require.NoError(t, err)
	assert.Equal(t, constants.StateEnValidacionFinal, req.State)
}

// A child rejected after final validation started must stop the advance to
// authorization, not wait for graduation to catch it.
func TestTransitionAuthorizationBlockedByLateRejection(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnValidacionFinal)
	store.children[id] = &entity.Children{
		Documents: []entity.RequestDocument{
			{DocumentType: constants.DocTaxRegistry, ReviewStatus: constants.ReviewRejected},
		},
	}
	svc := NewService(store, nil)

	_, err := svc.Transition(context.Background(), id, constants.StateEnviadoAutorizacion, nil, "")
	var terr *common.StateTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Message, "TAX_REGISTRY")

	store.children[id].Documents[0].ReviewStatus = constants.ReviewApproved
	req, err := svc.Transition(context.Background(), id, constants.StateEnviadoAutorizacion, nil, "")
	require.NoError(t, err)
	assert.Equal(t, constants.StateEnviadoAutorizacion, req.State)
}

// The correction loop must come back through EN_REVISION, never jump
// straight to final validation.
func TestCorrectionLoopReentersReview(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateCorreccionesSolicitadas)
	svc := NewService(store, nil)

	_, err := svc.Transition(context.Background(), id, constants.StateEnReenvio, nil, "resubmitted")
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), id, constants.StateEnValidacionFinal, nil, "")
	require.Error(t, err)

	_, err = svc.Transition(context.Background(), id, constants.StateEnRevision, nil, "")
	require.NoError(t, err)
}

func TestUpdateApplicantDataOnlyWhenEditable(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	svc := NewService(store, nil)

	_, err := svc.UpdateApplicantData(context.Background(), id, &entity.Request{Phone: "55551234"})
	var terr *common.StateTransitionError
	require.ErrorAs(t, err, &terr)

	store.requests[id].State = constants.StateCorreccionesSolicitadas
	req, err := svc.UpdateApplicantData(context.Background(), id, &entity.Request{Phone: "55551234"})
	require.NoError(t, err)
	assert.Equal(t, "55551234", req.Phone)
	assert.Equal(t, "EL BUEN PRECIO", req.BusinessName, "empty patch fields leave existing values alone")
}

func TestReviewDocumentRejectionNeedsObservation(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	docID := uuid.New()
	svc := NewService(store, nil)

	err := svc.ReviewDocument(context.Background(), id, docID, false, "  ", nil)
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "observation", verr.Field)
	assert.Empty(t, store.revisions)

	err = svc.ReviewDocument(context.Background(), id, docID, false, "photo is cropped", nil)
	require.NoError(t, err)
	assert.Equal(t, constants.ReviewRejected, store.docStatus[docID])
	require.Len(t, store.revisions, 1)
	assert.False(t, store.revisions[0].Approved)
	assert.Equal(t, "photo is cropped", store.revisions[0].Observation)
}

func TestReviewReferenceApprovalIsVerified(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	refID := uuid.New()
	svc := NewService(store, nil)

	require.NoError(t, svc.ReviewReference(context.Background(), id, refID, true, "called, confirmed", nil))
	assert.Equal(t, constants.ReviewVerified, store.refStatus[refID])
}

func TestReviewFieldAppendsRevision(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateEnRevision)
	actor := uuid.New()
	svc := NewService(store, nil)

	require.NoError(t, svc.ReviewField(context.Background(), id, "nit", true, "", &actor))
	require.NoError(t, svc.ReviewField(context.Background(), id, "nit", false, "digit mismatch vs RTU", &actor))

	require.Len(t, store.revisions, 2, "revisions append, never overwrite")
	assert.Equal(t, "nit", store.revisions[1].Section)
}

func TestReviewRefusedOnTerminalRequest(t *testing.T) {
	store := newFakeStore()
	id := seedRequest(store, constants.StateRechazado)
	svc := NewService(store, nil)

	err := svc.ReviewField(context.Background(), id, "nit", true, "", nil)
	var terr *common.StateTransitionError
	require.ErrorAs(t, err, &terr)
}
