package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
	"github.com/jmonzon-gt/distribuidores/internal/extract"
	"github.com/jmonzon-gt/distribuidores/internal/graduation"
	"github.com/jmonzon-gt/distribuidores/internal/pipeline"
	"github.com/jmonzon-gt/distribuidores/internal/tasks"
)

var testDBSeq int

func newTestStore(t *testing.T) *Store {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", testDBSeq)
	client, err := OpenSQLite(dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return NewStore(client, nil)
}

func TestCreateAndGetRequest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{
		BusinessName: "ABARROTERIA EL BUEN PRECIO",
		NIT:          "1234567-8",
		Email:        "jc@elbuenprecio.gt",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatePendiente, created.State)

	got, err := store.GetRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABARROTERIA EL BUEN PRECIO", got.BusinessName)
	assert.Equal(t, "1234567-8", got.NIT)

	pending, err := store.ListRequests(ctx, constants.StatePendiente)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	none, err := store.ListRequests(ctx, constants.StateAprobado)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSoftDeleteHidesRequest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "X"})
	require.NoError(t, err)

	require.NoError(t, store.SoftDeleteRequest(ctx, created.ID))
	_, err = store.GetRequest(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, store.SoftDeleteRequest(ctx, created.ID), common.ErrNotFound)
}

func TestSaveOutcomeUpsertsDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "EL BUEN PRECIO"})
	require.NoError(t, err)

	first := tasks.Outcome{
		RequestID:    created.ID,
		DocumentType: constants.DocIDFront,
		Result: pipeline.Result{
			Status:  constants.TaskSuccess,
			RawText: "CUI 1234 56789 0123",
			Fields:  extract.Fields{"cui": "1234567890123", "nombres": "JUAN CARLOS"},
			Score:   80,
			Valid:   true,
		},
	}
	require.NoError(t, store.SaveOutcome(ctx, first))

	children, err := store.GetChildren(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, children.Documents, 1)
	doc := children.Documents[0]
	assert.Equal(t, constants.ExtractionCompleted, doc.ExtractionStatus)
	assert.Equal(t, constants.ReviewPending, doc.ReviewStatus)
	assert.Equal(t, "1234567890123", doc.StructuredFields["cui"])

	// mark reviewed, then resubmit: row is overwritten and review reset
	require.NoError(t, store.SetDocumentReview(ctx, doc.ID, constants.ReviewApproved, "ok"))

	second := first
	second.Result.Fields = extract.Fields{"cui": "", "apellidos": "LOPEZ GARCIA"}
	second.Result.Score = 75
	require.NoError(t, store.SaveOutcome(ctx, second))

	children, err = store.GetChildren(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, children.Documents, 1, "resubmission reuses the (request, type) row")
	doc = children.Documents[0]
	assert.Equal(t, constants.ReviewPending, doc.ReviewStatus)
	assert.Equal(t, "1234567890123", doc.StructuredFields["cui"], "blank value never clears a known field")
	assert.Equal(t, "LOPEZ GARCIA", doc.StructuredFields["apellidos"])

	got, err := store.GetRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1234567890123", got.ExtractedData[string(constants.DocIDFront)]["cui"])
}

func TestSaveOutcomeDedupesBranches(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "EL BUEN PRECIO"})
	require.NoError(t, err)

	outcome := tasks.Outcome{
		RequestID:    created.ID,
		DocumentType: constants.DocTaxRegistry,
		Result: pipeline.Result{
			Status: constants.TaskSuccess,
			Fields: extract.Fields{"nit": "1234567-8"},
			Branches: []extract.BranchCandidate{
				{Name: "EL BUEN PRECIO CENTRO", Address: "5A. AVENIDA, Zona 1, GUATEMALA"},
				{Name: "el buen precio centro", Address: "5A. AVENIDA, Zona 1, GUATEMALA"},
				{Name: "EL BUEN PRECIO MIXCO", Address: "CALZADA ROOSEVELT, MIXCO"},
			},
		},
	}
	require.NoError(t, store.SaveOutcome(ctx, outcome))

	children, err := store.GetChildren(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, children.Branches, 2, "case-insensitive (name, address) duplicates collapse")
}

// Outcomes for different document types accumulate side by side on the
// request row; one merge never erases another type's fields.
func TestSaveOutcomeMergesAcrossDocumentTypes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "EL BUEN PRECIO"})
	require.NoError(t, err)

	require.NoError(t, store.SaveOutcome(ctx, tasks.Outcome{
		RequestID:    created.ID,
		DocumentType: constants.DocIDFront,
		Result: pipeline.Result{
			Status: constants.TaskSuccess,
			Fields: extract.Fields{"cui": "1234567890123"},
		},
	}))
	require.NoError(t, store.SaveOutcome(ctx, tasks.Outcome{
		RequestID:    created.ID,
		DocumentType: constants.DocTaxRegistry,
		Result: pipeline.Result{
			Status: constants.TaskSuccess,
			Fields: extract.Fields{"nit": "1234567-8"},
		},
	}))

	got, err := store.GetRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1234567890123", got.ExtractedData[string(constants.DocIDFront)]["cui"])
	assert.Equal(t, "1234567-8", got.ExtractedData[string(constants.DocTaxRegistry)]["nit"])
}

func TestTrackingLedgerOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "X"})
	require.NoError(t, err)

	actor := uuid.New()
	require.NoError(t, store.AddTracking(ctx, entity.TrackingEntry{
		RequestID:     created.ID,
		PreviousState: constants.StatePendiente,
		NewState:      constants.StateAsignada,
		Actor:         &actor,
		Comment:       "assigned",
	}))
	require.NoError(t, store.AddTracking(ctx, entity.TrackingEntry{
		RequestID:     created.ID,
		PreviousState: constants.StateAsignada,
		NewState:      constants.StateEnRevision,
	}))

	entries, err := store.ListTracking(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, constants.StateAsignada, entries[0].NewState)
	assert.Equal(t, constants.StateEnRevision, entries[1].NewState)
	require.NotNil(t, entries[0].Actor)
	assert.Equal(t, actor, *entries[0].Actor)
}

func TestDistributorUniquenessProbe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "EL BUEN PRECIO"})
	require.NoError(t, err)

	taken, err := store.DistributorFieldTaken(ctx, "nit", "1234567-8")
	require.NoError(t, err)
	assert.False(t, taken)

	bundle := &graduation.Bundle{Distributor: &entity.Distributor{
		ID:           uuid.New(),
		RequestID:    created.ID,
		BusinessName: "EL BUEN PRECIO",
		NIT:          "1234567-8",
		Email:        "jc@elbuenprecio.gt",
	}}
	require.NoError(t, store.CreateDistributor(ctx, bundle))

	taken, err = store.DistributorFieldTaken(ctx, "nit", "1234567-8")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = store.DistributorFieldTaken(ctx, "email", "jc@elbuenprecio.gt")
	require.NoError(t, err)
	assert.True(t, taken)

	_, err = store.DistributorFieldTaken(ctx, "phone", "x")
	require.Error(t, err)

	dists, err := store.ListDistributors(ctx)
	require.NoError(t, err)
	require.Len(t, dists, 1)
	assert.Equal(t, created.ID, dists[0].RequestID)
}

// When two graduations race past the uniqueness probe, the index catches the
// loser and the failure surfaces as a field-level integrity error.
func TestDistributorDuplicateNitIsIntegrityError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "EL BUEN PRECIO"})
	require.NoError(t, err)
	second, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "LA BODEGA CENTRAL"})
	require.NoError(t, err)

	require.NoError(t, store.CreateDistributor(ctx, &graduation.Bundle{Distributor: &entity.Distributor{
		ID: uuid.New(), RequestID: first.ID, BusinessName: "EL BUEN PRECIO", NIT: "1234567-8",
	}}))

	err = store.CreateDistributor(ctx, &graduation.Bundle{Distributor: &entity.Distributor{
		ID: uuid.New(), RequestID: second.ID, BusinessName: "LA BODEGA CENTRAL", NIT: "1234567-8",
	}})
	var ierr *common.IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "nit", ierr.Field)
	assert.Equal(t, "1234567-8", ierr.Value)
}

// Uniqueness applies to live rows only; a soft-deleted distributor frees its
// identifiers for a later graduation.
func TestSoftDeletedDistributorFreesIdentifiers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "EL BUEN PRECIO"})
	require.NoError(t, err)
	second, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "EL BUEN PRECIO S.A."})
	require.NoError(t, err)

	oldID := uuid.New()
	require.NoError(t, store.CreateDistributor(ctx, &graduation.Bundle{Distributor: &entity.Distributor{
		ID: oldID, RequestID: first.ID, BusinessName: "EL BUEN PRECIO", NIT: "1234567-8",
	}}))

	require.NoError(t, store.ent.Distributor.UpdateOneID(oldID).SetDeleted(true).Exec(ctx))

	taken, err := store.DistributorFieldTaken(ctx, "nit", "1234567-8")
	require.NoError(t, err)
	assert.False(t, taken, "deleted rows do not hold identifiers")

	require.NoError(t, store.CreateDistributor(ctx, &graduation.Bundle{Distributor: &entity.Distributor{
		ID: uuid.New(), RequestID: second.ID, BusinessName: "EL BUEN PRECIO S.A.", NIT: "1234567-8",
	}}))
}

func TestAddRevisionAndReadBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateRequest(ctx, &entity.Request{BusinessName: "X"})
	require.NoError(t, err)

	actor := uuid.New()
	require.NoError(t, store.AddRevision(ctx, entity.RequestRevision{
		RequestID:   created.ID,
		Section:     "nit",
		Approved:    false,
		Observation: "digit mismatch",
		Actor:       &actor,
	}))

	children, err := store.GetChildren(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, children.Revisions, 1)
	assert.Equal(t, "nit", children.Revisions[0].Section)
	assert.False(t, children.Revisions[0].Approved)
}
