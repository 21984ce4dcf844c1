package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

type fakeLedger struct {
	entries []entity.TrackingEntry
}

func (f *fakeLedger) ListTracking(context.Context, uuid.UUID) ([]entity.TrackingEntry, error) {
	return f.entries, nil
}

func TestExportTrackingXLSX(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	actor := uuid.New()
	ledger := &fakeLedger{entries: []entity.TrackingEntry{
		{NewState: constants.StatePendiente, CreatedAt: base},
		{PreviousState: constants.StatePendiente, NewState: constants.StateAsignada,
			Actor: &actor, Comment: "taking this one", CreatedAt: base.Add(time.Hour)},
	}}
	svc := NewService(ledger, nil)

	data, err := svc.ExportTrackingXLSX(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Historial")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Estado Nuevo", rows[0][2])
	assert.Equal(t, "PENDIENTE", rows[1][2])
	assert.Equal(t, "ASIGNADA", rows[2][2])
	assert.Equal(t, "taking this one", rows[2][4])

	summary, err := wb.GetRows("Resumen")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(summary), 3)
	assert.Equal(t, "PENDIENTE", summary[1][0])
}
