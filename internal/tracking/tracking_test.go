package tracking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

func entry(state constants.RequestState, at time.Time) entity.TrackingEntry {
	return entity.TrackingEntry{
		ID:        uuid.New(),
		RequestID: uuid.Nil,
		NewState:  state,
		CreatedAt: at,
	}
}

func TestSummarizeBucketsDwellTimes(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []entity.TrackingEntry{
		entry(constants.StatePendiente, base),
		entry(constants.StateAsignada, base.Add(2*time.Hour)),
		entry(constants.StateEnRevision, base.Add(3*time.Hour)),
	}
	now := base.Add(5 * time.Hour)

	buckets := Summarize(entries, now)
	require.Len(t, buckets, 3)
	assert.Equal(t, constants.StatePendiente, buckets[0].State)
	assert.Equal(t, 2*time.Hour, buckets[0].Duration)
	assert.Equal(t, time.Hour, buckets[1].Duration)
	// open-ended: EN_REVISION keeps accruing until now
	assert.Equal(t, 2*time.Hour, buckets[2].Duration)
}

func TestSummarizeTerminalStateAccruesNothing(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []entity.TrackingEntry{
		entry(constants.StatePendiente, base),
		entry(constants.StateCancelado, base.Add(time.Hour)),
	}

	buckets := Summarize(entries, base.Add(100*time.Hour))
	require.Len(t, buckets, 2)
	assert.Equal(t, constants.StateCancelado, buckets[1].State)
	assert.Zero(t, buckets[1].Duration)
}

// Correction loops revisit EN_REVISION; visits and durations accumulate per
// state, not per entry.
func TestSummarizeAccumulatesRevisits(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []entity.TrackingEntry{
		entry(constants.StateEnRevision, base),
		entry(constants.StateCorreccionesSolicitadas, base.Add(time.Hour)),
		entry(constants.StateEnReenvio, base.Add(2*time.Hour)),
		entry(constants.StateEnRevision, base.Add(3*time.Hour)),
		entry(constants.StateEnValidacionFinal, base.Add(5*time.Hour)),
	}

	buckets := Summarize(entries, base.Add(5*time.Hour))
	byState := map[constants.RequestState]StateDuration{}
	for _, b := range buckets {
		byState[b.State] = b
	}
	assert.Equal(t, 2, byState[constants.StateEnRevision].Visits)
	assert.Equal(t, 3*time.Hour, byState[constants.StateEnRevision].Duration)
}

func TestSummarizeSortsUnorderedEntries(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []entity.TrackingEntry{
		entry(constants.StateAsignada, base.Add(time.Hour)),
		entry(constants.StatePendiente, base),
	}

	buckets := Summarize(entries, base.Add(2*time.Hour))
	require.Len(t, buckets, 2)
	assert.Equal(t, constants.StatePendiente, buckets[0].State)
	assert.Equal(t, time.Hour, buckets[0].Duration)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, Summarize(nil, time.Now()))
}

func TestCurrentState(t *testing.T) {
	base := time.Now()
	assert.Equal(t, constants.StatePendiente, CurrentState(nil))
	assert.Equal(t, constants.StateAsignada, CurrentState([]entity.TrackingEntry{
		entry(constants.StatePendiente, base),
		entry(constants.StateAsignada, base.Add(time.Minute)),
	}))
}
