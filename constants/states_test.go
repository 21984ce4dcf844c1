package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from RequestState
		to   RequestState
		want bool
	}{
		{"submitted to assigned", StatePendiente, StateAsignada, true},
		{"assigned to review", StateAsignada, StateEnRevision, true},
		{"review to corrections", StateEnRevision, StateCorreccionesSolicitadas, true},
		{"review to final validation", StateEnRevision, StateEnValidacionFinal, true},
		{"corrections to resubmit", StateCorreccionesSolicitadas, StateEnReenvio, true},
		{"resubmit back to review", StateEnReenvio, StateEnRevision, true},
		{"final validation to authorization", StateEnValidacionFinal, StateEnviadoAutorizacion, true},
		{"authorization to approved", StateEnviadoAutorizacion, StateAprobado, true},
		{"authorization to rejected", StateEnviadoAutorizacion, StateRechazado, true},

		{"skip assignment", StatePendiente, StateEnRevision, false},
		{"skip review", StateAsignada, StateEnValidacionFinal, false},
		{"resubmit cannot jump to final validation", StateEnReenvio, StateEnValidacionFinal, false},
		{"no going back", StateEnRevision, StatePendiente, false},
		{"approved is terminal", StateAprobado, StateEnRevision, false},
		{"rejected is terminal", StateRechazado, StatePendiente, false},
		{"unknown target", StateEnRevision, RequestState("BOGUS"), false},
		{"unknown source", RequestState("BOGUS"), StateEnRevision, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCancelReachableFromNonTerminalOnly(t *testing.T) {
	for _, s := range RequestStates {
		if s.IsTerminal() {
			assert.False(t, CanTransition(s, StateCancelado), "cancel from %s", s)
		} else {
			assert.True(t, CanTransition(s, StateCancelado), "cancel from %s", s)
		}
	}
}

// Every state listed as a successor must itself be a known state, so any
// accepted walk of the graph only ever visits known states.
func TestTransitionTableClosed(t *testing.T) {
	for from, nexts := range Transitions {
		require.True(t, from.IsValid())
		for _, to := range nexts {
			assert.True(t, to.IsValid(), "%s -> %s", from, to)
			assert.False(t, from.IsTerminal(), "terminal %s lists successor %s", from, to)
		}
	}
}

func TestEditableStates(t *testing.T) {
	assert.True(t, StatePendiente.IsEditable())
	assert.True(t, StateCorreccionesSolicitadas.IsEditable())
	for _, s := range []RequestState{
		StateAsignada, StateEnRevision, StateEnReenvio, StateEnValidacionFinal,
		StateEnviadoAutorizacion, StateAprobado, StateRechazado, StateCancelado,
	} {
		assert.False(t, s.IsEditable(), "state %s", s)
	}
}
