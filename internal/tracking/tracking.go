// Package tracking derives reporting views from a request's state-change
// ledger. The ledger itself is append-only and written in the same
// transaction as each transition; this package only reads it.
package tracking

import (
	"sort"
	"time"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

// StateDuration is the accumulated time a request spent in one state.
type StateDuration struct {
	State    constants.RequestState
	Duration time.Duration
	Visits   int
}

// Summarize buckets the ledger into per-state dwell times. Each entry's new
// state accrues until the next entry; the last entry accrues until now unless
// the state is terminal. Entries are sorted by timestamp before bucketing so
// callers need not guarantee order.
func Summarize(entries []entity.TrackingEntry, now time.Time) []StateDuration {
	if len(entries) == 0 {
		return nil
	}
	sorted := append([]entity.TrackingEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	acc := make(map[constants.RequestState]*StateDuration)
	order := make([]constants.RequestState, 0, len(sorted))
	add := func(state constants.RequestState, d time.Duration) {
		b, ok := acc[state]
		if !ok {
			b = &StateDuration{State: state}
			acc[state] = b
			order = append(order, state)
		}
		b.Visits++
		if d > 0 {
			b.Duration += d
		}
	}

	for i, e := range sorted {
		var d time.Duration
		switch {
		case i+1 < len(sorted):
			d = sorted[i+1].CreatedAt.Sub(e.CreatedAt)
		case !e.NewState.IsTerminal():
			d = now.Sub(e.CreatedAt)
		}
		add(e.NewState, d)
	}

	out := make([]StateDuration, 0, len(order))
	for _, s := range order {
		out = append(out, *acc[s])
	}
	return out
}

// CurrentState returns the latest state recorded in the ledger, or PENDIENTE
// when the ledger is empty.
func CurrentState(entries []entity.TrackingEntry) constants.RequestState {
	if len(entries) == 0 {
		return constants.StatePendiente
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	return latest.NewState
}
