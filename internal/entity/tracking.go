package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
)

// TrackingEntry is one immutable row of the per-request audit ledger.
// Actor is nil for system-originated transitions.
type TrackingEntry struct {
	ID            uuid.UUID              `json:"id"`
	RequestID     uuid.UUID              `json:"request_id"`
	PreviousState constants.RequestState `json:"previous_state"`
	NewState      constants.RequestState `json:"new_state"`
	Actor         *uuid.UUID             `json:"actor,omitempty"`
	Comment       string                 `json:"comment,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
