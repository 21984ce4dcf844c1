package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/gen/ent"
	enttrack "github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

// AddTracking appends one ledger row. Callers run this inside the same
// transaction as the state change it records.
func (s *Store) AddTracking(ctx context.Context, e entity.TrackingEntry) error {
	create := s.ent.TrackingEntry.Create().
		SetRequestID(e.RequestID).
		SetPreviousState(string(e.PreviousState)).
		SetNewState(string(e.NewState)).
		SetComment(e.Comment)
	if e.Actor != nil {
		create = create.SetActor(*e.Actor)
	}
	_, err := create.Save(ctx)
	if err != nil {
		s.log.Error("tracking append failed",
			"request_id", e.RequestID, "from", e.PreviousState, "to", e.NewState, "err", err)
	}
	return err
}

// ListTracking returns the full ledger for one request, oldest first.
func (s *Store) ListTracking(ctx context.Context, requestID uuid.UUID) ([]entity.TrackingEntry, error) {
	rows, err := s.ent.TrackingEntry.Query().
		Where(enttrack.RequestIDEQ(requestID)).
		Order(ent.Asc(enttrack.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.TrackingEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.TrackingEntry{
			ID:            row.ID,
			RequestID:     row.RequestID,
			PreviousState: constants.RequestState(row.PreviousState),
			NewState:      constants.RequestState(row.NewState),
			Actor:         row.Actor,
			Comment:       row.Comment,
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, nil
}
