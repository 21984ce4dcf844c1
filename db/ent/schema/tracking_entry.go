package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/db/ent/schema/utils"
)

// TrackingEntry is the immutable audit ledger of state changes.
type TrackingEntry struct{ ent.Schema }

func (TrackingEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tracking_entries"},
	}
}

func (TrackingEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("request_id", uuid.UUID{}),
		field.String("previous_state").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.RequestStateStrings()...)),
		field.String("new_state").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.RequestStateStrings()...)),
		field.UUID("actor", uuid.UUID{}).Optional().Nillable().Immutable(),
		field.String("comment").Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (TrackingEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("tracking").
			Field("request_id").
			Unique().
			Required(),
	}
}

func (TrackingEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "created_at"),
	}
}
