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
)

// RequestRevision rows are append-only; there is no update path.
type RequestRevision struct{ ent.Schema }

func (RequestRevision) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "request_revisions"},
	}
}

func (RequestRevision) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("request_id", uuid.UUID{}),
		field.String("section").NotEmpty().Immutable(),
		field.Bool("approved").Immutable(),
		field.String("observation").Optional().Immutable(),
		field.UUID("actor", uuid.UUID{}).Optional().Nillable().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (RequestRevision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("revisions").
			Field("request_id").
			Unique().
			Required(),
	}
}

func (RequestRevision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "section", "created_at"),
	}
}
