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

type RequestReference struct{ ent.Schema }

func (RequestReference) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "request_references"},
	}
}

func (RequestReference) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("request_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("relationship").Optional(),
		field.String("phone").Optional(),
		field.String("review_status").
			Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatusStrings()...)),
		field.String("review_notes").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (RequestReference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("references").
			Field("request_id").
			Unique().
			Required(),
	}
}

func (RequestReference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
	}
}
