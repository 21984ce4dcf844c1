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

type RequestBranch struct{ ent.Schema }

func (RequestBranch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "request_branches"},
	}
}

func (RequestBranch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("request_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("address").Optional(),
		field.String("department").Optional(),
		field.String("municipality").Optional(),
		field.String("zone").Optional(),
		field.String("status").Optional(),
		field.String("start_date").Optional(),
		field.String("review_status").
			Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatusStrings()...)),
		field.String("review_notes").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (RequestBranch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("branches").
			Field("request_id").
			Unique().
			Required(),
	}
}

func (RequestBranch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
	}
}
