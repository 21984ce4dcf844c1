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

type Request struct{ ent.Schema }

func (Request) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "requests"},
	}
}

func (Request) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("state").
			Default(string(constants.StatePendiente)).
			Validate(utils.EnumValidator(constants.RequestStateStrings()...)),
		field.UUID("assigned_reviewer", uuid.UUID{}).Optional().Nillable(),
		field.String("business_name").NotEmpty(),
		field.String("owner_name").Optional(),
		field.String("nit").Optional(),
		field.String("dpi").Optional(),
		field.String("email").Optional(),
		field.String("phone").Optional(),
		field.String("address").Optional(),
		field.String("department").Optional(),
		field.String("municipality").Optional(),
		field.String("bank_name").Optional(),
		field.String("bank_account").Optional(),
		field.JSON("extracted_data", map[string]map[string]string{}).Optional(),
		field.Int("match_score").Optional().Nillable(),
		field.Bool("deleted").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Request) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", RequestDocument.Type),
		edge.To("branches", RequestBranch.Type),
		edge.To("references", RequestReference.Type),
		edge.To("revisions", RequestRevision.Type),
		edge.To("tracking", TrackingEntry.Type),
		edge.To("distributor", Distributor.Type).Unique(),
	}
}

func (Request) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "deleted"),
		index.Fields("assigned_reviewer"),
		index.Fields("nit"),
	}
}
