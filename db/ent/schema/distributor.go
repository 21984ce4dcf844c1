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

// Distributor is the production-side record a request graduates into.
type Distributor struct{ ent.Schema }

func (Distributor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "distributors"},
	}
}

func (Distributor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("request_id", uuid.UUID{}).Unique(),
		field.String("business_name").NotEmpty(),
		field.String("owner_name").Optional(),
		// uniqueness is enforced by the partial indexes below so soft-deleted
		// rows free their identifiers; NULLs never collide
		field.String("nit").Optional(),
		field.String("dpi").Optional(),
		field.String("email").Optional(),
		field.String("phone").Optional(),
		field.String("address").Optional(),
		field.String("department").Optional(),
		field.String("municipality").Optional(),
		field.String("bank_name").Optional(),
		field.String("bank_account").Optional(),
		field.Bool("deleted").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Distributor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("distributor").
			Field("request_id").
			Unique().
			Required(),
		edge.To("documents", DistributorDocument.Type),
		edge.To("branches", DistributorBranch.Type),
		edge.To("references", DistributorReference.Type),
	}
}

func (Distributor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_name"),
		index.Fields("deleted"),
		index.Fields("nit").Unique().Annotations(entsql.IndexWhere("deleted = false")),
		index.Fields("dpi").Unique().Annotations(entsql.IndexWhere("deleted = false")),
		index.Fields("email").Unique().Annotations(entsql.IndexWhere("deleted = false")),
	}
}
