package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/db/ent/schema/utils"
)

// Production mirrors of the approved request children. Written once at
// graduation, read-only afterwards.

type DistributorDocument struct{ ent.Schema }

func (DistributorDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "distributor_documents"},
	}
}

func (DistributorDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("distributor_id", uuid.UUID{}),
		field.String("document_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.DocumentTypeStrings()...)),
		field.String("raw_text").Optional().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("structured_fields", map[string]string{}).Optional().Immutable(),
	}
}

func (DistributorDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("distributor", Distributor.Type).
			Ref("documents").
			Field("distributor_id").
			Unique().
			Required(),
	}
}

func (DistributorDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("distributor_id", "document_type").Unique(),
	}
}

type DistributorBranch struct{ ent.Schema }

func (DistributorBranch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "distributor_branches"},
	}
}

func (DistributorBranch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("distributor_id", uuid.UUID{}),
		field.String("name").NotEmpty().Immutable(),
		field.String("address").Optional().Immutable(),
		field.String("department").Optional().Immutable(),
		field.String("municipality").Optional().Immutable(),
		field.String("zone").Optional().Immutable(),
		field.String("status").Optional().Immutable(),
		field.String("start_date").Optional().Immutable(),
	}
}

func (DistributorBranch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("distributor", Distributor.Type).
			Ref("branches").
			Field("distributor_id").
			Unique().
			Required(),
	}
}

func (DistributorBranch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("distributor_id"),
	}
}

type DistributorReference struct{ ent.Schema }

func (DistributorReference) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "distributor_references"},
	}
}

func (DistributorReference) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("distributor_id", uuid.UUID{}),
		field.String("name").NotEmpty().Immutable(),
		field.String("relationship").Optional().Immutable(),
		field.String("phone").Optional().Immutable(),
	}
}

func (DistributorReference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("distributor", Distributor.Type).
			Ref("references").
			Field("distributor_id").
			Unique().
			Required(),
	}
}

func (DistributorReference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("distributor_id"),
	}
}
