package schema

import (
	"time"

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

type RequestDocument struct{ ent.Schema }

func (RequestDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "request_documents"},
	}
}

func (RequestDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("request_id", uuid.UUID{}),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypeStrings()...)),
		field.String("extraction_status").
			Default(string(constants.ExtractionPending)).
			Validate(utils.EnumValidator(constants.ExtractionStatusStrings()...)),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("structured_fields", map[string]string{}).Optional(),
		field.Int("score").Default(0),
		field.String("review_status").
			Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatusStrings()...)),
		field.String("review_notes").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (RequestDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("documents").
			Field("request_id").
			Unique().
			Required(),
	}
}

func (RequestDocument) Indexes() []ent.Index {
	return []ent.Index{
		// one live document per (request, type); resubmissions overwrite
		index.Fields("request_id", "document_type").Unique(),
	}
}
