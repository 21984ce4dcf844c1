// Code generated by ent, DO NOT EDIT.

package distributordocument

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldLTE(FieldID, id))
}

// DistributorID applies equality check predicate on the "distributor_id" field. It's identical to DistributorIDEQ.
func DistributorID(v uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldDistributorID, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldDocumentType, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldRawText, v))
}

// DistributorIDEQ applies the EQ predicate on the "distributor_id" field.
func DistributorIDEQ(v uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldDistributorID, v))
}

// DistributorIDNEQ applies the NEQ predicate on the "distributor_id" field.
func DistributorIDNEQ(v uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNEQ(FieldDistributorID, v))
}

// DistributorIDIn applies the In predicate on the "distributor_id" field.
func DistributorIDIn(vs ...uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldIn(FieldDistributorID, vs...))
}

// DistributorIDNotIn applies the NotIn predicate on the "distributor_id" field.
func DistributorIDNotIn(vs ...uuid.UUID) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNotIn(FieldDistributorID, vs...))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldContainsFold(FieldDocumentType, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldContainsFold(FieldRawText, v))
}

// StructuredFieldsIsNil applies the IsNil predicate on the "structured_fields" field.
func StructuredFieldsIsNil() predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldIsNull(FieldStructuredFields))
}

// StructuredFieldsNotNil applies the NotNil predicate on the "structured_fields" field.
func StructuredFieldsNotNil() predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.FieldNotNull(FieldStructuredFields))
}

// HasDistributor applies the HasEdge predicate on the "distributor" edge.
func HasDistributor() predicate.DistributorDocument {
	return predicate.DistributorDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DistributorTable, DistributorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDistributorWith applies the HasEdge predicate on the "distributor" edge with a given conditions (other predicates).
func HasDistributorWith(preds ...predicate.Distributor) predicate.DistributorDocument {
	return predicate.DistributorDocument(func(s *sql.Selector) {
		step := newDistributorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DistributorDocument) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DistributorDocument) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DistributorDocument) predicate.DistributorDocument {
	return predicate.DistributorDocument(sql.NotPredicates(p))
}
