// Code generated by ent, DO NOT EDIT.

package requestdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldRequestID, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldDocumentType, v))
}

// ExtractionStatus applies equality check predicate on the "extraction_status" field. It's identical to ExtractionStatusEQ.
func ExtractionStatus(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldExtractionStatus, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldRawText, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldScore, v))
}

// ReviewStatus applies equality check predicate on the "review_status" field. It's identical to ReviewStatusEQ.
func ReviewStatus(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewNotes applies equality check predicate on the "review_notes" field. It's identical to ReviewNotesEQ.
func ReviewNotes(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldReviewNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldRequestID, vs...))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContainsFold(FieldDocumentType, v))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusGT applies the GT predicate on the "extraction_status" field.
func ExtractionStatusGT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldExtractionStatus, v))
}

// ExtractionStatusGTE applies the GTE predicate on the "extraction_status" field.
func ExtractionStatusGTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldExtractionStatus, v))
}

// ExtractionStatusLT applies the LT predicate on the "extraction_status" field.
func ExtractionStatusLT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldExtractionStatus, v))
}

// ExtractionStatusLTE applies the LTE predicate on the "extraction_status" field.
func ExtractionStatusLTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldExtractionStatus, v))
}

// ExtractionStatusContains applies the Contains predicate on the "extraction_status" field.
func ExtractionStatusContains(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContains(FieldExtractionStatus, v))
}

// ExtractionStatusHasPrefix applies the HasPrefix predicate on the "extraction_status" field.
func ExtractionStatusHasPrefix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasPrefix(FieldExtractionStatus, v))
}

// ExtractionStatusHasSuffix applies the HasSuffix predicate on the "extraction_status" field.
func ExtractionStatusHasSuffix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasSuffix(FieldExtractionStatus, v))
}

// ExtractionStatusEqualFold applies the EqualFold predicate on the "extraction_status" field.
func ExtractionStatusEqualFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEqualFold(FieldExtractionStatus, v))
}

// ExtractionStatusContainsFold applies the ContainsFold predicate on the "extraction_status" field.
func ExtractionStatusContainsFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContainsFold(FieldExtractionStatus, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContainsFold(FieldRawText, v))
}

// StructuredFieldsIsNil applies the IsNil predicate on the "structured_fields" field.
func StructuredFieldsIsNil() predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIsNull(FieldStructuredFields))
}

// StructuredFieldsNotNil applies the NotNil predicate on the "structured_fields" field.
func StructuredFieldsNotNil() predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotNull(FieldStructuredFields))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldScore, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewStatusGT applies the GT predicate on the "review_status" field.
func ReviewStatusGT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldReviewStatus, v))
}

// ReviewStatusGTE applies the GTE predicate on the "review_status" field.
func ReviewStatusGTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldReviewStatus, v))
}

// ReviewStatusLT applies the LT predicate on the "review_status" field.
func ReviewStatusLT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldReviewStatus, v))
}

// ReviewStatusLTE applies the LTE predicate on the "review_status" field.
func ReviewStatusLTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldReviewStatus, v))
}

// ReviewStatusContains applies the Contains predicate on the "review_status" field.
func ReviewStatusContains(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContains(FieldReviewStatus, v))
}

// ReviewStatusHasPrefix applies the HasPrefix predicate on the "review_status" field.
func ReviewStatusHasPrefix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasPrefix(FieldReviewStatus, v))
}

// ReviewStatusHasSuffix applies the HasSuffix predicate on the "review_status" field.
func ReviewStatusHasSuffix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasSuffix(FieldReviewStatus, v))
}

// ReviewStatusEqualFold applies the EqualFold predicate on the "review_status" field.
func ReviewStatusEqualFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEqualFold(FieldReviewStatus, v))
}

// ReviewStatusContainsFold applies the ContainsFold predicate on the "review_status" field.
func ReviewStatusContainsFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContainsFold(FieldReviewStatus, v))
}

// ReviewNotesEQ applies the EQ predicate on the "review_notes" field.
func ReviewNotesEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewNotesNEQ applies the NEQ predicate on the "review_notes" field.
func ReviewNotesNEQ(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldReviewNotes, v))
}

// ReviewNotesIn applies the In predicate on the "review_notes" field.
func ReviewNotesIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldReviewNotes, vs...))
}

// ReviewNotesNotIn applies the NotIn predicate on the "review_notes" field.
func ReviewNotesNotIn(vs ...string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldReviewNotes, vs...))
}

// ReviewNotesGT applies the GT predicate on the "review_notes" field.
func ReviewNotesGT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldReviewNotes, v))
}

// ReviewNotesGTE applies the GTE predicate on the "review_notes" field.
func ReviewNotesGTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldReviewNotes, v))
}

// ReviewNotesLT applies the LT predicate on the "review_notes" field.
func ReviewNotesLT(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldReviewNotes, v))
}

// ReviewNotesLTE applies the LTE predicate on the "review_notes" field.
func ReviewNotesLTE(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldReviewNotes, v))
}

// ReviewNotesContains applies the Contains predicate on the "review_notes" field.
func ReviewNotesContains(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContains(FieldReviewNotes, v))
}

// ReviewNotesHasPrefix applies the HasPrefix predicate on the "review_notes" field.
func ReviewNotesHasPrefix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasPrefix(FieldReviewNotes, v))
}

// ReviewNotesHasSuffix applies the HasSuffix predicate on the "review_notes" field.
func ReviewNotesHasSuffix(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldHasSuffix(FieldReviewNotes, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotNull(FieldReviewNotes))
}

// ReviewNotesEqualFold applies the EqualFold predicate on the "review_notes" field.
func ReviewNotesEqualFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEqualFold(FieldReviewNotes, v))
}

// ReviewNotesContainsFold applies the ContainsFold predicate on the "review_notes" field.
func ReviewNotesContainsFold(v string) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldContainsFold(FieldReviewNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RequestDocument {
	return predicate.RequestDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.RequestDocument {
	return predicate.RequestDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.RequestDocument {
	return predicate.RequestDocument(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RequestDocument) predicate.RequestDocument {
	return predicate.RequestDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RequestDocument) predicate.RequestDocument {
	return predicate.RequestDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RequestDocument) predicate.RequestDocument {
	return predicate.RequestDocument(sql.NotPredicates(p))
}
