// Code generated by ent, DO NOT EDIT.

package requestrevision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldRequestID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldSection, v))
}

// Approved applies equality check predicate on the "approved" field. It's identical to ApprovedEQ.
func Approved(v bool) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldApproved, v))
}

// Observation applies equality check predicate on the "observation" field. It's identical to ObservationEQ.
func Observation(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldObservation, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldActor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotIn(FieldRequestID, vs...))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldContainsFold(FieldSection, v))
}

// ApprovedEQ applies the EQ predicate on the "approved" field.
func ApprovedEQ(v bool) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldApproved, v))
}

// ApprovedNEQ applies the NEQ predicate on the "approved" field.
func ApprovedNEQ(v bool) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNEQ(FieldApproved, v))
}

// ObservationEQ applies the EQ predicate on the "observation" field.
func ObservationEQ(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldObservation, v))
}

// ObservationNEQ applies the NEQ predicate on the "observation" field.
func ObservationNEQ(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNEQ(FieldObservation, v))
}

// ObservationIn applies the In predicate on the "observation" field.
func ObservationIn(vs ...string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIn(FieldObservation, vs...))
}

// ObservationNotIn applies the NotIn predicate on the "observation" field.
func ObservationNotIn(vs ...string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotIn(FieldObservation, vs...))
}

// ObservationGT applies the GT predicate on the "observation" field.
func ObservationGT(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGT(FieldObservation, v))
}

// ObservationGTE applies the GTE predicate on the "observation" field.
func ObservationGTE(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGTE(FieldObservation, v))
}

// ObservationLT applies the LT predicate on the "observation" field.
func ObservationLT(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLT(FieldObservation, v))
}

// ObservationLTE applies the LTE predicate on the "observation" field.
func ObservationLTE(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLTE(FieldObservation, v))
}

// ObservationContains applies the Contains predicate on the "observation" field.
func ObservationContains(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldContains(FieldObservation, v))
}

// ObservationHasPrefix applies the HasPrefix predicate on the "observation" field.
func ObservationHasPrefix(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldHasPrefix(FieldObservation, v))
}

// ObservationHasSuffix applies the HasSuffix predicate on the "observation" field.
func ObservationHasSuffix(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldHasSuffix(FieldObservation, v))
}

// ObservationIsNil applies the IsNil predicate on the "observation" field.
func ObservationIsNil() predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIsNull(FieldObservation))
}

// ObservationNotNil applies the NotNil predicate on the "observation" field.
func ObservationNotNil() predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotNull(FieldObservation))
}

// ObservationEqualFold applies the EqualFold predicate on the "observation" field.
func ObservationEqualFold(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEqualFold(FieldObservation, v))
}

// ObservationContainsFold applies the ContainsFold predicate on the "observation" field.
func ObservationContainsFold(v string) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldContainsFold(FieldObservation, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v uuid.UUID) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLTE(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotNull(FieldActor))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RequestRevision {
	return predicate.RequestRevision(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.RequestRevision {
	return predicate.RequestRevision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.RequestRevision {
	return predicate.RequestRevision(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RequestRevision) predicate.RequestRevision {
	return predicate.RequestRevision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RequestRevision) predicate.RequestRevision {
	return predicate.RequestRevision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RequestRevision) predicate.RequestRevision {
	return predicate.RequestRevision(sql.NotPredicates(p))
}
