// Code generated by ent, DO NOT EDIT.

package trackingentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldRequestID, v))
}

// PreviousState applies equality check predicate on the "previous_state" field. It's identical to PreviousStateEQ.
func PreviousState(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldPreviousState, v))
}

// NewState applies equality check predicate on the "new_state" field. It's identical to NewStateEQ.
func NewState(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldNewState, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldActor, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldRequestID, vs...))
}

// PreviousStateEQ applies the EQ predicate on the "previous_state" field.
func PreviousStateEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldPreviousState, v))
}

// PreviousStateNEQ applies the NEQ predicate on the "previous_state" field.
func PreviousStateNEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldPreviousState, v))
}

// PreviousStateIn applies the In predicate on the "previous_state" field.
func PreviousStateIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldPreviousState, vs...))
}

// PreviousStateNotIn applies the NotIn predicate on the "previous_state" field.
func PreviousStateNotIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldPreviousState, vs...))
}

// PreviousStateGT applies the GT predicate on the "previous_state" field.
func PreviousStateGT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldPreviousState, v))
}

// PreviousStateGTE applies the GTE predicate on the "previous_state" field.
func PreviousStateGTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldPreviousState, v))
}

// PreviousStateLT applies the LT predicate on the "previous_state" field.
func PreviousStateLT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldPreviousState, v))
}

// PreviousStateLTE applies the LTE predicate on the "previous_state" field.
func PreviousStateLTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldPreviousState, v))
}

// PreviousStateContains applies the Contains predicate on the "previous_state" field.
func PreviousStateContains(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContains(FieldPreviousState, v))
}

// PreviousStateHasPrefix applies the HasPrefix predicate on the "previous_state" field.
func PreviousStateHasPrefix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasPrefix(FieldPreviousState, v))
}

// PreviousStateHasSuffix applies the HasSuffix predicate on the "previous_state" field.
func PreviousStateHasSuffix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasSuffix(FieldPreviousState, v))
}

// PreviousStateEqualFold applies the EqualFold predicate on the "previous_state" field.
func PreviousStateEqualFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEqualFold(FieldPreviousState, v))
}

// PreviousStateContainsFold applies the ContainsFold predicate on the "previous_state" field.
func PreviousStateContainsFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContainsFold(FieldPreviousState, v))
}

// NewStateEQ applies the EQ predicate on the "new_state" field.
func NewStateEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldNewState, v))
}

// NewStateNEQ applies the NEQ predicate on the "new_state" field.
func NewStateNEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldNewState, v))
}

// NewStateIn applies the In predicate on the "new_state" field.
func NewStateIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldNewState, vs...))
}

// NewStateNotIn applies the NotIn predicate on the "new_state" field.
func NewStateNotIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldNewState, vs...))
}

// NewStateGT applies the GT predicate on the "new_state" field.
func NewStateGT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldNewState, v))
}

// NewStateGTE applies the GTE predicate on the "new_state" field.
func NewStateGTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldNewState, v))
}

// NewStateLT applies the LT predicate on the "new_state" field.
func NewStateLT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldNewState, v))
}

// NewStateLTE applies the LTE predicate on the "new_state" field.
func NewStateLTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldNewState, v))
}

// NewStateContains applies the Contains predicate on the "new_state" field.
func NewStateContains(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContains(FieldNewState, v))
}

// NewStateHasPrefix applies the HasPrefix predicate on the "new_state" field.
func NewStateHasPrefix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasPrefix(FieldNewState, v))
}

// NewStateHasSuffix applies the HasSuffix predicate on the "new_state" field.
func NewStateHasSuffix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasSuffix(FieldNewState, v))
}

// NewStateEqualFold applies the EqualFold predicate on the "new_state" field.
func NewStateEqualFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEqualFold(FieldNewState, v))
}

// NewStateContainsFold applies the ContainsFold predicate on the "new_state" field.
func NewStateContainsFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContainsFold(FieldNewState, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v uuid.UUID) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotNull(FieldActor))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldContainsFold(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.TrackingEntry {
	return predicate.TrackingEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.TrackingEntry {
	return predicate.TrackingEntry(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrackingEntry) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrackingEntry) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrackingEntry) predicate.TrackingEntry {
	return predicate.TrackingEntry(sql.NotPredicates(p))
}
