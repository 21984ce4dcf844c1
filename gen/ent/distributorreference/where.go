// Code generated by ent, DO NOT EDIT.

package distributorreference

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLTE(FieldID, id))
}

// DistributorID applies equality check predicate on the "distributor_id" field. It's identical to DistributorIDEQ.
func DistributorID(v uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldDistributorID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldName, v))
}

// Relationship applies equality check predicate on the "relationship" field. It's identical to RelationshipEQ.
func Relationship(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldRelationship, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldPhone, v))
}

// DistributorIDEQ applies the EQ predicate on the "distributor_id" field.
func DistributorIDEQ(v uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldDistributorID, v))
}

// DistributorIDNEQ applies the NEQ predicate on the "distributor_id" field.
func DistributorIDNEQ(v uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNEQ(FieldDistributorID, v))
}

// DistributorIDIn applies the In predicate on the "distributor_id" field.
func DistributorIDIn(vs ...uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldIn(FieldDistributorID, vs...))
}

// DistributorIDNotIn applies the NotIn predicate on the "distributor_id" field.
func DistributorIDNotIn(vs ...uuid.UUID) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNotIn(FieldDistributorID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldContainsFold(FieldName, v))
}

// RelationshipEQ applies the EQ predicate on the "relationship" field.
func RelationshipEQ(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldRelationship, v))
}

// RelationshipNEQ applies the NEQ predicate on the "relationship" field.
func RelationshipNEQ(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNEQ(FieldRelationship, v))
}

// RelationshipIn applies the In predicate on the "relationship" field.
func RelationshipIn(vs ...string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldIn(FieldRelationship, vs...))
}

// RelationshipNotIn applies the NotIn predicate on the "relationship" field.
func RelationshipNotIn(vs ...string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNotIn(FieldRelationship, vs...))
}

// RelationshipGT applies the GT predicate on the "relationship" field.
func RelationshipGT(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGT(FieldRelationship, v))
}

// RelationshipGTE applies the GTE predicate on the "relationship" field.
func RelationshipGTE(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGTE(FieldRelationship, v))
}

// RelationshipLT applies the LT predicate on the "relationship" field.
func RelationshipLT(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLT(FieldRelationship, v))
}

// RelationshipLTE applies the LTE predicate on the "relationship" field.
func RelationshipLTE(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLTE(FieldRelationship, v))
}

// RelationshipContains applies the Contains predicate on the "relationship" field.
func RelationshipContains(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldContains(FieldRelationship, v))
}

// RelationshipHasPrefix applies the HasPrefix predicate on the "relationship" field.
func RelationshipHasPrefix(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldHasPrefix(FieldRelationship, v))
}

// RelationshipHasSuffix applies the HasSuffix predicate on the "relationship" field.
func RelationshipHasSuffix(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldHasSuffix(FieldRelationship, v))
}

// RelationshipIsNil applies the IsNil predicate on the "relationship" field.
func RelationshipIsNil() predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldIsNull(FieldRelationship))
}

// RelationshipNotNil applies the NotNil predicate on the "relationship" field.
func RelationshipNotNil() predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNotNull(FieldRelationship))
}

// RelationshipEqualFold applies the EqualFold predicate on the "relationship" field.
func RelationshipEqualFold(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEqualFold(FieldRelationship, v))
}

// RelationshipContainsFold applies the ContainsFold predicate on the "relationship" field.
func RelationshipContainsFold(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldContainsFold(FieldRelationship, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.DistributorReference {
	return predicate.DistributorReference(sql.FieldContainsFold(FieldPhone, v))
}

// HasDistributor applies the HasEdge predicate on the "distributor" edge.
func HasDistributor() predicate.DistributorReference {
	return predicate.DistributorReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DistributorTable, DistributorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDistributorWith applies the HasEdge predicate on the "distributor" edge with a given conditions (other predicates).
func HasDistributorWith(preds ...predicate.Distributor) predicate.DistributorReference {
	return predicate.DistributorReference(func(s *sql.Selector) {
		step := newDistributorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DistributorReference) predicate.DistributorReference {
	return predicate.DistributorReference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DistributorReference) predicate.DistributorReference {
	return predicate.DistributorReference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DistributorReference) predicate.DistributorReference {
	return predicate.DistributorReference(sql.NotPredicates(p))
}
