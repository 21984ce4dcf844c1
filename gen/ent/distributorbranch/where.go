// Code generated by ent, DO NOT EDIT.

package distributorbranch

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldID, id))
}

// DistributorID applies equality check predicate on the "distributor_id" field. It's identical to DistributorIDEQ.
func DistributorID(v uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldDistributorID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldName, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldAddress, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldDepartment, v))
}

// Municipality applies equality check predicate on the "municipality" field. It's identical to MunicipalityEQ.
func Municipality(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldMunicipality, v))
}

// Zone applies equality check predicate on the "zone" field. It's identical to ZoneEQ.
func Zone(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldZone, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldStatus, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldStartDate, v))
}

// DistributorIDEQ applies the EQ predicate on the "distributor_id" field.
func DistributorIDEQ(v uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldDistributorID, v))
}

// DistributorIDNEQ applies the NEQ predicate on the "distributor_id" field.
func DistributorIDNEQ(v uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldDistributorID, v))
}

// DistributorIDIn applies the In predicate on the "distributor_id" field.
func DistributorIDIn(vs ...uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldDistributorID, vs...))
}

// DistributorIDNotIn applies the NotIn predicate on the "distributor_id" field.
func DistributorIDNotIn(vs ...uuid.UUID) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldDistributorID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContainsFold(FieldName, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContainsFold(FieldAddress, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContainsFold(FieldDepartment, v))
}

// MunicipalityEQ applies the EQ predicate on the "municipality" field.
func MunicipalityEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldMunicipality, v))
}

// MunicipalityNEQ applies the NEQ predicate on the "municipality" field.
func MunicipalityNEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldMunicipality, v))
}

// MunicipalityIn applies the In predicate on the "municipality" field.
func MunicipalityIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldMunicipality, vs...))
}

// MunicipalityNotIn applies the NotIn predicate on the "municipality" field.
func MunicipalityNotIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldMunicipality, vs...))
}

// MunicipalityGT applies the GT predicate on the "municipality" field.
func MunicipalityGT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldMunicipality, v))
}

// MunicipalityGTE applies the GTE predicate on the "municipality" field.
func MunicipalityGTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldMunicipality, v))
}

// MunicipalityLT applies the LT predicate on the "municipality" field.
func MunicipalityLT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldMunicipality, v))
}

// MunicipalityLTE applies the LTE predicate on the "municipality" field.
func MunicipalityLTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldMunicipality, v))
}

// MunicipalityContains applies the Contains predicate on the "municipality" field.
func MunicipalityContains(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContains(FieldMunicipality, v))
}

// MunicipalityHasPrefix applies the HasPrefix predicate on the "municipality" field.
func MunicipalityHasPrefix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasPrefix(FieldMunicipality, v))
}

// MunicipalityHasSuffix applies the HasSuffix predicate on the "municipality" field.
func MunicipalityHasSuffix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasSuffix(FieldMunicipality, v))
}

// MunicipalityIsNil applies the IsNil predicate on the "municipality" field.
func MunicipalityIsNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIsNull(FieldMunicipality))
}

// MunicipalityNotNil applies the NotNil predicate on the "municipality" field.
func MunicipalityNotNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotNull(FieldMunicipality))
}

// MunicipalityEqualFold applies the EqualFold predicate on the "municipality" field.
func MunicipalityEqualFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEqualFold(FieldMunicipality, v))
}

// MunicipalityContainsFold applies the ContainsFold predicate on the "municipality" field.
func MunicipalityContainsFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContainsFold(FieldMunicipality, v))
}

// ZoneEQ applies the EQ predicate on the "zone" field.
func ZoneEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldZone, v))
}

// ZoneNEQ applies the NEQ predicate on the "zone" field.
func ZoneNEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldZone, v))
}

// ZoneIn applies the In predicate on the "zone" field.
func ZoneIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldZone, vs...))
}

// ZoneNotIn applies the NotIn predicate on the "zone" field.
func ZoneNotIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldZone, vs...))
}

// ZoneGT applies the GT predicate on the "zone" field.
func ZoneGT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldZone, v))
}

// ZoneGTE applies the GTE predicate on the "zone" field.
func ZoneGTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldZone, v))
}

// ZoneLT applies the LT predicate on the "zone" field.
func ZoneLT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldZone, v))
}

// ZoneLTE applies the LTE predicate on the "zone" field.
func ZoneLTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldZone, v))
}

// ZoneContains applies the Contains predicate on the "zone" field.
func ZoneContains(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContains(FieldZone, v))
}

// ZoneHasPrefix applies the HasPrefix predicate on the "zone" field.
func ZoneHasPrefix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasPrefix(FieldZone, v))
}

// ZoneHasSuffix applies the HasSuffix predicate on the "zone" field.
func ZoneHasSuffix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasSuffix(FieldZone, v))
}

// ZoneIsNil applies the IsNil predicate on the "zone" field.
func ZoneIsNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIsNull(FieldZone))
}

// ZoneNotNil applies the NotNil predicate on the "zone" field.
func ZoneNotNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotNull(FieldZone))
}

// ZoneEqualFold applies the EqualFold predicate on the "zone" field.
func ZoneEqualFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEqualFold(FieldZone, v))
}

// ZoneContainsFold applies the ContainsFold predicate on the "zone" field.
func ZoneContainsFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContainsFold(FieldZone, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContainsFold(FieldStatus, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldLTE(FieldStartDate, v))
}

// StartDateContains applies the Contains predicate on the "start_date" field.
func StartDateContains(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContains(FieldStartDate, v))
}

// StartDateHasPrefix applies the HasPrefix predicate on the "start_date" field.
func StartDateHasPrefix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasPrefix(FieldStartDate, v))
}

// StartDateHasSuffix applies the HasSuffix predicate on the "start_date" field.
func StartDateHasSuffix(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldHasSuffix(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldNotNull(FieldStartDate))
}

// StartDateEqualFold applies the EqualFold predicate on the "start_date" field.
func StartDateEqualFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldEqualFold(FieldStartDate, v))
}

// StartDateContainsFold applies the ContainsFold predicate on the "start_date" field.
func StartDateContainsFold(v string) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.FieldContainsFold(FieldStartDate, v))
}

// HasDistributor applies the HasEdge predicate on the "distributor" edge.
func HasDistributor() predicate.DistributorBranch {
	return predicate.DistributorBranch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DistributorTable, DistributorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDistributorWith applies the HasEdge predicate on the "distributor" edge with a given conditions (other predicates).
func HasDistributorWith(preds ...predicate.Distributor) predicate.DistributorBranch {
	return predicate.DistributorBranch(func(s *sql.Selector) {
		step := newDistributorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DistributorBranch) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DistributorBranch) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DistributorBranch) predicate.DistributorBranch {
	return predicate.DistributorBranch(sql.NotPredicates(p))
}
