// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldState, v))
}

// AssignedReviewer applies equality check predicate on the "assigned_reviewer" field. It's identical to AssignedReviewerEQ.
func AssignedReviewer(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAssignedReviewer, v))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBusinessName, v))
}

// OwnerName applies equality check predicate on the "owner_name" field. It's identical to OwnerNameEQ.
func OwnerName(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOwnerName, v))
}

// Nit applies equality check predicate on the "nit" field. It's identical to NitEQ.
func Nit(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldNit, v))
}

// Dpi applies equality check predicate on the "dpi" field. It's identical to DpiEQ.
func Dpi(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDpi, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAddress, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDepartment, v))
}

// Municipality applies equality check predicate on the "municipality" field. It's identical to MunicipalityEQ.
func Municipality(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldMunicipality, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBankName, v))
}

// BankAccount applies equality check predicate on the "bank_account" field. It's identical to BankAccountEQ.
func BankAccount(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBankAccount, v))
}

// MatchScore applies equality check predicate on the "match_score" field. It's identical to MatchScoreEQ.
func MatchScore(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldMatchScore, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldState, v))
}

// AssignedReviewerEQ applies the EQ predicate on the "assigned_reviewer" field.
func AssignedReviewerEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAssignedReviewer, v))
}

// AssignedReviewerNEQ applies the NEQ predicate on the "assigned_reviewer" field.
func AssignedReviewerNEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldAssignedReviewer, v))
}

// AssignedReviewerIn applies the In predicate on the "assigned_reviewer" field.
func AssignedReviewerIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldAssignedReviewer, vs...))
}

// AssignedReviewerNotIn applies the NotIn predicate on the "assigned_reviewer" field.
func AssignedReviewerNotIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldAssignedReviewer, vs...))
}

// AssignedReviewerGT applies the GT predicate on the "assigned_reviewer" field.
func AssignedReviewerGT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldAssignedReviewer, v))
}

// AssignedReviewerGTE applies the GTE predicate on the "assigned_reviewer" field.
func AssignedReviewerGTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldAssignedReviewer, v))
}

// AssignedReviewerLT applies the LT predicate on the "assigned_reviewer" field.
func AssignedReviewerLT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldAssignedReviewer, v))
}

// AssignedReviewerLTE applies the LTE predicate on the "assigned_reviewer" field.
func AssignedReviewerLTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldAssignedReviewer, v))
}

// AssignedReviewerIsNil applies the IsNil predicate on the "assigned_reviewer" field.
func AssignedReviewerIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldAssignedReviewer))
}

// AssignedReviewerNotNil applies the NotNil predicate on the "assigned_reviewer" field.
func AssignedReviewerNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldAssignedReviewer))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldBusinessName, v))
}

// OwnerNameEQ applies the EQ predicate on the "owner_name" field.
func OwnerNameEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOwnerName, v))
}

// OwnerNameNEQ applies the NEQ predicate on the "owner_name" field.
func OwnerNameNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldOwnerName, v))
}

// OwnerNameIn applies the In predicate on the "owner_name" field.
func OwnerNameIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldOwnerName, vs...))
}

// OwnerNameNotIn applies the NotIn predicate on the "owner_name" field.
func OwnerNameNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldOwnerName, vs...))
}

// OwnerNameGT applies the GT predicate on the "owner_name" field.
func OwnerNameGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldOwnerName, v))
}

// OwnerNameGTE applies the GTE predicate on the "owner_name" field.
func OwnerNameGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldOwnerName, v))
}

// OwnerNameLT applies the LT predicate on the "owner_name" field.
func OwnerNameLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldOwnerName, v))
}

// OwnerNameLTE applies the LTE predicate on the "owner_name" field.
func OwnerNameLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldOwnerName, v))
}

// OwnerNameContains applies the Contains predicate on the "owner_name" field.
func OwnerNameContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldOwnerName, v))
}

// OwnerNameHasPrefix applies the HasPrefix predicate on the "owner_name" field.
func OwnerNameHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldOwnerName, v))
}

// OwnerNameHasSuffix applies the HasSuffix predicate on the "owner_name" field.
func OwnerNameHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldOwnerName, v))
}

// OwnerNameIsNil applies the IsNil predicate on the "owner_name" field.
func OwnerNameIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldOwnerName))
}

// OwnerNameNotNil applies the NotNil predicate on the "owner_name" field.
func OwnerNameNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldOwnerName))
}

// OwnerNameEqualFold applies the EqualFold predicate on the "owner_name" field.
func OwnerNameEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldOwnerName, v))
}

// OwnerNameContainsFold applies the ContainsFold predicate on the "owner_name" field.
func OwnerNameContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldOwnerName, v))
}

// NitEQ applies the EQ predicate on the "nit" field.
func NitEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldNit, v))
}

// NitNEQ applies the NEQ predicate on the "nit" field.
func NitNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldNit, v))
}

// NitIn applies the In predicate on the "nit" field.
func NitIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldNit, vs...))
}

// NitNotIn applies the NotIn predicate on the "nit" field.
func NitNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldNit, vs...))
}

// NitGT applies the GT predicate on the "nit" field.
func NitGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldNit, v))
}

// NitGTE applies the GTE predicate on the "nit" field.
func NitGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldNit, v))
}

// NitLT applies the LT predicate on the "nit" field.
func NitLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldNit, v))
}

// NitLTE applies the LTE predicate on the "nit" field.
func NitLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldNit, v))
}

// NitContains applies the Contains predicate on the "nit" field.
func NitContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldNit, v))
}

// NitHasPrefix applies the HasPrefix predicate on the "nit" field.
func NitHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldNit, v))
}

// NitHasSuffix applies the HasSuffix predicate on the "nit" field.
func NitHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldNit, v))
}

// NitIsNil applies the IsNil predicate on the "nit" field.
func NitIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldNit))
}

// NitNotNil applies the NotNil predicate on the "nit" field.
func NitNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldNit))
}

// NitEqualFold applies the EqualFold predicate on the "nit" field.
func NitEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldNit, v))
}

// NitContainsFold applies the ContainsFold predicate on the "nit" field.
func NitContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldNit, v))
}

// DpiEQ applies the EQ predicate on the "dpi" field.
func DpiEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDpi, v))
}

// DpiNEQ applies the NEQ predicate on the "dpi" field.
func DpiNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDpi, v))
}

// DpiIn applies the In predicate on the "dpi" field.
func DpiIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDpi, vs...))
}

// DpiNotIn applies the NotIn predicate on the "dpi" field.
func DpiNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDpi, vs...))
}

// DpiGT applies the GT predicate on the "dpi" field.
func DpiGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDpi, v))
}

// DpiGTE applies the GTE predicate on the "dpi" field.
func DpiGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDpi, v))
}

// DpiLT applies the LT predicate on the "dpi" field.
func DpiLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDpi, v))
}

// DpiLTE applies the LTE predicate on the "dpi" field.
func DpiLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDpi, v))
}

// DpiContains applies the Contains predicate on the "dpi" field.
func DpiContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldDpi, v))
}

// DpiHasPrefix applies the HasPrefix predicate on the "dpi" field.
func DpiHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldDpi, v))
}

// DpiHasSuffix applies the HasSuffix predicate on the "dpi" field.
func DpiHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldDpi, v))
}

// DpiIsNil applies the IsNil predicate on the "dpi" field.
func DpiIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldDpi))
}

// DpiNotNil applies the NotNil predicate on the "dpi" field.
func DpiNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldDpi))
}

// DpiEqualFold applies the EqualFold predicate on the "dpi" field.
func DpiEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldDpi, v))
}

// DpiContainsFold applies the ContainsFold predicate on the "dpi" field.
func DpiContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldDpi, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldAddress, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldDepartment, v))
}

// MunicipalityEQ applies the EQ predicate on the "municipality" field.
func MunicipalityEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldMunicipality, v))
}

// MunicipalityNEQ applies the NEQ predicate on the "municipality" field.
func MunicipalityNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldMunicipality, v))
}

// MunicipalityIn applies the In predicate on the "municipality" field.
func MunicipalityIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldMunicipality, vs...))
}

// MunicipalityNotIn applies the NotIn predicate on the "municipality" field.
func MunicipalityNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldMunicipality, vs...))
}

// MunicipalityGT applies the GT predicate on the "municipality" field.
func MunicipalityGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldMunicipality, v))
}

// MunicipalityGTE applies the GTE predicate on the "municipality" field.
func MunicipalityGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldMunicipality, v))
}

// MunicipalityLT applies the LT predicate on the "municipality" field.
func MunicipalityLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldMunicipality, v))
}

// MunicipalityLTE applies the LTE predicate on the "municipality" field.
func MunicipalityLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldMunicipality, v))
}

// MunicipalityContains applies the Contains predicate on the "municipality" field.
func MunicipalityContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldMunicipality, v))
}

// MunicipalityHasPrefix applies the HasPrefix predicate on the "municipality" field.
func MunicipalityHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldMunicipality, v))
}

// MunicipalityHasSuffix applies the HasSuffix predicate on the "municipality" field.
func MunicipalityHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldMunicipality, v))
}

// MunicipalityIsNil applies the IsNil predicate on the "municipality" field.
func MunicipalityIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldMunicipality))
}

// MunicipalityNotNil applies the NotNil predicate on the "municipality" field.
func MunicipalityNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldMunicipality))
}

// MunicipalityEqualFold applies the EqualFold predicate on the "municipality" field.
func MunicipalityEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldMunicipality, v))
}

// MunicipalityContainsFold applies the ContainsFold predicate on the "municipality" field.
func MunicipalityContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldMunicipality, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldBankName, v))
}

// BankAccountEQ applies the EQ predicate on the "bank_account" field.
func BankAccountEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBankAccount, v))
}

// BankAccountNEQ applies the NEQ predicate on the "bank_account" field.
func BankAccountNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldBankAccount, v))
}

// BankAccountIn applies the In predicate on the "bank_account" field.
func BankAccountIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldBankAccount, vs...))
}

// BankAccountNotIn applies the NotIn predicate on the "bank_account" field.
func BankAccountNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldBankAccount, vs...))
}

// BankAccountGT applies the GT predicate on the "bank_account" field.
func BankAccountGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldBankAccount, v))
}

// BankAccountGTE applies the GTE predicate on the "bank_account" field.
func BankAccountGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldBankAccount, v))
}

// BankAccountLT applies the LT predicate on the "bank_account" field.
func BankAccountLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldBankAccount, v))
}

// BankAccountLTE applies the LTE predicate on the "bank_account" field.
func BankAccountLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldBankAccount, v))
}

// BankAccountContains applies the Contains predicate on the "bank_account" field.
func BankAccountContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldBankAccount, v))
}

// BankAccountHasPrefix applies the HasPrefix predicate on the "bank_account" field.
func BankAccountHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldBankAccount, v))
}

// BankAccountHasSuffix applies the HasSuffix predicate on the "bank_account" field.
func BankAccountHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldBankAccount, v))
}

// BankAccountIsNil applies the IsNil predicate on the "bank_account" field.
func BankAccountIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldBankAccount))
}

// BankAccountNotNil applies the NotNil predicate on the "bank_account" field.
func BankAccountNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldBankAccount))
}

// BankAccountEqualFold applies the EqualFold predicate on the "bank_account" field.
func BankAccountEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldBankAccount, v))
}

// BankAccountContainsFold applies the ContainsFold predicate on the "bank_account" field.
func BankAccountContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldBankAccount, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldExtractedData))
}

// MatchScoreEQ applies the EQ predicate on the "match_score" field.
func MatchScoreEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldMatchScore, v))
}

// MatchScoreNEQ applies the NEQ predicate on the "match_score" field.
func MatchScoreNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldMatchScore, v))
}

// MatchScoreIn applies the In predicate on the "match_score" field.
func MatchScoreIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldMatchScore, vs...))
}

// MatchScoreNotIn applies the NotIn predicate on the "match_score" field.
func MatchScoreNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldMatchScore, vs...))
}

// MatchScoreGT applies the GT predicate on the "match_score" field.
func MatchScoreGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldMatchScore, v))
}

// MatchScoreGTE applies the GTE predicate on the "match_score" field.
func MatchScoreGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldMatchScore, v))
}

// MatchScoreLT applies the LT predicate on the "match_score" field.
func MatchScoreLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldMatchScore, v))
}

// MatchScoreLTE applies the LTE predicate on the "match_score" field.
func MatchScoreLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldMatchScore, v))
}

// MatchScoreIsNil applies the IsNil predicate on the "match_score" field.
func MatchScoreIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldMatchScore))
}

// MatchScoreNotNil applies the NotNil predicate on the "match_score" field.
func MatchScoreNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldMatchScore))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.RequestDocument) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBranches applies the HasEdge predicate on the "branches" edge.
func HasBranches() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BranchesTable, BranchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchesWith applies the HasEdge predicate on the "branches" edge with a given conditions (other predicates).
func HasBranchesWith(preds ...predicate.RequestBranch) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newBranchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReferences applies the HasEdge predicate on the "references" edge.
func HasReferences() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReferencesTable, ReferencesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReferencesWith applies the HasEdge predicate on the "references" edge with a given conditions (other predicates).
func HasReferencesWith(preds ...predicate.RequestReference) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newReferencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRevisions applies the HasEdge predicate on the "revisions" edge.
func HasRevisions() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RevisionsTable, RevisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRevisionsWith applies the HasEdge predicate on the "revisions" edge with a given conditions (other predicates).
func HasRevisionsWith(preds ...predicate.RequestRevision) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newRevisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTracking applies the HasEdge predicate on the "tracking" edge.
func HasTracking() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrackingTable, TrackingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrackingWith applies the HasEdge predicate on the "tracking" edge with a given conditions (other predicates).
func HasTrackingWith(preds ...predicate.TrackingEntry) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newTrackingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDistributor applies the HasEdge predicate on the "distributor" edge.
func HasDistributor() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DistributorTable, DistributorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDistributorWith applies the HasEdge predicate on the "distributor" edge with a given conditions (other predicates).
func HasDistributorWith(preds ...predicate.Distributor) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newDistributorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}
