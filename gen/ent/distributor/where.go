// Code generated by ent, DO NOT EDIT.

package distributor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldRequestID, v))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldBusinessName, v))
}

// OwnerName applies equality check predicate on the "owner_name" field. It's identical to OwnerNameEQ.
func OwnerName(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldOwnerName, v))
}

// Nit applies equality check predicate on the "nit" field. It's identical to NitEQ.
func Nit(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldNit, v))
}

// Dpi applies equality check predicate on the "dpi" field. It's identical to DpiEQ.
func Dpi(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldDpi, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldAddress, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldDepartment, v))
}

// Municipality applies equality check predicate on the "municipality" field. It's identical to MunicipalityEQ.
func Municipality(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldMunicipality, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldBankName, v))
}

// BankAccount applies equality check predicate on the "bank_account" field. It's identical to BankAccountEQ.
func BankAccount(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldBankAccount, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldRequestID, vs...))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldBusinessName, v))
}

// OwnerNameEQ applies the EQ predicate on the "owner_name" field.
func OwnerNameEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldOwnerName, v))
}

// OwnerNameNEQ applies the NEQ predicate on the "owner_name" field.
func OwnerNameNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldOwnerName, v))
}

// OwnerNameIn applies the In predicate on the "owner_name" field.
func OwnerNameIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldOwnerName, vs...))
}

// OwnerNameNotIn applies the NotIn predicate on the "owner_name" field.
func OwnerNameNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldOwnerName, vs...))
}

// OwnerNameGT applies the GT predicate on the "owner_name" field.
func OwnerNameGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldOwnerName, v))
}

// OwnerNameGTE applies the GTE predicate on the "owner_name" field.
func OwnerNameGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldOwnerName, v))
}

// OwnerNameLT applies the LT predicate on the "owner_name" field.
func OwnerNameLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldOwnerName, v))
}

// OwnerNameLTE applies the LTE predicate on the "owner_name" field.
func OwnerNameLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldOwnerName, v))
}

// OwnerNameContains applies the Contains predicate on the "owner_name" field.
func OwnerNameContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldOwnerName, v))
}

// OwnerNameHasPrefix applies the HasPrefix predicate on the "owner_name" field.
func OwnerNameHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldOwnerName, v))
}

// OwnerNameHasSuffix applies the HasSuffix predicate on the "owner_name" field.
func OwnerNameHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldOwnerName, v))
}

// OwnerNameIsNil applies the IsNil predicate on the "owner_name" field.
func OwnerNameIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldOwnerName))
}

// OwnerNameNotNil applies the NotNil predicate on the "owner_name" field.
func OwnerNameNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldOwnerName))
}

// OwnerNameEqualFold applies the EqualFold predicate on the "owner_name" field.
func OwnerNameEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldOwnerName, v))
}

// OwnerNameContainsFold applies the ContainsFold predicate on the "owner_name" field.
func OwnerNameContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldOwnerName, v))
}

// NitEQ applies the EQ predicate on the "nit" field.
func NitEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldNit, v))
}

// NitNEQ applies the NEQ predicate on the "nit" field.
func NitNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldNit, v))
}

// NitIn applies the In predicate on the "nit" field.
func NitIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldNit, vs...))
}

// NitNotIn applies the NotIn predicate on the "nit" field.
func NitNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldNit, vs...))
}

// NitGT applies the GT predicate on the "nit" field.
func NitGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldNit, v))
}

// NitGTE applies the GTE predicate on the "nit" field.
func NitGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldNit, v))
}

// NitLT applies the LT predicate on the "nit" field.
func NitLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldNit, v))
}

// NitLTE applies the LTE predicate on the "nit" field.
func NitLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldNit, v))
}

// NitContains applies the Contains predicate on the "nit" field.
func NitContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldNit, v))
}

// NitHasPrefix applies the HasPrefix predicate on the "nit" field.
func NitHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldNit, v))
}

// NitHasSuffix applies the HasSuffix predicate on the "nit" field.
func NitHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldNit, v))
}

// NitIsNil applies the IsNil predicate on the "nit" field.
func NitIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldNit))
}

// NitNotNil applies the NotNil predicate on the "nit" field.
func NitNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldNit))
}

// NitEqualFold applies the EqualFold predicate on the "nit" field.
func NitEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldNit, v))
}

// NitContainsFold applies the ContainsFold predicate on the "nit" field.
func NitContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldNit, v))
}

// DpiEQ applies the EQ predicate on the "dpi" field.
func DpiEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldDpi, v))
}

// DpiNEQ applies the NEQ predicate on the "dpi" field.
func DpiNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldDpi, v))
}

// DpiIn applies the In predicate on the "dpi" field.
func DpiIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldDpi, vs...))
}

// DpiNotIn applies the NotIn predicate on the "dpi" field.
func DpiNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldDpi, vs...))
}

// DpiGT applies the GT predicate on the "dpi" field.
func DpiGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldDpi, v))
}

// DpiGTE applies the GTE predicate on the "dpi" field.
func DpiGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldDpi, v))
}

// DpiLT applies the LT predicate on the "dpi" field.
func DpiLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldDpi, v))
}

// DpiLTE applies the LTE predicate on the "dpi" field.
func DpiLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldDpi, v))
}

// DpiContains applies the Contains predicate on the "dpi" field.
func DpiContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldDpi, v))
}

// DpiHasPrefix applies the HasPrefix predicate on the "dpi" field.
func DpiHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldDpi, v))
}

// DpiHasSuffix applies the HasSuffix predicate on the "dpi" field.
func DpiHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldDpi, v))
}

// DpiIsNil applies the IsNil predicate on the "dpi" field.
func DpiIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldDpi))
}

// DpiNotNil applies the NotNil predicate on the "dpi" field.
func DpiNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldDpi))
}

// DpiEqualFold applies the EqualFold predicate on the "dpi" field.
func DpiEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldDpi, v))
}

// DpiContainsFold applies the ContainsFold predicate on the "dpi" field.
func DpiContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldDpi, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldAddress, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldDepartment, v))
}

// MunicipalityEQ applies the EQ predicate on the "municipality" field.
func MunicipalityEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldMunicipality, v))
}

// MunicipalityNEQ applies the NEQ predicate on the "municipality" field.
func MunicipalityNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldMunicipality, v))
}

// MunicipalityIn applies the In predicate on the "municipality" field.
func MunicipalityIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldMunicipality, vs...))
}

// MunicipalityNotIn applies the NotIn predicate on the "municipality" field.
func MunicipalityNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldMunicipality, vs...))
}

// MunicipalityGT applies the GT predicate on the "municipality" field.
func MunicipalityGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldMunicipality, v))
}

// MunicipalityGTE applies the GTE predicate on the "municipality" field.
func MunicipalityGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldMunicipality, v))
}

// MunicipalityLT applies the LT predicate on the "municipality" field.
func MunicipalityLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldMunicipality, v))
}

// MunicipalityLTE applies the LTE predicate on the "municipality" field.
func MunicipalityLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldMunicipality, v))
}

// MunicipalityContains applies the Contains predicate on the "municipality" field.
func MunicipalityContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldMunicipality, v))
}

// MunicipalityHasPrefix applies the HasPrefix predicate on the "municipality" field.
func MunicipalityHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldMunicipality, v))
}

// MunicipalityHasSuffix applies the HasSuffix predicate on the "municipality" field.
func MunicipalityHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldMunicipality, v))
}

// MunicipalityIsNil applies the IsNil predicate on the "municipality" field.
func MunicipalityIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldMunicipality))
}

// MunicipalityNotNil applies the NotNil predicate on the "municipality" field.
func MunicipalityNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldMunicipality))
}

// MunicipalityEqualFold applies the EqualFold predicate on the "municipality" field.
func MunicipalityEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldMunicipality, v))
}

// MunicipalityContainsFold applies the ContainsFold predicate on the "municipality" field.
func MunicipalityContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldMunicipality, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldBankName, v))
}

// BankAccountEQ applies the EQ predicate on the "bank_account" field.
func BankAccountEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldBankAccount, v))
}

// BankAccountNEQ applies the NEQ predicate on the "bank_account" field.
func BankAccountNEQ(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldBankAccount, v))
}

// BankAccountIn applies the In predicate on the "bank_account" field.
func BankAccountIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldBankAccount, vs...))
}

// BankAccountNotIn applies the NotIn predicate on the "bank_account" field.
func BankAccountNotIn(vs ...string) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldBankAccount, vs...))
}

// BankAccountGT applies the GT predicate on the "bank_account" field.
func BankAccountGT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldBankAccount, v))
}

// BankAccountGTE applies the GTE predicate on the "bank_account" field.
func BankAccountGTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldBankAccount, v))
}

// BankAccountLT applies the LT predicate on the "bank_account" field.
func BankAccountLT(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldBankAccount, v))
}

// BankAccountLTE applies the LTE predicate on the "bank_account" field.
func BankAccountLTE(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldBankAccount, v))
}

// BankAccountContains applies the Contains predicate on the "bank_account" field.
func BankAccountContains(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContains(FieldBankAccount, v))
}

// BankAccountHasPrefix applies the HasPrefix predicate on the "bank_account" field.
func BankAccountHasPrefix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasPrefix(FieldBankAccount, v))
}

// BankAccountHasSuffix applies the HasSuffix predicate on the "bank_account" field.
func BankAccountHasSuffix(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldHasSuffix(FieldBankAccount, v))
}

// BankAccountIsNil applies the IsNil predicate on the "bank_account" field.
func BankAccountIsNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldIsNull(FieldBankAccount))
}

// BankAccountNotNil applies the NotNil predicate on the "bank_account" field.
func BankAccountNotNil() predicate.Distributor {
	return predicate.Distributor(sql.FieldNotNull(FieldBankAccount))
}

// BankAccountEqualFold applies the EqualFold predicate on the "bank_account" field.
func BankAccountEqualFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldEqualFold(FieldBankAccount, v))
}

// BankAccountContainsFold applies the ContainsFold predicate on the "bank_account" field.
func BankAccountContainsFold(v string) predicate.Distributor {
	return predicate.Distributor(sql.FieldContainsFold(FieldBankAccount, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Distributor {
	return predicate.Distributor(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.DistributorDocument) predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBranches applies the HasEdge predicate on the "branches" edge.
func HasBranches() predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BranchesTable, BranchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchesWith applies the HasEdge predicate on the "branches" edge with a given conditions (other predicates).
func HasBranchesWith(preds ...predicate.DistributorBranch) predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := newBranchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReferences applies the HasEdge predicate on the "references" edge.
func HasReferences() predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReferencesTable, ReferencesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReferencesWith applies the HasEdge predicate on the "references" edge with a given conditions (other predicates).
func HasReferencesWith(preds ...predicate.DistributorReference) predicate.Distributor {
	return predicate.Distributor(func(s *sql.Selector) {
		step := newReferencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Distributor) predicate.Distributor {
	return predicate.Distributor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Distributor) predicate.Distributor {
	return predicate.Distributor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Distributor) predicate.Distributor {
	return predicate.Distributor(sql.NotPredicates(p))
}
