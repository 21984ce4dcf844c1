// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDistributor          = "Distributor"
	TypeDistributorBranch    = "DistributorBranch"
	TypeDistributorDocument  = "DistributorDocument"
	TypeDistributorReference = "DistributorReference"
	TypeRequest              = "Request"
	TypeRequestBranch        = "RequestBranch"
	TypeRequestDocument      = "RequestDocument"
	TypeRequestReference     = "RequestReference"
	TypeRequestRevision      = "RequestRevision"
	TypeTrackingEntry        = "TrackingEntry"
)

// DistributorMutation represents an operation that mutates the Distributor nodes in the graph.
type DistributorMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	business_name     *string
	owner_name        *string
	nit               *string
	dpi               *string
	email             *string
	phone             *string
	address           *string
	department        *string
	municipality      *string
	bank_name         *string
	bank_account      *string
	deleted           *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	request           *uuid.UUID
	clearedrequest    bool
	documents         map[uuid.UUID]struct{}
	removeddocuments  map[uuid.UUID]struct{}
	cleareddocuments  bool
	branches          map[uuid.UUID]struct{}
	removedbranches   map[uuid.UUID]struct{}
	clearedbranches   bool
	references        map[uuid.UUID]struct{}
	removedreferences map[uuid.UUID]struct{}
	clearedreferences bool
	done              bool
	oldValue          func(context.Context) (*Distributor, error)
	predicates        []predicate.Distributor
}

var _ ent.Mutation = (*DistributorMutation)(nil)

// distributorOption allows management of the mutation configuration using functional options.
type distributorOption func(*DistributorMutation)

// newDistributorMutation creates new mutation for the Distributor entity.
func newDistributorMutation(c config, op Op, opts ...distributorOption) *DistributorMutation {
	m := &DistributorMutation{
		config:        c,
		op:            op,
		typ:           TypeDistributor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDistributorID sets the ID field of the mutation.
func withDistributorID(id uuid.UUID) distributorOption {
	return func(m *DistributorMutation) {
		var (
			err   error
			once  sync.Once
			value *Distributor
		)
		m.oldValue = func(ctx context.Context) (*Distributor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Distributor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDistributor sets the old Distributor of the mutation.
func withDistributor(node *Distributor) distributorOption {
	return func(m *DistributorMutation) {
		m.oldValue = func(context.Context) (*Distributor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DistributorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DistributorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Distributor entities.
func (m *DistributorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DistributorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DistributorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Distributor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *DistributorMutation) SetRequestID(u uuid.UUID) {
	m.request = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *DistributorMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *DistributorMutation) ResetRequestID() {
	m.request = nil
}

// SetBusinessName sets the "business_name" field.
func (m *DistributorMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *DistributorMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *DistributorMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetOwnerName sets the "owner_name" field.
func (m *DistributorMutation) SetOwnerName(s string) {
	m.owner_name = &s
}

// OwnerName returns the value of the "owner_name" field in the mutation.
func (m *DistributorMutation) OwnerName() (r string, exists bool) {
	v := m.owner_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerName returns the old "owner_name" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldOwnerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerName: %w", err)
	}
	return oldValue.OwnerName, nil
}

// ClearOwnerName clears the value of the "owner_name" field.
func (m *DistributorMutation) ClearOwnerName() {
	m.owner_name = nil
	m.clearedFields[distributor.FieldOwnerName] = struct{}{}
}

// OwnerNameCleared returns if the "owner_name" field was cleared in this mutation.
func (m *DistributorMutation) OwnerNameCleared() bool {
	_, ok := m.clearedFields[distributor.FieldOwnerName]
	return ok
}

// ResetOwnerName resets all changes to the "owner_name" field.
func (m *DistributorMutation) ResetOwnerName() {
	m.owner_name = nil
	delete(m.clearedFields, distributor.FieldOwnerName)
}

// SetNit sets the "nit" field.
func (m *DistributorMutation) SetNit(s string) {
	m.nit = &s
}

// Nit returns the value of the "nit" field in the mutation.
func (m *DistributorMutation) Nit() (r string, exists bool) {
	v := m.nit
	if v == nil {
		return
	}
	return *v, true
}

// OldNit returns the old "nit" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldNit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNit: %w", err)
	}
	return oldValue.Nit, nil
}

// ClearNit clears the value of the "nit" field.
func (m *DistributorMutation) ClearNit() {
	m.nit = nil
	m.clearedFields[distributor.FieldNit] = struct{}{}
}

// NitCleared returns if the "nit" field was cleared in this mutation.
func (m *DistributorMutation) NitCleared() bool {
	_, ok := m.clearedFields[distributor.FieldNit]
	return ok
}

// ResetNit resets all changes to the "nit" field.
func (m *DistributorMutation) ResetNit() {
	m.nit = nil
	delete(m.clearedFields, distributor.FieldNit)
}

// SetDpi sets the "dpi" field.
func (m *DistributorMutation) SetDpi(s string) {
	m.dpi = &s
}

// Dpi returns the value of the "dpi" field in the mutation.
func (m *DistributorMutation) Dpi() (r string, exists bool) {
	v := m.dpi
	if v == nil {
		return
	}
	return *v, true
}

// OldDpi returns the old "dpi" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldDpi(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDpi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDpi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDpi: %w", err)
	}
	return oldValue.Dpi, nil
}

// ClearDpi clears the value of the "dpi" field.
func (m *DistributorMutation) ClearDpi() {
	m.dpi = nil
	m.clearedFields[distributor.FieldDpi] = struct{}{}
}

// DpiCleared returns if the "dpi" field was cleared in this mutation.
func (m *DistributorMutation) DpiCleared() bool {
	_, ok := m.clearedFields[distributor.FieldDpi]
	return ok
}

// ResetDpi resets all changes to the "dpi" field.
func (m *DistributorMutation) ResetDpi() {
	m.dpi = nil
	delete(m.clearedFields, distributor.FieldDpi)
}

// SetEmail sets the "email" field.
func (m *DistributorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *DistributorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *DistributorMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[distributor.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *DistributorMutation) EmailCleared() bool {
	_, ok := m.clearedFields[distributor.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *DistributorMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, distributor.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *DistributorMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *DistributorMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *DistributorMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[distributor.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *DistributorMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[distributor.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *DistributorMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, distributor.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *DistributorMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *DistributorMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *DistributorMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[distributor.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *DistributorMutation) AddressCleared() bool {
	_, ok := m.clearedFields[distributor.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *DistributorMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, distributor.FieldAddress)
}

// SetDepartment sets the "department" field.
func (m *DistributorMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *DistributorMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *DistributorMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[distributor.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *DistributorMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[distributor.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *DistributorMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, distributor.FieldDepartment)
}

// SetMunicipality sets the "municipality" field.
func (m *DistributorMutation) SetMunicipality(s string) {
	m.municipality = &s
}

// Municipality returns the value of the "municipality" field in the mutation.
func (m *DistributorMutation) Municipality() (r string, exists bool) {
	v := m.municipality
	if v == nil {
		return
	}
	return *v, true
}

// OldMunicipality returns the old "municipality" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldMunicipality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMunicipality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMunicipality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMunicipality: %w", err)
	}
	return oldValue.Municipality, nil
}

// ClearMunicipality clears the value of the "municipality" field.
func (m *DistributorMutation) ClearMunicipality() {
	m.municipality = nil
	m.clearedFields[distributor.FieldMunicipality] = struct{}{}
}

// MunicipalityCleared returns if the "municipality" field was cleared in this mutation.
func (m *DistributorMutation) MunicipalityCleared() bool {
	_, ok := m.clearedFields[distributor.FieldMunicipality]
	return ok
}

// ResetMunicipality resets all changes to the "municipality" field.
func (m *DistributorMutation) ResetMunicipality() {
	m.municipality = nil
	delete(m.clearedFields, distributor.FieldMunicipality)
}

// SetBankName sets the "bank_name" field.
func (m *DistributorMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *DistributorMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldBankName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ClearBankName clears the value of the "bank_name" field.
func (m *DistributorMutation) ClearBankName() {
	m.bank_name = nil
	m.clearedFields[distributor.FieldBankName] = struct{}{}
}

// BankNameCleared returns if the "bank_name" field was cleared in this mutation.
func (m *DistributorMutation) BankNameCleared() bool {
	_, ok := m.clearedFields[distributor.FieldBankName]
	return ok
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *DistributorMutation) ResetBankName() {
	m.bank_name = nil
	delete(m.clearedFields, distributor.FieldBankName)
}

// SetBankAccount sets the "bank_account" field.
func (m *DistributorMutation) SetBankAccount(s string) {
	m.bank_account = &s
}

// BankAccount returns the value of the "bank_account" field in the mutation.
func (m *DistributorMutation) BankAccount() (r string, exists bool) {
	v := m.bank_account
	if v == nil {
		return
	}
	return *v, true
}

// OldBankAccount returns the old "bank_account" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldBankAccount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankAccount: %w", err)
	}
	return oldValue.BankAccount, nil
}

// ClearBankAccount clears the value of the "bank_account" field.
func (m *DistributorMutation) ClearBankAccount() {
	m.bank_account = nil
	m.clearedFields[distributor.FieldBankAccount] = struct{}{}
}

// BankAccountCleared returns if the "bank_account" field was cleared in this mutation.
func (m *DistributorMutation) BankAccountCleared() bool {
	_, ok := m.clearedFields[distributor.FieldBankAccount]
	return ok
}

// ResetBankAccount resets all changes to the "bank_account" field.
func (m *DistributorMutation) ResetBankAccount() {
	m.bank_account = nil
	delete(m.clearedFields, distributor.FieldBankAccount)
}

// SetDeleted sets the "deleted" field.
func (m *DistributorMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *DistributorMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *DistributorMutation) ResetDeleted() {
	m.deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DistributorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DistributorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Distributor entity.
// If the Distributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DistributorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *DistributorMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[distributor.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *DistributorMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *DistributorMutation) RequestIDs() (ids []uuid.UUID) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *DistributorMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// AddDocumentIDs adds the "documents" edge to the DistributorDocument entity by ids.
func (m *DistributorMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the DistributorDocument entity.
func (m *DistributorMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the DistributorDocument entity was cleared.
func (m *DistributorMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the DistributorDocument entity by IDs.
func (m *DistributorMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the DistributorDocument entity.
func (m *DistributorMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *DistributorMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *DistributorMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddBranchIDs adds the "branches" edge to the DistributorBranch entity by ids.
func (m *DistributorMutation) AddBranchIDs(ids ...uuid.UUID) {
	if m.branches == nil {
		m.branches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.branches[ids[i]] = struct{}{}
	}
}

// ClearBranches clears the "branches" edge to the DistributorBranch entity.
func (m *DistributorMutation) ClearBranches() {
	m.clearedbranches = true
}

// BranchesCleared reports if the "branches" edge to the DistributorBranch entity was cleared.
func (m *DistributorMutation) BranchesCleared() bool {
	return m.clearedbranches
}

// RemoveBranchIDs removes the "branches" edge to the DistributorBranch entity by IDs.
func (m *DistributorMutation) RemoveBranchIDs(ids ...uuid.UUID) {
	if m.removedbranches == nil {
		m.removedbranches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.branches, ids[i])
		m.removedbranches[ids[i]] = struct{}{}
	}
}

// RemovedBranches returns the removed IDs of the "branches" edge to the DistributorBranch entity.
func (m *DistributorMutation) RemovedBranchesIDs() (ids []uuid.UUID) {
	for id := range m.removedbranches {
		ids = append(ids, id)
	}
	return
}

// BranchesIDs returns the "branches" edge IDs in the mutation.
func (m *DistributorMutation) BranchesIDs() (ids []uuid.UUID) {
	for id := range m.branches {
		ids = append(ids, id)
	}
	return
}

// ResetBranches resets all changes to the "branches" edge.
func (m *DistributorMutation) ResetBranches() {
	m.branches = nil
	m.clearedbranches = false
	m.removedbranches = nil
}

// AddReferenceIDs adds the "references" edge to the DistributorReference entity by ids.
func (m *DistributorMutation) AddReferenceIDs(ids ...uuid.UUID) {
	if m.references == nil {
		m.references = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.references[ids[i]] = struct{}{}
	}
}

// ClearReferences clears the "references" edge to the DistributorReference entity.
func (m *DistributorMutation) ClearReferences() {
	m.clearedreferences = true
}

// ReferencesCleared reports if the "references" edge to the DistributorReference entity was cleared.
func (m *DistributorMutation) ReferencesCleared() bool {
	return m.clearedreferences
}

// RemoveReferenceIDs removes the "references" edge to the DistributorReference entity by IDs.
func (m *DistributorMutation) RemoveReferenceIDs(ids ...uuid.UUID) {
	if m.removedreferences == nil {
		m.removedreferences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.references, ids[i])
		m.removedreferences[ids[i]] = struct{}{}
	}
}

// RemovedReferences returns the removed IDs of the "references" edge to the DistributorReference entity.
func (m *DistributorMutation) RemovedReferencesIDs() (ids []uuid.UUID) {
	for id := range m.removedreferences {
		ids = append(ids, id)
	}
	return
}

// ReferencesIDs returns the "references" edge IDs in the mutation.
func (m *DistributorMutation) ReferencesIDs() (ids []uuid.UUID) {
	for id := range m.references {
		ids = append(ids, id)
	}
	return
}

// ResetReferences resets all changes to the "references" edge.
func (m *DistributorMutation) ResetReferences() {
	m.references = nil
	m.clearedreferences = false
	m.removedreferences = nil
}

// Where appends a list predicates to the DistributorMutation builder.
func (m *DistributorMutation) Where(ps ...predicate.Distributor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DistributorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DistributorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Distributor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DistributorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DistributorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Distributor).
func (m *DistributorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DistributorMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.request != nil {
		fields = append(fields, distributor.FieldRequestID)
	}
	if m.business_name != nil {
		fields = append(fields, distributor.FieldBusinessName)
	}
	if m.owner_name != nil {
		fields = append(fields, distributor.FieldOwnerName)
	}
	if m.nit != nil {
		fields = append(fields, distributor.FieldNit)
	}
	if m.dpi != nil {
		fields = append(fields, distributor.FieldDpi)
	}
	if m.email != nil {
		fields = append(fields, distributor.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, distributor.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, distributor.FieldAddress)
	}
	if m.department != nil {
		fields = append(fields, distributor.FieldDepartment)
	}
	if m.municipality != nil {
		fields = append(fields, distributor.FieldMunicipality)
	}
	if m.bank_name != nil {
		fields = append(fields, distributor.FieldBankName)
	}
	if m.bank_account != nil {
		fields = append(fields, distributor.FieldBankAccount)
	}
	if m.deleted != nil {
		fields = append(fields, distributor.FieldDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, distributor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DistributorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case distributor.FieldRequestID:
		return m.RequestID()
	case distributor.FieldBusinessName:
		return m.BusinessName()
	case distributor.FieldOwnerName:
		return m.OwnerName()
	case distributor.FieldNit:
		return m.Nit()
	case distributor.FieldDpi:
		return m.Dpi()
	case distributor.FieldEmail:
		return m.Email()
	case distributor.FieldPhone:
		return m.Phone()
	case distributor.FieldAddress:
		return m.Address()
	case distributor.FieldDepartment:
		return m.Department()
	case distributor.FieldMunicipality:
		return m.Municipality()
	case distributor.FieldBankName:
		return m.BankName()
	case distributor.FieldBankAccount:
		return m.BankAccount()
	case distributor.FieldDeleted:
		return m.Deleted()
	case distributor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DistributorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case distributor.FieldRequestID:
		return m.OldRequestID(ctx)
	case distributor.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case distributor.FieldOwnerName:
		return m.OldOwnerName(ctx)
	case distributor.FieldNit:
		return m.OldNit(ctx)
	case distributor.FieldDpi:
		return m.OldDpi(ctx)
	case distributor.FieldEmail:
		return m.OldEmail(ctx)
	case distributor.FieldPhone:
		return m.OldPhone(ctx)
	case distributor.FieldAddress:
		return m.OldAddress(ctx)
	case distributor.FieldDepartment:
		return m.OldDepartment(ctx)
	case distributor.FieldMunicipality:
		return m.OldMunicipality(ctx)
	case distributor.FieldBankName:
		return m.OldBankName(ctx)
	case distributor.FieldBankAccount:
		return m.OldBankAccount(ctx)
	case distributor.FieldDeleted:
		return m.OldDeleted(ctx)
	case distributor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Distributor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case distributor.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case distributor.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case distributor.FieldOwnerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerName(v)
		return nil
	case distributor.FieldNit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNit(v)
		return nil
	case distributor.FieldDpi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDpi(v)
		return nil
	case distributor.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case distributor.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case distributor.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case distributor.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case distributor.FieldMunicipality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMunicipality(v)
		return nil
	case distributor.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case distributor.FieldBankAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankAccount(v)
		return nil
	case distributor.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case distributor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Distributor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DistributorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DistributorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Distributor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DistributorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(distributor.FieldOwnerName) {
		fields = append(fields, distributor.FieldOwnerName)
	}
	if m.FieldCleared(distributor.FieldNit) {
		fields = append(fields, distributor.FieldNit)
	}
	if m.FieldCleared(distributor.FieldDpi) {
		fields = append(fields, distributor.FieldDpi)
	}
	if m.FieldCleared(distributor.FieldEmail) {
		fields = append(fields, distributor.FieldEmail)
	}
	if m.FieldCleared(distributor.FieldPhone) {
		fields = append(fields, distributor.FieldPhone)
	}
	if m.FieldCleared(distributor.FieldAddress) {
		fields = append(fields, distributor.FieldAddress)
	}
	if m.FieldCleared(distributor.FieldDepartment) {
		fields = append(fields, distributor.FieldDepartment)
	}
	if m.FieldCleared(distributor.FieldMunicipality) {
		fields = append(fields, distributor.FieldMunicipality)
	}
	if m.FieldCleared(distributor.FieldBankName) {
		fields = append(fields, distributor.FieldBankName)
	}
	if m.FieldCleared(distributor.FieldBankAccount) {
		fields = append(fields, distributor.FieldBankAccount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DistributorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DistributorMutation) ClearField(name string) error {
	switch name {
	case distributor.FieldOwnerName:
		m.ClearOwnerName()
		return nil
	case distributor.FieldNit:
		m.ClearNit()
		return nil
	case distributor.FieldDpi:
		m.ClearDpi()
		return nil
	case distributor.FieldEmail:
		m.ClearEmail()
		return nil
	case distributor.FieldPhone:
		m.ClearPhone()
		return nil
	case distributor.FieldAddress:
		m.ClearAddress()
		return nil
	case distributor.FieldDepartment:
		m.ClearDepartment()
		return nil
	case distributor.FieldMunicipality:
		m.ClearMunicipality()
		return nil
	case distributor.FieldBankName:
		m.ClearBankName()
		return nil
	case distributor.FieldBankAccount:
		m.ClearBankAccount()
		return nil
	}
	return fmt.Errorf("unknown Distributor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DistributorMutation) ResetField(name string) error {
	switch name {
	case distributor.FieldRequestID:
		m.ResetRequestID()
		return nil
	case distributor.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case distributor.FieldOwnerName:
		m.ResetOwnerName()
		return nil
	case distributor.FieldNit:
		m.ResetNit()
		return nil
	case distributor.FieldDpi:
		m.ResetDpi()
		return nil
	case distributor.FieldEmail:
		m.ResetEmail()
		return nil
	case distributor.FieldPhone:
		m.ResetPhone()
		return nil
	case distributor.FieldAddress:
		m.ResetAddress()
		return nil
	case distributor.FieldDepartment:
		m.ResetDepartment()
		return nil
	case distributor.FieldMunicipality:
		m.ResetMunicipality()
		return nil
	case distributor.FieldBankName:
		m.ResetBankName()
		return nil
	case distributor.FieldBankAccount:
		m.ResetBankAccount()
		return nil
	case distributor.FieldDeleted:
		m.ResetDeleted()
		return nil
	case distributor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Distributor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DistributorMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.request != nil {
		edges = append(edges, distributor.EdgeRequest)
	}
	if m.documents != nil {
		edges = append(edges, distributor.EdgeDocuments)
	}
	if m.branches != nil {
		edges = append(edges, distributor.EdgeBranches)
	}
	if m.references != nil {
		edges = append(edges, distributor.EdgeReferences)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DistributorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case distributor.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	case distributor.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case distributor.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.branches))
		for id := range m.branches {
			ids = append(ids, id)
		}
		return ids
	case distributor.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.references))
		for id := range m.references {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DistributorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeddocuments != nil {
		edges = append(edges, distributor.EdgeDocuments)
	}
	if m.removedbranches != nil {
		edges = append(edges, distributor.EdgeBranches)
	}
	if m.removedreferences != nil {
		edges = append(edges, distributor.EdgeReferences)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DistributorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case distributor.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case distributor.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.removedbranches))
		for id := range m.removedbranches {
			ids = append(ids, id)
		}
		return ids
	case distributor.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.removedreferences))
		for id := range m.removedreferences {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DistributorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedrequest {
		edges = append(edges, distributor.EdgeRequest)
	}
	if m.cleareddocuments {
		edges = append(edges, distributor.EdgeDocuments)
	}
	if m.clearedbranches {
		edges = append(edges, distributor.EdgeBranches)
	}
	if m.clearedreferences {
		edges = append(edges, distributor.EdgeReferences)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DistributorMutation) EdgeCleared(name string) bool {
	switch name {
	case distributor.EdgeRequest:
		return m.clearedrequest
	case distributor.EdgeDocuments:
		return m.cleareddocuments
	case distributor.EdgeBranches:
		return m.clearedbranches
	case distributor.EdgeReferences:
		return m.clearedreferences
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DistributorMutation) ClearEdge(name string) error {
	switch name {
	case distributor.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown Distributor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DistributorMutation) ResetEdge(name string) error {
	switch name {
	case distributor.EdgeRequest:
		m.ResetRequest()
		return nil
	case distributor.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case distributor.EdgeBranches:
		m.ResetBranches()
		return nil
	case distributor.EdgeReferences:
		m.ResetReferences()
		return nil
	}
	return fmt.Errorf("unknown Distributor edge %s", name)
}

// DistributorBranchMutation represents an operation that mutates the DistributorBranch nodes in the graph.
type DistributorBranchMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	address            *string
	department         *string
	municipality       *string
	zone               *string
	status             *string
	start_date         *string
	clearedFields      map[string]struct{}
	distributor        *uuid.UUID
	cleareddistributor bool
	done               bool
	oldValue           func(context.Context) (*DistributorBranch, error)
	predicates         []predicate.DistributorBranch
}

var _ ent.Mutation = (*DistributorBranchMutation)(nil)

// distributorbranchOption allows management of the mutation configuration using functional options.
type distributorbranchOption func(*DistributorBranchMutation)

// newDistributorBranchMutation creates new mutation for the DistributorBranch entity.
func newDistributorBranchMutation(c config, op Op, opts ...distributorbranchOption) *DistributorBranchMutation {
	m := &DistributorBranchMutation{
		config:        c,
		op:            op,
		typ:           TypeDistributorBranch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDistributorBranchID sets the ID field of the mutation.
func withDistributorBranchID(id uuid.UUID) distributorbranchOption {
	return func(m *DistributorBranchMutation) {
		var (
			err   error
			once  sync.Once
			value *DistributorBranch
		)
		m.oldValue = func(ctx context.Context) (*DistributorBranch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DistributorBranch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDistributorBranch sets the old DistributorBranch of the mutation.
func withDistributorBranch(node *DistributorBranch) distributorbranchOption {
	return func(m *DistributorBranchMutation) {
		m.oldValue = func(context.Context) (*DistributorBranch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DistributorBranchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DistributorBranchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DistributorBranch entities.
func (m *DistributorBranchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DistributorBranchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DistributorBranchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DistributorBranch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDistributorID sets the "distributor_id" field.
func (m *DistributorBranchMutation) SetDistributorID(u uuid.UUID) {
	m.distributor = &u
}

// DistributorID returns the value of the "distributor_id" field in the mutation.
func (m *DistributorBranchMutation) DistributorID() (r uuid.UUID, exists bool) {
	v := m.distributor
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributorID returns the old "distributor_id" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldDistributorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributorID: %w", err)
	}
	return oldValue.DistributorID, nil
}

// ResetDistributorID resets all changes to the "distributor_id" field.
func (m *DistributorBranchMutation) ResetDistributorID() {
	m.distributor = nil
}

// SetName sets the "name" field.
func (m *DistributorBranchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DistributorBranchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DistributorBranchMutation) ResetName() {
	m.name = nil
}

// SetAddress sets the "address" field.
func (m *DistributorBranchMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *DistributorBranchMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *DistributorBranchMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[distributorbranch.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *DistributorBranchMutation) AddressCleared() bool {
	_, ok := m.clearedFields[distributorbranch.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *DistributorBranchMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, distributorbranch.FieldAddress)
}

// SetDepartment sets the "department" field.
func (m *DistributorBranchMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *DistributorBranchMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *DistributorBranchMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[distributorbranch.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *DistributorBranchMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[distributorbranch.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *DistributorBranchMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, distributorbranch.FieldDepartment)
}

// SetMunicipality sets the "municipality" field.
func (m *DistributorBranchMutation) SetMunicipality(s string) {
	m.municipality = &s
}

// Municipality returns the value of the "municipality" field in the mutation.
func (m *DistributorBranchMutation) Municipality() (r string, exists bool) {
	v := m.municipality
	if v == nil {
		return
	}
	return *v, true
}

// OldMunicipality returns the old "municipality" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldMunicipality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMunicipality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMunicipality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMunicipality: %w", err)
	}
	return oldValue.Municipality, nil
}

// ClearMunicipality clears the value of the "municipality" field.
func (m *DistributorBranchMutation) ClearMunicipality() {
	m.municipality = nil
	m.clearedFields[distributorbranch.FieldMunicipality] = struct{}{}
}

// MunicipalityCleared returns if the "municipality" field was cleared in this mutation.
func (m *DistributorBranchMutation) MunicipalityCleared() bool {
	_, ok := m.clearedFields[distributorbranch.FieldMunicipality]
	return ok
}

// ResetMunicipality resets all changes to the "municipality" field.
func (m *DistributorBranchMutation) ResetMunicipality() {
	m.municipality = nil
	delete(m.clearedFields, distributorbranch.FieldMunicipality)
}

// SetZone sets the "zone" field.
func (m *DistributorBranchMutation) SetZone(s string) {
	m.zone = &s
}

// Zone returns the value of the "zone" field in the mutation.
func (m *DistributorBranchMutation) Zone() (r string, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZone returns the old "zone" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldZone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZone: %w", err)
	}
	return oldValue.Zone, nil
}

// ClearZone clears the value of the "zone" field.
func (m *DistributorBranchMutation) ClearZone() {
	m.zone = nil
	m.clearedFields[distributorbranch.FieldZone] = struct{}{}
}

// ZoneCleared returns if the "zone" field was cleared in this mutation.
func (m *DistributorBranchMutation) ZoneCleared() bool {
	_, ok := m.clearedFields[distributorbranch.FieldZone]
	return ok
}

// ResetZone resets all changes to the "zone" field.
func (m *DistributorBranchMutation) ResetZone() {
	m.zone = nil
	delete(m.clearedFields, distributorbranch.FieldZone)
}

// SetStatus sets the "status" field.
func (m *DistributorBranchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DistributorBranchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *DistributorBranchMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[distributorbranch.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *DistributorBranchMutation) StatusCleared() bool {
	_, ok := m.clearedFields[distributorbranch.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *DistributorBranchMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, distributorbranch.FieldStatus)
}

// SetStartDate sets the "start_date" field.
func (m *DistributorBranchMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *DistributorBranchMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the DistributorBranch entity.
// If the DistributorBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorBranchMutation) OldStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *DistributorBranchMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[distributorbranch.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *DistributorBranchMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[distributorbranch.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *DistributorBranchMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, distributorbranch.FieldStartDate)
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (m *DistributorBranchMutation) ClearDistributor() {
	m.cleareddistributor = true
	m.clearedFields[distributorbranch.FieldDistributorID] = struct{}{}
}

// DistributorCleared reports if the "distributor" edge to the Distributor entity was cleared.
func (m *DistributorBranchMutation) DistributorCleared() bool {
	return m.cleareddistributor
}

// DistributorIDs returns the "distributor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DistributorID instead. It exists only for internal usage by the builders.
func (m *DistributorBranchMutation) DistributorIDs() (ids []uuid.UUID) {
	if id := m.distributor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDistributor resets all changes to the "distributor" edge.
func (m *DistributorBranchMutation) ResetDistributor() {
	m.distributor = nil
	m.cleareddistributor = false
}

// Where appends a list predicates to the DistributorBranchMutation builder.
func (m *DistributorBranchMutation) Where(ps ...predicate.DistributorBranch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DistributorBranchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DistributorBranchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DistributorBranch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DistributorBranchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DistributorBranchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DistributorBranch).
func (m *DistributorBranchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DistributorBranchMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.distributor != nil {
		fields = append(fields, distributorbranch.FieldDistributorID)
	}
	if m.name != nil {
		fields = append(fields, distributorbranch.FieldName)
	}
	if m.address != nil {
		fields = append(fields, distributorbranch.FieldAddress)
	}
	if m.department != nil {
		fields = append(fields, distributorbranch.FieldDepartment)
	}
	if m.municipality != nil {
		fields = append(fields, distributorbranch.FieldMunicipality)
	}
	if m.zone != nil {
		fields = append(fields, distributorbranch.FieldZone)
	}
	if m.status != nil {
		fields = append(fields, distributorbranch.FieldStatus)
	}
	if m.start_date != nil {
		fields = append(fields, distributorbranch.FieldStartDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DistributorBranchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case distributorbranch.FieldDistributorID:
		return m.DistributorID()
	case distributorbranch.FieldName:
		return m.Name()
	case distributorbranch.FieldAddress:
		return m.Address()
	case distributorbranch.FieldDepartment:
		return m.Department()
	case distributorbranch.FieldMunicipality:
		return m.Municipality()
	case distributorbranch.FieldZone:
		return m.Zone()
	case distributorbranch.FieldStatus:
		return m.Status()
	case distributorbranch.FieldStartDate:
		return m.StartDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DistributorBranchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case distributorbranch.FieldDistributorID:
		return m.OldDistributorID(ctx)
	case distributorbranch.FieldName:
		return m.OldName(ctx)
	case distributorbranch.FieldAddress:
		return m.OldAddress(ctx)
	case distributorbranch.FieldDepartment:
		return m.OldDepartment(ctx)
	case distributorbranch.FieldMunicipality:
		return m.OldMunicipality(ctx)
	case distributorbranch.FieldZone:
		return m.OldZone(ctx)
	case distributorbranch.FieldStatus:
		return m.OldStatus(ctx)
	case distributorbranch.FieldStartDate:
		return m.OldStartDate(ctx)
	}
	return nil, fmt.Errorf("unknown DistributorBranch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorBranchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case distributorbranch.FieldDistributorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributorID(v)
		return nil
	case distributorbranch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case distributorbranch.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case distributorbranch.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case distributorbranch.FieldMunicipality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMunicipality(v)
		return nil
	case distributorbranch.FieldZone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZone(v)
		return nil
	case distributorbranch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case distributorbranch.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	}
	return fmt.Errorf("unknown DistributorBranch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DistributorBranchMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DistributorBranchMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorBranchMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DistributorBranch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DistributorBranchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(distributorbranch.FieldAddress) {
		fields = append(fields, distributorbranch.FieldAddress)
	}
	if m.FieldCleared(distributorbranch.FieldDepartment) {
		fields = append(fields, distributorbranch.FieldDepartment)
	}
	if m.FieldCleared(distributorbranch.FieldMunicipality) {
		fields = append(fields, distributorbranch.FieldMunicipality)
	}
	if m.FieldCleared(distributorbranch.FieldZone) {
		fields = append(fields, distributorbranch.FieldZone)
	}
	if m.FieldCleared(distributorbranch.FieldStatus) {
		fields = append(fields, distributorbranch.FieldStatus)
	}
	if m.FieldCleared(distributorbranch.FieldStartDate) {
		fields = append(fields, distributorbranch.FieldStartDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DistributorBranchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DistributorBranchMutation) ClearField(name string) error {
	switch name {
	case distributorbranch.FieldAddress:
		m.ClearAddress()
		return nil
	case distributorbranch.FieldDepartment:
		m.ClearDepartment()
		return nil
	case distributorbranch.FieldMunicipality:
		m.ClearMunicipality()
		return nil
	case distributorbranch.FieldZone:
		m.ClearZone()
		return nil
	case distributorbranch.FieldStatus:
		m.ClearStatus()
		return nil
	case distributorbranch.FieldStartDate:
		m.ClearStartDate()
		return nil
	}
	return fmt.Errorf("unknown DistributorBranch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DistributorBranchMutation) ResetField(name string) error {
	switch name {
	case distributorbranch.FieldDistributorID:
		m.ResetDistributorID()
		return nil
	case distributorbranch.FieldName:
		m.ResetName()
		return nil
	case distributorbranch.FieldAddress:
		m.ResetAddress()
		return nil
	case distributorbranch.FieldDepartment:
		m.ResetDepartment()
		return nil
	case distributorbranch.FieldMunicipality:
		m.ResetMunicipality()
		return nil
	case distributorbranch.FieldZone:
		m.ResetZone()
		return nil
	case distributorbranch.FieldStatus:
		m.ResetStatus()
		return nil
	case distributorbranch.FieldStartDate:
		m.ResetStartDate()
		return nil
	}
	return fmt.Errorf("unknown DistributorBranch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DistributorBranchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.distributor != nil {
		edges = append(edges, distributorbranch.EdgeDistributor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DistributorBranchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case distributorbranch.EdgeDistributor:
		if id := m.distributor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DistributorBranchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DistributorBranchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DistributorBranchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddistributor {
		edges = append(edges, distributorbranch.EdgeDistributor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DistributorBranchMutation) EdgeCleared(name string) bool {
	switch name {
	case distributorbranch.EdgeDistributor:
		return m.cleareddistributor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DistributorBranchMutation) ClearEdge(name string) error {
	switch name {
	case distributorbranch.EdgeDistributor:
		m.ClearDistributor()
		return nil
	}
	return fmt.Errorf("unknown DistributorBranch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DistributorBranchMutation) ResetEdge(name string) error {
	switch name {
	case distributorbranch.EdgeDistributor:
		m.ResetDistributor()
		return nil
	}
	return fmt.Errorf("unknown DistributorBranch edge %s", name)
}

// DistributorDocumentMutation represents an operation that mutates the DistributorDocument nodes in the graph.
type DistributorDocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	document_type      *string
	raw_text           *string
	structured_fields  *map[string]string
	clearedFields      map[string]struct{}
	distributor        *uuid.UUID
	cleareddistributor bool
	done               bool
	oldValue           func(context.Context) (*DistributorDocument, error)
	predicates         []predicate.DistributorDocument
}

var _ ent.Mutation = (*DistributorDocumentMutation)(nil)

// distributordocumentOption allows management of the mutation configuration using functional options.
type distributordocumentOption func(*DistributorDocumentMutation)

// newDistributorDocumentMutation creates new mutation for the DistributorDocument entity.
func newDistributorDocumentMutation(c config, op Op, opts ...distributordocumentOption) *DistributorDocumentMutation {
	m := &DistributorDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDistributorDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDistributorDocumentID sets the ID field of the mutation.
func withDistributorDocumentID(id uuid.UUID) distributordocumentOption {
	return func(m *DistributorDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *DistributorDocument
		)
		m.oldValue = func(ctx context.Context) (*DistributorDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DistributorDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDistributorDocument sets the old DistributorDocument of the mutation.
func withDistributorDocument(node *DistributorDocument) distributordocumentOption {
	return func(m *DistributorDocumentMutation) {
		m.oldValue = func(context.Context) (*DistributorDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DistributorDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DistributorDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DistributorDocument entities.
func (m *DistributorDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DistributorDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DistributorDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DistributorDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDistributorID sets the "distributor_id" field.
func (m *DistributorDocumentMutation) SetDistributorID(u uuid.UUID) {
	m.distributor = &u
}

// DistributorID returns the value of the "distributor_id" field in the mutation.
func (m *DistributorDocumentMutation) DistributorID() (r uuid.UUID, exists bool) {
	v := m.distributor
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributorID returns the old "distributor_id" field's value of the DistributorDocument entity.
// If the DistributorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorDocumentMutation) OldDistributorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributorID: %w", err)
	}
	return oldValue.DistributorID, nil
}

// ResetDistributorID resets all changes to the "distributor_id" field.
func (m *DistributorDocumentMutation) ResetDistributorID() {
	m.distributor = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DistributorDocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DistributorDocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the DistributorDocument entity.
// If the DistributorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorDocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DistributorDocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetRawText sets the "raw_text" field.
func (m *DistributorDocumentMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *DistributorDocumentMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the DistributorDocument entity.
// If the DistributorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorDocumentMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *DistributorDocumentMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[distributordocument.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *DistributorDocumentMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[distributordocument.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *DistributorDocumentMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, distributordocument.FieldRawText)
}

// SetStructuredFields sets the "structured_fields" field.
func (m *DistributorDocumentMutation) SetStructuredFields(value map[string]string) {
	m.structured_fields = &value
}

// StructuredFields returns the value of the "structured_fields" field in the mutation.
func (m *DistributorDocumentMutation) StructuredFields() (r map[string]string, exists bool) {
	v := m.structured_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredFields returns the old "structured_fields" field's value of the DistributorDocument entity.
// If the DistributorDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorDocumentMutation) OldStructuredFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredFields: %w", err)
	}
	return oldValue.StructuredFields, nil
}

// ClearStructuredFields clears the value of the "structured_fields" field.
func (m *DistributorDocumentMutation) ClearStructuredFields() {
	m.structured_fields = nil
	m.clearedFields[distributordocument.FieldStructuredFields] = struct{}{}
}

// StructuredFieldsCleared returns if the "structured_fields" field was cleared in this mutation.
func (m *DistributorDocumentMutation) StructuredFieldsCleared() bool {
	_, ok := m.clearedFields[distributordocument.FieldStructuredFields]
	return ok
}

// ResetStructuredFields resets all changes to the "structured_fields" field.
func (m *DistributorDocumentMutation) ResetStructuredFields() {
	m.structured_fields = nil
	delete(m.clearedFields, distributordocument.FieldStructuredFields)
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (m *DistributorDocumentMutation) ClearDistributor() {
	m.cleareddistributor = true
	m.clearedFields[distributordocument.FieldDistributorID] = struct{}{}
}

// DistributorCleared reports if the "distributor" edge to the Distributor entity was cleared.
func (m *DistributorDocumentMutation) DistributorCleared() bool {
	return m.cleareddistributor
}

// DistributorIDs returns the "distributor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DistributorID instead. It exists only for internal usage by the builders.
func (m *DistributorDocumentMutation) DistributorIDs() (ids []uuid.UUID) {
	if id := m.distributor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDistributor resets all changes to the "distributor" edge.
func (m *DistributorDocumentMutation) ResetDistributor() {
	m.distributor = nil
	m.cleareddistributor = false
}

// Where appends a list predicates to the DistributorDocumentMutation builder.
func (m *DistributorDocumentMutation) Where(ps ...predicate.DistributorDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DistributorDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DistributorDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DistributorDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DistributorDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DistributorDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DistributorDocument).
func (m *DistributorDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DistributorDocumentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.distributor != nil {
		fields = append(fields, distributordocument.FieldDistributorID)
	}
	if m.document_type != nil {
		fields = append(fields, distributordocument.FieldDocumentType)
	}
	if m.raw_text != nil {
		fields = append(fields, distributordocument.FieldRawText)
	}
	if m.structured_fields != nil {
		fields = append(fields, distributordocument.FieldStructuredFields)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DistributorDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case distributordocument.FieldDistributorID:
		return m.DistributorID()
	case distributordocument.FieldDocumentType:
		return m.DocumentType()
	case distributordocument.FieldRawText:
		return m.RawText()
	case distributordocument.FieldStructuredFields:
		return m.StructuredFields()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DistributorDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case distributordocument.FieldDistributorID:
		return m.OldDistributorID(ctx)
	case distributordocument.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case distributordocument.FieldRawText:
		return m.OldRawText(ctx)
	case distributordocument.FieldStructuredFields:
		return m.OldStructuredFields(ctx)
	}
	return nil, fmt.Errorf("unknown DistributorDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case distributordocument.FieldDistributorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributorID(v)
		return nil
	case distributordocument.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case distributordocument.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case distributordocument.FieldStructuredFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredFields(v)
		return nil
	}
	return fmt.Errorf("unknown DistributorDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DistributorDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DistributorDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DistributorDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DistributorDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(distributordocument.FieldRawText) {
		fields = append(fields, distributordocument.FieldRawText)
	}
	if m.FieldCleared(distributordocument.FieldStructuredFields) {
		fields = append(fields, distributordocument.FieldStructuredFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DistributorDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DistributorDocumentMutation) ClearField(name string) error {
	switch name {
	case distributordocument.FieldRawText:
		m.ClearRawText()
		return nil
	case distributordocument.FieldStructuredFields:
		m.ClearStructuredFields()
		return nil
	}
	return fmt.Errorf("unknown DistributorDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DistributorDocumentMutation) ResetField(name string) error {
	switch name {
	case distributordocument.FieldDistributorID:
		m.ResetDistributorID()
		return nil
	case distributordocument.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case distributordocument.FieldRawText:
		m.ResetRawText()
		return nil
	case distributordocument.FieldStructuredFields:
		m.ResetStructuredFields()
		return nil
	}
	return fmt.Errorf("unknown DistributorDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DistributorDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.distributor != nil {
		edges = append(edges, distributordocument.EdgeDistributor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DistributorDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case distributordocument.EdgeDistributor:
		if id := m.distributor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DistributorDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DistributorDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DistributorDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddistributor {
		edges = append(edges, distributordocument.EdgeDistributor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DistributorDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case distributordocument.EdgeDistributor:
		return m.cleareddistributor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DistributorDocumentMutation) ClearEdge(name string) error {
	switch name {
	case distributordocument.EdgeDistributor:
		m.ClearDistributor()
		return nil
	}
	return fmt.Errorf("unknown DistributorDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DistributorDocumentMutation) ResetEdge(name string) error {
	switch name {
	case distributordocument.EdgeDistributor:
		m.ResetDistributor()
		return nil
	}
	return fmt.Errorf("unknown DistributorDocument edge %s", name)
}

// DistributorReferenceMutation represents an operation that mutates the DistributorReference nodes in the graph.
type DistributorReferenceMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	relationship       *string
	phone              *string
	clearedFields      map[string]struct{}
	distributor        *uuid.UUID
	cleareddistributor bool
	done               bool
	oldValue           func(context.Context) (*DistributorReference, error)
	predicates         []predicate.DistributorReference
}

var _ ent.Mutation = (*DistributorReferenceMutation)(nil)

// distributorreferenceOption allows management of the mutation configuration using functional options.
type distributorreferenceOption func(*DistributorReferenceMutation)

// newDistributorReferenceMutation creates new mutation for the DistributorReference entity.
func newDistributorReferenceMutation(c config, op Op, opts ...distributorreferenceOption) *DistributorReferenceMutation {
	m := &DistributorReferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeDistributorReference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDistributorReferenceID sets the ID field of the mutation.
func withDistributorReferenceID(id uuid.UUID) distributorreferenceOption {
	return func(m *DistributorReferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *DistributorReference
		)
		m.oldValue = func(ctx context.Context) (*DistributorReference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DistributorReference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDistributorReference sets the old DistributorReference of the mutation.
func withDistributorReference(node *DistributorReference) distributorreferenceOption {
	return func(m *DistributorReferenceMutation) {
		m.oldValue = func(context.Context) (*DistributorReference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DistributorReferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DistributorReferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DistributorReference entities.
func (m *DistributorReferenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DistributorReferenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DistributorReferenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DistributorReference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDistributorID sets the "distributor_id" field.
func (m *DistributorReferenceMutation) SetDistributorID(u uuid.UUID) {
	m.distributor = &u
}

// DistributorID returns the value of the "distributor_id" field in the mutation.
func (m *DistributorReferenceMutation) DistributorID() (r uuid.UUID, exists bool) {
	v := m.distributor
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributorID returns the old "distributor_id" field's value of the DistributorReference entity.
// If the DistributorReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorReferenceMutation) OldDistributorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributorID: %w", err)
	}
	return oldValue.DistributorID, nil
}

// ResetDistributorID resets all changes to the "distributor_id" field.
func (m *DistributorReferenceMutation) ResetDistributorID() {
	m.distributor = nil
}

// SetName sets the "name" field.
func (m *DistributorReferenceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DistributorReferenceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DistributorReference entity.
// If the DistributorReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorReferenceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DistributorReferenceMutation) ResetName() {
	m.name = nil
}

// SetRelationship sets the "relationship" field.
func (m *DistributorReferenceMutation) SetRelationship(s string) {
	m.relationship = &s
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *DistributorReferenceMutation) Relationship() (r string, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the DistributorReference entity.
// If the DistributorReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorReferenceMutation) OldRelationship(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ClearRelationship clears the value of the "relationship" field.
func (m *DistributorReferenceMutation) ClearRelationship() {
	m.relationship = nil
	m.clearedFields[distributorreference.FieldRelationship] = struct{}{}
}

// RelationshipCleared returns if the "relationship" field was cleared in this mutation.
func (m *DistributorReferenceMutation) RelationshipCleared() bool {
	_, ok := m.clearedFields[distributorreference.FieldRelationship]
	return ok
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *DistributorReferenceMutation) ResetRelationship() {
	m.relationship = nil
	delete(m.clearedFields, distributorreference.FieldRelationship)
}

// SetPhone sets the "phone" field.
func (m *DistributorReferenceMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *DistributorReferenceMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the DistributorReference entity.
// If the DistributorReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributorReferenceMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *DistributorReferenceMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[distributorreference.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *DistributorReferenceMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[distributorreference.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *DistributorReferenceMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, distributorreference.FieldPhone)
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (m *DistributorReferenceMutation) ClearDistributor() {
	m.cleareddistributor = true
	m.clearedFields[distributorreference.FieldDistributorID] = struct{}{}
}

// DistributorCleared reports if the "distributor" edge to the Distributor entity was cleared.
func (m *DistributorReferenceMutation) DistributorCleared() bool {
	return m.cleareddistributor
}

// DistributorIDs returns the "distributor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DistributorID instead. It exists only for internal usage by the builders.
func (m *DistributorReferenceMutation) DistributorIDs() (ids []uuid.UUID) {
	if id := m.distributor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDistributor resets all changes to the "distributor" edge.
func (m *DistributorReferenceMutation) ResetDistributor() {
	m.distributor = nil
	m.cleareddistributor = false
}

// Where appends a list predicates to the DistributorReferenceMutation builder.
func (m *DistributorReferenceMutation) Where(ps ...predicate.DistributorReference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DistributorReferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DistributorReferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DistributorReference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DistributorReferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DistributorReferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DistributorReference).
func (m *DistributorReferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DistributorReferenceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.distributor != nil {
		fields = append(fields, distributorreference.FieldDistributorID)
	}
	if m.name != nil {
		fields = append(fields, distributorreference.FieldName)
	}
	if m.relationship != nil {
		fields = append(fields, distributorreference.FieldRelationship)
	}
	if m.phone != nil {
		fields = append(fields, distributorreference.FieldPhone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DistributorReferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case distributorreference.FieldDistributorID:
		return m.DistributorID()
	case distributorreference.FieldName:
		return m.Name()
	case distributorreference.FieldRelationship:
		return m.Relationship()
	case distributorreference.FieldPhone:
		return m.Phone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DistributorReferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case distributorreference.FieldDistributorID:
		return m.OldDistributorID(ctx)
	case distributorreference.FieldName:
		return m.OldName(ctx)
	case distributorreference.FieldRelationship:
		return m.OldRelationship(ctx)
	case distributorreference.FieldPhone:
		return m.OldPhone(ctx)
	}
	return nil, fmt.Errorf("unknown DistributorReference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorReferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case distributorreference.FieldDistributorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributorID(v)
		return nil
	case distributorreference.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case distributorreference.FieldRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case distributorreference.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	}
	return fmt.Errorf("unknown DistributorReference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DistributorReferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DistributorReferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributorReferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DistributorReference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DistributorReferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(distributorreference.FieldRelationship) {
		fields = append(fields, distributorreference.FieldRelationship)
	}
	if m.FieldCleared(distributorreference.FieldPhone) {
		fields = append(fields, distributorreference.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DistributorReferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DistributorReferenceMutation) ClearField(name string) error {
	switch name {
	case distributorreference.FieldRelationship:
		m.ClearRelationship()
		return nil
	case distributorreference.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown DistributorReference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DistributorReferenceMutation) ResetField(name string) error {
	switch name {
	case distributorreference.FieldDistributorID:
		m.ResetDistributorID()
		return nil
	case distributorreference.FieldName:
		m.ResetName()
		return nil
	case distributorreference.FieldRelationship:
		m.ResetRelationship()
		return nil
	case distributorreference.FieldPhone:
		m.ResetPhone()
		return nil
	}
	return fmt.Errorf("unknown DistributorReference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DistributorReferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.distributor != nil {
		edges = append(edges, distributorreference.EdgeDistributor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DistributorReferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case distributorreference.EdgeDistributor:
		if id := m.distributor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DistributorReferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DistributorReferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DistributorReferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddistributor {
		edges = append(edges, distributorreference.EdgeDistributor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DistributorReferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case distributorreference.EdgeDistributor:
		return m.cleareddistributor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DistributorReferenceMutation) ClearEdge(name string) error {
	switch name {
	case distributorreference.EdgeDistributor:
		m.ClearDistributor()
		return nil
	}
	return fmt.Errorf("unknown DistributorReference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DistributorReferenceMutation) ResetEdge(name string) error {
	switch name {
	case distributorreference.EdgeDistributor:
		m.ResetDistributor()
		return nil
	}
	return fmt.Errorf("unknown DistributorReference edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	state              *string
	assigned_reviewer  *uuid.UUID
	business_name      *string
	owner_name         *string
	nit                *string
	dpi                *string
	email              *string
	phone              *string
	address            *string
	department         *string
	municipality       *string
	bank_name          *string
	bank_account       *string
	extracted_data     *map[string]map[string]string
	match_score        *int
	addmatch_score     *int
	deleted            *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	documents          map[uuid.UUID]struct{}
	removeddocuments   map[uuid.UUID]struct{}
	cleareddocuments   bool
	branches           map[uuid.UUID]struct{}
	removedbranches    map[uuid.UUID]struct{}
	clearedbranches    bool
	references         map[uuid.UUID]struct{}
	removedreferences  map[uuid.UUID]struct{}
	clearedreferences  bool
	revisions          map[uuid.UUID]struct{}
	removedrevisions   map[uuid.UUID]struct{}
	clearedrevisions   bool
	tracking           map[uuid.UUID]struct{}
	removedtracking    map[uuid.UUID]struct{}
	clearedtracking    bool
	distributor        *uuid.UUID
	cleareddistributor bool
	done               bool
	oldValue           func(context.Context) (*Request, error)
	predicates         []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id uuid.UUID) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Request entities.
func (m *RequestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetState sets the "state" field.
func (m *RequestMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *RequestMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RequestMutation) ResetState() {
	m.state = nil
}

// SetAssignedReviewer sets the "assigned_reviewer" field.
func (m *RequestMutation) SetAssignedReviewer(u uuid.UUID) {
	m.assigned_reviewer = &u
}

// AssignedReviewer returns the value of the "assigned_reviewer" field in the mutation.
func (m *RequestMutation) AssignedReviewer() (r uuid.UUID, exists bool) {
	v := m.assigned_reviewer
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedReviewer returns the old "assigned_reviewer" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldAssignedReviewer(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedReviewer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedReviewer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedReviewer: %w", err)
	}
	return oldValue.AssignedReviewer, nil
}

// ClearAssignedReviewer clears the value of the "assigned_reviewer" field.
func (m *RequestMutation) ClearAssignedReviewer() {
	m.assigned_reviewer = nil
	m.clearedFields[request.FieldAssignedReviewer] = struct{}{}
}

// AssignedReviewerCleared returns if the "assigned_reviewer" field was cleared in this mutation.
func (m *RequestMutation) AssignedReviewerCleared() bool {
	_, ok := m.clearedFields[request.FieldAssignedReviewer]
	return ok
}

// ResetAssignedReviewer resets all changes to the "assigned_reviewer" field.
func (m *RequestMutation) ResetAssignedReviewer() {
	m.assigned_reviewer = nil
	delete(m.clearedFields, request.FieldAssignedReviewer)
}

// SetBusinessName sets the "business_name" field.
func (m *RequestMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *RequestMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *RequestMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetOwnerName sets the "owner_name" field.
func (m *RequestMutation) SetOwnerName(s string) {
	m.owner_name = &s
}

// OwnerName returns the value of the "owner_name" field in the mutation.
func (m *RequestMutation) OwnerName() (r string, exists bool) {
	v := m.owner_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerName returns the old "owner_name" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldOwnerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerName: %w", err)
	}
	return oldValue.OwnerName, nil
}

// ClearOwnerName clears the value of the "owner_name" field.
func (m *RequestMutation) ClearOwnerName() {
	m.owner_name = nil
	m.clearedFields[request.FieldOwnerName] = struct{}{}
}

// OwnerNameCleared returns if the "owner_name" field was cleared in this mutation.
func (m *RequestMutation) OwnerNameCleared() bool {
	_, ok := m.clearedFields[request.FieldOwnerName]
	return ok
}

// ResetOwnerName resets all changes to the "owner_name" field.
func (m *RequestMutation) ResetOwnerName() {
	m.owner_name = nil
	delete(m.clearedFields, request.FieldOwnerName)
}

// SetNit sets the "nit" field.
func (m *RequestMutation) SetNit(s string) {
	m.nit = &s
}

// Nit returns the value of the "nit" field in the mutation.
func (m *RequestMutation) Nit() (r string, exists bool) {
	v := m.nit
	if v == nil {
		return
	}
	return *v, true
}

// OldNit returns the old "nit" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldNit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNit: %w", err)
	}
	return oldValue.Nit, nil
}

// ClearNit clears the value of the "nit" field.
func (m *RequestMutation) ClearNit() {
	m.nit = nil
	m.clearedFields[request.FieldNit] = struct{}{}
}

// NitCleared returns if the "nit" field was cleared in this mutation.
func (m *RequestMutation) NitCleared() bool {
	_, ok := m.clearedFields[request.FieldNit]
	return ok
}

// ResetNit resets all changes to the "nit" field.
func (m *RequestMutation) ResetNit() {
	m.nit = nil
	delete(m.clearedFields, request.FieldNit)
}

// SetDpi sets the "dpi" field.
func (m *RequestMutation) SetDpi(s string) {
	m.dpi = &s
}

// Dpi returns the value of the "dpi" field in the mutation.
func (m *RequestMutation) Dpi() (r string, exists bool) {
	v := m.dpi
	if v == nil {
		return
	}
	return *v, true
}

// OldDpi returns the old "dpi" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDpi(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDpi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDpi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDpi: %w", err)
	}
	return oldValue.Dpi, nil
}

// ClearDpi clears the value of the "dpi" field.
func (m *RequestMutation) ClearDpi() {
	m.dpi = nil
	m.clearedFields[request.FieldDpi] = struct{}{}
}

// DpiCleared returns if the "dpi" field was cleared in this mutation.
func (m *RequestMutation) DpiCleared() bool {
	_, ok := m.clearedFields[request.FieldDpi]
	return ok
}

// ResetDpi resets all changes to the "dpi" field.
func (m *RequestMutation) ResetDpi() {
	m.dpi = nil
	delete(m.clearedFields, request.FieldDpi)
}

// SetEmail sets the "email" field.
func (m *RequestMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *RequestMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *RequestMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[request.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *RequestMutation) EmailCleared() bool {
	_, ok := m.clearedFields[request.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *RequestMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, request.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *RequestMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *RequestMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *RequestMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[request.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *RequestMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[request.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *RequestMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, request.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *RequestMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *RequestMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *RequestMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[request.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *RequestMutation) AddressCleared() bool {
	_, ok := m.clearedFields[request.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *RequestMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, request.FieldAddress)
}

// SetDepartment sets the "department" field.
func (m *RequestMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *RequestMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *RequestMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[request.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *RequestMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[request.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *RequestMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, request.FieldDepartment)
}

// SetMunicipality sets the "municipality" field.
func (m *RequestMutation) SetMunicipality(s string) {
	m.municipality = &s
}

// Municipality returns the value of the "municipality" field in the mutation.
func (m *RequestMutation) Municipality() (r string, exists bool) {
	v := m.municipality
	if v == nil {
		return
	}
	return *v, true
}

// OldMunicipality returns the old "municipality" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldMunicipality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMunicipality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMunicipality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMunicipality: %w", err)
	}
	return oldValue.Municipality, nil
}

// ClearMunicipality clears the value of the "municipality" field.
func (m *RequestMutation) ClearMunicipality() {
	m.municipality = nil
	m.clearedFields[request.FieldMunicipality] = struct{}{}
}

// MunicipalityCleared returns if the "municipality" field was cleared in this mutation.
func (m *RequestMutation) MunicipalityCleared() bool {
	_, ok := m.clearedFields[request.FieldMunicipality]
	return ok
}

// ResetMunicipality resets all changes to the "municipality" field.
func (m *RequestMutation) ResetMunicipality() {
	m.municipality = nil
	delete(m.clearedFields, request.FieldMunicipality)
}

// SetBankName sets the "bank_name" field.
func (m *RequestMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *RequestMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldBankName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ClearBankName clears the value of the "bank_name" field.
func (m *RequestMutation) ClearBankName() {
	m.bank_name = nil
	m.clearedFields[request.FieldBankName] = struct{}{}
}

// BankNameCleared returns if the "bank_name" field was cleared in this mutation.
func (m *RequestMutation) BankNameCleared() bool {
	_, ok := m.clearedFields[request.FieldBankName]
	return ok
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *RequestMutation) ResetBankName() {
	m.bank_name = nil
	delete(m.clearedFields, request.FieldBankName)
}

// SetBankAccount sets the "bank_account" field.
func (m *RequestMutation) SetBankAccount(s string) {
	m.bank_account = &s
}

// BankAccount returns the value of the "bank_account" field in the mutation.
func (m *RequestMutation) BankAccount() (r string, exists bool) {
	v := m.bank_account
	if v == nil {
		return
	}
	return *v, true
}

// OldBankAccount returns the old "bank_account" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldBankAccount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankAccount: %w", err)
	}
	return oldValue.BankAccount, nil
}

// ClearBankAccount clears the value of the "bank_account" field.
func (m *RequestMutation) ClearBankAccount() {
	m.bank_account = nil
	m.clearedFields[request.FieldBankAccount] = struct{}{}
}

// BankAccountCleared returns if the "bank_account" field was cleared in this mutation.
func (m *RequestMutation) BankAccountCleared() bool {
	_, ok := m.clearedFields[request.FieldBankAccount]
	return ok
}

// ResetBankAccount resets all changes to the "bank_account" field.
func (m *RequestMutation) ResetBankAccount() {
	m.bank_account = nil
	delete(m.clearedFields, request.FieldBankAccount)
}

// SetExtractedData sets the "extracted_data" field.
func (m *RequestMutation) SetExtractedData(value map[string]map[string]string) {
	m.extracted_data = &value
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *RequestMutation) ExtractedData() (r map[string]map[string]string, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldExtractedData(ctx context.Context) (v map[string]map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *RequestMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.clearedFields[request.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *RequestMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[request.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *RequestMutation) ResetExtractedData() {
	m.extracted_data = nil
	delete(m.clearedFields, request.FieldExtractedData)
}

// SetMatchScore sets the "match_score" field.
func (m *RequestMutation) SetMatchScore(i int) {
	m.match_score = &i
	m.addmatch_score = nil
}

// MatchScore returns the value of the "match_score" field in the mutation.
func (m *RequestMutation) MatchScore() (r int, exists bool) {
	v := m.match_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchScore returns the old "match_score" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldMatchScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchScore: %w", err)
	}
	return oldValue.MatchScore, nil
}

// AddMatchScore adds i to the "match_score" field.
func (m *RequestMutation) AddMatchScore(i int) {
	if m.addmatch_score != nil {
		*m.addmatch_score += i
	} else {
		m.addmatch_score = &i
	}
}

// AddedMatchScore returns the value that was added to the "match_score" field in this mutation.
func (m *RequestMutation) AddedMatchScore() (r int, exists bool) {
	v := m.addmatch_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearMatchScore clears the value of the "match_score" field.
func (m *RequestMutation) ClearMatchScore() {
	m.match_score = nil
	m.addmatch_score = nil
	m.clearedFields[request.FieldMatchScore] = struct{}{}
}

// MatchScoreCleared returns if the "match_score" field was cleared in this mutation.
func (m *RequestMutation) MatchScoreCleared() bool {
	_, ok := m.clearedFields[request.FieldMatchScore]
	return ok
}

// ResetMatchScore resets all changes to the "match_score" field.
func (m *RequestMutation) ResetMatchScore() {
	m.match_score = nil
	m.addmatch_score = nil
	delete(m.clearedFields, request.FieldMatchScore)
}

// SetDeleted sets the "deleted" field.
func (m *RequestMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *RequestMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *RequestMutation) ResetDeleted() {
	m.deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the RequestDocument entity by ids.
func (m *RequestMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the RequestDocument entity.
func (m *RequestMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the RequestDocument entity was cleared.
func (m *RequestMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the RequestDocument entity by IDs.
func (m *RequestMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the RequestDocument entity.
func (m *RequestMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *RequestMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *RequestMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddBranchIDs adds the "branches" edge to the RequestBranch entity by ids.
func (m *RequestMutation) AddBranchIDs(ids ...uuid.UUID) {
	if m.branches == nil {
		m.branches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.branches[ids[i]] = struct{}{}
	}
}

// ClearBranches clears the "branches" edge to the RequestBranch entity.
func (m *RequestMutation) ClearBranches() {
	m.clearedbranches = true
}

// BranchesCleared reports if the "branches" edge to the RequestBranch entity was cleared.
func (m *RequestMutation) BranchesCleared() bool {
	return m.clearedbranches
}

// RemoveBranchIDs removes the "branches" edge to the RequestBranch entity by IDs.
func (m *RequestMutation) RemoveBranchIDs(ids ...uuid.UUID) {
	if m.removedbranches == nil {
		m.removedbranches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.branches, ids[i])
		m.removedbranches[ids[i]] = struct{}{}
	}
}

// RemovedBranches returns the removed IDs of the "branches" edge to the RequestBranch entity.
func (m *RequestMutation) RemovedBranchesIDs() (ids []uuid.UUID) {
	for id := range m.removedbranches {
		ids = append(ids, id)
	}
	return
}

// BranchesIDs returns the "branches" edge IDs in the mutation.
func (m *RequestMutation) BranchesIDs() (ids []uuid.UUID) {
	for id := range m.branches {
		ids = append(ids, id)
	}
	return
}

// ResetBranches resets all changes to the "branches" edge.
func (m *RequestMutation) ResetBranches() {
	m.branches = nil
	m.clearedbranches = false
	m.removedbranches = nil
}

// AddReferenceIDs adds the "references" edge to the RequestReference entity by ids.
func (m *RequestMutation) AddReferenceIDs(ids ...uuid.UUID) {
	if m.references == nil {
		m.references = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.references[ids[i]] = struct{}{}
	}
}

// ClearReferences clears the "references" edge to the RequestReference entity.
func (m *RequestMutation) ClearReferences() {
	m.clearedreferences = true
}

// ReferencesCleared reports if the "references" edge to the RequestReference entity was cleared.
func (m *RequestMutation) ReferencesCleared() bool {
	return m.clearedreferences
}

// RemoveReferenceIDs removes the "references" edge to the RequestReference entity by IDs.
func (m *RequestMutation) RemoveReferenceIDs(ids ...uuid.UUID) {
	if m.removedreferences == nil {
		m.removedreferences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.references, ids[i])
		m.removedreferences[ids[i]] = struct{}{}
	}
}

// RemovedReferences returns the removed IDs of the "references" edge to the RequestReference entity.
func (m *RequestMutation) RemovedReferencesIDs() (ids []uuid.UUID) {
	for id := range m.removedreferences {
		ids = append(ids, id)
	}
	return
}

// ReferencesIDs returns the "references" edge IDs in the mutation.
func (m *RequestMutation) ReferencesIDs() (ids []uuid.UUID) {
	for id := range m.references {
		ids = append(ids, id)
	}
	return
}

// ResetReferences resets all changes to the "references" edge.
func (m *RequestMutation) ResetReferences() {
	m.references = nil
	m.clearedreferences = false
	m.removedreferences = nil
}

// AddRevisionIDs adds the "revisions" edge to the RequestRevision entity by ids.
func (m *RequestMutation) AddRevisionIDs(ids ...uuid.UUID) {
	if m.revisions == nil {
		m.revisions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.revisions[ids[i]] = struct{}{}
	}
}

// ClearRevisions clears the "revisions" edge to the RequestRevision entity.
func (m *RequestMutation) ClearRevisions() {
	m.clearedrevisions = true
}

// RevisionsCleared reports if the "revisions" edge to the RequestRevision entity was cleared.
func (m *RequestMutation) RevisionsCleared() bool {
	return m.clearedrevisions
}

// RemoveRevisionIDs removes the "revisions" edge to the RequestRevision entity by IDs.
func (m *RequestMutation) RemoveRevisionIDs(ids ...uuid.UUID) {
	if m.removedrevisions == nil {
		m.removedrevisions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.revisions, ids[i])
		m.removedrevisions[ids[i]] = struct{}{}
	}
}

// RemovedRevisions returns the removed IDs of the "revisions" edge to the RequestRevision entity.
func (m *RequestMutation) RemovedRevisionsIDs() (ids []uuid.UUID) {
	for id := range m.removedrevisions {
		ids = append(ids, id)
	}
	return
}

// RevisionsIDs returns the "revisions" edge IDs in the mutation.
func (m *RequestMutation) RevisionsIDs() (ids []uuid.UUID) {
	for id := range m.revisions {
		ids = append(ids, id)
	}
	return
}

// ResetRevisions resets all changes to the "revisions" edge.
func (m *RequestMutation) ResetRevisions() {
	m.revisions = nil
	m.clearedrevisions = false
	m.removedrevisions = nil
}

// AddTrackingIDs adds the "tracking" edge to the TrackingEntry entity by ids.
func (m *RequestMutation) AddTrackingIDs(ids ...uuid.UUID) {
	if m.tracking == nil {
		m.tracking = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tracking[ids[i]] = struct{}{}
	}
}

// ClearTracking clears the "tracking" edge to the TrackingEntry entity.
func (m *RequestMutation) ClearTracking() {
	m.clearedtracking = true
}

// TrackingCleared reports if the "tracking" edge to the TrackingEntry entity was cleared.
func (m *RequestMutation) TrackingCleared() bool {
	return m.clearedtracking
}

// RemoveTrackingIDs removes the "tracking" edge to the TrackingEntry entity by IDs.
func (m *RequestMutation) RemoveTrackingIDs(ids ...uuid.UUID) {
	if m.removedtracking == nil {
		m.removedtracking = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tracking, ids[i])
		m.removedtracking[ids[i]] = struct{}{}
	}
}

// RemovedTracking returns the removed IDs of the "tracking" edge to the TrackingEntry entity.
func (m *RequestMutation) RemovedTrackingIDs() (ids []uuid.UUID) {
	for id := range m.removedtracking {
		ids = append(ids, id)
	}
	return
}

// TrackingIDs returns the "tracking" edge IDs in the mutation.
func (m *RequestMutation) TrackingIDs() (ids []uuid.UUID) {
	for id := range m.tracking {
		ids = append(ids, id)
	}
	return
}

// ResetTracking resets all changes to the "tracking" edge.
func (m *RequestMutation) ResetTracking() {
	m.tracking = nil
	m.clearedtracking = false
	m.removedtracking = nil
}

// SetDistributorID sets the "distributor" edge to the Distributor entity by id.
func (m *RequestMutation) SetDistributorID(id uuid.UUID) {
	m.distributor = &id
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (m *RequestMutation) ClearDistributor() {
	m.cleareddistributor = true
}

// DistributorCleared reports if the "distributor" edge to the Distributor entity was cleared.
func (m *RequestMutation) DistributorCleared() bool {
	return m.cleareddistributor
}

// DistributorID returns the "distributor" edge ID in the mutation.
func (m *RequestMutation) DistributorID() (id uuid.UUID, exists bool) {
	if m.distributor != nil {
		return *m.distributor, true
	}
	return
}

// DistributorIDs returns the "distributor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DistributorID instead. It exists only for internal usage by the builders.
func (m *RequestMutation) DistributorIDs() (ids []uuid.UUID) {
	if id := m.distributor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDistributor resets all changes to the "distributor" edge.
func (m *RequestMutation) ResetDistributor() {
	m.distributor = nil
	m.cleareddistributor = false
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.state != nil {
		fields = append(fields, request.FieldState)
	}
	if m.assigned_reviewer != nil {
		fields = append(fields, request.FieldAssignedReviewer)
	}
	if m.business_name != nil {
		fields = append(fields, request.FieldBusinessName)
	}
	if m.owner_name != nil {
		fields = append(fields, request.FieldOwnerName)
	}
	if m.nit != nil {
		fields = append(fields, request.FieldNit)
	}
	if m.dpi != nil {
		fields = append(fields, request.FieldDpi)
	}
	if m.email != nil {
		fields = append(fields, request.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, request.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, request.FieldAddress)
	}
	if m.department != nil {
		fields = append(fields, request.FieldDepartment)
	}
	if m.municipality != nil {
		fields = append(fields, request.FieldMunicipality)
	}
	if m.bank_name != nil {
		fields = append(fields, request.FieldBankName)
	}
	if m.bank_account != nil {
		fields = append(fields, request.FieldBankAccount)
	}
	if m.extracted_data != nil {
		fields = append(fields, request.FieldExtractedData)
	}
	if m.match_score != nil {
		fields = append(fields, request.FieldMatchScore)
	}
	if m.deleted != nil {
		fields = append(fields, request.FieldDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, request.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, request.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldState:
		return m.State()
	case request.FieldAssignedReviewer:
		return m.AssignedReviewer()
	case request.FieldBusinessName:
		return m.BusinessName()
	case request.FieldOwnerName:
		return m.OwnerName()
	case request.FieldNit:
		return m.Nit()
	case request.FieldDpi:
		return m.Dpi()
	case request.FieldEmail:
		return m.Email()
	case request.FieldPhone:
		return m.Phone()
	case request.FieldAddress:
		return m.Address()
	case request.FieldDepartment:
		return m.Department()
	case request.FieldMunicipality:
		return m.Municipality()
	case request.FieldBankName:
		return m.BankName()
	case request.FieldBankAccount:
		return m.BankAccount()
	case request.FieldExtractedData:
		return m.ExtractedData()
	case request.FieldMatchScore:
		return m.MatchScore()
	case request.FieldDeleted:
		return m.Deleted()
	case request.FieldCreatedAt:
		return m.CreatedAt()
	case request.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldState:
		return m.OldState(ctx)
	case request.FieldAssignedReviewer:
		return m.OldAssignedReviewer(ctx)
	case request.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case request.FieldOwnerName:
		return m.OldOwnerName(ctx)
	case request.FieldNit:
		return m.OldNit(ctx)
	case request.FieldDpi:
		return m.OldDpi(ctx)
	case request.FieldEmail:
		return m.OldEmail(ctx)
	case request.FieldPhone:
		return m.OldPhone(ctx)
	case request.FieldAddress:
		return m.OldAddress(ctx)
	case request.FieldDepartment:
		return m.OldDepartment(ctx)
	case request.FieldMunicipality:
		return m.OldMunicipality(ctx)
	case request.FieldBankName:
		return m.OldBankName(ctx)
	case request.FieldBankAccount:
		return m.OldBankAccount(ctx)
	case request.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case request.FieldMatchScore:
		return m.OldMatchScore(ctx)
	case request.FieldDeleted:
		return m.OldDeleted(ctx)
	case request.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case request.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case request.FieldAssignedReviewer:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedReviewer(v)
		return nil
	case request.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case request.FieldOwnerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerName(v)
		return nil
	case request.FieldNit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNit(v)
		return nil
	case request.FieldDpi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDpi(v)
		return nil
	case request.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case request.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case request.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case request.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case request.FieldMunicipality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMunicipality(v)
		return nil
	case request.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case request.FieldBankAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankAccount(v)
		return nil
	case request.FieldExtractedData:
		v, ok := value.(map[string]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case request.FieldMatchScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchScore(v)
		return nil
	case request.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case request.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case request.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.addmatch_score != nil {
		fields = append(fields, request.FieldMatchScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldMatchScore:
		return m.AddedMatchScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldMatchScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchScore(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(request.FieldAssignedReviewer) {
		fields = append(fields, request.FieldAssignedReviewer)
	}
	if m.FieldCleared(request.FieldOwnerName) {
		fields = append(fields, request.FieldOwnerName)
	}
	if m.FieldCleared(request.FieldNit) {
		fields = append(fields, request.FieldNit)
	}
	if m.FieldCleared(request.FieldDpi) {
		fields = append(fields, request.FieldDpi)
	}
	if m.FieldCleared(request.FieldEmail) {
		fields = append(fields, request.FieldEmail)
	}
	if m.FieldCleared(request.FieldPhone) {
		fields = append(fields, request.FieldPhone)
	}
	if m.FieldCleared(request.FieldAddress) {
		fields = append(fields, request.FieldAddress)
	}
	if m.FieldCleared(request.FieldDepartment) {
		fields = append(fields, request.FieldDepartment)
	}
	if m.FieldCleared(request.FieldMunicipality) {
		fields = append(fields, request.FieldMunicipality)
	}
	if m.FieldCleared(request.FieldBankName) {
		fields = append(fields, request.FieldBankName)
	}
	if m.FieldCleared(request.FieldBankAccount) {
		fields = append(fields, request.FieldBankAccount)
	}
	if m.FieldCleared(request.FieldExtractedData) {
		fields = append(fields, request.FieldExtractedData)
	}
	if m.FieldCleared(request.FieldMatchScore) {
		fields = append(fields, request.FieldMatchScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	switch name {
	case request.FieldAssignedReviewer:
		m.ClearAssignedReviewer()
		return nil
	case request.FieldOwnerName:
		m.ClearOwnerName()
		return nil
	case request.FieldNit:
		m.ClearNit()
		return nil
	case request.FieldDpi:
		m.ClearDpi()
		return nil
	case request.FieldEmail:
		m.ClearEmail()
		return nil
	case request.FieldPhone:
		m.ClearPhone()
		return nil
	case request.FieldAddress:
		m.ClearAddress()
		return nil
	case request.FieldDepartment:
		m.ClearDepartment()
		return nil
	case request.FieldMunicipality:
		m.ClearMunicipality()
		return nil
	case request.FieldBankName:
		m.ClearBankName()
		return nil
	case request.FieldBankAccount:
		m.ClearBankAccount()
		return nil
	case request.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case request.FieldMatchScore:
		m.ClearMatchScore()
		return nil
	}
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldState:
		m.ResetState()
		return nil
	case request.FieldAssignedReviewer:
		m.ResetAssignedReviewer()
		return nil
	case request.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case request.FieldOwnerName:
		m.ResetOwnerName()
		return nil
	case request.FieldNit:
		m.ResetNit()
		return nil
	case request.FieldDpi:
		m.ResetDpi()
		return nil
	case request.FieldEmail:
		m.ResetEmail()
		return nil
	case request.FieldPhone:
		m.ResetPhone()
		return nil
	case request.FieldAddress:
		m.ResetAddress()
		return nil
	case request.FieldDepartment:
		m.ResetDepartment()
		return nil
	case request.FieldMunicipality:
		m.ResetMunicipality()
		return nil
	case request.FieldBankName:
		m.ResetBankName()
		return nil
	case request.FieldBankAccount:
		m.ResetBankAccount()
		return nil
	case request.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case request.FieldMatchScore:
		m.ResetMatchScore()
		return nil
	case request.FieldDeleted:
		m.ResetDeleted()
		return nil
	case request.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case request.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.documents != nil {
		edges = append(edges, request.EdgeDocuments)
	}
	if m.branches != nil {
		edges = append(edges, request.EdgeBranches)
	}
	if m.references != nil {
		edges = append(edges, request.EdgeReferences)
	}
	if m.revisions != nil {
		edges = append(edges, request.EdgeRevisions)
	}
	if m.tracking != nil {
		edges = append(edges, request.EdgeTracking)
	}
	if m.distributor != nil {
		edges = append(edges, request.EdgeDistributor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.branches))
		for id := range m.branches {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.references))
		for id := range m.references {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.revisions))
		for id := range m.revisions {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeTracking:
		ids := make([]ent.Value, 0, len(m.tracking))
		for id := range m.tracking {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeDistributor:
		if id := m.distributor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removeddocuments != nil {
		edges = append(edges, request.EdgeDocuments)
	}
	if m.removedbranches != nil {
		edges = append(edges, request.EdgeBranches)
	}
	if m.removedreferences != nil {
		edges = append(edges, request.EdgeReferences)
	}
	if m.removedrevisions != nil {
		edges = append(edges, request.EdgeRevisions)
	}
	if m.removedtracking != nil {
		edges = append(edges, request.EdgeTracking)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeBranches:
		ids := make([]ent.Value, 0, len(m.removedbranches))
		for id := range m.removedbranches {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.removedreferences))
		for id := range m.removedreferences {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.removedrevisions))
		for id := range m.removedrevisions {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeTracking:
		ids := make([]ent.Value, 0, len(m.removedtracking))
		for id := range m.removedtracking {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.cleareddocuments {
		edges = append(edges, request.EdgeDocuments)
	}
	if m.clearedbranches {
		edges = append(edges, request.EdgeBranches)
	}
	if m.clearedreferences {
		edges = append(edges, request.EdgeReferences)
	}
	if m.clearedrevisions {
		edges = append(edges, request.EdgeRevisions)
	}
	if m.clearedtracking {
		edges = append(edges, request.EdgeTracking)
	}
	if m.cleareddistributor {
		edges = append(edges, request.EdgeDistributor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	switch name {
	case request.EdgeDocuments:
		return m.cleareddocuments
	case request.EdgeBranches:
		return m.clearedbranches
	case request.EdgeReferences:
		return m.clearedreferences
	case request.EdgeRevisions:
		return m.clearedrevisions
	case request.EdgeTracking:
		return m.clearedtracking
	case request.EdgeDistributor:
		return m.cleareddistributor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	switch name {
	case request.EdgeDistributor:
		m.ClearDistributor()
		return nil
	}
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	switch name {
	case request.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case request.EdgeBranches:
		m.ResetBranches()
		return nil
	case request.EdgeReferences:
		m.ResetReferences()
		return nil
	case request.EdgeRevisions:
		m.ResetRevisions()
		return nil
	case request.EdgeTracking:
		m.ResetTracking()
		return nil
	case request.EdgeDistributor:
		m.ResetDistributor()
		return nil
	}
	return fmt.Errorf("unknown Request edge %s", name)
}

// RequestBranchMutation represents an operation that mutates the RequestBranch nodes in the graph.
type RequestBranchMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	address        *string
	department     *string
	municipality   *string
	zone           *string
	status         *string
	start_date     *string
	review_status  *string
	review_notes   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *uuid.UUID
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*RequestBranch, error)
	predicates     []predicate.RequestBranch
}

var _ ent.Mutation = (*RequestBranchMutation)(nil)

// requestbranchOption allows management of the mutation configuration using functional options.
type requestbranchOption func(*RequestBranchMutation)

// newRequestBranchMutation creates new mutation for the RequestBranch entity.
func newRequestBranchMutation(c config, op Op, opts ...requestbranchOption) *RequestBranchMutation {
	m := &RequestBranchMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestBranch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestBranchID sets the ID field of the mutation.
func withRequestBranchID(id uuid.UUID) requestbranchOption {
	return func(m *RequestBranchMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestBranch
		)
		m.oldValue = func(ctx context.Context) (*RequestBranch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestBranch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestBranch sets the old RequestBranch of the mutation.
func withRequestBranch(node *RequestBranch) requestbranchOption {
	return func(m *RequestBranchMutation) {
		m.oldValue = func(context.Context) (*RequestBranch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestBranchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestBranchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RequestBranch entities.
func (m *RequestBranchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestBranchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestBranchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestBranch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *RequestBranchMutation) SetRequestID(u uuid.UUID) {
	m.request = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RequestBranchMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RequestBranchMutation) ResetRequestID() {
	m.request = nil
}

// SetName sets the "name" field.
func (m *RequestBranchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RequestBranchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RequestBranchMutation) ResetName() {
	m.name = nil
}

// SetAddress sets the "address" field.
func (m *RequestBranchMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *RequestBranchMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *RequestBranchMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[requestbranch.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *RequestBranchMutation) AddressCleared() bool {
	_, ok := m.clearedFields[requestbranch.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *RequestBranchMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, requestbranch.FieldAddress)
}

// SetDepartment sets the "department" field.
func (m *RequestBranchMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *RequestBranchMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *RequestBranchMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[requestbranch.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *RequestBranchMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[requestbranch.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *RequestBranchMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, requestbranch.FieldDepartment)
}

// SetMunicipality sets the "municipality" field.
func (m *RequestBranchMutation) SetMunicipality(s string) {
	m.municipality = &s
}

// Municipality returns the value of the "municipality" field in the mutation.
func (m *RequestBranchMutation) Municipality() (r string, exists bool) {
	v := m.municipality
	if v == nil {
		return
	}
	return *v, true
}

// OldMunicipality returns the old "municipality" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldMunicipality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMunicipality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMunicipality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMunicipality: %w", err)
	}
	return oldValue.Municipality, nil
}

// ClearMunicipality clears the value of the "municipality" field.
func (m *RequestBranchMutation) ClearMunicipality() {
	m.municipality = nil
	m.clearedFields[requestbranch.FieldMunicipality] = struct{}{}
}

// MunicipalityCleared returns if the "municipality" field was cleared in this mutation.
func (m *RequestBranchMutation) MunicipalityCleared() bool {
	_, ok := m.clearedFields[requestbranch.FieldMunicipality]
	return ok
}

// ResetMunicipality resets all changes to the "municipality" field.
func (m *RequestBranchMutation) ResetMunicipality() {
	m.municipality = nil
	delete(m.clearedFields, requestbranch.FieldMunicipality)
}

// SetZone sets the "zone" field.
func (m *RequestBranchMutation) SetZone(s string) {
	m.zone = &s
}

// Zone returns the value of the "zone" field in the mutation.
func (m *RequestBranchMutation) Zone() (r string, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZone returns the old "zone" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldZone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZone: %w", err)
	}
	return oldValue.Zone, nil
}

// ClearZone clears the value of the "zone" field.
func (m *RequestBranchMutation) ClearZone() {
	m.zone = nil
	m.clearedFields[requestbranch.FieldZone] = struct{}{}
}

// ZoneCleared returns if the "zone" field was cleared in this mutation.
func (m *RequestBranchMutation) ZoneCleared() bool {
	_, ok := m.clearedFields[requestbranch.FieldZone]
	return ok
}

// ResetZone resets all changes to the "zone" field.
func (m *RequestBranchMutation) ResetZone() {
	m.zone = nil
	delete(m.clearedFields, requestbranch.FieldZone)
}

// SetStatus sets the "status" field.
func (m *RequestBranchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RequestBranchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *RequestBranchMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[requestbranch.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *RequestBranchMutation) StatusCleared() bool {
	_, ok := m.clearedFields[requestbranch.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *RequestBranchMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, requestbranch.FieldStatus)
}

// SetStartDate sets the "start_date" field.
func (m *RequestBranchMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *RequestBranchMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *RequestBranchMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[requestbranch.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *RequestBranchMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[requestbranch.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *RequestBranchMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, requestbranch.FieldStartDate)
}

// SetReviewStatus sets the "review_status" field.
func (m *RequestBranchMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *RequestBranchMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *RequestBranchMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetReviewNotes sets the "review_notes" field.
func (m *RequestBranchMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *RequestBranchMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldReviewNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *RequestBranchMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[requestbranch.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *RequestBranchMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[requestbranch.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *RequestBranchMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, requestbranch.FieldReviewNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestBranchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestBranchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RequestBranch entity.
// If the RequestBranch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestBranchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestBranchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *RequestBranchMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[requestbranch.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *RequestBranchMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *RequestBranchMutation) RequestIDs() (ids []uuid.UUID) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *RequestBranchMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the RequestBranchMutation builder.
func (m *RequestBranchMutation) Where(ps ...predicate.RequestBranch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestBranchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestBranchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestBranch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestBranchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestBranchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestBranch).
func (m *RequestBranchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestBranchMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.request != nil {
		fields = append(fields, requestbranch.FieldRequestID)
	}
	if m.name != nil {
		fields = append(fields, requestbranch.FieldName)
	}
	if m.address != nil {
		fields = append(fields, requestbranch.FieldAddress)
	}
	if m.department != nil {
		fields = append(fields, requestbranch.FieldDepartment)
	}
	if m.municipality != nil {
		fields = append(fields, requestbranch.FieldMunicipality)
	}
	if m.zone != nil {
		fields = append(fields, requestbranch.FieldZone)
	}
	if m.status != nil {
		fields = append(fields, requestbranch.FieldStatus)
	}
	if m.start_date != nil {
		fields = append(fields, requestbranch.FieldStartDate)
	}
	if m.review_status != nil {
		fields = append(fields, requestbranch.FieldReviewStatus)
	}
	if m.review_notes != nil {
		fields = append(fields, requestbranch.FieldReviewNotes)
	}
	if m.created_at != nil {
		fields = append(fields, requestbranch.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestBranchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestbranch.FieldRequestID:
		return m.RequestID()
	case requestbranch.FieldName:
		return m.Name()
	case requestbranch.FieldAddress:
		return m.Address()
	case requestbranch.FieldDepartment:
		return m.Department()
	case requestbranch.FieldMunicipality:
		return m.Municipality()
	case requestbranch.FieldZone:
		return m.Zone()
	case requestbranch.FieldStatus:
		return m.Status()
	case requestbranch.FieldStartDate:
		return m.StartDate()
	case requestbranch.FieldReviewStatus:
		return m.ReviewStatus()
	case requestbranch.FieldReviewNotes:
		return m.ReviewNotes()
	case requestbranch.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestBranchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestbranch.FieldRequestID:
		return m.OldRequestID(ctx)
	case requestbranch.FieldName:
		return m.OldName(ctx)
	case requestbranch.FieldAddress:
		return m.OldAddress(ctx)
	case requestbranch.FieldDepartment:
		return m.OldDepartment(ctx)
	case requestbranch.FieldMunicipality:
		return m.OldMunicipality(ctx)
	case requestbranch.FieldZone:
		return m.OldZone(ctx)
	case requestbranch.FieldStatus:
		return m.OldStatus(ctx)
	case requestbranch.FieldStartDate:
		return m.OldStartDate(ctx)
	case requestbranch.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case requestbranch.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case requestbranch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RequestBranch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestBranchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestbranch.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case requestbranch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case requestbranch.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case requestbranch.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case requestbranch.FieldMunicipality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMunicipality(v)
		return nil
	case requestbranch.FieldZone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZone(v)
		return nil
	case requestbranch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case requestbranch.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case requestbranch.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case requestbranch.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case requestbranch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RequestBranch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestBranchMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestBranchMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestBranchMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RequestBranch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestBranchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requestbranch.FieldAddress) {
		fields = append(fields, requestbranch.FieldAddress)
	}
	if m.FieldCleared(requestbranch.FieldDepartment) {
		fields = append(fields, requestbranch.FieldDepartment)
	}
	if m.FieldCleared(requestbranch.FieldMunicipality) {
		fields = append(fields, requestbranch.FieldMunicipality)
	}
	if m.FieldCleared(requestbranch.FieldZone) {
		fields = append(fields, requestbranch.FieldZone)
	}
	if m.FieldCleared(requestbranch.FieldStatus) {
		fields = append(fields, requestbranch.FieldStatus)
	}
	if m.FieldCleared(requestbranch.FieldStartDate) {
		fields = append(fields, requestbranch.FieldStartDate)
	}
	if m.FieldCleared(requestbranch.FieldReviewNotes) {
		fields = append(fields, requestbranch.FieldReviewNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestBranchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestBranchMutation) ClearField(name string) error {
	switch name {
	case requestbranch.FieldAddress:
		m.ClearAddress()
		return nil
	case requestbranch.FieldDepartment:
		m.ClearDepartment()
		return nil
	case requestbranch.FieldMunicipality:
		m.ClearMunicipality()
		return nil
	case requestbranch.FieldZone:
		m.ClearZone()
		return nil
	case requestbranch.FieldStatus:
		m.ClearStatus()
		return nil
	case requestbranch.FieldStartDate:
		m.ClearStartDate()
		return nil
	case requestbranch.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	}
	return fmt.Errorf("unknown RequestBranch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestBranchMutation) ResetField(name string) error {
	switch name {
	case requestbranch.FieldRequestID:
		m.ResetRequestID()
		return nil
	case requestbranch.FieldName:
		m.ResetName()
		return nil
	case requestbranch.FieldAddress:
		m.ResetAddress()
		return nil
	case requestbranch.FieldDepartment:
		m.ResetDepartment()
		return nil
	case requestbranch.FieldMunicipality:
		m.ResetMunicipality()
		return nil
	case requestbranch.FieldZone:
		m.ResetZone()
		return nil
	case requestbranch.FieldStatus:
		m.ResetStatus()
		return nil
	case requestbranch.FieldStartDate:
		m.ResetStartDate()
		return nil
	case requestbranch.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case requestbranch.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case requestbranch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RequestBranch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestBranchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, requestbranch.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestBranchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case requestbranch.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestBranchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestBranchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestBranchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, requestbranch.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestBranchMutation) EdgeCleared(name string) bool {
	switch name {
	case requestbranch.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestBranchMutation) ClearEdge(name string) error {
	switch name {
	case requestbranch.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestBranch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestBranchMutation) ResetEdge(name string) error {
	switch name {
	case requestbranch.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestBranch edge %s", name)
}

// RequestDocumentMutation represents an operation that mutates the RequestDocument nodes in the graph.
type RequestDocumentMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	document_type     *string
	extraction_status *string
	raw_text          *string
	structured_fields *map[string]string
	score             *int
	addscore          *int
	review_status     *string
	review_notes      *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	request           *uuid.UUID
	clearedrequest    bool
	done              bool
	oldValue          func(context.Context) (*RequestDocument, error)
	predicates        []predicate.RequestDocument
}

var _ ent.Mutation = (*RequestDocumentMutation)(nil)

// requestdocumentOption allows management of the mutation configuration using functional options.
type requestdocumentOption func(*RequestDocumentMutation)

// newRequestDocumentMutation creates new mutation for the RequestDocument entity.
func newRequestDocumentMutation(c config, op Op, opts ...requestdocumentOption) *RequestDocumentMutation {
	m := &RequestDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestDocumentID sets the ID field of the mutation.
func withRequestDocumentID(id uuid.UUID) requestdocumentOption {
	return func(m *RequestDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestDocument
		)
		m.oldValue = func(ctx context.Context) (*RequestDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestDocument sets the old RequestDocument of the mutation.
func withRequestDocument(node *RequestDocument) requestdocumentOption {
	return func(m *RequestDocumentMutation) {
		m.oldValue = func(context.Context) (*RequestDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RequestDocument entities.
func (m *RequestDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *RequestDocumentMutation) SetRequestID(u uuid.UUID) {
	m.request = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RequestDocumentMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RequestDocumentMutation) ResetRequestID() {
	m.request = nil
}

// SetDocumentType sets the "document_type" field.
func (m *RequestDocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *RequestDocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *RequestDocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *RequestDocumentMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *RequestDocumentMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldExtractionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *RequestDocumentMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetRawText sets the "raw_text" field.
func (m *RequestDocumentMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *RequestDocumentMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *RequestDocumentMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[requestdocument.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *RequestDocumentMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[requestdocument.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *RequestDocumentMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, requestdocument.FieldRawText)
}

// SetStructuredFields sets the "structured_fields" field.
func (m *RequestDocumentMutation) SetStructuredFields(value map[string]string) {
	m.structured_fields = &value
}

// StructuredFields returns the value of the "structured_fields" field in the mutation.
func (m *RequestDocumentMutation) StructuredFields() (r map[string]string, exists bool) {
	v := m.structured_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredFields returns the old "structured_fields" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldStructuredFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredFields: %w", err)
	}
	return oldValue.StructuredFields, nil
}

// ClearStructuredFields clears the value of the "structured_fields" field.
func (m *RequestDocumentMutation) ClearStructuredFields() {
	m.structured_fields = nil
	m.clearedFields[requestdocument.FieldStructuredFields] = struct{}{}
}

// StructuredFieldsCleared returns if the "structured_fields" field was cleared in this mutation.
func (m *RequestDocumentMutation) StructuredFieldsCleared() bool {
	_, ok := m.clearedFields[requestdocument.FieldStructuredFields]
	return ok
}

// ResetStructuredFields resets all changes to the "structured_fields" field.
func (m *RequestDocumentMutation) ResetStructuredFields() {
	m.structured_fields = nil
	delete(m.clearedFields, requestdocument.FieldStructuredFields)
}

// SetScore sets the "score" field.
func (m *RequestDocumentMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RequestDocumentMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *RequestDocumentMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RequestDocumentMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RequestDocumentMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetReviewStatus sets the "review_status" field.
func (m *RequestDocumentMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *RequestDocumentMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *RequestDocumentMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetReviewNotes sets the "review_notes" field.
func (m *RequestDocumentMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *RequestDocumentMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldReviewNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *RequestDocumentMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[requestdocument.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *RequestDocumentMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[requestdocument.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *RequestDocumentMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, requestdocument.FieldReviewNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequestDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequestDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RequestDocument entity.
// If the RequestDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequestDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *RequestDocumentMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[requestdocument.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *RequestDocumentMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *RequestDocumentMutation) RequestIDs() (ids []uuid.UUID) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *RequestDocumentMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the RequestDocumentMutation builder.
func (m *RequestDocumentMutation) Where(ps ...predicate.RequestDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestDocument).
func (m *RequestDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestDocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.request != nil {
		fields = append(fields, requestdocument.FieldRequestID)
	}
	if m.document_type != nil {
		fields = append(fields, requestdocument.FieldDocumentType)
	}
	if m.extraction_status != nil {
		fields = append(fields, requestdocument.FieldExtractionStatus)
	}
	if m.raw_text != nil {
		fields = append(fields, requestdocument.FieldRawText)
	}
	if m.structured_fields != nil {
		fields = append(fields, requestdocument.FieldStructuredFields)
	}
	if m.score != nil {
		fields = append(fields, requestdocument.FieldScore)
	}
	if m.review_status != nil {
		fields = append(fields, requestdocument.FieldReviewStatus)
	}
	if m.review_notes != nil {
		fields = append(fields, requestdocument.FieldReviewNotes)
	}
	if m.created_at != nil {
		fields = append(fields, requestdocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, requestdocument.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestdocument.FieldRequestID:
		return m.RequestID()
	case requestdocument.FieldDocumentType:
		return m.DocumentType()
	case requestdocument.FieldExtractionStatus:
		return m.ExtractionStatus()
	case requestdocument.FieldRawText:
		return m.RawText()
	case requestdocument.FieldStructuredFields:
		return m.StructuredFields()
	case requestdocument.FieldScore:
		return m.Score()
	case requestdocument.FieldReviewStatus:
		return m.ReviewStatus()
	case requestdocument.FieldReviewNotes:
		return m.ReviewNotes()
	case requestdocument.FieldCreatedAt:
		return m.CreatedAt()
	case requestdocument.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestdocument.FieldRequestID:
		return m.OldRequestID(ctx)
	case requestdocument.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case requestdocument.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case requestdocument.FieldRawText:
		return m.OldRawText(ctx)
	case requestdocument.FieldStructuredFields:
		return m.OldStructuredFields(ctx)
	case requestdocument.FieldScore:
		return m.OldScore(ctx)
	case requestdocument.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case requestdocument.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case requestdocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case requestdocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RequestDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestdocument.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case requestdocument.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case requestdocument.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case requestdocument.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case requestdocument.FieldStructuredFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredFields(v)
		return nil
	case requestdocument.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case requestdocument.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case requestdocument.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case requestdocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case requestdocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RequestDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, requestdocument.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requestdocument.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requestdocument.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown RequestDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requestdocument.FieldRawText) {
		fields = append(fields, requestdocument.FieldRawText)
	}
	if m.FieldCleared(requestdocument.FieldStructuredFields) {
		fields = append(fields, requestdocument.FieldStructuredFields)
	}
	if m.FieldCleared(requestdocument.FieldReviewNotes) {
		fields = append(fields, requestdocument.FieldReviewNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestDocumentMutation) ClearField(name string) error {
	switch name {
	case requestdocument.FieldRawText:
		m.ClearRawText()
		return nil
	case requestdocument.FieldStructuredFields:
		m.ClearStructuredFields()
		return nil
	case requestdocument.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	}
	return fmt.Errorf("unknown RequestDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestDocumentMutation) ResetField(name string) error {
	switch name {
	case requestdocument.FieldRequestID:
		m.ResetRequestID()
		return nil
	case requestdocument.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case requestdocument.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case requestdocument.FieldRawText:
		m.ResetRawText()
		return nil
	case requestdocument.FieldStructuredFields:
		m.ResetStructuredFields()
		return nil
	case requestdocument.FieldScore:
		m.ResetScore()
		return nil
	case requestdocument.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case requestdocument.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case requestdocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case requestdocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RequestDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, requestdocument.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case requestdocument.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, requestdocument.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case requestdocument.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestDocumentMutation) ClearEdge(name string) error {
	switch name {
	case requestdocument.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestDocumentMutation) ResetEdge(name string) error {
	switch name {
	case requestdocument.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestDocument edge %s", name)
}

// RequestReferenceMutation represents an operation that mutates the RequestReference nodes in the graph.
type RequestReferenceMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	relationship   *string
	phone          *string
	review_status  *string
	review_notes   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *uuid.UUID
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*RequestReference, error)
	predicates     []predicate.RequestReference
}

var _ ent.Mutation = (*RequestReferenceMutation)(nil)

// requestreferenceOption allows management of the mutation configuration using functional options.
type requestreferenceOption func(*RequestReferenceMutation)

// newRequestReferenceMutation creates new mutation for the RequestReference entity.
func newRequestReferenceMutation(c config, op Op, opts ...requestreferenceOption) *RequestReferenceMutation {
	m := &RequestReferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestReference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestReferenceID sets the ID field of the mutation.
func withRequestReferenceID(id uuid.UUID) requestreferenceOption {
	return func(m *RequestReferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestReference
		)
		m.oldValue = func(ctx context.Context) (*RequestReference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestReference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestReference sets the old RequestReference of the mutation.
func withRequestReference(node *RequestReference) requestreferenceOption {
	return func(m *RequestReferenceMutation) {
		m.oldValue = func(context.Context) (*RequestReference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestReferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestReferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RequestReference entities.
func (m *RequestReferenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestReferenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestReferenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestReference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *RequestReferenceMutation) SetRequestID(u uuid.UUID) {
	m.request = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RequestReferenceMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RequestReference entity.
// If the RequestReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestReferenceMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RequestReferenceMutation) ResetRequestID() {
	m.request = nil
}

// SetName sets the "name" field.
func (m *RequestReferenceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RequestReferenceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RequestReference entity.
// If the RequestReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestReferenceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RequestReferenceMutation) ResetName() {
	m.name = nil
}

// SetRelationship sets the "relationship" field.
func (m *RequestReferenceMutation) SetRelationship(s string) {
	m.relationship = &s
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *RequestReferenceMutation) Relationship() (r string, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the RequestReference entity.
// If the RequestReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestReferenceMutation) OldRelationship(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ClearRelationship clears the value of the "relationship" field.
func (m *RequestReferenceMutation) ClearRelationship() {
	m.relationship = nil
	m.clearedFields[requestreference.FieldRelationship] = struct{}{}
}

// RelationshipCleared returns if the "relationship" field was cleared in this mutation.
func (m *RequestReferenceMutation) RelationshipCleared() bool {
	_, ok := m.clearedFields[requestreference.FieldRelationship]
	return ok
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *RequestReferenceMutation) ResetRelationship() {
	m.relationship = nil
	delete(m.clearedFields, requestreference.FieldRelationship)
}

// SetPhone sets the "phone" field.
func (m *RequestReferenceMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *RequestReferenceMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the RequestReference entity.
// If the RequestReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestReferenceMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *RequestReferenceMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[requestreference.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *RequestReferenceMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[requestreference.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *RequestReferenceMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, requestreference.FieldPhone)
}

// SetReviewStatus sets the "review_status" field.
func (m *RequestReferenceMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *RequestReferenceMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the RequestReference entity.
// If the RequestReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestReferenceMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *RequestReferenceMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetReviewNotes sets the "review_notes" field.
func (m *RequestReferenceMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *RequestReferenceMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the RequestReference entity.
// If the RequestReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestReferenceMutation) OldReviewNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *RequestReferenceMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[requestreference.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *RequestReferenceMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[requestreference.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *RequestReferenceMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, requestreference.FieldReviewNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestReferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestReferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RequestReference entity.
// If the RequestReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestReferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestReferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *RequestReferenceMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[requestreference.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *RequestReferenceMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *RequestReferenceMutation) RequestIDs() (ids []uuid.UUID) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *RequestReferenceMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the RequestReferenceMutation builder.
func (m *RequestReferenceMutation) Where(ps ...predicate.RequestReference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestReferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestReferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestReference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestReferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestReferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestReference).
func (m *RequestReferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestReferenceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.request != nil {
		fields = append(fields, requestreference.FieldRequestID)
	}
	if m.name != nil {
		fields = append(fields, requestreference.FieldName)
	}
	if m.relationship != nil {
		fields = append(fields, requestreference.FieldRelationship)
	}
	if m.phone != nil {
		fields = append(fields, requestreference.FieldPhone)
	}
	if m.review_status != nil {
		fields = append(fields, requestreference.FieldReviewStatus)
	}
	if m.review_notes != nil {
		fields = append(fields, requestreference.FieldReviewNotes)
	}
	if m.created_at != nil {
		fields = append(fields, requestreference.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestReferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestreference.FieldRequestID:
		return m.RequestID()
	case requestreference.FieldName:
		return m.Name()
	case requestreference.FieldRelationship:
		return m.Relationship()
	case requestreference.FieldPhone:
		return m.Phone()
	case requestreference.FieldReviewStatus:
		return m.ReviewStatus()
	case requestreference.FieldReviewNotes:
		return m.ReviewNotes()
	case requestreference.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestReferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestreference.FieldRequestID:
		return m.OldRequestID(ctx)
	case requestreference.FieldName:
		return m.OldName(ctx)
	case requestreference.FieldRelationship:
		return m.OldRelationship(ctx)
	case requestreference.FieldPhone:
		return m.OldPhone(ctx)
	case requestreference.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case requestreference.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case requestreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RequestReference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestReferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestreference.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case requestreference.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case requestreference.FieldRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case requestreference.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case requestreference.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case requestreference.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case requestreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RequestReference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestReferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestReferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestReferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RequestReference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestReferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requestreference.FieldRelationship) {
		fields = append(fields, requestreference.FieldRelationship)
	}
	if m.FieldCleared(requestreference.FieldPhone) {
		fields = append(fields, requestreference.FieldPhone)
	}
	if m.FieldCleared(requestreference.FieldReviewNotes) {
		fields = append(fields, requestreference.FieldReviewNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestReferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestReferenceMutation) ClearField(name string) error {
	switch name {
	case requestreference.FieldRelationship:
		m.ClearRelationship()
		return nil
	case requestreference.FieldPhone:
		m.ClearPhone()
		return nil
	case requestreference.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	}
	return fmt.Errorf("unknown RequestReference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestReferenceMutation) ResetField(name string) error {
	switch name {
	case requestreference.FieldRequestID:
		m.ResetRequestID()
		return nil
	case requestreference.FieldName:
		m.ResetName()
		return nil
	case requestreference.FieldRelationship:
		m.ResetRelationship()
		return nil
	case requestreference.FieldPhone:
		m.ResetPhone()
		return nil
	case requestreference.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case requestreference.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case requestreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RequestReference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestReferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, requestreference.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestReferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case requestreference.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestReferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestReferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestReferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, requestreference.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestReferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case requestreference.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestReferenceMutation) ClearEdge(name string) error {
	switch name {
	case requestreference.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestReference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestReferenceMutation) ResetEdge(name string) error {
	switch name {
	case requestreference.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestReference edge %s", name)
}

// RequestRevisionMutation represents an operation that mutates the RequestRevision nodes in the graph.
type RequestRevisionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	section        *string
	approved       *bool
	observation    *string
	actor          *uuid.UUID
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *uuid.UUID
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*RequestRevision, error)
	predicates     []predicate.RequestRevision
}

var _ ent.Mutation = (*RequestRevisionMutation)(nil)

// requestrevisionOption allows management of the mutation configuration using functional options.
type requestrevisionOption func(*RequestRevisionMutation)

// newRequestRevisionMutation creates new mutation for the RequestRevision entity.
func newRequestRevisionMutation(c config, op Op, opts ...requestrevisionOption) *RequestRevisionMutation {
	m := &RequestRevisionMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestRevision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestRevisionID sets the ID field of the mutation.
func withRequestRevisionID(id uuid.UUID) requestrevisionOption {
	return func(m *RequestRevisionMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestRevision
		)
		m.oldValue = func(ctx context.Context) (*RequestRevision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestRevision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestRevision sets the old RequestRevision of the mutation.
func withRequestRevision(node *RequestRevision) requestrevisionOption {
	return func(m *RequestRevisionMutation) {
		m.oldValue = func(context.Context) (*RequestRevision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestRevisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestRevisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RequestRevision entities.
func (m *RequestRevisionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestRevisionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestRevisionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestRevision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *RequestRevisionMutation) SetRequestID(u uuid.UUID) {
	m.request = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RequestRevisionMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RequestRevision entity.
// If the RequestRevision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRevisionMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RequestRevisionMutation) ResetRequestID() {
	m.request = nil
}

// SetSection sets the "section" field.
func (m *RequestRevisionMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *RequestRevisionMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the RequestRevision entity.
// If the RequestRevision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRevisionMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *RequestRevisionMutation) ResetSection() {
	m.section = nil
}

// SetApproved sets the "approved" field.
func (m *RequestRevisionMutation) SetApproved(b bool) {
	m.approved = &b
}

// Approved returns the value of the "approved" field in the mutation.
func (m *RequestRevisionMutation) Approved() (r bool, exists bool) {
	v := m.approved
	if v == nil {
		return
	}
	return *v, true
}

// OldApproved returns the old "approved" field's value of the RequestRevision entity.
// If the RequestRevision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRevisionMutation) OldApproved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproved: %w", err)
	}
	return oldValue.Approved, nil
}

// ResetApproved resets all changes to the "approved" field.
func (m *RequestRevisionMutation) ResetApproved() {
	m.approved = nil
}

// SetObservation sets the "observation" field.
func (m *RequestRevisionMutation) SetObservation(s string) {
	m.observation = &s
}

// Observation returns the value of the "observation" field in the mutation.
func (m *RequestRevisionMutation) Observation() (r string, exists bool) {
	v := m.observation
	if v == nil {
		return
	}
	return *v, true
}

// OldObservation returns the old "observation" field's value of the RequestRevision entity.
// If the RequestRevision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRevisionMutation) OldObservation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservation: %w", err)
	}
	return oldValue.Observation, nil
}

// ClearObservation clears the value of the "observation" field.
func (m *RequestRevisionMutation) ClearObservation() {
	m.observation = nil
	m.clearedFields[requestrevision.FieldObservation] = struct{}{}
}

// ObservationCleared returns if the "observation" field was cleared in this mutation.
func (m *RequestRevisionMutation) ObservationCleared() bool {
	_, ok := m.clearedFields[requestrevision.FieldObservation]
	return ok
}

// ResetObservation resets all changes to the "observation" field.
func (m *RequestRevisionMutation) ResetObservation() {
	m.observation = nil
	delete(m.clearedFields, requestrevision.FieldObservation)
}

// SetActor sets the "actor" field.
func (m *RequestRevisionMutation) SetActor(u uuid.UUID) {
	m.actor = &u
}

// Actor returns the value of the "actor" field in the mutation.
func (m *RequestRevisionMutation) Actor() (r uuid.UUID, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the RequestRevision entity.
// If the RequestRevision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRevisionMutation) OldActor(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *RequestRevisionMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[requestrevision.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *RequestRevisionMutation) ActorCleared() bool {
	_, ok := m.clearedFields[requestrevision.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *RequestRevisionMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, requestrevision.FieldActor)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestRevisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestRevisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RequestRevision entity.
// If the RequestRevision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRevisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestRevisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *RequestRevisionMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[requestrevision.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *RequestRevisionMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *RequestRevisionMutation) RequestIDs() (ids []uuid.UUID) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *RequestRevisionMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the RequestRevisionMutation builder.
func (m *RequestRevisionMutation) Where(ps ...predicate.RequestRevision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestRevisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestRevisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestRevision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestRevisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestRevisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestRevision).
func (m *RequestRevisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestRevisionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.request != nil {
		fields = append(fields, requestrevision.FieldRequestID)
	}
	if m.section != nil {
		fields = append(fields, requestrevision.FieldSection)
	}
	if m.approved != nil {
		fields = append(fields, requestrevision.FieldApproved)
	}
	if m.observation != nil {
		fields = append(fields, requestrevision.FieldObservation)
	}
	if m.actor != nil {
		fields = append(fields, requestrevision.FieldActor)
	}
	if m.created_at != nil {
		fields = append(fields, requestrevision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestRevisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestrevision.FieldRequestID:
		return m.RequestID()
	case requestrevision.FieldSection:
		return m.Section()
	case requestrevision.FieldApproved:
		return m.Approved()
	case requestrevision.FieldObservation:
		return m.Observation()
	case requestrevision.FieldActor:
		return m.Actor()
	case requestrevision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestRevisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestrevision.FieldRequestID:
		return m.OldRequestID(ctx)
	case requestrevision.FieldSection:
		return m.OldSection(ctx)
	case requestrevision.FieldApproved:
		return m.OldApproved(ctx)
	case requestrevision.FieldObservation:
		return m.OldObservation(ctx)
	case requestrevision.FieldActor:
		return m.OldActor(ctx)
	case requestrevision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RequestRevision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestRevisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestrevision.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case requestrevision.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case requestrevision.FieldApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproved(v)
		return nil
	case requestrevision.FieldObservation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservation(v)
		return nil
	case requestrevision.FieldActor:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case requestrevision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RequestRevision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestRevisionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestRevisionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestRevisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RequestRevision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestRevisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requestrevision.FieldObservation) {
		fields = append(fields, requestrevision.FieldObservation)
	}
	if m.FieldCleared(requestrevision.FieldActor) {
		fields = append(fields, requestrevision.FieldActor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestRevisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestRevisionMutation) ClearField(name string) error {
	switch name {
	case requestrevision.FieldObservation:
		m.ClearObservation()
		return nil
	case requestrevision.FieldActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown RequestRevision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestRevisionMutation) ResetField(name string) error {
	switch name {
	case requestrevision.FieldRequestID:
		m.ResetRequestID()
		return nil
	case requestrevision.FieldSection:
		m.ResetSection()
		return nil
	case requestrevision.FieldApproved:
		m.ResetApproved()
		return nil
	case requestrevision.FieldObservation:
		m.ResetObservation()
		return nil
	case requestrevision.FieldActor:
		m.ResetActor()
		return nil
	case requestrevision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RequestRevision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestRevisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, requestrevision.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestRevisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case requestrevision.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestRevisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestRevisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestRevisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, requestrevision.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestRevisionMutation) EdgeCleared(name string) bool {
	switch name {
	case requestrevision.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestRevisionMutation) ClearEdge(name string) error {
	switch name {
	case requestrevision.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestRevision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestRevisionMutation) ResetEdge(name string) error {
	switch name {
	case requestrevision.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown RequestRevision edge %s", name)
}

// TrackingEntryMutation represents an operation that mutates the TrackingEntry nodes in the graph.
type TrackingEntryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	previous_state *string
	new_state      *string
	actor          *uuid.UUID
	comment        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *uuid.UUID
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*TrackingEntry, error)
	predicates     []predicate.TrackingEntry
}

var _ ent.Mutation = (*TrackingEntryMutation)(nil)

// trackingentryOption allows management of the mutation configuration using functional options.
type trackingentryOption func(*TrackingEntryMutation)

// newTrackingEntryMutation creates new mutation for the TrackingEntry entity.
func newTrackingEntryMutation(c config, op Op, opts ...trackingentryOption) *TrackingEntryMutation {
	m := &TrackingEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeTrackingEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrackingEntryID sets the ID field of the mutation.
func withTrackingEntryID(id uuid.UUID) trackingentryOption {
	return func(m *TrackingEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *TrackingEntry
		)
		m.oldValue = func(ctx context.Context) (*TrackingEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrackingEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrackingEntry sets the old TrackingEntry of the mutation.
func withTrackingEntry(node *TrackingEntry) trackingentryOption {
	return func(m *TrackingEntryMutation) {
		m.oldValue = func(context.Context) (*TrackingEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrackingEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrackingEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrackingEntry entities.
func (m *TrackingEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrackingEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrackingEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrackingEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *TrackingEntryMutation) SetRequestID(u uuid.UUID) {
	m.request = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *TrackingEntryMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *TrackingEntryMutation) ResetRequestID() {
	m.request = nil
}

// SetPreviousState sets the "previous_state" field.
func (m *TrackingEntryMutation) SetPreviousState(s string) {
	m.previous_state = &s
}

// PreviousState returns the value of the "previous_state" field in the mutation.
func (m *TrackingEntryMutation) PreviousState() (r string, exists bool) {
	v := m.previous_state
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousState returns the old "previous_state" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldPreviousState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousState: %w", err)
	}
	return oldValue.PreviousState, nil
}

// ResetPreviousState resets all changes to the "previous_state" field.
func (m *TrackingEntryMutation) ResetPreviousState() {
	m.previous_state = nil
}

// SetNewState sets the "new_state" field.
func (m *TrackingEntryMutation) SetNewState(s string) {
	m.new_state = &s
}

// NewState returns the value of the "new_state" field in the mutation.
func (m *TrackingEntryMutation) NewState() (r string, exists bool) {
	v := m.new_state
	if v == nil {
		return
	}
	return *v, true
}

// OldNewState returns the old "new_state" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldNewState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewState: %w", err)
	}
	return oldValue.NewState, nil
}

// ResetNewState resets all changes to the "new_state" field.
func (m *TrackingEntryMutation) ResetNewState() {
	m.new_state = nil
}

// SetActor sets the "actor" field.
func (m *TrackingEntryMutation) SetActor(u uuid.UUID) {
	m.actor = &u
}

// Actor returns the value of the "actor" field in the mutation.
func (m *TrackingEntryMutation) Actor() (r uuid.UUID, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldActor(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *TrackingEntryMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[trackingentry.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *TrackingEntryMutation) ActorCleared() bool {
	_, ok := m.clearedFields[trackingentry.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *TrackingEntryMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, trackingentry.FieldActor)
}

// SetComment sets the "comment" field.
func (m *TrackingEntryMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *TrackingEntryMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *TrackingEntryMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[trackingentry.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *TrackingEntryMutation) CommentCleared() bool {
	_, ok := m.clearedFields[trackingentry.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *TrackingEntryMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, trackingentry.FieldComment)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrackingEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrackingEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrackingEntry entity.
// If the TrackingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackingEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrackingEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *TrackingEntryMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[trackingentry.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *TrackingEntryMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *TrackingEntryMutation) RequestIDs() (ids []uuid.UUID) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *TrackingEntryMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the TrackingEntryMutation builder.
func (m *TrackingEntryMutation) Where(ps ...predicate.TrackingEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrackingEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrackingEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrackingEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrackingEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrackingEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrackingEntry).
func (m *TrackingEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrackingEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.request != nil {
		fields = append(fields, trackingentry.FieldRequestID)
	}
	if m.previous_state != nil {
		fields = append(fields, trackingentry.FieldPreviousState)
	}
	if m.new_state != nil {
		fields = append(fields, trackingentry.FieldNewState)
	}
	if m.actor != nil {
		fields = append(fields, trackingentry.FieldActor)
	}
	if m.comment != nil {
		fields = append(fields, trackingentry.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, trackingentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrackingEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trackingentry.FieldRequestID:
		return m.RequestID()
	case trackingentry.FieldPreviousState:
		return m.PreviousState()
	case trackingentry.FieldNewState:
		return m.NewState()
	case trackingentry.FieldActor:
		return m.Actor()
	case trackingentry.FieldComment:
		return m.Comment()
	case trackingentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrackingEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trackingentry.FieldRequestID:
		return m.OldRequestID(ctx)
	case trackingentry.FieldPreviousState:
		return m.OldPreviousState(ctx)
	case trackingentry.FieldNewState:
		return m.OldNewState(ctx)
	case trackingentry.FieldActor:
		return m.OldActor(ctx)
	case trackingentry.FieldComment:
		return m.OldComment(ctx)
	case trackingentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrackingEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackingEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trackingentry.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case trackingentry.FieldPreviousState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousState(v)
		return nil
	case trackingentry.FieldNewState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewState(v)
		return nil
	case trackingentry.FieldActor:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case trackingentry.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case trackingentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrackingEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrackingEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackingEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrackingEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrackingEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trackingentry.FieldActor) {
		fields = append(fields, trackingentry.FieldActor)
	}
	if m.FieldCleared(trackingentry.FieldComment) {
		fields = append(fields, trackingentry.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrackingEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrackingEntryMutation) ClearField(name string) error {
	switch name {
	case trackingentry.FieldActor:
		m.ClearActor()
		return nil
	case trackingentry.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrackingEntryMutation) ResetField(name string) error {
	switch name {
	case trackingentry.FieldRequestID:
		m.ResetRequestID()
		return nil
	case trackingentry.FieldPreviousState:
		m.ResetPreviousState()
		return nil
	case trackingentry.FieldNewState:
		m.ResetNewState()
		return nil
	case trackingentry.FieldActor:
		m.ResetActor()
		return nil
	case trackingentry.FieldComment:
		m.ResetComment()
		return nil
	case trackingentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrackingEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, trackingentry.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrackingEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trackingentry.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrackingEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrackingEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrackingEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, trackingentry.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrackingEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case trackingentry.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrackingEntryMutation) ClearEdge(name string) error {
	switch name {
	case trackingentry.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrackingEntryMutation) ResetEdge(name string) error {
	switch name {
	case trackingentry.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown TrackingEntry edge %s", name)
}
