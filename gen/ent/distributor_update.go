// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
)

// DistributorUpdate is the builder for updating Distributor entities.
type DistributorUpdate struct {
	config
	hooks    []Hook
	mutation *DistributorMutation
}

// Where appends a list predicates to the DistributorUpdate builder.
func (_u *DistributorUpdate) Where(ps ...predicate.Distributor) *DistributorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *DistributorUpdate) SetRequestID(v uuid.UUID) *DistributorUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableRequestID(v *uuid.UUID) *DistributorUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *DistributorUpdate) SetBusinessName(v string) *DistributorUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableBusinessName(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *DistributorUpdate) SetOwnerName(v string) *DistributorUpdate {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableOwnerName(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *DistributorUpdate) ClearOwnerName() *DistributorUpdate {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetNit sets the "nit" field.
func (_u *DistributorUpdate) SetNit(v string) *DistributorUpdate {
	_u.mutation.SetNit(v)
	return _u
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableNit(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetNit(*v)
	}
	return _u
}

// ClearNit clears the value of the "nit" field.
func (_u *DistributorUpdate) ClearNit() *DistributorUpdate {
	_u.mutation.ClearNit()
	return _u
}

// SetDpi sets the "dpi" field.
func (_u *DistributorUpdate) SetDpi(v string) *DistributorUpdate {
	_u.mutation.SetDpi(v)
	return _u
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableDpi(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetDpi(*v)
	}
	return _u
}

// ClearDpi clears the value of the "dpi" field.
func (_u *DistributorUpdate) ClearDpi() *DistributorUpdate {
	_u.mutation.ClearDpi()
	return _u
}

// SetEmail sets the "email" field.
func (_u *DistributorUpdate) SetEmail(v string) *DistributorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableEmail(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *DistributorUpdate) ClearEmail() *DistributorUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DistributorUpdate) SetPhone(v string) *DistributorUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillablePhone(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *DistributorUpdate) ClearPhone() *DistributorUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *DistributorUpdate) SetAddress(v string) *DistributorUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableAddress(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *DistributorUpdate) ClearAddress() *DistributorUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *DistributorUpdate) SetDepartment(v string) *DistributorUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableDepartment(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *DistributorUpdate) ClearDepartment() *DistributorUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetMunicipality sets the "municipality" field.
func (_u *DistributorUpdate) SetMunicipality(v string) *DistributorUpdate {
	_u.mutation.SetMunicipality(v)
	return _u
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableMunicipality(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetMunicipality(*v)
	}
	return _u
}

// ClearMunicipality clears the value of the "municipality" field.
func (_u *DistributorUpdate) ClearMunicipality() *DistributorUpdate {
	_u.mutation.ClearMunicipality()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *DistributorUpdate) SetBankName(v string) *DistributorUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableBankName(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *DistributorUpdate) ClearBankName() *DistributorUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetBankAccount sets the "bank_account" field.
func (_u *DistributorUpdate) SetBankAccount(v string) *DistributorUpdate {
	_u.mutation.SetBankAccount(v)
	return _u
}

// SetNillableBankAccount sets the "bank_account" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableBankAccount(v *string) *DistributorUpdate {
	if v != nil {
		_u.SetBankAccount(*v)
	}
	return _u
}

// ClearBankAccount clears the value of the "bank_account" field.
func (_u *DistributorUpdate) ClearBankAccount() *DistributorUpdate {
	_u.mutation.ClearBankAccount()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *DistributorUpdate) SetDeleted(v bool) *DistributorUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *DistributorUpdate) SetNillableDeleted(v *bool) *DistributorUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *DistributorUpdate) SetRequest(v *Request) *DistributorUpdate {
	return _u.SetRequestID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the DistributorDocument entity by IDs.
func (_u *DistributorUpdate) AddDocumentIDs(ids ...uuid.UUID) *DistributorUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the DistributorDocument entity.
func (_u *DistributorUpdate) AddDocuments(v ...*DistributorDocument) *DistributorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the DistributorBranch entity by IDs.
func (_u *DistributorUpdate) AddBranchIDs(ids ...uuid.UUID) *DistributorUpdate {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the DistributorBranch entity.
func (_u *DistributorUpdate) AddBranches(v ...*DistributorBranch) *DistributorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the DistributorReference entity by IDs.
func (_u *DistributorUpdate) AddReferenceIDs(ids ...uuid.UUID) *DistributorUpdate {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the DistributorReference entity.
func (_u *DistributorUpdate) AddReferences(v ...*DistributorReference) *DistributorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// Mutation returns the DistributorMutation object of the builder.
func (_u *DistributorUpdate) Mutation() *DistributorMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *DistributorUpdate) ClearRequest() *DistributorUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// ClearDocuments clears all "documents" edges to the DistributorDocument entity.
func (_u *DistributorUpdate) ClearDocuments() *DistributorUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to DistributorDocument entities by IDs.
func (_u *DistributorUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *DistributorUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to DistributorDocument entities.
func (_u *DistributorUpdate) RemoveDocuments(v ...*DistributorDocument) *DistributorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearBranches clears all "branches" edges to the DistributorBranch entity.
func (_u *DistributorUpdate) ClearBranches() *DistributorUpdate {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to DistributorBranch entities by IDs.
func (_u *DistributorUpdate) RemoveBranchIDs(ids ...uuid.UUID) *DistributorUpdate {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to DistributorBranch entities.
func (_u *DistributorUpdate) RemoveBranches(v ...*DistributorBranch) *DistributorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// ClearReferences clears all "references" edges to the DistributorReference entity.
func (_u *DistributorUpdate) ClearReferences() *DistributorUpdate {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to DistributorReference entities by IDs.
func (_u *DistributorUpdate) RemoveReferenceIDs(ids ...uuid.UUID) *DistributorUpdate {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to DistributorReference entities.
func (_u *DistributorUpdate) RemoveReferences(v ...*DistributorReference) *DistributorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DistributorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DistributorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorUpdate) check() error {
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := distributor.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Distributor.business_name": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Distributor.request"`)
	}
	return nil
}

func (_u *DistributorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributor.Table, distributor.Columns, sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(distributor.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(distributor.FieldOwnerName, field.TypeString, value)
	}
	if _u.mutation.OwnerNameCleared() {
		_spec.ClearField(distributor.FieldOwnerName, field.TypeString)
	}
	if value, ok := _u.mutation.Nit(); ok {
		_spec.SetField(distributor.FieldNit, field.TypeString, value)
	}
	if _u.mutation.NitCleared() {
		_spec.ClearField(distributor.FieldNit, field.TypeString)
	}
	if value, ok := _u.mutation.Dpi(); ok {
		_spec.SetField(distributor.FieldDpi, field.TypeString, value)
	}
	if _u.mutation.DpiCleared() {
		_spec.ClearField(distributor.FieldDpi, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(distributor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(distributor.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(distributor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(distributor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(distributor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(distributor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(distributor.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(distributor.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Municipality(); ok {
		_spec.SetField(distributor.FieldMunicipality, field.TypeString, value)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(distributor.FieldMunicipality, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(distributor.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(distributor.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccount(); ok {
		_spec.SetField(distributor.FieldBankAccount, field.TypeString, value)
	}
	if _u.mutation.BankAccountCleared() {
		_spec.ClearField(distributor.FieldBankAccount, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(distributor.FieldDeleted, field.TypeBool, value)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   distributor.RequestTable,
			Columns: []string{distributor.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   distributor.RequestTable,
			Columns: []string{distributor.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.DocumentsTable,
			Columns: []string{distributor.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.DocumentsTable,
			Columns: []string{distributor.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.DocumentsTable,
			Columns: []string{distributor.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.BranchesTable,
			Columns: []string{distributor.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.BranchesTable,
			Columns: []string{distributor.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.BranchesTable,
			Columns: []string{distributor.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.ReferencesTable,
			Columns: []string{distributor.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.ReferencesTable,
			Columns: []string{distributor.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.ReferencesTable,
			Columns: []string{distributor.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DistributorUpdateOne is the builder for updating a single Distributor entity.
type DistributorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DistributorMutation
}

// SetRequestID sets the "request_id" field.
func (_u *DistributorUpdateOne) SetRequestID(v uuid.UUID) *DistributorUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableRequestID(v *uuid.UUID) *DistributorUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *DistributorUpdateOne) SetBusinessName(v string) *DistributorUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableBusinessName(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *DistributorUpdateOne) SetOwnerName(v string) *DistributorUpdateOne {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableOwnerName(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *DistributorUpdateOne) ClearOwnerName() *DistributorUpdateOne {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetNit sets the "nit" field.
func (_u *DistributorUpdateOne) SetNit(v string) *DistributorUpdateOne {
	_u.mutation.SetNit(v)
	return _u
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableNit(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetNit(*v)
	}
	return _u
}

// ClearNit clears the value of the "nit" field.
func (_u *DistributorUpdateOne) ClearNit() *DistributorUpdateOne {
	_u.mutation.ClearNit()
	return _u
}

// SetDpi sets the "dpi" field.
func (_u *DistributorUpdateOne) SetDpi(v string) *DistributorUpdateOne {
	_u.mutation.SetDpi(v)
	return _u
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableDpi(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetDpi(*v)
	}
	return _u
}

// ClearDpi clears the value of the "dpi" field.
func (_u *DistributorUpdateOne) ClearDpi() *DistributorUpdateOne {
	_u.mutation.ClearDpi()
	return _u
}

// SetEmail sets the "email" field.
func (_u *DistributorUpdateOne) SetEmail(v string) *DistributorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableEmail(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *DistributorUpdateOne) ClearEmail() *DistributorUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DistributorUpdateOne) SetPhone(v string) *DistributorUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillablePhone(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *DistributorUpdateOne) ClearPhone() *DistributorUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *DistributorUpdateOne) SetAddress(v string) *DistributorUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableAddress(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *DistributorUpdateOne) ClearAddress() *DistributorUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *DistributorUpdateOne) SetDepartment(v string) *DistributorUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableDepartment(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *DistributorUpdateOne) ClearDepartment() *DistributorUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetMunicipality sets the "municipality" field.
func (_u *DistributorUpdateOne) SetMunicipality(v string) *DistributorUpdateOne {
	_u.mutation.SetMunicipality(v)
	return _u
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableMunicipality(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetMunicipality(*v)
	}
	return _u
}

// ClearMunicipality clears the value of the "municipality" field.
func (_u *DistributorUpdateOne) ClearMunicipality() *DistributorUpdateOne {
	_u.mutation.ClearMunicipality()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *DistributorUpdateOne) SetBankName(v string) *DistributorUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableBankName(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *DistributorUpdateOne) ClearBankName() *DistributorUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetBankAccount sets the "bank_account" field.
func (_u *DistributorUpdateOne) SetBankAccount(v string) *DistributorUpdateOne {
	_u.mutation.SetBankAccount(v)
	return _u
}

// SetNillableBankAccount sets the "bank_account" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableBankAccount(v *string) *DistributorUpdateOne {
	if v != nil {
		_u.SetBankAccount(*v)
	}
	return _u
}

// ClearBankAccount clears the value of the "bank_account" field.
func (_u *DistributorUpdateOne) ClearBankAccount() *DistributorUpdateOne {
	_u.mutation.ClearBankAccount()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *DistributorUpdateOne) SetDeleted(v bool) *DistributorUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *DistributorUpdateOne) SetNillableDeleted(v *bool) *DistributorUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *DistributorUpdateOne) SetRequest(v *Request) *DistributorUpdateOne {
	return _u.SetRequestID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the DistributorDocument entity by IDs.
func (_u *DistributorUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *DistributorUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the DistributorDocument entity.
func (_u *DistributorUpdateOne) AddDocuments(v ...*DistributorDocument) *DistributorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the DistributorBranch entity by IDs.
func (_u *DistributorUpdateOne) AddBranchIDs(ids ...uuid.UUID) *DistributorUpdateOne {
	_u.mutation.AddBranchIDs(ids...)
	return _u
}

// AddBranches adds the "branches" edges to the DistributorBranch entity.
func (_u *DistributorUpdateOne) AddBranches(v ...*DistributorBranch) *DistributorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the DistributorReference entity by IDs.
func (_u *DistributorUpdateOne) AddReferenceIDs(ids ...uuid.UUID) *DistributorUpdateOne {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the DistributorReference entity.
func (_u *DistributorUpdateOne) AddReferences(v ...*DistributorReference) *DistributorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// Mutation returns the DistributorMutation object of the builder.
func (_u *DistributorUpdateOne) Mutation() *DistributorMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *DistributorUpdateOne) ClearRequest() *DistributorUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// ClearDocuments clears all "documents" edges to the DistributorDocument entity.
func (_u *DistributorUpdateOne) ClearDocuments() *DistributorUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to DistributorDocument entities by IDs.
func (_u *DistributorUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *DistributorUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to DistributorDocument entities.
func (_u *DistributorUpdateOne) RemoveDocuments(v ...*DistributorDocument) *DistributorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearBranches clears all "branches" edges to the DistributorBranch entity.
func (_u *DistributorUpdateOne) ClearBranches() *DistributorUpdateOne {
	_u.mutation.ClearBranches()
	return _u
}

// RemoveBranchIDs removes the "branches" edge to DistributorBranch entities by IDs.
func (_u *DistributorUpdateOne) RemoveBranchIDs(ids ...uuid.UUID) *DistributorUpdateOne {
	_u.mutation.RemoveBranchIDs(ids...)
	return _u
}

// RemoveBranches removes "branches" edges to DistributorBranch entities.
func (_u *DistributorUpdateOne) RemoveBranches(v ...*DistributorBranch) *DistributorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchIDs(ids...)
}

// ClearReferences clears all "references" edges to the DistributorReference entity.
func (_u *DistributorUpdateOne) ClearReferences() *DistributorUpdateOne {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to DistributorReference entities by IDs.
func (_u *DistributorUpdateOne) RemoveReferenceIDs(ids ...uuid.UUID) *DistributorUpdateOne {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to DistributorReference entities.
func (_u *DistributorUpdateOne) RemoveReferences(v ...*DistributorReference) *DistributorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// Where appends a list predicates to the DistributorUpdate builder.
func (_u *DistributorUpdateOne) Where(ps ...predicate.Distributor) *DistributorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DistributorUpdateOne) Select(field string, fields ...string) *DistributorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Distributor entity.
func (_u *DistributorUpdateOne) Save(ctx context.Context) (*Distributor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorUpdateOne) SaveX(ctx context.Context) *Distributor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DistributorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorUpdateOne) check() error {
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := distributor.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Distributor.business_name": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Distributor.request"`)
	}
	return nil
}

func (_u *DistributorUpdateOne) sqlSave(ctx context.Context) (_node *Distributor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributor.Table, distributor.Columns, sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Distributor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distributor.FieldID)
		for _, f := range fields {
			if !distributor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != distributor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(distributor.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerName(); ok {
		_spec.SetField(distributor.FieldOwnerName, field.TypeString, value)
	}
	if _u.mutation.OwnerNameCleared() {
		_spec.ClearField(distributor.FieldOwnerName, field.TypeString)
	}
	if value, ok := _u.mutation.Nit(); ok {
		_spec.SetField(distributor.FieldNit, field.TypeString, value)
	}
	if _u.mutation.NitCleared() {
		_spec.ClearField(distributor.FieldNit, field.TypeString)
	}
	if value, ok := _u.mutation.Dpi(); ok {
		_spec.SetField(distributor.FieldDpi, field.TypeString, value)
	}
	if _u.mutation.DpiCleared() {
		_spec.ClearField(distributor.FieldDpi, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(distributor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(distributor.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(distributor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(distributor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(distributor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(distributor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(distributor.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(distributor.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Municipality(); ok {
		_spec.SetField(distributor.FieldMunicipality, field.TypeString, value)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(distributor.FieldMunicipality, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(distributor.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(distributor.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.BankAccount(); ok {
		_spec.SetField(distributor.FieldBankAccount, field.TypeString, value)
	}
	if _u.mutation.BankAccountCleared() {
		_spec.ClearField(distributor.FieldBankAccount, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(distributor.FieldDeleted, field.TypeBool, value)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   distributor.RequestTable,
			Columns: []string{distributor.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   distributor.RequestTable,
			Columns: []string{distributor.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.DocumentsTable,
			Columns: []string{distributor.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.DocumentsTable,
			Columns: []string{distributor.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.DocumentsTable,
			Columns: []string{distributor.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.BranchesTable,
			Columns: []string{distributor.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchesIDs(); len(nodes) > 0 && !_u.mutation.BranchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.BranchesTable,
			Columns: []string{distributor.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.BranchesTable,
			Columns: []string{distributor.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.ReferencesTable,
			Columns: []string{distributor.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.ReferencesTable,
			Columns: []string{distributor.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   distributor.ReferencesTable,
			Columns: []string{distributor.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Distributor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
