// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
)

// DistributorCreate is the builder for creating a Distributor entity.
type DistributorCreate struct {
	config
	mutation *DistributorMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *DistributorCreate) SetRequestID(v uuid.UUID) *DistributorCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetBusinessName sets the "business_name" field.
func (_c *DistributorCreate) SetBusinessName(v string) *DistributorCreate {
	_c.mutation.SetBusinessName(v)
	return _c
}

// SetOwnerName sets the "owner_name" field.
func (_c *DistributorCreate) SetOwnerName(v string) *DistributorCreate {
	_c.mutation.SetOwnerName(v)
	return _c
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableOwnerName(v *string) *DistributorCreate {
	if v != nil {
		_c.SetOwnerName(*v)
	}
	return _c
}

// SetNit sets the "nit" field.
func (_c *DistributorCreate) SetNit(v string) *DistributorCreate {
	_c.mutation.SetNit(v)
	return _c
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableNit(v *string) *DistributorCreate {
	if v != nil {
		_c.SetNit(*v)
	}
	return _c
}

// SetDpi sets the "dpi" field.
func (_c *DistributorCreate) SetDpi(v string) *DistributorCreate {
	_c.mutation.SetDpi(v)
	return _c
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableDpi(v *string) *DistributorCreate {
	if v != nil {
		_c.SetDpi(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *DistributorCreate) SetEmail(v string) *DistributorCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableEmail(v *string) *DistributorCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *DistributorCreate) SetPhone(v string) *DistributorCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *DistributorCreate) SetNillablePhone(v *string) *DistributorCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *DistributorCreate) SetAddress(v string) *DistributorCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableAddress(v *string) *DistributorCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *DistributorCreate) SetDepartment(v string) *DistributorCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableDepartment(v *string) *DistributorCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetMunicipality sets the "municipality" field.
func (_c *DistributorCreate) SetMunicipality(v string) *DistributorCreate {
	_c.mutation.SetMunicipality(v)
	return _c
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableMunicipality(v *string) *DistributorCreate {
	if v != nil {
		_c.SetMunicipality(*v)
	}
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *DistributorCreate) SetBankName(v string) *DistributorCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableBankName(v *string) *DistributorCreate {
	if v != nil {
		_c.SetBankName(*v)
	}
	return _c
}

// SetBankAccount sets the "bank_account" field.
func (_c *DistributorCreate) SetBankAccount(v string) *DistributorCreate {
	_c.mutation.SetBankAccount(v)
	return _c
}

// SetNillableBankAccount sets the "bank_account" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableBankAccount(v *string) *DistributorCreate {
	if v != nil {
		_c.SetBankAccount(*v)
	}
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *DistributorCreate) SetDeleted(v bool) *DistributorCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableDeleted(v *bool) *DistributorCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DistributorCreate) SetCreatedAt(v time.Time) *DistributorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableCreatedAt(v *time.Time) *DistributorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DistributorCreate) SetID(v uuid.UUID) *DistributorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DistributorCreate) SetNillableID(v *uuid.UUID) *DistributorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *DistributorCreate) SetRequest(v *Request) *DistributorCreate {
	return _c.SetRequestID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the DistributorDocument entity by IDs.
func (_c *DistributorCreate) AddDocumentIDs(ids ...uuid.UUID) *DistributorCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the DistributorDocument entity.
func (_c *DistributorCreate) AddDocuments(v ...*DistributorDocument) *DistributorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the DistributorBranch entity by IDs.
func (_c *DistributorCreate) AddBranchIDs(ids ...uuid.UUID) *DistributorCreate {
	_c.mutation.AddBranchIDs(ids...)
	return _c
}

// AddBranches adds the "branches" edges to the DistributorBranch entity.
func (_c *DistributorCreate) AddBranches(v ...*DistributorBranch) *DistributorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBranchIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the DistributorReference entity by IDs.
func (_c *DistributorCreate) AddReferenceIDs(ids ...uuid.UUID) *DistributorCreate {
	_c.mutation.AddReferenceIDs(ids...)
	return _c
}

// AddReferences adds the "references" edges to the DistributorReference entity.
func (_c *DistributorCreate) AddReferences(v ...*DistributorReference) *DistributorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReferenceIDs(ids...)
}

// Mutation returns the DistributorMutation object of the builder.
func (_c *DistributorCreate) Mutation() *DistributorMutation {
	return _c.mutation
}

// Save creates the Distributor in the database.
func (_c *DistributorCreate) Save(ctx context.Context) (*Distributor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DistributorCreate) SaveX(ctx context.Context) *Distributor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DistributorCreate) defaults() {
	if _, ok := _c.mutation.Deleted(); !ok {
		v := distributor.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := distributor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := distributor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DistributorCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "Distributor.request_id"`)}
	}
	if _, ok := _c.mutation.BusinessName(); !ok {
		return &ValidationError{Name: "business_name", err: errors.New(`ent: missing required field "Distributor.business_name"`)}
	}
	if v, ok := _c.mutation.BusinessName(); ok {
		if err := distributor.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Distributor.business_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "Distributor.deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Distributor.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "Distributor.request"`)}
	}
	return nil
}

func (_c *DistributorCreate) sqlSave(ctx context.Context) (*Distributor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DistributorCreate) createSpec() (*Distributor, *sqlgraph.CreateSpec) {
	var (
		_node = &Distributor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(distributor.Table, sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BusinessName(); ok {
		_spec.SetField(distributor.FieldBusinessName, field.TypeString, value)
		_node.BusinessName = value
	}
	if value, ok := _c.mutation.OwnerName(); ok {
		_spec.SetField(distributor.FieldOwnerName, field.TypeString, value)
		_node.OwnerName = value
	}
	if value, ok := _c.mutation.Nit(); ok {
		_spec.SetField(distributor.FieldNit, field.TypeString, value)
		_node.Nit = value
	}
	if value, ok := _c.mutation.Dpi(); ok {
		_spec.SetField(distributor.FieldDpi, field.TypeString, value)
		_node.Dpi = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(distributor.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(distributor.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(distributor.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(distributor.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Municipality(); ok {
		_spec.SetField(distributor.FieldMunicipality, field.TypeString, value)
		_node.Municipality = value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(distributor.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	if value, ok := _c.mutation.BankAccount(); ok {
		_spec.SetField(distributor.FieldBankAccount, field.TypeString, value)
		_node.BankAccount = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(distributor.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(distributor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
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
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BranchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReferencesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DistributorCreateBulk is the builder for creating many Distributor entities in bulk.
type DistributorCreateBulk struct {
	config
	err      error
	builders []*DistributorCreate
}

// Save creates the Distributor entities in the database.
func (_c *DistributorCreateBulk) Save(ctx context.Context) ([]*Distributor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Distributor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DistributorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DistributorCreateBulk) SaveX(ctx context.Context) []*Distributor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
