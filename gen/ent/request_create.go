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
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
}

// SetState sets the "state" field.
func (_c *RequestCreate) SetState(v string) *RequestCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *RequestCreate) SetNillableState(v *string) *RequestCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAssignedReviewer sets the "assigned_reviewer" field.
func (_c *RequestCreate) SetAssignedReviewer(v uuid.UUID) *RequestCreate {
	_c.mutation.SetAssignedReviewer(v)
	return _c
}

// SetNillableAssignedReviewer sets the "assigned_reviewer" field if the given value is not nil.
func (_c *RequestCreate) SetNillableAssignedReviewer(v *uuid.UUID) *RequestCreate {
	if v != nil {
		_c.SetAssignedReviewer(*v)
	}
	return _c
}

// SetBusinessName sets the "business_name" field.
func (_c *RequestCreate) SetBusinessName(v string) *RequestCreate {
	_c.mutation.SetBusinessName(v)
	return _c
}

// SetOwnerName sets the "owner_name" field.
func (_c *RequestCreate) SetOwnerName(v string) *RequestCreate {
	_c.mutation.SetOwnerName(v)
	return _c
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_c *RequestCreate) SetNillableOwnerName(v *string) *RequestCreate {
	if v != nil {
		_c.SetOwnerName(*v)
	}
	return _c
}

// SetNit sets the "nit" field.
func (_c *RequestCreate) SetNit(v string) *RequestCreate {
	_c.mutation.SetNit(v)
	return _c
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_c *RequestCreate) SetNillableNit(v *string) *RequestCreate {
	if v != nil {
		_c.SetNit(*v)
	}
	return _c
}

// SetDpi sets the "dpi" field.
func (_c *RequestCreate) SetDpi(v string) *RequestCreate {
	_c.mutation.SetDpi(v)
	return _c
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDpi(v *string) *RequestCreate {
	if v != nil {
		_c.SetDpi(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *RequestCreate) SetEmail(v string) *RequestCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *RequestCreate) SetNillableEmail(v *string) *RequestCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *RequestCreate) SetPhone(v string) *RequestCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePhone(v *string) *RequestCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *RequestCreate) SetAddress(v string) *RequestCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *RequestCreate) SetNillableAddress(v *string) *RequestCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *RequestCreate) SetDepartment(v string) *RequestCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDepartment(v *string) *RequestCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetMunicipality sets the "municipality" field.
func (_c *RequestCreate) SetMunicipality(v string) *RequestCreate {
	_c.mutation.SetMunicipality(v)
	return _c
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_c *RequestCreate) SetNillableMunicipality(v *string) *RequestCreate {
	if v != nil {
		_c.SetMunicipality(*v)
	}
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *RequestCreate) SetBankName(v string) *RequestCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_c *RequestCreate) SetNillableBankName(v *string) *RequestCreate {
	if v != nil {
		_c.SetBankName(*v)
	}
	return _c
}

// SetBankAccount sets the "bank_account" field.
func (_c *RequestCreate) SetBankAccount(v string) *RequestCreate {
	_c.mutation.SetBankAccount(v)
	return _c
}

// SetNillableBankAccount sets the "bank_account" field if the given value is not nil.
func (_c *RequestCreate) SetNillableBankAccount(v *string) *RequestCreate {
	if v != nil {
		_c.SetBankAccount(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *RequestCreate) SetExtractedData(v map[string]map[string]string) *RequestCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetMatchScore sets the "match_score" field.
func (_c *RequestCreate) SetMatchScore(v int) *RequestCreate {
	_c.mutation.SetMatchScore(v)
	return _c
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_c *RequestCreate) SetNillableMatchScore(v *int) *RequestCreate {
	if v != nil {
		_c.SetMatchScore(*v)
	}
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *RequestCreate) SetDeleted(v bool) *RequestCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDeleted(v *bool) *RequestCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestCreate) SetCreatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCreatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestCreate) SetUpdatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableUpdatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestCreate) SetID(v uuid.UUID) *RequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableID(v *uuid.UUID) *RequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the RequestDocument entity by IDs.
func (_c *RequestCreate) AddDocumentIDs(ids ...uuid.UUID) *RequestCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the RequestDocument entity.
func (_c *RequestCreate) AddDocuments(v ...*RequestDocument) *RequestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddBranchIDs adds the "branches" edge to the RequestBranch entity by IDs.
func (_c *RequestCreate) AddBranchIDs(ids ...uuid.UUID) *RequestCreate {
	_c.mutation.AddBranchIDs(ids...)
	return _c
}

// AddBranches adds the "branches" edges to the RequestBranch entity.
func (_c *RequestCreate) AddBranches(v ...*RequestBranch) *RequestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBranchIDs(ids...)
}

// AddReferenceIDs adds the "references" edge to the RequestReference entity by IDs.
func (_c *RequestCreate) AddReferenceIDs(ids ...uuid.UUID) *RequestCreate {
	_c.mutation.AddReferenceIDs(ids...)
	return _c
}

// AddReferences adds the "references" edges to the RequestReference entity.
func (_c *RequestCreate) AddReferences(v ...*RequestReference) *RequestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReferenceIDs(ids...)
}

// AddRevisionIDs adds the "revisions" edge to the RequestRevision entity by IDs.
func (_c *RequestCreate) AddRevisionIDs(ids ...uuid.UUID) *RequestCreate {
	_c.mutation.AddRevisionIDs(ids...)
	return _c
}

// AddRevisions adds the "revisions" edges to the RequestRevision entity.
func (_c *RequestCreate) AddRevisions(v ...*RequestRevision) *RequestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRevisionIDs(ids...)
}

// AddTrackingIDs adds the "tracking" edge to the TrackingEntry entity by IDs.
func (_c *RequestCreate) AddTrackingIDs(ids ...uuid.UUID) *RequestCreate {
	_c.mutation.AddTrackingIDs(ids...)
	return _c
}

// AddTracking adds the "tracking" edges to the TrackingEntry entity.
func (_c *RequestCreate) AddTracking(v ...*TrackingEntry) *RequestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrackingIDs(ids...)
}

// SetDistributorID sets the "distributor" edge to the Distributor entity by ID.
func (_c *RequestCreate) SetDistributorID(id uuid.UUID) *RequestCreate {
	_c.mutation.SetDistributorID(id)
	return _c
}

// SetNillableDistributorID sets the "distributor" edge to the Distributor entity by ID if the given value is not nil.
func (_c *RequestCreate) SetNillableDistributorID(id *uuid.UUID) *RequestCreate {
	if id != nil {
		_c = _c.SetDistributorID(*id)
	}
	return _c
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_c *RequestCreate) SetDistributor(v *Distributor) *RequestCreate {
	return _c.SetDistributorID(v.ID)
}

// Mutation returns the RequestMutation object of the builder.
func (_c *RequestCreate) Mutation() *RequestMutation {
	return _c.mutation
}

// Save creates the Request in the database.
func (_c *RequestCreate) Save(ctx context.Context) (*Request, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := request.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		v := request.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := request.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := request.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := request.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Request.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessName(); !ok {
		return &ValidationError{Name: "business_name", err: errors.New(`ent: missing required field "Request.business_name"`)}
	}
	if v, ok := _c.mutation.BusinessName(); ok {
		if err := request.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Request.business_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "Request.deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Request.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Request.updated_at"`)}
	}
	return nil
}

func (_c *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
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

func (_c *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.AssignedReviewer(); ok {
		_spec.SetField(request.FieldAssignedReviewer, field.TypeUUID, value)
		_node.AssignedReviewer = &value
	}
	if value, ok := _c.mutation.BusinessName(); ok {
		_spec.SetField(request.FieldBusinessName, field.TypeString, value)
		_node.BusinessName = value
	}
	if value, ok := _c.mutation.OwnerName(); ok {
		_spec.SetField(request.FieldOwnerName, field.TypeString, value)
		_node.OwnerName = value
	}
	if value, ok := _c.mutation.Nit(); ok {
		_spec.SetField(request.FieldNit, field.TypeString, value)
		_node.Nit = value
	}
	if value, ok := _c.mutation.Dpi(); ok {
		_spec.SetField(request.FieldDpi, field.TypeString, value)
		_node.Dpi = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(request.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(request.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(request.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(request.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Municipality(); ok {
		_spec.SetField(request.FieldMunicipality, field.TypeString, value)
		_node.Municipality = value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(request.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	if value, ok := _c.mutation.BankAccount(); ok {
		_spec.SetField(request.FieldBankAccount, field.TypeString, value)
		_node.BankAccount = value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(request.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.MatchScore(); ok {
		_spec.SetField(request.FieldMatchScore, field.TypeInt, value)
		_node.MatchScore = &value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(request.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.DocumentsTable,
			Columns: []string{request.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID),
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
			Table:   request.BranchesTable,
			Columns: []string{request.BranchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID),
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
			Table:   request.ReferencesTable,
			Columns: []string{request.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.RevisionsTable,
			Columns: []string{request.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TrackingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TrackingTable,
			Columns: []string{request.TrackingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DistributorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.DistributorTable,
			Columns: []string{request.DistributorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
}

// Save creates the Request entities in the database.
func (_c *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Request, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
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
func (_c *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
