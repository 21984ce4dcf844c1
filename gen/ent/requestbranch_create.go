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
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
)

// RequestBranchCreate is the builder for creating a RequestBranch entity.
type RequestBranchCreate struct {
	config
	mutation *RequestBranchMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *RequestBranchCreate) SetRequestID(v uuid.UUID) *RequestBranchCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RequestBranchCreate) SetName(v string) *RequestBranchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *RequestBranchCreate) SetAddress(v string) *RequestBranchCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableAddress(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *RequestBranchCreate) SetDepartment(v string) *RequestBranchCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableDepartment(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetMunicipality sets the "municipality" field.
func (_c *RequestBranchCreate) SetMunicipality(v string) *RequestBranchCreate {
	_c.mutation.SetMunicipality(v)
	return _c
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableMunicipality(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetMunicipality(*v)
	}
	return _c
}

// SetZone sets the "zone" field.
func (_c *RequestBranchCreate) SetZone(v string) *RequestBranchCreate {
	_c.mutation.SetZone(v)
	return _c
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableZone(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetZone(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequestBranchCreate) SetStatus(v string) *RequestBranchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableStatus(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *RequestBranchCreate) SetStartDate(v string) *RequestBranchCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableStartDate(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *RequestBranchCreate) SetReviewStatus(v string) *RequestBranchCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableReviewStatus(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *RequestBranchCreate) SetReviewNotes(v string) *RequestBranchCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableReviewNotes(v *string) *RequestBranchCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestBranchCreate) SetCreatedAt(v time.Time) *RequestBranchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableCreatedAt(v *time.Time) *RequestBranchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestBranchCreate) SetID(v uuid.UUID) *RequestBranchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequestBranchCreate) SetNillableID(v *uuid.UUID) *RequestBranchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *RequestBranchCreate) SetRequest(v *Request) *RequestBranchCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the RequestBranchMutation object of the builder.
func (_c *RequestBranchCreate) Mutation() *RequestBranchMutation {
	return _c.mutation
}

// Save creates the RequestBranch in the database.
func (_c *RequestBranchCreate) Save(ctx context.Context) (*RequestBranch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestBranchCreate) SaveX(ctx context.Context) *RequestBranch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestBranchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestBranchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestBranchCreate) defaults() {
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := requestbranch.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requestbranch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := requestbranch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestBranchCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestBranch.request_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RequestBranch.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := requestbranch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestBranch.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "RequestBranch.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := requestbranch.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestBranch.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequestBranch.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "RequestBranch.request"`)}
	}
	return nil
}

func (_c *RequestBranchCreate) sqlSave(ctx context.Context) (*RequestBranch, error) {
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

func (_c *RequestBranchCreate) createSpec() (*RequestBranch, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestBranch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestbranch.Table, sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(requestbranch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(requestbranch.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(requestbranch.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Municipality(); ok {
		_spec.SetField(requestbranch.FieldMunicipality, field.TypeString, value)
		_node.Municipality = value
	}
	if value, ok := _c.mutation.Zone(); ok {
		_spec.SetField(requestbranch.FieldZone, field.TypeString, value)
		_node.Zone = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(requestbranch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(requestbranch.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(requestbranch.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(requestbranch.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestbranch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestbranch.RequestTable,
			Columns: []string{requestbranch.RequestColumn},
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
	return _node, _spec
}

// RequestBranchCreateBulk is the builder for creating many RequestBranch entities in bulk.
type RequestBranchCreateBulk struct {
	config
	err      error
	builders []*RequestBranchCreate
}

// Save creates the RequestBranch entities in the database.
func (_c *RequestBranchCreateBulk) Save(ctx context.Context) ([]*RequestBranch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestBranch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestBranchMutation)
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
func (_c *RequestBranchCreateBulk) SaveX(ctx context.Context) []*RequestBranch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestBranchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestBranchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
