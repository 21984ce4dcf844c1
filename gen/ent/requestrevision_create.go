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
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
)

// RequestRevisionCreate is the builder for creating a RequestRevision entity.
type RequestRevisionCreate struct {
	config
	mutation *RequestRevisionMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *RequestRevisionCreate) SetRequestID(v uuid.UUID) *RequestRevisionCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *RequestRevisionCreate) SetSection(v string) *RequestRevisionCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetApproved sets the "approved" field.
func (_c *RequestRevisionCreate) SetApproved(v bool) *RequestRevisionCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetObservation sets the "observation" field.
func (_c *RequestRevisionCreate) SetObservation(v string) *RequestRevisionCreate {
	_c.mutation.SetObservation(v)
	return _c
}

// SetNillableObservation sets the "observation" field if the given value is not nil.
func (_c *RequestRevisionCreate) SetNillableObservation(v *string) *RequestRevisionCreate {
	if v != nil {
		_c.SetObservation(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *RequestRevisionCreate) SetActor(v uuid.UUID) *RequestRevisionCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *RequestRevisionCreate) SetNillableActor(v *uuid.UUID) *RequestRevisionCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestRevisionCreate) SetCreatedAt(v time.Time) *RequestRevisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestRevisionCreate) SetNillableCreatedAt(v *time.Time) *RequestRevisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestRevisionCreate) SetID(v uuid.UUID) *RequestRevisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequestRevisionCreate) SetNillableID(v *uuid.UUID) *RequestRevisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *RequestRevisionCreate) SetRequest(v *Request) *RequestRevisionCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the RequestRevisionMutation object of the builder.
func (_c *RequestRevisionCreate) Mutation() *RequestRevisionMutation {
	return _c.mutation
}

// Save creates the RequestRevision in the database.
func (_c *RequestRevisionCreate) Save(ctx context.Context) (*RequestRevision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestRevisionCreate) SaveX(ctx context.Context) *RequestRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestRevisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestRevisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestRevisionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requestrevision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := requestrevision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestRevisionCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestRevision.request_id"`)}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "RequestRevision.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := requestrevision.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "RequestRevision.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`ent: missing required field "RequestRevision.approved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequestRevision.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "RequestRevision.request"`)}
	}
	return nil
}

func (_c *RequestRevisionCreate) sqlSave(ctx context.Context) (*RequestRevision, error) {
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

func (_c *RequestRevisionCreate) createSpec() (*RequestRevision, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestRevision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestrevision.Table, sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(requestrevision.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(requestrevision.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.Observation(); ok {
		_spec.SetField(requestrevision.FieldObservation, field.TypeString, value)
		_node.Observation = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(requestrevision.FieldActor, field.TypeUUID, value)
		_node.Actor = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestrevision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestrevision.RequestTable,
			Columns: []string{requestrevision.RequestColumn},
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

// RequestRevisionCreateBulk is the builder for creating many RequestRevision entities in bulk.
type RequestRevisionCreateBulk struct {
	config
	err      error
	builders []*RequestRevisionCreate
}

// Save creates the RequestRevision entities in the database.
func (_c *RequestRevisionCreateBulk) Save(ctx context.Context) ([]*RequestRevision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestRevision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestRevisionMutation)
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
func (_c *RequestRevisionCreateBulk) SaveX(ctx context.Context) []*RequestRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestRevisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestRevisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
