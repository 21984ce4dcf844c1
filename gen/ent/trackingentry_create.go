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
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

// TrackingEntryCreate is the builder for creating a TrackingEntry entity.
type TrackingEntryCreate struct {
	config
	mutation *TrackingEntryMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *TrackingEntryCreate) SetRequestID(v uuid.UUID) *TrackingEntryCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetPreviousState sets the "previous_state" field.
func (_c *TrackingEntryCreate) SetPreviousState(v string) *TrackingEntryCreate {
	_c.mutation.SetPreviousState(v)
	return _c
}

// SetNewState sets the "new_state" field.
func (_c *TrackingEntryCreate) SetNewState(v string) *TrackingEntryCreate {
	_c.mutation.SetNewState(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *TrackingEntryCreate) SetActor(v uuid.UUID) *TrackingEntryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *TrackingEntryCreate) SetNillableActor(v *uuid.UUID) *TrackingEntryCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *TrackingEntryCreate) SetComment(v string) *TrackingEntryCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *TrackingEntryCreate) SetNillableComment(v *string) *TrackingEntryCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrackingEntryCreate) SetCreatedAt(v time.Time) *TrackingEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrackingEntryCreate) SetNillableCreatedAt(v *time.Time) *TrackingEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrackingEntryCreate) SetID(v uuid.UUID) *TrackingEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrackingEntryCreate) SetNillableID(v *uuid.UUID) *TrackingEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *TrackingEntryCreate) SetRequest(v *Request) *TrackingEntryCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the TrackingEntryMutation object of the builder.
func (_c *TrackingEntryCreate) Mutation() *TrackingEntryMutation {
	return _c.mutation
}

// Save creates the TrackingEntry in the database.
func (_c *TrackingEntryCreate) Save(ctx context.Context) (*TrackingEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrackingEntryCreate) SaveX(ctx context.Context) *TrackingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackingEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackingEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrackingEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trackingentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trackingentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrackingEntryCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "TrackingEntry.request_id"`)}
	}
	if _, ok := _c.mutation.PreviousState(); !ok {
		return &ValidationError{Name: "previous_state", err: errors.New(`ent: missing required field "TrackingEntry.previous_state"`)}
	}
	if v, ok := _c.mutation.PreviousState(); ok {
		if err := trackingentry.PreviousStateValidator(v); err != nil {
			return &ValidationError{Name: "previous_state", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.previous_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewState(); !ok {
		return &ValidationError{Name: "new_state", err: errors.New(`ent: missing required field "TrackingEntry.new_state"`)}
	}
	if v, ok := _c.mutation.NewState(); ok {
		if err := trackingentry.NewStateValidator(v); err != nil {
			return &ValidationError{Name: "new_state", err: fmt.Errorf(`ent: validator failed for field "TrackingEntry.new_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrackingEntry.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "TrackingEntry.request"`)}
	}
	return nil
}

func (_c *TrackingEntryCreate) sqlSave(ctx context.Context) (*TrackingEntry, error) {
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

func (_c *TrackingEntryCreate) createSpec() (*TrackingEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TrackingEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trackingentry.Table, sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PreviousState(); ok {
		_spec.SetField(trackingentry.FieldPreviousState, field.TypeString, value)
		_node.PreviousState = value
	}
	if value, ok := _c.mutation.NewState(); ok {
		_spec.SetField(trackingentry.FieldNewState, field.TypeString, value)
		_node.NewState = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(trackingentry.FieldActor, field.TypeUUID, value)
		_node.Actor = &value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(trackingentry.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trackingentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trackingentry.RequestTable,
			Columns: []string{trackingentry.RequestColumn},
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

// TrackingEntryCreateBulk is the builder for creating many TrackingEntry entities in bulk.
type TrackingEntryCreateBulk struct {
	config
	err      error
	builders []*TrackingEntryCreate
}

// Save creates the TrackingEntry entities in the database.
func (_c *TrackingEntryCreateBulk) Save(ctx context.Context) ([]*TrackingEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrackingEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackingEntryMutation)
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
func (_c *TrackingEntryCreateBulk) SaveX(ctx context.Context) []*TrackingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackingEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackingEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
