// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
)

// DistributorReferenceCreate is the builder for creating a DistributorReference entity.
type DistributorReferenceCreate struct {
	config
	mutation *DistributorReferenceMutation
	hooks    []Hook
}

// SetDistributorID sets the "distributor_id" field.
func (_c *DistributorReferenceCreate) SetDistributorID(v uuid.UUID) *DistributorReferenceCreate {
	_c.mutation.SetDistributorID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DistributorReferenceCreate) SetName(v string) *DistributorReferenceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *DistributorReferenceCreate) SetRelationship(v string) *DistributorReferenceCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *DistributorReferenceCreate) SetNillableRelationship(v *string) *DistributorReferenceCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *DistributorReferenceCreate) SetPhone(v string) *DistributorReferenceCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *DistributorReferenceCreate) SetNillablePhone(v *string) *DistributorReferenceCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DistributorReferenceCreate) SetID(v uuid.UUID) *DistributorReferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DistributorReferenceCreate) SetNillableID(v *uuid.UUID) *DistributorReferenceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_c *DistributorReferenceCreate) SetDistributor(v *Distributor) *DistributorReferenceCreate {
	return _c.SetDistributorID(v.ID)
}

// Mutation returns the DistributorReferenceMutation object of the builder.
func (_c *DistributorReferenceCreate) Mutation() *DistributorReferenceMutation {
	return _c.mutation
}

// Save creates the DistributorReference in the database.
func (_c *DistributorReferenceCreate) Save(ctx context.Context) (*DistributorReference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DistributorReferenceCreate) SaveX(ctx context.Context) *DistributorReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorReferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorReferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DistributorReferenceCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := distributorreference.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DistributorReferenceCreate) check() error {
	if _, ok := _c.mutation.DistributorID(); !ok {
		return &ValidationError{Name: "distributor_id", err: errors.New(`ent: missing required field "DistributorReference.distributor_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DistributorReference.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := distributorreference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DistributorReference.name": %w`, err)}
		}
	}
	if len(_c.mutation.DistributorIDs()) == 0 {
		return &ValidationError{Name: "distributor", err: errors.New(`ent: missing required edge "DistributorReference.distributor"`)}
	}
	return nil
}

func (_c *DistributorReferenceCreate) sqlSave(ctx context.Context) (*DistributorReference, error) {
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

func (_c *DistributorReferenceCreate) createSpec() (*DistributorReference, *sqlgraph.CreateSpec) {
	var (
		_node = &DistributorReference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(distributorreference.Table, sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(distributorreference.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(distributorreference.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(distributorreference.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if nodes := _c.mutation.DistributorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distributorreference.DistributorTable,
			Columns: []string{distributorreference.DistributorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DistributorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DistributorReferenceCreateBulk is the builder for creating many DistributorReference entities in bulk.
type DistributorReferenceCreateBulk struct {
	config
	err      error
	builders []*DistributorReferenceCreate
}

// Save creates the DistributorReference entities in the database.
func (_c *DistributorReferenceCreateBulk) Save(ctx context.Context) ([]*DistributorReference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DistributorReference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DistributorReferenceMutation)
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
func (_c *DistributorReferenceCreateBulk) SaveX(ctx context.Context) []*DistributorReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorReferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorReferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
