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
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
)

// DistributorBranchCreate is the builder for creating a DistributorBranch entity.
type DistributorBranchCreate struct {
	config
	mutation *DistributorBranchMutation
	hooks    []Hook
}

// SetDistributorID sets the "distributor_id" field.
func (_c *DistributorBranchCreate) SetDistributorID(v uuid.UUID) *DistributorBranchCreate {
	_c.mutation.SetDistributorID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DistributorBranchCreate) SetName(v string) *DistributorBranchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *DistributorBranchCreate) SetAddress(v string) *DistributorBranchCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *DistributorBranchCreate) SetNillableAddress(v *string) *DistributorBranchCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *DistributorBranchCreate) SetDepartment(v string) *DistributorBranchCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *DistributorBranchCreate) SetNillableDepartment(v *string) *DistributorBranchCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetMunicipality sets the "municipality" field.
func (_c *DistributorBranchCreate) SetMunicipality(v string) *DistributorBranchCreate {
	_c.mutation.SetMunicipality(v)
	return _c
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_c *DistributorBranchCreate) SetNillableMunicipality(v *string) *DistributorBranchCreate {
	if v != nil {
		_c.SetMunicipality(*v)
	}
	return _c
}

// SetZone sets the "zone" field.
func (_c *DistributorBranchCreate) SetZone(v string) *DistributorBranchCreate {
	_c.mutation.SetZone(v)
	return _c
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_c *DistributorBranchCreate) SetNillableZone(v *string) *DistributorBranchCreate {
	if v != nil {
		_c.SetZone(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DistributorBranchCreate) SetStatus(v string) *DistributorBranchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DistributorBranchCreate) SetNillableStatus(v *string) *DistributorBranchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *DistributorBranchCreate) SetStartDate(v string) *DistributorBranchCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *DistributorBranchCreate) SetNillableStartDate(v *string) *DistributorBranchCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DistributorBranchCreate) SetID(v uuid.UUID) *DistributorBranchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DistributorBranchCreate) SetNillableID(v *uuid.UUID) *DistributorBranchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_c *DistributorBranchCreate) SetDistributor(v *Distributor) *DistributorBranchCreate {
	return _c.SetDistributorID(v.ID)
}

// Mutation returns the DistributorBranchMutation object of the builder.
func (_c *DistributorBranchCreate) Mutation() *DistributorBranchMutation {
	return _c.mutation
}

// Save creates the DistributorBranch in the database.
func (_c *DistributorBranchCreate) Save(ctx context.Context) (*DistributorBranch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DistributorBranchCreate) SaveX(ctx context.Context) *DistributorBranch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorBranchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorBranchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DistributorBranchCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := distributorbranch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DistributorBranchCreate) check() error {
	if _, ok := _c.mutation.DistributorID(); !ok {
		return &ValidationError{Name: "distributor_id", err: errors.New(`ent: missing required field "DistributorBranch.distributor_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DistributorBranch.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := distributorbranch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DistributorBranch.name": %w`, err)}
		}
	}
	if len(_c.mutation.DistributorIDs()) == 0 {
		return &ValidationError{Name: "distributor", err: errors.New(`ent: missing required edge "DistributorBranch.distributor"`)}
	}
	return nil
}

func (_c *DistributorBranchCreate) sqlSave(ctx context.Context) (*DistributorBranch, error) {
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

func (_c *DistributorBranchCreate) createSpec() (*DistributorBranch, *sqlgraph.CreateSpec) {
	var (
		_node = &DistributorBranch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(distributorbranch.Table, sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(distributorbranch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(distributorbranch.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(distributorbranch.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Municipality(); ok {
		_spec.SetField(distributorbranch.FieldMunicipality, field.TypeString, value)
		_node.Municipality = value
	}
	if value, ok := _c.mutation.Zone(); ok {
		_spec.SetField(distributorbranch.FieldZone, field.TypeString, value)
		_node.Zone = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(distributorbranch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(distributorbranch.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if nodes := _c.mutation.DistributorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distributorbranch.DistributorTable,
			Columns: []string{distributorbranch.DistributorColumn},
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

// DistributorBranchCreateBulk is the builder for creating many DistributorBranch entities in bulk.
type DistributorBranchCreateBulk struct {
	config
	err      error
	builders []*DistributorBranchCreate
}

// Save creates the DistributorBranch entities in the database.
func (_c *DistributorBranchCreateBulk) Save(ctx context.Context) ([]*DistributorBranch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DistributorBranch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DistributorBranchMutation)
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
func (_c *DistributorBranchCreateBulk) SaveX(ctx context.Context) []*DistributorBranch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorBranchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorBranchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
