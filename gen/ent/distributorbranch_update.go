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
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// DistributorBranchUpdate is the builder for updating DistributorBranch entities.
type DistributorBranchUpdate struct {
	config
	hooks    []Hook
	mutation *DistributorBranchMutation
}

// Where appends a list predicates to the DistributorBranchUpdate builder.
func (_u *DistributorBranchUpdate) Where(ps ...predicate.DistributorBranch) *DistributorBranchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDistributorID sets the "distributor_id" field.
func (_u *DistributorBranchUpdate) SetDistributorID(v uuid.UUID) *DistributorBranchUpdate {
	_u.mutation.SetDistributorID(v)
	return _u
}

// SetNillableDistributorID sets the "distributor_id" field if the given value is not nil.
func (_u *DistributorBranchUpdate) SetNillableDistributorID(v *uuid.UUID) *DistributorBranchUpdate {
	if v != nil {
		_u.SetDistributorID(*v)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *DistributorBranchUpdate) SetDistributor(v *Distributor) *DistributorBranchUpdate {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the DistributorBranchMutation object of the builder.
func (_u *DistributorBranchUpdate) Mutation() *DistributorBranchMutation {
	return _u.mutation
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *DistributorBranchUpdate) ClearDistributor() *DistributorBranchUpdate {
	_u.mutation.ClearDistributor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DistributorBranchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorBranchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DistributorBranchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorBranchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorBranchUpdate) check() error {
	if _u.mutation.DistributorCleared() && len(_u.mutation.DistributorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributorBranch.distributor"`)
	}
	return nil
}

func (_u *DistributorBranchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributorbranch.Table, distributorbranch.Columns, sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(distributorbranch.FieldAddress, field.TypeString)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(distributorbranch.FieldDepartment, field.TypeString)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(distributorbranch.FieldMunicipality, field.TypeString)
	}
	if _u.mutation.ZoneCleared() {
		_spec.ClearField(distributorbranch.FieldZone, field.TypeString)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(distributorbranch.FieldStatus, field.TypeString)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(distributorbranch.FieldStartDate, field.TypeString)
	}
	if _u.mutation.DistributorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributorbranch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DistributorBranchUpdateOne is the builder for updating a single DistributorBranch entity.
type DistributorBranchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DistributorBranchMutation
}

// SetDistributorID sets the "distributor_id" field.
func (_u *DistributorBranchUpdateOne) SetDistributorID(v uuid.UUID) *DistributorBranchUpdateOne {
	_u.mutation.SetDistributorID(v)
	return _u
}

// SetNillableDistributorID sets the "distributor_id" field if the given value is not nil.
func (_u *DistributorBranchUpdateOne) SetNillableDistributorID(v *uuid.UUID) *DistributorBranchUpdateOne {
	if v != nil {
		_u.SetDistributorID(*v)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *DistributorBranchUpdateOne) SetDistributor(v *Distributor) *DistributorBranchUpdateOne {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the DistributorBranchMutation object of the builder.
func (_u *DistributorBranchUpdateOne) Mutation() *DistributorBranchMutation {
	return _u.mutation
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *DistributorBranchUpdateOne) ClearDistributor() *DistributorBranchUpdateOne {
	_u.mutation.ClearDistributor()
	return _u
}

// Where appends a list predicates to the DistributorBranchUpdate builder.
func (_u *DistributorBranchUpdateOne) Where(ps ...predicate.DistributorBranch) *DistributorBranchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DistributorBranchUpdateOne) Select(field string, fields ...string) *DistributorBranchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DistributorBranch entity.
func (_u *DistributorBranchUpdateOne) Save(ctx context.Context) (*DistributorBranch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorBranchUpdateOne) SaveX(ctx context.Context) *DistributorBranch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DistributorBranchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorBranchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorBranchUpdateOne) check() error {
	if _u.mutation.DistributorCleared() && len(_u.mutation.DistributorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributorBranch.distributor"`)
	}
	return nil
}

func (_u *DistributorBranchUpdateOne) sqlSave(ctx context.Context) (_node *DistributorBranch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributorbranch.Table, distributorbranch.Columns, sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DistributorBranch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distributorbranch.FieldID)
		for _, f := range fields {
			if !distributorbranch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != distributorbranch.FieldID {
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
	if _u.mutation.AddressCleared() {
		_spec.ClearField(distributorbranch.FieldAddress, field.TypeString)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(distributorbranch.FieldDepartment, field.TypeString)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(distributorbranch.FieldMunicipality, field.TypeString)
	}
	if _u.mutation.ZoneCleared() {
		_spec.ClearField(distributorbranch.FieldZone, field.TypeString)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(distributorbranch.FieldStatus, field.TypeString)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(distributorbranch.FieldStartDate, field.TypeString)
	}
	if _u.mutation.DistributorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DistributorBranch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributorbranch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
