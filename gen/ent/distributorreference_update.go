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
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// DistributorReferenceUpdate is the builder for updating DistributorReference entities.
type DistributorReferenceUpdate struct {
	config
	hooks    []Hook
	mutation *DistributorReferenceMutation
}

// Where appends a list predicates to the DistributorReferenceUpdate builder.
func (_u *DistributorReferenceUpdate) Where(ps ...predicate.DistributorReference) *DistributorReferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDistributorID sets the "distributor_id" field.
func (_u *DistributorReferenceUpdate) SetDistributorID(v uuid.UUID) *DistributorReferenceUpdate {
	_u.mutation.SetDistributorID(v)
	return _u
}

// SetNillableDistributorID sets the "distributor_id" field if the given value is not nil.
func (_u *DistributorReferenceUpdate) SetNillableDistributorID(v *uuid.UUID) *DistributorReferenceUpdate {
	if v != nil {
		_u.SetDistributorID(*v)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *DistributorReferenceUpdate) SetDistributor(v *Distributor) *DistributorReferenceUpdate {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the DistributorReferenceMutation object of the builder.
func (_u *DistributorReferenceUpdate) Mutation() *DistributorReferenceMutation {
	return _u.mutation
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *DistributorReferenceUpdate) ClearDistributor() *DistributorReferenceUpdate {
	_u.mutation.ClearDistributor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DistributorReferenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorReferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DistributorReferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorReferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorReferenceUpdate) check() error {
	if _u.mutation.DistributorCleared() && len(_u.mutation.DistributorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributorReference.distributor"`)
	}
	return nil
}

func (_u *DistributorReferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributorreference.Table, distributorreference.Columns, sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(distributorreference.FieldRelationship, field.TypeString)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(distributorreference.FieldPhone, field.TypeString)
	}
	if _u.mutation.DistributorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributorreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DistributorReferenceUpdateOne is the builder for updating a single DistributorReference entity.
type DistributorReferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DistributorReferenceMutation
}

// SetDistributorID sets the "distributor_id" field.
func (_u *DistributorReferenceUpdateOne) SetDistributorID(v uuid.UUID) *DistributorReferenceUpdateOne {
	_u.mutation.SetDistributorID(v)
	return _u
}

// SetNillableDistributorID sets the "distributor_id" field if the given value is not nil.
func (_u *DistributorReferenceUpdateOne) SetNillableDistributorID(v *uuid.UUID) *DistributorReferenceUpdateOne {
	if v != nil {
		_u.SetDistributorID(*v)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *DistributorReferenceUpdateOne) SetDistributor(v *Distributor) *DistributorReferenceUpdateOne {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the DistributorReferenceMutation object of the builder.
func (_u *DistributorReferenceUpdateOne) Mutation() *DistributorReferenceMutation {
	return _u.mutation
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *DistributorReferenceUpdateOne) ClearDistributor() *DistributorReferenceUpdateOne {
	_u.mutation.ClearDistributor()
	return _u
}

// Where appends a list predicates to the DistributorReferenceUpdate builder.
func (_u *DistributorReferenceUpdateOne) Where(ps ...predicate.DistributorReference) *DistributorReferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DistributorReferenceUpdateOne) Select(field string, fields ...string) *DistributorReferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DistributorReference entity.
func (_u *DistributorReferenceUpdateOne) Save(ctx context.Context) (*DistributorReference, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorReferenceUpdateOne) SaveX(ctx context.Context) *DistributorReference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DistributorReferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorReferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorReferenceUpdateOne) check() error {
	if _u.mutation.DistributorCleared() && len(_u.mutation.DistributorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributorReference.distributor"`)
	}
	return nil
}

func (_u *DistributorReferenceUpdateOne) sqlSave(ctx context.Context) (_node *DistributorReference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributorreference.Table, distributorreference.Columns, sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DistributorReference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distributorreference.FieldID)
		for _, f := range fields {
			if !distributorreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != distributorreference.FieldID {
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
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(distributorreference.FieldRelationship, field.TypeString)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(distributorreference.FieldPhone, field.TypeString)
	}
	if _u.mutation.DistributorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DistributorReference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributorreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
