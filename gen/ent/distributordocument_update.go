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
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// DistributorDocumentUpdate is the builder for updating DistributorDocument entities.
type DistributorDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DistributorDocumentMutation
}

// Where appends a list predicates to the DistributorDocumentUpdate builder.
func (_u *DistributorDocumentUpdate) Where(ps ...predicate.DistributorDocument) *DistributorDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDistributorID sets the "distributor_id" field.
func (_u *DistributorDocumentUpdate) SetDistributorID(v uuid.UUID) *DistributorDocumentUpdate {
	_u.mutation.SetDistributorID(v)
	return _u
}

// SetNillableDistributorID sets the "distributor_id" field if the given value is not nil.
func (_u *DistributorDocumentUpdate) SetNillableDistributorID(v *uuid.UUID) *DistributorDocumentUpdate {
	if v != nil {
		_u.SetDistributorID(*v)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *DistributorDocumentUpdate) SetDistributor(v *Distributor) *DistributorDocumentUpdate {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the DistributorDocumentMutation object of the builder.
func (_u *DistributorDocumentUpdate) Mutation() *DistributorDocumentMutation {
	return _u.mutation
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *DistributorDocumentUpdate) ClearDistributor() *DistributorDocumentUpdate {
	_u.mutation.ClearDistributor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DistributorDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DistributorDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorDocumentUpdate) check() error {
	if _u.mutation.DistributorCleared() && len(_u.mutation.DistributorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributorDocument.distributor"`)
	}
	return nil
}

func (_u *DistributorDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributordocument.Table, distributordocument.Columns, sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(distributordocument.FieldRawText, field.TypeString)
	}
	if _u.mutation.StructuredFieldsCleared() {
		_spec.ClearField(distributordocument.FieldStructuredFields, field.TypeJSON)
	}
	if _u.mutation.DistributorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distributordocument.DistributorTable,
			Columns: []string{distributordocument.DistributorColumn},
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
			Table:   distributordocument.DistributorTable,
			Columns: []string{distributordocument.DistributorColumn},
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
			err = &NotFoundError{distributordocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DistributorDocumentUpdateOne is the builder for updating a single DistributorDocument entity.
type DistributorDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DistributorDocumentMutation
}

// SetDistributorID sets the "distributor_id" field.
func (_u *DistributorDocumentUpdateOne) SetDistributorID(v uuid.UUID) *DistributorDocumentUpdateOne {
	_u.mutation.SetDistributorID(v)
	return _u
}

// SetNillableDistributorID sets the "distributor_id" field if the given value is not nil.
func (_u *DistributorDocumentUpdateOne) SetNillableDistributorID(v *uuid.UUID) *DistributorDocumentUpdateOne {
	if v != nil {
		_u.SetDistributorID(*v)
	}
	return _u
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_u *DistributorDocumentUpdateOne) SetDistributor(v *Distributor) *DistributorDocumentUpdateOne {
	return _u.SetDistributorID(v.ID)
}

// Mutation returns the DistributorDocumentMutation object of the builder.
func (_u *DistributorDocumentUpdateOne) Mutation() *DistributorDocumentMutation {
	return _u.mutation
}

// ClearDistributor clears the "distributor" edge to the Distributor entity.
func (_u *DistributorDocumentUpdateOne) ClearDistributor() *DistributorDocumentUpdateOne {
	_u.mutation.ClearDistributor()
	return _u
}

// Where appends a list predicates to the DistributorDocumentUpdate builder.
func (_u *DistributorDocumentUpdateOne) Where(ps ...predicate.DistributorDocument) *DistributorDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DistributorDocumentUpdateOne) Select(field string, fields ...string) *DistributorDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DistributorDocument entity.
func (_u *DistributorDocumentUpdateOne) Save(ctx context.Context) (*DistributorDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DistributorDocumentUpdateOne) SaveX(ctx context.Context) *DistributorDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DistributorDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DistributorDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DistributorDocumentUpdateOne) check() error {
	if _u.mutation.DistributorCleared() && len(_u.mutation.DistributorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DistributorDocument.distributor"`)
	}
	return nil
}

func (_u *DistributorDocumentUpdateOne) sqlSave(ctx context.Context) (_node *DistributorDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(distributordocument.Table, distributordocument.Columns, sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DistributorDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, distributordocument.FieldID)
		for _, f := range fields {
			if !distributordocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != distributordocument.FieldID {
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
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(distributordocument.FieldRawText, field.TypeString)
	}
	if _u.mutation.StructuredFieldsCleared() {
		_spec.ClearField(distributordocument.FieldStructuredFields, field.TypeJSON)
	}
	if _u.mutation.DistributorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   distributordocument.DistributorTable,
			Columns: []string{distributordocument.DistributorColumn},
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
			Table:   distributordocument.DistributorTable,
			Columns: []string{distributordocument.DistributorColumn},
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
	_node = &DistributorDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{distributordocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
