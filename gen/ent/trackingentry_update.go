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
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

// TrackingEntryUpdate is the builder for updating TrackingEntry entities.
type TrackingEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TrackingEntryMutation
}

// Where appends a list predicates to the TrackingEntryUpdate builder.
func (_u *TrackingEntryUpdate) Where(ps ...predicate.TrackingEntry) *TrackingEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *TrackingEntryUpdate) SetRequestID(v uuid.UUID) *TrackingEntryUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TrackingEntryUpdate) SetNillableRequestID(v *uuid.UUID) *TrackingEntryUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *TrackingEntryUpdate) SetRequest(v *Request) *TrackingEntryUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the TrackingEntryMutation object of the builder.
func (_u *TrackingEntryUpdate) Mutation() *TrackingEntryMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *TrackingEntryUpdate) ClearRequest() *TrackingEntryUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrackingEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackingEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrackingEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackingEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackingEntryUpdate) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackingEntry.request"`)
	}
	return nil
}

func (_u *TrackingEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackingentry.Table, trackingentry.Columns, sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(trackingentry.FieldActor, field.TypeUUID)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(trackingentry.FieldComment, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrackingEntryUpdateOne is the builder for updating a single TrackingEntry entity.
type TrackingEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackingEntryMutation
}

// SetRequestID sets the "request_id" field.
func (_u *TrackingEntryUpdateOne) SetRequestID(v uuid.UUID) *TrackingEntryUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TrackingEntryUpdateOne) SetNillableRequestID(v *uuid.UUID) *TrackingEntryUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *TrackingEntryUpdateOne) SetRequest(v *Request) *TrackingEntryUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the TrackingEntryMutation object of the builder.
func (_u *TrackingEntryUpdateOne) Mutation() *TrackingEntryMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *TrackingEntryUpdateOne) ClearRequest() *TrackingEntryUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the TrackingEntryUpdate builder.
func (_u *TrackingEntryUpdateOne) Where(ps ...predicate.TrackingEntry) *TrackingEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrackingEntryUpdateOne) Select(field string, fields ...string) *TrackingEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrackingEntry entity.
func (_u *TrackingEntryUpdateOne) Save(ctx context.Context) (*TrackingEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackingEntryUpdateOne) SaveX(ctx context.Context) *TrackingEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrackingEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackingEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackingEntryUpdateOne) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackingEntry.request"`)
	}
	return nil
}

func (_u *TrackingEntryUpdateOne) sqlSave(ctx context.Context) (_node *TrackingEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackingentry.Table, trackingentry.Columns, sqlgraph.NewFieldSpec(trackingentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrackingEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trackingentry.FieldID)
		for _, f := range fields {
			if !trackingentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trackingentry.FieldID {
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
	if _u.mutation.ActorCleared() {
		_spec.ClearField(trackingentry.FieldActor, field.TypeUUID)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(trackingentry.FieldComment, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrackingEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
