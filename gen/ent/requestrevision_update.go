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
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
)

// RequestRevisionUpdate is the builder for updating RequestRevision entities.
type RequestRevisionUpdate struct {
	config
	hooks    []Hook
	mutation *RequestRevisionMutation
}

// Where appends a list predicates to the RequestRevisionUpdate builder.
func (_u *RequestRevisionUpdate) Where(ps ...predicate.RequestRevision) *RequestRevisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestRevisionUpdate) SetRequestID(v uuid.UUID) *RequestRevisionUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestRevisionUpdate) SetNillableRequestID(v *uuid.UUID) *RequestRevisionUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestRevisionUpdate) SetRequest(v *Request) *RequestRevisionUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestRevisionMutation object of the builder.
func (_u *RequestRevisionUpdate) Mutation() *RequestRevisionMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestRevisionUpdate) ClearRequest() *RequestRevisionUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestRevisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestRevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestRevisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestRevisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestRevisionUpdate) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestRevision.request"`)
	}
	return nil
}

func (_u *RequestRevisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestrevision.Table, requestrevision.Columns, sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ObservationCleared() {
		_spec.ClearField(requestrevision.FieldObservation, field.TypeString)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(requestrevision.FieldActor, field.TypeUUID)
	}
	if _u.mutation.RequestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestrevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestRevisionUpdateOne is the builder for updating a single RequestRevision entity.
type RequestRevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestRevisionMutation
}

// SetRequestID sets the "request_id" field.
func (_u *RequestRevisionUpdateOne) SetRequestID(v uuid.UUID) *RequestRevisionUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestRevisionUpdateOne) SetNillableRequestID(v *uuid.UUID) *RequestRevisionUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestRevisionUpdateOne) SetRequest(v *Request) *RequestRevisionUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestRevisionMutation object of the builder.
func (_u *RequestRevisionUpdateOne) Mutation() *RequestRevisionMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestRevisionUpdateOne) ClearRequest() *RequestRevisionUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the RequestRevisionUpdate builder.
func (_u *RequestRevisionUpdateOne) Where(ps ...predicate.RequestRevision) *RequestRevisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestRevisionUpdateOne) Select(field string, fields ...string) *RequestRevisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestRevision entity.
func (_u *RequestRevisionUpdateOne) Save(ctx context.Context) (*RequestRevision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestRevisionUpdateOne) SaveX(ctx context.Context) *RequestRevision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestRevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestRevisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestRevisionUpdateOne) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestRevision.request"`)
	}
	return nil
}

func (_u *RequestRevisionUpdateOne) sqlSave(ctx context.Context) (_node *RequestRevision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestrevision.Table, requestrevision.Columns, sqlgraph.NewFieldSpec(requestrevision.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestRevision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestrevision.FieldID)
		for _, f := range fields {
			if !requestrevision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestrevision.FieldID {
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
	if _u.mutation.ObservationCleared() {
		_spec.ClearField(requestrevision.FieldObservation, field.TypeString)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(requestrevision.FieldActor, field.TypeUUID)
	}
	if _u.mutation.RequestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RequestRevision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestrevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
