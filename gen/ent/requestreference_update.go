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
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
)

// RequestReferenceUpdate is the builder for updating RequestReference entities.
type RequestReferenceUpdate struct {
	config
	hooks    []Hook
	mutation *RequestReferenceMutation
}

// Where appends a list predicates to the RequestReferenceUpdate builder.
func (_u *RequestReferenceUpdate) Where(ps ...predicate.RequestReference) *RequestReferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestReferenceUpdate) SetRequestID(v uuid.UUID) *RequestReferenceUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestReferenceUpdate) SetNillableRequestID(v *uuid.UUID) *RequestReferenceUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestReferenceUpdate) SetName(v string) *RequestReferenceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestReferenceUpdate) SetNillableName(v *string) *RequestReferenceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *RequestReferenceUpdate) SetRelationship(v string) *RequestReferenceUpdate {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *RequestReferenceUpdate) SetNillableRelationship(v *string) *RequestReferenceUpdate {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *RequestReferenceUpdate) ClearRelationship() *RequestReferenceUpdate {
	_u.mutation.ClearRelationship()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *RequestReferenceUpdate) SetPhone(v string) *RequestReferenceUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *RequestReferenceUpdate) SetNillablePhone(v *string) *RequestReferenceUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *RequestReferenceUpdate) ClearPhone() *RequestReferenceUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RequestReferenceUpdate) SetReviewStatus(v string) *RequestReferenceUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RequestReferenceUpdate) SetNillableReviewStatus(v *string) *RequestReferenceUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *RequestReferenceUpdate) SetReviewNotes(v string) *RequestReferenceUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *RequestReferenceUpdate) SetNillableReviewNotes(v *string) *RequestReferenceUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *RequestReferenceUpdate) ClearReviewNotes() *RequestReferenceUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestReferenceUpdate) SetRequest(v *Request) *RequestReferenceUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestReferenceMutation object of the builder.
func (_u *RequestReferenceUpdate) Mutation() *RequestReferenceMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestReferenceUpdate) ClearRequest() *RequestReferenceUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestReferenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestReferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestReferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestReferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestReferenceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := requestreference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestReference.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := requestreference.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestReference.review_status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestReference.request"`)
	}
	return nil
}

func (_u *RequestReferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestreference.Table, requestreference.Columns, sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(requestreference.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(requestreference.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(requestreference.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(requestreference.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(requestreference.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(requestreference.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(requestreference.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(requestreference.FieldReviewNotes, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestreference.RequestTable,
			Columns: []string{requestreference.RequestColumn},
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
			Table:   requestreference.RequestTable,
			Columns: []string{requestreference.RequestColumn},
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
			err = &NotFoundError{requestreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestReferenceUpdateOne is the builder for updating a single RequestReference entity.
type RequestReferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestReferenceMutation
}

// SetRequestID sets the "request_id" field.
func (_u *RequestReferenceUpdateOne) SetRequestID(v uuid.UUID) *RequestReferenceUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestReferenceUpdateOne) SetNillableRequestID(v *uuid.UUID) *RequestReferenceUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestReferenceUpdateOne) SetName(v string) *RequestReferenceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestReferenceUpdateOne) SetNillableName(v *string) *RequestReferenceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *RequestReferenceUpdateOne) SetRelationship(v string) *RequestReferenceUpdateOne {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *RequestReferenceUpdateOne) SetNillableRelationship(v *string) *RequestReferenceUpdateOne {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *RequestReferenceUpdateOne) ClearRelationship() *RequestReferenceUpdateOne {
	_u.mutation.ClearRelationship()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *RequestReferenceUpdateOne) SetPhone(v string) *RequestReferenceUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *RequestReferenceUpdateOne) SetNillablePhone(v *string) *RequestReferenceUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *RequestReferenceUpdateOne) ClearPhone() *RequestReferenceUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RequestReferenceUpdateOne) SetReviewStatus(v string) *RequestReferenceUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RequestReferenceUpdateOne) SetNillableReviewStatus(v *string) *RequestReferenceUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *RequestReferenceUpdateOne) SetReviewNotes(v string) *RequestReferenceUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *RequestReferenceUpdateOne) SetNillableReviewNotes(v *string) *RequestReferenceUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *RequestReferenceUpdateOne) ClearReviewNotes() *RequestReferenceUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestReferenceUpdateOne) SetRequest(v *Request) *RequestReferenceUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestReferenceMutation object of the builder.
func (_u *RequestReferenceUpdateOne) Mutation() *RequestReferenceMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestReferenceUpdateOne) ClearRequest() *RequestReferenceUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the RequestReferenceUpdate builder.
func (_u *RequestReferenceUpdateOne) Where(ps ...predicate.RequestReference) *RequestReferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestReferenceUpdateOne) Select(field string, fields ...string) *RequestReferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestReference entity.
func (_u *RequestReferenceUpdateOne) Save(ctx context.Context) (*RequestReference, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestReferenceUpdateOne) SaveX(ctx context.Context) *RequestReference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestReferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestReferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestReferenceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := requestreference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestReference.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := requestreference.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestReference.review_status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestReference.request"`)
	}
	return nil
}

func (_u *RequestReferenceUpdateOne) sqlSave(ctx context.Context) (_node *RequestReference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestreference.Table, requestreference.Columns, sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestReference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestreference.FieldID)
		for _, f := range fields {
			if !requestreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestreference.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(requestreference.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(requestreference.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(requestreference.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(requestreference.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(requestreference.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(requestreference.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(requestreference.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(requestreference.FieldReviewNotes, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestreference.RequestTable,
			Columns: []string{requestreference.RequestColumn},
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
			Table:   requestreference.RequestTable,
			Columns: []string{requestreference.RequestColumn},
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
	_node = &RequestReference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
