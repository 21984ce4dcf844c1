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
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
)

// RequestBranchUpdate is the builder for updating RequestBranch entities.
type RequestBranchUpdate struct {
	config
	hooks    []Hook
	mutation *RequestBranchMutation
}

// Where appends a list predicates to the RequestBranchUpdate builder.
func (_u *RequestBranchUpdate) Where(ps ...predicate.RequestBranch) *RequestBranchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestBranchUpdate) SetRequestID(v uuid.UUID) *RequestBranchUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableRequestID(v *uuid.UUID) *RequestBranchUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestBranchUpdate) SetName(v string) *RequestBranchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableName(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *RequestBranchUpdate) SetAddress(v string) *RequestBranchUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableAddress(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RequestBranchUpdate) ClearAddress() *RequestBranchUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *RequestBranchUpdate) SetDepartment(v string) *RequestBranchUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableDepartment(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *RequestBranchUpdate) ClearDepartment() *RequestBranchUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetMunicipality sets the "municipality" field.
func (_u *RequestBranchUpdate) SetMunicipality(v string) *RequestBranchUpdate {
	_u.mutation.SetMunicipality(v)
	return _u
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableMunicipality(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetMunicipality(*v)
	}
	return _u
}

// ClearMunicipality clears the value of the "municipality" field.
func (_u *RequestBranchUpdate) ClearMunicipality() *RequestBranchUpdate {
	_u.mutation.ClearMunicipality()
	return _u
}

// SetZone sets the "zone" field.
func (_u *RequestBranchUpdate) SetZone(v string) *RequestBranchUpdate {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableZone(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// ClearZone clears the value of the "zone" field.
func (_u *RequestBranchUpdate) ClearZone() *RequestBranchUpdate {
	_u.mutation.ClearZone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestBranchUpdate) SetStatus(v string) *RequestBranchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableStatus(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *RequestBranchUpdate) ClearStatus() *RequestBranchUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *RequestBranchUpdate) SetStartDate(v string) *RequestBranchUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableStartDate(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *RequestBranchUpdate) ClearStartDate() *RequestBranchUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RequestBranchUpdate) SetReviewStatus(v string) *RequestBranchUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableReviewStatus(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *RequestBranchUpdate) SetReviewNotes(v string) *RequestBranchUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *RequestBranchUpdate) SetNillableReviewNotes(v *string) *RequestBranchUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *RequestBranchUpdate) ClearReviewNotes() *RequestBranchUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestBranchUpdate) SetRequest(v *Request) *RequestBranchUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestBranchMutation object of the builder.
func (_u *RequestBranchUpdate) Mutation() *RequestBranchMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestBranchUpdate) ClearRequest() *RequestBranchUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestBranchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestBranchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestBranchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestBranchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestBranchUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := requestbranch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestBranch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := requestbranch.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestBranch.review_status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestBranch.request"`)
	}
	return nil
}

func (_u *RequestBranchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestbranch.Table, requestbranch.Columns, sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(requestbranch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(requestbranch.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(requestbranch.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(requestbranch.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(requestbranch.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Municipality(); ok {
		_spec.SetField(requestbranch.FieldMunicipality, field.TypeString, value)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(requestbranch.FieldMunicipality, field.TypeString)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(requestbranch.FieldZone, field.TypeString, value)
	}
	if _u.mutation.ZoneCleared() {
		_spec.ClearField(requestbranch.FieldZone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestbranch.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(requestbranch.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(requestbranch.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(requestbranch.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(requestbranch.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(requestbranch.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(requestbranch.FieldReviewNotes, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestbranch.RequestTable,
			Columns: []string{requestbranch.RequestColumn},
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
			Table:   requestbranch.RequestTable,
			Columns: []string{requestbranch.RequestColumn},
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
			err = &NotFoundError{requestbranch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestBranchUpdateOne is the builder for updating a single RequestBranch entity.
type RequestBranchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestBranchMutation
}

// SetRequestID sets the "request_id" field.
func (_u *RequestBranchUpdateOne) SetRequestID(v uuid.UUID) *RequestBranchUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableRequestID(v *uuid.UUID) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestBranchUpdateOne) SetName(v string) *RequestBranchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableName(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *RequestBranchUpdateOne) SetAddress(v string) *RequestBranchUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableAddress(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RequestBranchUpdateOne) ClearAddress() *RequestBranchUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *RequestBranchUpdateOne) SetDepartment(v string) *RequestBranchUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableDepartment(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *RequestBranchUpdateOne) ClearDepartment() *RequestBranchUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetMunicipality sets the "municipality" field.
func (_u *RequestBranchUpdateOne) SetMunicipality(v string) *RequestBranchUpdateOne {
	_u.mutation.SetMunicipality(v)
	return _u
}

// SetNillableMunicipality sets the "municipality" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableMunicipality(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetMunicipality(*v)
	}
	return _u
}

// ClearMunicipality clears the value of the "municipality" field.
func (_u *RequestBranchUpdateOne) ClearMunicipality() *RequestBranchUpdateOne {
	_u.mutation.ClearMunicipality()
	return _u
}

// SetZone sets the "zone" field.
func (_u *RequestBranchUpdateOne) SetZone(v string) *RequestBranchUpdateOne {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableZone(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// ClearZone clears the value of the "zone" field.
func (_u *RequestBranchUpdateOne) ClearZone() *RequestBranchUpdateOne {
	_u.mutation.ClearZone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestBranchUpdateOne) SetStatus(v string) *RequestBranchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableStatus(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *RequestBranchUpdateOne) ClearStatus() *RequestBranchUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *RequestBranchUpdateOne) SetStartDate(v string) *RequestBranchUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableStartDate(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *RequestBranchUpdateOne) ClearStartDate() *RequestBranchUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RequestBranchUpdateOne) SetReviewStatus(v string) *RequestBranchUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableReviewStatus(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *RequestBranchUpdateOne) SetReviewNotes(v string) *RequestBranchUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *RequestBranchUpdateOne) SetNillableReviewNotes(v *string) *RequestBranchUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *RequestBranchUpdateOne) ClearReviewNotes() *RequestBranchUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestBranchUpdateOne) SetRequest(v *Request) *RequestBranchUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestBranchMutation object of the builder.
func (_u *RequestBranchUpdateOne) Mutation() *RequestBranchMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestBranchUpdateOne) ClearRequest() *RequestBranchUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the RequestBranchUpdate builder.
func (_u *RequestBranchUpdateOne) Where(ps ...predicate.RequestBranch) *RequestBranchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestBranchUpdateOne) Select(field string, fields ...string) *RequestBranchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestBranch entity.
func (_u *RequestBranchUpdateOne) Save(ctx context.Context) (*RequestBranch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestBranchUpdateOne) SaveX(ctx context.Context) *RequestBranch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestBranchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestBranchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestBranchUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := requestbranch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestBranch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := requestbranch.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestBranch.review_status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestBranch.request"`)
	}
	return nil
}

func (_u *RequestBranchUpdateOne) sqlSave(ctx context.Context) (_node *RequestBranch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestbranch.Table, requestbranch.Columns, sqlgraph.NewFieldSpec(requestbranch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestBranch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestbranch.FieldID)
		for _, f := range fields {
			if !requestbranch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestbranch.FieldID {
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
		_spec.SetField(requestbranch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(requestbranch.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(requestbranch.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(requestbranch.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(requestbranch.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Municipality(); ok {
		_spec.SetField(requestbranch.FieldMunicipality, field.TypeString, value)
	}
	if _u.mutation.MunicipalityCleared() {
		_spec.ClearField(requestbranch.FieldMunicipality, field.TypeString)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(requestbranch.FieldZone, field.TypeString, value)
	}
	if _u.mutation.ZoneCleared() {
		_spec.ClearField(requestbranch.FieldZone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestbranch.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(requestbranch.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(requestbranch.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(requestbranch.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(requestbranch.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(requestbranch.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(requestbranch.FieldReviewNotes, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestbranch.RequestTable,
			Columns: []string{requestbranch.RequestColumn},
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
			Table:   requestbranch.RequestTable,
			Columns: []string{requestbranch.RequestColumn},
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
	_node = &RequestBranch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestbranch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
