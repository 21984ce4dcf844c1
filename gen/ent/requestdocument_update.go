// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
)

// RequestDocumentUpdate is the builder for updating RequestDocument entities.
type RequestDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *RequestDocumentMutation
}

// Where appends a list predicates to the RequestDocumentUpdate builder.
func (_u *RequestDocumentUpdate) Where(ps ...predicate.RequestDocument) *RequestDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestDocumentUpdate) SetRequestID(v uuid.UUID) *RequestDocumentUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestDocumentUpdate) SetNillableRequestID(v *uuid.UUID) *RequestDocumentUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *RequestDocumentUpdate) SetDocumentType(v string) *RequestDocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *RequestDocumentUpdate) SetNillableDocumentType(v *string) *RequestDocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *RequestDocumentUpdate) SetExtractionStatus(v string) *RequestDocumentUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *RequestDocumentUpdate) SetNillableExtractionStatus(v *string) *RequestDocumentUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *RequestDocumentUpdate) SetRawText(v string) *RequestDocumentUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *RequestDocumentUpdate) SetNillableRawText(v *string) *RequestDocumentUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *RequestDocumentUpdate) ClearRawText() *RequestDocumentUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetStructuredFields sets the "structured_fields" field.
func (_u *RequestDocumentUpdate) SetStructuredFields(v map[string]string) *RequestDocumentUpdate {
	_u.mutation.SetStructuredFields(v)
	return _u
}

// ClearStructuredFields clears the value of the "structured_fields" field.
func (_u *RequestDocumentUpdate) ClearStructuredFields() *RequestDocumentUpdate {
	_u.mutation.ClearStructuredFields()
	return _u
}

// SetScore sets the "score" field.
func (_u *RequestDocumentUpdate) SetScore(v int) *RequestDocumentUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RequestDocumentUpdate) SetNillableScore(v *int) *RequestDocumentUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RequestDocumentUpdate) AddScore(v int) *RequestDocumentUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RequestDocumentUpdate) SetReviewStatus(v string) *RequestDocumentUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RequestDocumentUpdate) SetNillableReviewStatus(v *string) *RequestDocumentUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *RequestDocumentUpdate) SetReviewNotes(v string) *RequestDocumentUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *RequestDocumentUpdate) SetNillableReviewNotes(v *string) *RequestDocumentUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *RequestDocumentUpdate) ClearReviewNotes() *RequestDocumentUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestDocumentUpdate) SetUpdatedAt(v time.Time) *RequestDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestDocumentUpdate) SetRequest(v *Request) *RequestDocumentUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestDocumentMutation object of the builder.
func (_u *RequestDocumentUpdate) Mutation() *RequestDocumentMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestDocumentUpdate) ClearRequest() *RequestDocumentUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requestdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestDocumentUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := requestdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := requestdocument.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := requestdocument.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.review_status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestDocument.request"`)
	}
	return nil
}

func (_u *RequestDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestdocument.Table, requestdocument.Columns, sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(requestdocument.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(requestdocument.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(requestdocument.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(requestdocument.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredFields(); ok {
		_spec.SetField(requestdocument.FieldStructuredFields, field.TypeJSON, value)
	}
	if _u.mutation.StructuredFieldsCleared() {
		_spec.ClearField(requestdocument.FieldStructuredFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(requestdocument.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(requestdocument.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(requestdocument.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(requestdocument.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(requestdocument.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requestdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestdocument.RequestTable,
			Columns: []string{requestdocument.RequestColumn},
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
			Table:   requestdocument.RequestTable,
			Columns: []string{requestdocument.RequestColumn},
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
			err = &NotFoundError{requestdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestDocumentUpdateOne is the builder for updating a single RequestDocument entity.
type RequestDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestDocumentMutation
}

// SetRequestID sets the "request_id" field.
func (_u *RequestDocumentUpdateOne) SetRequestID(v uuid.UUID) *RequestDocumentUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestDocumentUpdateOne) SetNillableRequestID(v *uuid.UUID) *RequestDocumentUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *RequestDocumentUpdateOne) SetDocumentType(v string) *RequestDocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *RequestDocumentUpdateOne) SetNillableDocumentType(v *string) *RequestDocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *RequestDocumentUpdateOne) SetExtractionStatus(v string) *RequestDocumentUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *RequestDocumentUpdateOne) SetNillableExtractionStatus(v *string) *RequestDocumentUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *RequestDocumentUpdateOne) SetRawText(v string) *RequestDocumentUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *RequestDocumentUpdateOne) SetNillableRawText(v *string) *RequestDocumentUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *RequestDocumentUpdateOne) ClearRawText() *RequestDocumentUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetStructuredFields sets the "structured_fields" field.
func (_u *RequestDocumentUpdateOne) SetStructuredFields(v map[string]string) *RequestDocumentUpdateOne {
	_u.mutation.SetStructuredFields(v)
	return _u
}

// ClearStructuredFields clears the value of the "structured_fields" field.
func (_u *RequestDocumentUpdateOne) ClearStructuredFields() *RequestDocumentUpdateOne {
	_u.mutation.ClearStructuredFields()
	return _u
}

// SetScore sets the "score" field.
func (_u *RequestDocumentUpdateOne) SetScore(v int) *RequestDocumentUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RequestDocumentUpdateOne) SetNillableScore(v *int) *RequestDocumentUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RequestDocumentUpdateOne) AddScore(v int) *RequestDocumentUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RequestDocumentUpdateOne) SetReviewStatus(v string) *RequestDocumentUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RequestDocumentUpdateOne) SetNillableReviewStatus(v *string) *RequestDocumentUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *RequestDocumentUpdateOne) SetReviewNotes(v string) *RequestDocumentUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *RequestDocumentUpdateOne) SetNillableReviewNotes(v *string) *RequestDocumentUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *RequestDocumentUpdateOne) ClearReviewNotes() *RequestDocumentUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestDocumentUpdateOne) SetUpdatedAt(v time.Time) *RequestDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequest sets the "request" edge to the Request entity.
func (_u *RequestDocumentUpdateOne) SetRequest(v *Request) *RequestDocumentUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestDocumentMutation object of the builder.
func (_u *RequestDocumentUpdateOne) Mutation() *RequestDocumentMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the Request entity.
func (_u *RequestDocumentUpdateOne) ClearRequest() *RequestDocumentUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the RequestDocumentUpdate builder.
func (_u *RequestDocumentUpdateOne) Where(ps ...predicate.RequestDocument) *RequestDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestDocumentUpdateOne) Select(field string, fields ...string) *RequestDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestDocument entity.
func (_u *RequestDocumentUpdateOne) Save(ctx context.Context) (*RequestDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestDocumentUpdateOne) SaveX(ctx context.Context) *RequestDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requestdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := requestdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := requestdocument.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := requestdocument.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.review_status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestDocument.request"`)
	}
	return nil
}

func (_u *RequestDocumentUpdateOne) sqlSave(ctx context.Context) (_node *RequestDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestdocument.Table, requestdocument.Columns, sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestdocument.FieldID)
		for _, f := range fields {
			if !requestdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestdocument.FieldID {
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
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(requestdocument.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(requestdocument.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(requestdocument.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(requestdocument.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredFields(); ok {
		_spec.SetField(requestdocument.FieldStructuredFields, field.TypeJSON, value)
	}
	if _u.mutation.StructuredFieldsCleared() {
		_spec.ClearField(requestdocument.FieldStructuredFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(requestdocument.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(requestdocument.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(requestdocument.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(requestdocument.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(requestdocument.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requestdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestdocument.RequestTable,
			Columns: []string{requestdocument.RequestColumn},
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
			Table:   requestdocument.RequestTable,
			Columns: []string{requestdocument.RequestColumn},
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
	_node = &RequestDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
