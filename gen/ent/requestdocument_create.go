// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
)

// RequestDocumentCreate is the builder for creating a RequestDocument entity.
type RequestDocumentCreate struct {
	config
	mutation *RequestDocumentMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *RequestDocumentCreate) SetRequestID(v uuid.UUID) *RequestDocumentCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *RequestDocumentCreate) SetDocumentType(v string) *RequestDocumentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *RequestDocumentCreate) SetExtractionStatus(v string) *RequestDocumentCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableExtractionStatus(v *string) *RequestDocumentCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *RequestDocumentCreate) SetRawText(v string) *RequestDocumentCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableRawText(v *string) *RequestDocumentCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetStructuredFields sets the "structured_fields" field.
func (_c *RequestDocumentCreate) SetStructuredFields(v map[string]string) *RequestDocumentCreate {
	_c.mutation.SetStructuredFields(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RequestDocumentCreate) SetScore(v int) *RequestDocumentCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableScore(v *int) *RequestDocumentCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *RequestDocumentCreate) SetReviewStatus(v string) *RequestDocumentCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableReviewStatus(v *string) *RequestDocumentCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *RequestDocumentCreate) SetReviewNotes(v string) *RequestDocumentCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableReviewNotes(v *string) *RequestDocumentCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestDocumentCreate) SetCreatedAt(v time.Time) *RequestDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableCreatedAt(v *time.Time) *RequestDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestDocumentCreate) SetUpdatedAt(v time.Time) *RequestDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableUpdatedAt(v *time.Time) *RequestDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestDocumentCreate) SetID(v uuid.UUID) *RequestDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequestDocumentCreate) SetNillableID(v *uuid.UUID) *RequestDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *RequestDocumentCreate) SetRequest(v *Request) *RequestDocumentCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the RequestDocumentMutation object of the builder.
func (_c *RequestDocumentCreate) Mutation() *RequestDocumentMutation {
	return _c.mutation
}

// Save creates the RequestDocument in the database.
func (_c *RequestDocumentCreate) Save(ctx context.Context) (*RequestDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestDocumentCreate) SaveX(ctx context.Context) *RequestDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestDocumentCreate) defaults() {
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		v := requestdocument.DefaultExtractionStatus
		_c.mutation.SetExtractionStatus(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := requestdocument.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := requestdocument.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requestdocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := requestdocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := requestdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestDocumentCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestDocument.request_id"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "RequestDocument.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := requestdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "RequestDocument.extraction_status"`)}
	}
	if v, ok := _c.mutation.ExtractionStatus(); ok {
		if err := requestdocument.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RequestDocument.score"`)}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "RequestDocument.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := requestdocument.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestDocument.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequestDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RequestDocument.updated_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "RequestDocument.request"`)}
	}
	return nil
}

func (_c *RequestDocumentCreate) sqlSave(ctx context.Context) (*RequestDocument, error) {
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

func (_c *RequestDocumentCreate) createSpec() (*RequestDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestdocument.Table, sqlgraph.NewFieldSpec(requestdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(requestdocument.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(requestdocument.FieldExtractionStatus, field.TypeString, value)
		_node.ExtractionStatus = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(requestdocument.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.StructuredFields(); ok {
		_spec.SetField(requestdocument.FieldStructuredFields, field.TypeJSON, value)
		_node.StructuredFields = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(requestdocument.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(requestdocument.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(requestdocument.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(requestdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
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
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestDocumentCreateBulk is the builder for creating many RequestDocument entities in bulk.
type RequestDocumentCreateBulk struct {
	config
	err      error
	builders []*RequestDocumentCreate
}

// Save creates the RequestDocument entities in the database.
func (_c *RequestDocumentCreateBulk) Save(ctx context.Context) ([]*RequestDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestDocumentMutation)
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
func (_c *RequestDocumentCreateBulk) SaveX(ctx context.Context) []*RequestDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
