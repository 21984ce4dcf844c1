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
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
)

// RequestReferenceCreate is the builder for creating a RequestReference entity.
type RequestReferenceCreate struct {
	config
	mutation *RequestReferenceMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *RequestReferenceCreate) SetRequestID(v uuid.UUID) *RequestReferenceCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RequestReferenceCreate) SetName(v string) *RequestReferenceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *RequestReferenceCreate) SetRelationship(v string) *RequestReferenceCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *RequestReferenceCreate) SetNillableRelationship(v *string) *RequestReferenceCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *RequestReferenceCreate) SetPhone(v string) *RequestReferenceCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *RequestReferenceCreate) SetNillablePhone(v *string) *RequestReferenceCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *RequestReferenceCreate) SetReviewStatus(v string) *RequestReferenceCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *RequestReferenceCreate) SetNillableReviewStatus(v *string) *RequestReferenceCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *RequestReferenceCreate) SetReviewNotes(v string) *RequestReferenceCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *RequestReferenceCreate) SetNillableReviewNotes(v *string) *RequestReferenceCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestReferenceCreate) SetCreatedAt(v time.Time) *RequestReferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestReferenceCreate) SetNillableCreatedAt(v *time.Time) *RequestReferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestReferenceCreate) SetID(v uuid.UUID) *RequestReferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequestReferenceCreate) SetNillableID(v *uuid.UUID) *RequestReferenceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *RequestReferenceCreate) SetRequest(v *Request) *RequestReferenceCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the RequestReferenceMutation object of the builder.
func (_c *RequestReferenceCreate) Mutation() *RequestReferenceMutation {
	return _c.mutation
}

// Save creates the RequestReference in the database.
func (_c *RequestReferenceCreate) Save(ctx context.Context) (*RequestReference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestReferenceCreate) SaveX(ctx context.Context) *RequestReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestReferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestReferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestReferenceCreate) defaults() {
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := requestreference.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requestreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := requestreference.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestReferenceCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestReference.request_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RequestReference.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := requestreference.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestReference.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "RequestReference.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := requestreference.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "RequestReference.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RequestReference.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "RequestReference.request"`)}
	}
	return nil
}

func (_c *RequestReferenceCreate) sqlSave(ctx context.Context) (*RequestReference, error) {
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

func (_c *RequestReferenceCreate) createSpec() (*RequestReference, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestReference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestreference.Table, sqlgraph.NewFieldSpec(requestreference.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(requestreference.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(requestreference.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(requestreference.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(requestreference.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(requestreference.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
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
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestReferenceCreateBulk is the builder for creating many RequestReference entities in bulk.
type RequestReferenceCreateBulk struct {
	config
	err      error
	builders []*RequestReferenceCreate
}

// Save creates the RequestReference entities in the database.
func (_c *RequestReferenceCreateBulk) Save(ctx context.Context) ([]*RequestReference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestReference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestReferenceMutation)
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
func (_c *RequestReferenceCreateBulk) SaveX(ctx context.Context) []*RequestReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestReferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestReferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
