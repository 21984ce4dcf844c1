// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
)

// DistributorDocumentCreate is the builder for creating a DistributorDocument entity.
type DistributorDocumentCreate struct {
	config
	mutation *DistributorDocumentMutation
	hooks    []Hook
}

// SetDistributorID sets the "distributor_id" field.
func (_c *DistributorDocumentCreate) SetDistributorID(v uuid.UUID) *DistributorDocumentCreate {
	_c.mutation.SetDistributorID(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *DistributorDocumentCreate) SetDocumentType(v string) *DistributorDocumentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *DistributorDocumentCreate) SetRawText(v string) *DistributorDocumentCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *DistributorDocumentCreate) SetNillableRawText(v *string) *DistributorDocumentCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetStructuredFields sets the "structured_fields" field.
func (_c *DistributorDocumentCreate) SetStructuredFields(v map[string]string) *DistributorDocumentCreate {
	_c.mutation.SetStructuredFields(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DistributorDocumentCreate) SetID(v uuid.UUID) *DistributorDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DistributorDocumentCreate) SetNillableID(v *uuid.UUID) *DistributorDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDistributor sets the "distributor" edge to the Distributor entity.
func (_c *DistributorDocumentCreate) SetDistributor(v *Distributor) *DistributorDocumentCreate {
	return _c.SetDistributorID(v.ID)
}

// Mutation returns the DistributorDocumentMutation object of the builder.
func (_c *DistributorDocumentCreate) Mutation() *DistributorDocumentMutation {
	return _c.mutation
}

// Save creates the DistributorDocument in the database.
func (_c *DistributorDocumentCreate) Save(ctx context.Context) (*DistributorDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DistributorDocumentCreate) SaveX(ctx context.Context) *DistributorDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DistributorDocumentCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := distributordocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DistributorDocumentCreate) check() error {
	if _, ok := _c.mutation.DistributorID(); !ok {
		return &ValidationError{Name: "distributor_id", err: errors.New(`ent: missing required field "DistributorDocument.distributor_id"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "DistributorDocument.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := distributordocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DistributorDocument.document_type": %w`, err)}
		}
	}
	if len(_c.mutation.DistributorIDs()) == 0 {
		return &ValidationError{Name: "distributor", err: errors.New(`ent: missing required edge "DistributorDocument.distributor"`)}
	}
	return nil
}

func (_c *DistributorDocumentCreate) sqlSave(ctx context.Context) (*DistributorDocument, error) {
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

func (_c *DistributorDocumentCreate) createSpec() (*DistributorDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &DistributorDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(distributordocument.Table, sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(distributordocument.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(distributordocument.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.StructuredFields(); ok {
		_spec.SetField(distributordocument.FieldStructuredFields, field.TypeJSON, value)
		_node.StructuredFields = value
	}
	if nodes := _c.mutation.DistributorIDs(); len(nodes) > 0 {
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
		_node.DistributorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DistributorDocumentCreateBulk is the builder for creating many DistributorDocument entities in bulk.
type DistributorDocumentCreateBulk struct {
	config
	err      error
	builders []*DistributorDocumentCreate
}

// Save creates the DistributorDocument entities in the database.
func (_c *DistributorDocumentCreateBulk) Save(ctx context.Context) ([]*DistributorDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DistributorDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DistributorDocumentMutation)
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
func (_c *DistributorDocumentCreateBulk) SaveX(ctx context.Context) []*DistributorDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DistributorDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DistributorDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
