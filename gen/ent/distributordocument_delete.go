// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// DistributorDocumentDelete is the builder for deleting a DistributorDocument entity.
type DistributorDocumentDelete struct {
	config
	hooks    []Hook
	mutation *DistributorDocumentMutation
}

// Where appends a list predicates to the DistributorDocumentDelete builder.
func (_d *DistributorDocumentDelete) Where(ps ...predicate.DistributorDocument) *DistributorDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DistributorDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributorDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DistributorDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(distributordocument.Table, sqlgraph.NewFieldSpec(distributordocument.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DistributorDocumentDeleteOne is the builder for deleting a single DistributorDocument entity.
type DistributorDocumentDeleteOne struct {
	_d *DistributorDocumentDelete
}

// Where appends a list predicates to the DistributorDocumentDelete builder.
func (_d *DistributorDocumentDeleteOne) Where(ps ...predicate.DistributorDocument) *DistributorDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DistributorDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{distributordocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributorDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
