// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// DistributorReferenceDelete is the builder for deleting a DistributorReference entity.
type DistributorReferenceDelete struct {
	config
	hooks    []Hook
	mutation *DistributorReferenceMutation
}

// Where appends a list predicates to the DistributorReferenceDelete builder.
func (_d *DistributorReferenceDelete) Where(ps ...predicate.DistributorReference) *DistributorReferenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DistributorReferenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributorReferenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DistributorReferenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(distributorreference.Table, sqlgraph.NewFieldSpec(distributorreference.FieldID, field.TypeUUID))
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

// DistributorReferenceDeleteOne is the builder for deleting a single DistributorReference entity.
type DistributorReferenceDeleteOne struct {
	_d *DistributorReferenceDelete
}

// Where appends a list predicates to the DistributorReferenceDelete builder.
func (_d *DistributorReferenceDeleteOne) Where(ps ...predicate.DistributorReference) *DistributorReferenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DistributorReferenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{distributorreference.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributorReferenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
