// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/predicate"
)

// DistributorBranchDelete is the builder for deleting a DistributorBranch entity.
type DistributorBranchDelete struct {
	config
	hooks    []Hook
	mutation *DistributorBranchMutation
}

// Where appends a list predicates to the DistributorBranchDelete builder.
func (_d *DistributorBranchDelete) Where(ps ...predicate.DistributorBranch) *DistributorBranchDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DistributorBranchDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributorBranchDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DistributorBranchDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(distributorbranch.Table, sqlgraph.NewFieldSpec(distributorbranch.FieldID, field.TypeUUID))
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

// DistributorBranchDeleteOne is the builder for deleting a single DistributorBranch entity.
type DistributorBranchDeleteOne struct {
	_d *DistributorBranchDelete
}

// Where appends a list predicates to the DistributorBranchDelete builder.
func (_d *DistributorBranchDeleteOne) Where(ps ...predicate.DistributorBranch) *DistributorBranchDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DistributorBranchDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{distributorbranch.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DistributorBranchDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
