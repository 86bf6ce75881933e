// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
)

// CommissionEntryDelete is the builder for deleting a CommissionEntry entity.
type CommissionEntryDelete struct {
	config
	hooks    []Hook
	mutation *CommissionEntryMutation
}

// Where appends a list predicates to the CommissionEntryDelete builder.
func (_d *CommissionEntryDelete) Where(ps ...predicate.CommissionEntry) *CommissionEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CommissionEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommissionEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CommissionEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(commissionentry.Table, sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID))
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

// CommissionEntryDeleteOne is the builder for deleting a single CommissionEntry entity.
type CommissionEntryDeleteOne struct {
	_d *CommissionEntryDelete
}

// Where appends a list predicates to the CommissionEntryDelete builder.
func (_d *CommissionEntryDeleteOne) Where(ps ...predicate.CommissionEntry) *CommissionEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CommissionEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{commissionentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommissionEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
