// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
)

// CommissionPolicyDelete is the builder for deleting a CommissionPolicy entity.
type CommissionPolicyDelete struct {
	config
	hooks    []Hook
	mutation *CommissionPolicyMutation
}

// Where appends a list predicates to the CommissionPolicyDelete builder.
func (_d *CommissionPolicyDelete) Where(ps ...predicate.CommissionPolicy) *CommissionPolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CommissionPolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommissionPolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CommissionPolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(commissionpolicy.Table, sqlgraph.NewFieldSpec(commissionpolicy.FieldID, field.TypeUUID))
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

// CommissionPolicyDeleteOne is the builder for deleting a single CommissionPolicy entity.
type CommissionPolicyDeleteOne struct {
	_d *CommissionPolicyDelete
}

// Where appends a list predicates to the CommissionPolicyDelete builder.
func (_d *CommissionPolicyDeleteOne) Where(ps ...predicate.CommissionPolicy) *CommissionPolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CommissionPolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{commissionpolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommissionPolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
