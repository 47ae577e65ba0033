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
	"github.com/abhisek/mathpath/ent/predicate"
	"github.com/abhisek/mathpath/ent/subtopicprogress"
)

// SubtopicProgressUpdate is the builder for updating SubtopicProgress entities.
type SubtopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicProgressMutation
}

// Where appends a list predicates to the SubtopicProgressUpdate builder.
func (_u *SubtopicProgressUpdate) Where(ps ...predicate.SubtopicProgress) *SubtopicProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTier sets the "tier" field.
func (_u *SubtopicProgressUpdate) SetTier(v subtopicprogress.Tier) *SubtopicProgressUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *SubtopicProgressUpdate) SetNillableTier(v *subtopicprogress.Tier) *SubtopicProgressUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetSubLevel sets the "sub_level" field.
func (_u *SubtopicProgressUpdate) SetSubLevel(v int) *SubtopicProgressUpdate {
	_u.mutation.ResetSubLevel()
	_u.mutation.SetSubLevel(v)
	return _u
}

// SetNillableSubLevel sets the "sub_level" field if the given value is not nil.
func (_u *SubtopicProgressUpdate) SetNillableSubLevel(v *int) *SubtopicProgressUpdate {
	if v != nil {
		_u.SetSubLevel(*v)
	}
	return _u
}

// AddSubLevel adds value to the "sub_level" field.
func (_u *SubtopicProgressUpdate) AddSubLevel(v int) *SubtopicProgressUpdate {
	_u.mutation.AddSubLevel(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtopicProgressUpdate) SetUpdatedAt(v time.Time) *SubtopicProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SubtopicProgressUpdate) SetNillableUpdatedAt(v *time.Time) *SubtopicProgressUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SubtopicProgressMutation object of the builder.
func (_u *SubtopicProgressUpdate) Mutation() *SubtopicProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtopicProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicProgressUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := subtopicprogress.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "SubtopicProgress.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubLevel(); ok {
		if err := subtopicprogress.SubLevelValidator(v); err != nil {
			return &ValidationError{Name: "sub_level", err: fmt.Errorf(`ent: validator failed for field "SubtopicProgress.sub_level": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopicprogress.Table, subtopicprogress.Columns, sqlgraph.NewFieldSpec(subtopicprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(subtopicprogress.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubLevel(); ok {
		_spec.SetField(subtopicprogress.FieldSubLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubLevel(); ok {
		_spec.AddField(subtopicprogress.FieldSubLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtopicprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtopicProgressUpdateOne is the builder for updating a single SubtopicProgress entity.
type SubtopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicProgressMutation
}

// SetTier sets the "tier" field.
func (_u *SubtopicProgressUpdateOne) SetTier(v subtopicprogress.Tier) *SubtopicProgressUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *SubtopicProgressUpdateOne) SetNillableTier(v *subtopicprogress.Tier) *SubtopicProgressUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetSubLevel sets the "sub_level" field.
func (_u *SubtopicProgressUpdateOne) SetSubLevel(v int) *SubtopicProgressUpdateOne {
	_u.mutation.ResetSubLevel()
	_u.mutation.SetSubLevel(v)
	return _u
}

// SetNillableSubLevel sets the "sub_level" field if the given value is not nil.
func (_u *SubtopicProgressUpdateOne) SetNillableSubLevel(v *int) *SubtopicProgressUpdateOne {
	if v != nil {
		_u.SetSubLevel(*v)
	}
	return _u
}

// AddSubLevel adds value to the "sub_level" field.
func (_u *SubtopicProgressUpdateOne) AddSubLevel(v int) *SubtopicProgressUpdateOne {
	_u.mutation.AddSubLevel(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtopicProgressUpdateOne) SetUpdatedAt(v time.Time) *SubtopicProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SubtopicProgressUpdateOne) SetNillableUpdatedAt(v *time.Time) *SubtopicProgressUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SubtopicProgressMutation object of the builder.
func (_u *SubtopicProgressUpdateOne) Mutation() *SubtopicProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubtopicProgressUpdate builder.
func (_u *SubtopicProgressUpdateOne) Where(ps ...predicate.SubtopicProgress) *SubtopicProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtopicProgressUpdateOne) Select(field string, fields ...string) *SubtopicProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubtopicProgress entity.
func (_u *SubtopicProgressUpdateOne) Save(ctx context.Context) (*SubtopicProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicProgressUpdateOne) SaveX(ctx context.Context) *SubtopicProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := subtopicprogress.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "SubtopicProgress.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubLevel(); ok {
		if err := subtopicprogress.SubLevelValidator(v); err != nil {
			return &ValidationError{Name: "sub_level", err: fmt.Errorf(`ent: validator failed for field "SubtopicProgress.sub_level": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *SubtopicProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopicprogress.Table, subtopicprogress.Columns, sqlgraph.NewFieldSpec(subtopicprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubtopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopicprogress.FieldID)
		for _, f := range fields {
			if !subtopicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopicprogress.FieldID {
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
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(subtopicprogress.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubLevel(); ok {
		_spec.SetField(subtopicprogress.FieldSubLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubLevel(); ok {
		_spec.AddField(subtopicprogress.FieldSubLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtopicprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SubtopicProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
