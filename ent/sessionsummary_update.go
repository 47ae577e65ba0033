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
	"github.com/abhisek/mathpath/ent/sessionsummary"
	"github.com/abhisek/mathpath/internal/difficulty"
)

// SessionSummaryUpdate is the builder for updating SessionSummary entities.
type SessionSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SessionSummaryMutation
}

// Where appends a list predicates to the SessionSummaryUpdate builder.
func (_u *SessionSummaryUpdate) Where(ps ...predicate.SessionSummary) *SessionSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionSummaryUpdate) SetUserID(v string) *SessionSummaryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableUserID(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *SessionSummaryUpdate) SetSubtopicID(v string) *SessionSummaryUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableSubtopicID(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionSummaryUpdate) SetStartedAt(v time.Time) *SessionSummaryUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableStartedAt(v *time.Time) *SessionSummaryUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionSummaryUpdate) SetEndedAt(v time.Time) *SessionSummaryUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableEndedAt(v *time.Time) *SessionSummaryUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionSummaryUpdate) SetDurationSecs(v int) *SessionSummaryUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableDurationSecs(v *int) *SessionSummaryUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionSummaryUpdate) AddDurationSecs(v int) *SessionSummaryUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *SessionSummaryUpdate) SetTotal(v int) *SessionSummaryUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableTotal(v *int) *SessionSummaryUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *SessionSummaryUpdate) AddTotal(v int) *SessionSummaryUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionSummaryUpdate) SetCorrect(v int) *SessionSummaryUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableCorrect(v *int) *SessionSummaryUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionSummaryUpdate) AddCorrect(v int) *SessionSummaryUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionSummaryUpdate) SetFinalDifficulty(v string) *SessionSummaryUpdate {
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableFinalDifficulty(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// SetAdaptations sets the "adaptations" field.
func (_u *SessionSummaryUpdate) SetAdaptations(v int) *SessionSummaryUpdate {
	_u.mutation.ResetAdaptations()
	_u.mutation.SetAdaptations(v)
	return _u
}

// SetNillableAdaptations sets the "adaptations" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableAdaptations(v *int) *SessionSummaryUpdate {
	if v != nil {
		_u.SetAdaptations(*v)
	}
	return _u
}

// AddAdaptations adds value to the "adaptations" field.
func (_u *SessionSummaryUpdate) AddAdaptations(v int) *SessionSummaryUpdate {
	_u.mutation.AddAdaptations(v)
	return _u
}

// SetReadiness sets the "readiness" field.
func (_u *SessionSummaryUpdate) SetReadiness(v string) *SessionSummaryUpdate {
	_u.mutation.SetReadiness(v)
	return _u
}

// SetNillableReadiness sets the "readiness" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableReadiness(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetReadiness(*v)
	}
	return _u
}

// SetEndReason sets the "end_reason" field.
func (_u *SessionSummaryUpdate) SetEndReason(v string) *SessionSummaryUpdate {
	_u.mutation.SetEndReason(v)
	return _u
}

// SetNillableEndReason sets the "end_reason" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableEndReason(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetEndReason(*v)
	}
	return _u
}

// SetByTier sets the "by_tier" field.
func (_u *SessionSummaryUpdate) SetByTier(v difficulty.Breakdown) *SessionSummaryUpdate {
	_u.mutation.SetByTier(v)
	return _u
}

// ClearByTier clears the value of the "by_tier" field.
func (_u *SessionSummaryUpdate) ClearByTier() *SessionSummaryUpdate {
	_u.mutation.ClearByTier()
	return _u
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_u *SessionSummaryUpdate) Mutation() *SessionSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionsummary.Table, sessionsummary.Columns, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionsummary.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(sessionsummary.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionsummary.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionsummary.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionsummary.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionsummary.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(sessionsummary.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(sessionsummary.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionsummary.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionsummary.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionsummary.FieldFinalDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adaptations(); ok {
		_spec.SetField(sessionsummary.FieldAdaptations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdaptations(); ok {
		_spec.AddField(sessionsummary.FieldAdaptations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Readiness(); ok {
		_spec.SetField(sessionsummary.FieldReadiness, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndReason(); ok {
		_spec.SetField(sessionsummary.FieldEndReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByTier(); ok {
		_spec.SetField(sessionsummary.FieldByTier, field.TypeJSON, value)
	}
	if _u.mutation.ByTierCleared() {
		_spec.ClearField(sessionsummary.FieldByTier, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionSummaryUpdateOne is the builder for updating a single SessionSummary entity.
type SessionSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionSummaryMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionSummaryUpdateOne) SetUserID(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableUserID(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *SessionSummaryUpdateOne) SetSubtopicID(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableSubtopicID(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionSummaryUpdateOne) SetStartedAt(v time.Time) *SessionSummaryUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableStartedAt(v *time.Time) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionSummaryUpdateOne) SetEndedAt(v time.Time) *SessionSummaryUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableEndedAt(v *time.Time) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionSummaryUpdateOne) SetDurationSecs(v int) *SessionSummaryUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableDurationSecs(v *int) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionSummaryUpdateOne) AddDurationSecs(v int) *SessionSummaryUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *SessionSummaryUpdateOne) SetTotal(v int) *SessionSummaryUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableTotal(v *int) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *SessionSummaryUpdateOne) AddTotal(v int) *SessionSummaryUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionSummaryUpdateOne) SetCorrect(v int) *SessionSummaryUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableCorrect(v *int) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionSummaryUpdateOne) AddCorrect(v int) *SessionSummaryUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionSummaryUpdateOne) SetFinalDifficulty(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableFinalDifficulty(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// SetAdaptations sets the "adaptations" field.
func (_u *SessionSummaryUpdateOne) SetAdaptations(v int) *SessionSummaryUpdateOne {
	_u.mutation.ResetAdaptations()
	_u.mutation.SetAdaptations(v)
	return _u
}

// SetNillableAdaptations sets the "adaptations" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableAdaptations(v *int) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetAdaptations(*v)
	}
	return _u
}

// AddAdaptations adds value to the "adaptations" field.
func (_u *SessionSummaryUpdateOne) AddAdaptations(v int) *SessionSummaryUpdateOne {
	_u.mutation.AddAdaptations(v)
	return _u
}

// SetReadiness sets the "readiness" field.
func (_u *SessionSummaryUpdateOne) SetReadiness(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetReadiness(v)
	return _u
}

// SetNillableReadiness sets the "readiness" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableReadiness(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetReadiness(*v)
	}
	return _u
}

// SetEndReason sets the "end_reason" field.
func (_u *SessionSummaryUpdateOne) SetEndReason(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetEndReason(v)
	return _u
}

// SetNillableEndReason sets the "end_reason" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableEndReason(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetEndReason(*v)
	}
	return _u
}

// SetByTier sets the "by_tier" field.
func (_u *SessionSummaryUpdateOne) SetByTier(v difficulty.Breakdown) *SessionSummaryUpdateOne {
	_u.mutation.SetByTier(v)
	return _u
}

// ClearByTier clears the value of the "by_tier" field.
func (_u *SessionSummaryUpdateOne) ClearByTier() *SessionSummaryUpdateOne {
	_u.mutation.ClearByTier()
	return _u
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_u *SessionSummaryUpdateOne) Mutation() *SessionSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionSummaryUpdate builder.
func (_u *SessionSummaryUpdateOne) Where(ps ...predicate.SessionSummary) *SessionSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionSummaryUpdateOne) Select(field string, fields ...string) *SessionSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionSummary entity.
func (_u *SessionSummaryUpdateOne) Save(ctx context.Context) (*SessionSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSummaryUpdateOne) SaveX(ctx context.Context) *SessionSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionSummaryUpdateOne) sqlSave(ctx context.Context) (_node *SessionSummary, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionsummary.Table, sessionsummary.Columns, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionsummary.FieldID)
		for _, f := range fields {
			if !sessionsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionsummary.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionsummary.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicID(); ok {
		_spec.SetField(sessionsummary.FieldSubtopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionsummary.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionsummary.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionsummary.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionsummary.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(sessionsummary.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(sessionsummary.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionsummary.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionsummary.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionsummary.FieldFinalDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adaptations(); ok {
		_spec.SetField(sessionsummary.FieldAdaptations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdaptations(); ok {
		_spec.AddField(sessionsummary.FieldAdaptations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Readiness(); ok {
		_spec.SetField(sessionsummary.FieldReadiness, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndReason(); ok {
		_spec.SetField(sessionsummary.FieldEndReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByTier(); ok {
		_spec.SetField(sessionsummary.FieldByTier, field.TypeJSON, value)
	}
	if _u.mutation.ByTierCleared() {
		_spec.ClearField(sessionsummary.FieldByTier, field.TypeJSON)
	}
	_node = &SessionSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
