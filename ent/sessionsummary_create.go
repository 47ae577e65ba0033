// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathpath/ent/sessionsummary"
	"github.com/abhisek/mathpath/internal/difficulty"
)

// SessionSummaryCreate is the builder for creating a SessionSummary entity.
type SessionSummaryCreate struct {
	config
	mutation *SessionSummaryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *SessionSummaryCreate) SetUserID(v string) *SessionSummaryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *SessionSummaryCreate) SetSubtopicID(v string) *SessionSummaryCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_c *SessionSummaryCreate) SetNillableSubtopicID(v *string) *SessionSummaryCreate {
	if v != nil {
		_c.SetSubtopicID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionSummaryCreate) SetStartedAt(v time.Time) *SessionSummaryCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionSummaryCreate) SetEndedAt(v time.Time) *SessionSummaryCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionSummaryCreate) SetDurationSecs(v int) *SessionSummaryCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *SessionSummaryCreate) SetTotal(v int) *SessionSummaryCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *SessionSummaryCreate) SetCorrect(v int) *SessionSummaryCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_c *SessionSummaryCreate) SetFinalDifficulty(v string) *SessionSummaryCreate {
	_c.mutation.SetFinalDifficulty(v)
	return _c
}

// SetAdaptations sets the "adaptations" field.
func (_c *SessionSummaryCreate) SetAdaptations(v int) *SessionSummaryCreate {
	_c.mutation.SetAdaptations(v)
	return _c
}

// SetReadiness sets the "readiness" field.
func (_c *SessionSummaryCreate) SetReadiness(v string) *SessionSummaryCreate {
	_c.mutation.SetReadiness(v)
	return _c
}

// SetEndReason sets the "end_reason" field.
func (_c *SessionSummaryCreate) SetEndReason(v string) *SessionSummaryCreate {
	_c.mutation.SetEndReason(v)
	return _c
}

// SetByTier sets the "by_tier" field.
func (_c *SessionSummaryCreate) SetByTier(v difficulty.Breakdown) *SessionSummaryCreate {
	_c.mutation.SetByTier(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SessionSummaryCreate) SetID(v string) *SessionSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_c *SessionSummaryCreate) Mutation() *SessionSummaryMutation {
	return _c.mutation
}

// Save creates the SessionSummary in the database.
func (_c *SessionSummaryCreate) Save(ctx context.Context) (*SessionSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionSummaryCreate) SaveX(ctx context.Context) *SessionSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionSummaryCreate) defaults() {
	if _, ok := _c.mutation.SubtopicID(); !ok {
		v := sessionsummary.DefaultSubtopicID
		_c.mutation.SetSubtopicID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionSummaryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionSummary.user_id"`)}
	}
	if _, ok := _c.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "SessionSummary.subtopic_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionSummary.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "SessionSummary.ended_at"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionSummary.duration_secs"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "SessionSummary.total"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionSummary.correct"`)}
	}
	if _, ok := _c.mutation.FinalDifficulty(); !ok {
		return &ValidationError{Name: "final_difficulty", err: errors.New(`ent: missing required field "SessionSummary.final_difficulty"`)}
	}
	if _, ok := _c.mutation.Adaptations(); !ok {
		return &ValidationError{Name: "adaptations", err: errors.New(`ent: missing required field "SessionSummary.adaptations"`)}
	}
	if _, ok := _c.mutation.Readiness(); !ok {
		return &ValidationError{Name: "readiness", err: errors.New(`ent: missing required field "SessionSummary.readiness"`)}
	}
	if _, ok := _c.mutation.EndReason(); !ok {
		return &ValidationError{Name: "end_reason", err: errors.New(`ent: missing required field "SessionSummary.end_reason"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := sessionsummary.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionSummaryCreate) sqlSave(ctx context.Context) (*SessionSummary, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SessionSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionSummaryCreate) createSpec() (*SessionSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionsummary.Table, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionsummary.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubtopicID(); ok {
		_spec.SetField(sessionsummary.FieldSubtopicID, field.TypeString, value)
		_node.SubtopicID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionsummary.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(sessionsummary.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionsummary.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(sessionsummary.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(sessionsummary.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionsummary.FieldFinalDifficulty, field.TypeString, value)
		_node.FinalDifficulty = value
	}
	if value, ok := _c.mutation.Adaptations(); ok {
		_spec.SetField(sessionsummary.FieldAdaptations, field.TypeInt, value)
		_node.Adaptations = value
	}
	if value, ok := _c.mutation.Readiness(); ok {
		_spec.SetField(sessionsummary.FieldReadiness, field.TypeString, value)
		_node.Readiness = value
	}
	if value, ok := _c.mutation.EndReason(); ok {
		_spec.SetField(sessionsummary.FieldEndReason, field.TypeString, value)
		_node.EndReason = value
	}
	if value, ok := _c.mutation.ByTier(); ok {
		_spec.SetField(sessionsummary.FieldByTier, field.TypeJSON, value)
		_node.ByTier = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionSummary.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionSummaryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionSummaryCreate) OnConflict(opts ...sql.ConflictOption) *SessionSummaryUpsertOne {
	_c.conflict = opts
	return &SessionSummaryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionSummaryCreate) OnConflictColumns(columns ...string) *SessionSummaryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionSummaryUpsertOne{
		create: _c,
	}
}

type (
	// SessionSummaryUpsertOne is the builder for "upsert"-ing
	//  one SessionSummary node.
	SessionSummaryUpsertOne struct {
		create *SessionSummaryCreate
	}

	// SessionSummaryUpsert is the "OnConflict" setter.
	SessionSummaryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *SessionSummaryUpsert) SetUserID(v string) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateUserID() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldUserID)
	return u
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *SessionSummaryUpsert) SetSubtopicID(v string) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldSubtopicID, v)
	return u
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateSubtopicID() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldSubtopicID)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *SessionSummaryUpsert) SetStartedAt(v time.Time) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateStartedAt() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldStartedAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionSummaryUpsert) SetEndedAt(v time.Time) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateEndedAt() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldEndedAt)
	return u
}

// SetDurationSecs sets the "duration_secs" field.
func (u *SessionSummaryUpsert) SetDurationSecs(v int) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldDurationSecs, v)
	return u
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateDurationSecs() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldDurationSecs)
	return u
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *SessionSummaryUpsert) AddDurationSecs(v int) *SessionSummaryUpsert {
	u.Add(sessionsummary.FieldDurationSecs, v)
	return u
}

// SetTotal sets the "total" field.
func (u *SessionSummaryUpsert) SetTotal(v int) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateTotal() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *SessionSummaryUpsert) AddTotal(v int) *SessionSummaryUpsert {
	u.Add(sessionsummary.FieldTotal, v)
	return u
}

// SetCorrect sets the "correct" field.
func (u *SessionSummaryUpsert) SetCorrect(v int) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateCorrect() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldCorrect)
	return u
}

// AddCorrect adds v to the "correct" field.
func (u *SessionSummaryUpsert) AddCorrect(v int) *SessionSummaryUpsert {
	u.Add(sessionsummary.FieldCorrect, v)
	return u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (u *SessionSummaryUpsert) SetFinalDifficulty(v string) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldFinalDifficulty, v)
	return u
}

// UpdateFinalDifficulty sets the "final_difficulty" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateFinalDifficulty() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldFinalDifficulty)
	return u
}

// SetAdaptations sets the "adaptations" field.
func (u *SessionSummaryUpsert) SetAdaptations(v int) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldAdaptations, v)
	return u
}

// UpdateAdaptations sets the "adaptations" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateAdaptations() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldAdaptations)
	return u
}

// AddAdaptations adds v to the "adaptations" field.
func (u *SessionSummaryUpsert) AddAdaptations(v int) *SessionSummaryUpsert {
	u.Add(sessionsummary.FieldAdaptations, v)
	return u
}

// SetReadiness sets the "readiness" field.
func (u *SessionSummaryUpsert) SetReadiness(v string) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldReadiness, v)
	return u
}

// UpdateReadiness sets the "readiness" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateReadiness() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldReadiness)
	return u
}

// SetEndReason sets the "end_reason" field.
func (u *SessionSummaryUpsert) SetEndReason(v string) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldEndReason, v)
	return u
}

// UpdateEndReason sets the "end_reason" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateEndReason() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldEndReason)
	return u
}

// SetByTier sets the "by_tier" field.
func (u *SessionSummaryUpsert) SetByTier(v difficulty.Breakdown) *SessionSummaryUpsert {
	u.Set(sessionsummary.FieldByTier, v)
	return u
}

// UpdateByTier sets the "by_tier" field to the value that was provided on create.
func (u *SessionSummaryUpsert) UpdateByTier() *SessionSummaryUpsert {
	u.SetExcluded(sessionsummary.FieldByTier)
	return u
}

// ClearByTier clears the value of the "by_tier" field.
func (u *SessionSummaryUpsert) ClearByTier() *SessionSummaryUpsert {
	u.SetNull(sessionsummary.FieldByTier)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionSummaryUpsertOne) UpdateNewValues() *SessionSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionsummary.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionSummary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionSummaryUpsertOne) Ignore() *SessionSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionSummaryUpsertOne) DoNothing() *SessionSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionSummaryCreate.OnConflict
// documentation for more info.
func (u *SessionSummaryUpsertOne) Update(set func(*SessionSummaryUpsert)) *SessionSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionSummaryUpsertOne) SetUserID(v string) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateUserID() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateUserID()
	})
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *SessionSummaryUpsertOne) SetSubtopicID(v string) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateSubtopicID() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionSummaryUpsertOne) SetStartedAt(v time.Time) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateStartedAt() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionSummaryUpsertOne) SetEndedAt(v time.Time) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateEndedAt() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateEndedAt()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *SessionSummaryUpsertOne) SetDurationSecs(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *SessionSummaryUpsertOne) AddDurationSecs(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateDurationSecs() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateDurationSecs()
	})
}

// SetTotal sets the "total" field.
func (u *SessionSummaryUpsertOne) SetTotal(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *SessionSummaryUpsertOne) AddTotal(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateTotal() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateTotal()
	})
}

// SetCorrect sets the "correct" field.
func (u *SessionSummaryUpsertOne) SetCorrect(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetCorrect(v)
	})
}

// AddCorrect adds v to the "correct" field.
func (u *SessionSummaryUpsertOne) AddCorrect(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateCorrect() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateCorrect()
	})
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (u *SessionSummaryUpsertOne) SetFinalDifficulty(v string) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetFinalDifficulty(v)
	})
}

// UpdateFinalDifficulty sets the "final_difficulty" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateFinalDifficulty() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateFinalDifficulty()
	})
}

// SetAdaptations sets the "adaptations" field.
func (u *SessionSummaryUpsertOne) SetAdaptations(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetAdaptations(v)
	})
}

// AddAdaptations adds v to the "adaptations" field.
func (u *SessionSummaryUpsertOne) AddAdaptations(v int) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddAdaptations(v)
	})
}

// UpdateAdaptations sets the "adaptations" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateAdaptations() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateAdaptations()
	})
}

// SetReadiness sets the "readiness" field.
func (u *SessionSummaryUpsertOne) SetReadiness(v string) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetReadiness(v)
	})
}

// UpdateReadiness sets the "readiness" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateReadiness() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateReadiness()
	})
}

// SetEndReason sets the "end_reason" field.
func (u *SessionSummaryUpsertOne) SetEndReason(v string) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetEndReason(v)
	})
}

// UpdateEndReason sets the "end_reason" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateEndReason() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateEndReason()
	})
}

// SetByTier sets the "by_tier" field.
func (u *SessionSummaryUpsertOne) SetByTier(v difficulty.Breakdown) *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetByTier(v)
	})
}

// UpdateByTier sets the "by_tier" field to the value that was provided on create.
func (u *SessionSummaryUpsertOne) UpdateByTier() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateByTier()
	})
}

// ClearByTier clears the value of the "by_tier" field.
func (u *SessionSummaryUpsertOne) ClearByTier() *SessionSummaryUpsertOne {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.ClearByTier()
	})
}

// Exec executes the query.
func (u *SessionSummaryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionSummaryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionSummaryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionSummaryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionSummaryUpsertOne.ID is not supported by MySQL driver. Use SessionSummaryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionSummaryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionSummaryCreateBulk is the builder for creating many SessionSummary entities in bulk.
type SessionSummaryCreateBulk struct {
	config
	err      error
	builders []*SessionSummaryCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionSummary entities in the database.
func (_c *SessionSummaryCreateBulk) Save(ctx context.Context) ([]*SessionSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionSummaryMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *SessionSummaryCreateBulk) SaveX(ctx context.Context) []*SessionSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionSummary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionSummaryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionSummaryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionSummaryUpsertBulk {
	_c.conflict = opts
	return &SessionSummaryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionSummaryCreateBulk) OnConflictColumns(columns ...string) *SessionSummaryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionSummaryUpsertBulk{
		create: _c,
	}
}

// SessionSummaryUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionSummary nodes.
type SessionSummaryUpsertBulk struct {
	create *SessionSummaryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionSummaryUpsertBulk) UpdateNewValues() *SessionSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionsummary.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionSummary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionSummaryUpsertBulk) Ignore() *SessionSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionSummaryUpsertBulk) DoNothing() *SessionSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionSummaryCreateBulk.OnConflict
// documentation for more info.
func (u *SessionSummaryUpsertBulk) Update(set func(*SessionSummaryUpsert)) *SessionSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionSummaryUpsertBulk) SetUserID(v string) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateUserID() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateUserID()
	})
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *SessionSummaryUpsertBulk) SetSubtopicID(v string) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateSubtopicID() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionSummaryUpsertBulk) SetStartedAt(v time.Time) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateStartedAt() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionSummaryUpsertBulk) SetEndedAt(v time.Time) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateEndedAt() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateEndedAt()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *SessionSummaryUpsertBulk) SetDurationSecs(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *SessionSummaryUpsertBulk) AddDurationSecs(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateDurationSecs() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateDurationSecs()
	})
}

// SetTotal sets the "total" field.
func (u *SessionSummaryUpsertBulk) SetTotal(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *SessionSummaryUpsertBulk) AddTotal(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateTotal() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateTotal()
	})
}

// SetCorrect sets the "correct" field.
func (u *SessionSummaryUpsertBulk) SetCorrect(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetCorrect(v)
	})
}

// AddCorrect adds v to the "correct" field.
func (u *SessionSummaryUpsertBulk) AddCorrect(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateCorrect() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateCorrect()
	})
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (u *SessionSummaryUpsertBulk) SetFinalDifficulty(v string) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetFinalDifficulty(v)
	})
}

// UpdateFinalDifficulty sets the "final_difficulty" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateFinalDifficulty() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateFinalDifficulty()
	})
}

// SetAdaptations sets the "adaptations" field.
func (u *SessionSummaryUpsertBulk) SetAdaptations(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetAdaptations(v)
	})
}

// AddAdaptations adds v to the "adaptations" field.
func (u *SessionSummaryUpsertBulk) AddAdaptations(v int) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.AddAdaptations(v)
	})
}

// UpdateAdaptations sets the "adaptations" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateAdaptations() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateAdaptations()
	})
}

// SetReadiness sets the "readiness" field.
func (u *SessionSummaryUpsertBulk) SetReadiness(v string) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetReadiness(v)
	})
}

// UpdateReadiness sets the "readiness" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateReadiness() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateReadiness()
	})
}

// SetEndReason sets the "end_reason" field.
func (u *SessionSummaryUpsertBulk) SetEndReason(v string) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetEndReason(v)
	})
}

// UpdateEndReason sets the "end_reason" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateEndReason() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateEndReason()
	})
}

// SetByTier sets the "by_tier" field.
func (u *SessionSummaryUpsertBulk) SetByTier(v difficulty.Breakdown) *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.SetByTier(v)
	})
}

// UpdateByTier sets the "by_tier" field to the value that was provided on create.
func (u *SessionSummaryUpsertBulk) UpdateByTier() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.UpdateByTier()
	})
}

// ClearByTier clears the value of the "by_tier" field.
func (u *SessionSummaryUpsertBulk) ClearByTier() *SessionSummaryUpsertBulk {
	return u.Update(func(s *SessionSummaryUpsert) {
		s.ClearByTier()
	})
}

// Exec executes the query.
func (u *SessionSummaryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionSummaryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionSummaryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionSummaryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
