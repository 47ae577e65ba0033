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
	"github.com/abhisek/mathpath/ent/attempt"
	"github.com/abhisek/mathpath/ent/exercise"
)

// ExerciseCreate is the builder for creating a Exercise entity.
type ExerciseCreate struct {
	config
	mutation *ExerciseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *ExerciseCreate) SetSubtopicID(v string) *ExerciseCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ExerciseCreate) SetDifficulty(v exercise.Difficulty) *ExerciseCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ExerciseCreate) SetQuestion(v string) *ExerciseCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableQuestion(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetQuestion(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ExerciseCreate) SetCorrectAnswer(v string) *ExerciseCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ExerciseCreate) SetExplanation(v string) *ExerciseCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableExplanation(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetHint sets the "hint" field.
func (_c *ExerciseCreate) SetHint(v string) *ExerciseCreate {
	_c.mutation.SetHint(v)
	return _c
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableHint(v *string) *ExerciseCreate {
	if v != nil {
		_c.SetHint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExerciseCreate) SetCreatedAt(v time.Time) *ExerciseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExerciseCreate) SetNillableCreatedAt(v *time.Time) *ExerciseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExerciseCreate) SetID(v string) *ExerciseCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_c *ExerciseCreate) AddAttemptIDs(ids ...int) *ExerciseCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_c *ExerciseCreate) AddAttempts(v ...*Attempt) *ExerciseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the ExerciseMutation object of the builder.
func (_c *ExerciseCreate) Mutation() *ExerciseMutation {
	return _c.mutation
}

// Save creates the Exercise in the database.
func (_c *ExerciseCreate) Save(ctx context.Context) (*Exercise, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseCreate) SaveX(ctx context.Context) *Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseCreate) defaults() {
	if _, ok := _c.mutation.Question(); !ok {
		v := exercise.DefaultQuestion
		_c.mutation.SetQuestion(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := exercise.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.Hint(); !ok {
		v := exercise.DefaultHint
		_c.mutation.SetHint(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exercise.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseCreate) check() error {
	if _, ok := _c.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "Exercise.subtopic_id"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Exercise.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := exercise.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Exercise.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Exercise.question"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Exercise.correct_answer"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Exercise.explanation"`)}
	}
	if _, ok := _c.mutation.Hint(); !ok {
		return &ValidationError{Name: "hint", err: errors.New(`ent: missing required field "Exercise.hint"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Exercise.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := exercise.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Exercise.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ExerciseCreate) sqlSave(ctx context.Context) (*Exercise, error) {
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
			return nil, fmt.Errorf("unexpected Exercise.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExerciseCreate) createSpec() (*Exercise, *sqlgraph.CreateSpec) {
	var (
		_node = &Exercise{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exercise.Table, sqlgraph.NewFieldSpec(exercise.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SubtopicID(); ok {
		_spec.SetField(exercise.FieldSubtopicID, field.TypeString, value)
		_node.SubtopicID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(exercise.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(exercise.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(exercise.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(exercise.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Hint(); ok {
		_spec.SetField(exercise.FieldHint, field.TypeString, value)
		_node.Hint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exercise.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exercise.AttemptsTable,
			Columns: []string{exercise.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Exercise.Create().
//		SetSubtopicID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseUpsert) {
//			SetSubtopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseCreate) OnConflict(opts ...sql.ConflictOption) *ExerciseUpsertOne {
	_c.conflict = opts
	return &ExerciseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseCreate) OnConflictColumns(columns ...string) *ExerciseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseUpsertOne{
		create: _c,
	}
}

type (
	// ExerciseUpsertOne is the builder for "upsert"-ing
	//  one Exercise node.
	ExerciseUpsertOne struct {
		create *ExerciseCreate
	}

	// ExerciseUpsert is the "OnConflict" setter.
	ExerciseUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(exercise.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExerciseUpsertOne) UpdateNewValues() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(exercise.FieldID)
		}
		if _, exists := u.create.mutation.SubtopicID(); exists {
			s.SetIgnore(exercise.FieldSubtopicID)
		}
		if _, exists := u.create.mutation.Difficulty(); exists {
			s.SetIgnore(exercise.FieldDifficulty)
		}
		if _, exists := u.create.mutation.Question(); exists {
			s.SetIgnore(exercise.FieldQuestion)
		}
		if _, exists := u.create.mutation.CorrectAnswer(); exists {
			s.SetIgnore(exercise.FieldCorrectAnswer)
		}
		if _, exists := u.create.mutation.Explanation(); exists {
			s.SetIgnore(exercise.FieldExplanation)
		}
		if _, exists := u.create.mutation.Hint(); exists {
			s.SetIgnore(exercise.FieldHint)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(exercise.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExerciseUpsertOne) Ignore() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseUpsertOne) DoNothing() *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseCreate.OnConflict
// documentation for more info.
func (u *ExerciseUpsertOne) Update(set func(*ExerciseUpsert)) *ExerciseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ExerciseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExerciseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExerciseUpsertOne.ID is not supported by MySQL driver. Use ExerciseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExerciseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExerciseCreateBulk is the builder for creating many Exercise entities in bulk.
type ExerciseCreateBulk struct {
	config
	err      error
	builders []*ExerciseCreate
	conflict []sql.ConflictOption
}

// Save creates the Exercise entities in the database.
func (_c *ExerciseCreateBulk) Save(ctx context.Context) ([]*Exercise, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exercise, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseMutation)
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
func (_c *ExerciseCreateBulk) SaveX(ctx context.Context) []*Exercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Exercise.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExerciseUpsert) {
//			SetSubtopicID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExerciseCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExerciseUpsertBulk {
	_c.conflict = opts
	return &ExerciseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExerciseCreateBulk) OnConflictColumns(columns ...string) *ExerciseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExerciseUpsertBulk{
		create: _c,
	}
}

// ExerciseUpsertBulk is the builder for "upsert"-ing
// a bulk of Exercise nodes.
type ExerciseUpsertBulk struct {
	create *ExerciseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(exercise.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExerciseUpsertBulk) UpdateNewValues() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(exercise.FieldID)
			}
			if _, exists := b.mutation.SubtopicID(); exists {
				s.SetIgnore(exercise.FieldSubtopicID)
			}
			if _, exists := b.mutation.Difficulty(); exists {
				s.SetIgnore(exercise.FieldDifficulty)
			}
			if _, exists := b.mutation.Question(); exists {
				s.SetIgnore(exercise.FieldQuestion)
			}
			if _, exists := b.mutation.CorrectAnswer(); exists {
				s.SetIgnore(exercise.FieldCorrectAnswer)
			}
			if _, exists := b.mutation.Explanation(); exists {
				s.SetIgnore(exercise.FieldExplanation)
			}
			if _, exists := b.mutation.Hint(); exists {
				s.SetIgnore(exercise.FieldHint)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(exercise.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Exercise.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExerciseUpsertBulk) Ignore() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExerciseUpsertBulk) DoNothing() *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExerciseCreateBulk.OnConflict
// documentation for more info.
func (u *ExerciseUpsertBulk) Update(set func(*ExerciseUpsert)) *ExerciseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExerciseUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ExerciseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExerciseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExerciseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExerciseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
