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
	"github.com/abhisek/mathpath/ent/subtopicprogress"
)

// SubtopicProgressCreate is the builder for creating a SubtopicProgress entity.
type SubtopicProgressCreate struct {
	config
	mutation *SubtopicProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *SubtopicProgressCreate) SetUserID(v string) *SubtopicProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *SubtopicProgressCreate) SetSubtopicID(v string) *SubtopicProgressCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *SubtopicProgressCreate) SetTier(v subtopicprogress.Tier) *SubtopicProgressCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetSubLevel sets the "sub_level" field.
func (_c *SubtopicProgressCreate) SetSubLevel(v int) *SubtopicProgressCreate {
	_c.mutation.SetSubLevel(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubtopicProgressCreate) SetUpdatedAt(v time.Time) *SubtopicProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubtopicProgressCreate) SetNillableUpdatedAt(v *time.Time) *SubtopicProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SubtopicProgressMutation object of the builder.
func (_c *SubtopicProgressCreate) Mutation() *SubtopicProgressMutation {
	return _c.mutation
}

// Save creates the SubtopicProgress in the database.
func (_c *SubtopicProgressCreate) Save(ctx context.Context) (*SubtopicProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubtopicProgressCreate) SaveX(ctx context.Context) *SubtopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubtopicProgressCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subtopicprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubtopicProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubtopicProgress.user_id"`)}
	}
	if _, ok := _c.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "SubtopicProgress.subtopic_id"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "SubtopicProgress.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := subtopicprogress.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "SubtopicProgress.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubLevel(); !ok {
		return &ValidationError{Name: "sub_level", err: errors.New(`ent: missing required field "SubtopicProgress.sub_level"`)}
	}
	if v, ok := _c.mutation.SubLevel(); ok {
		if err := subtopicprogress.SubLevelValidator(v); err != nil {
			return &ValidationError{Name: "sub_level", err: fmt.Errorf(`ent: validator failed for field "SubtopicProgress.sub_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubtopicProgress.updated_at"`)}
	}
	return nil
}

func (_c *SubtopicProgressCreate) sqlSave(ctx context.Context) (*SubtopicProgress, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubtopicProgressCreate) createSpec() (*SubtopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &SubtopicProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtopicprogress.Table, sqlgraph.NewFieldSpec(subtopicprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(subtopicprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubtopicID(); ok {
		_spec.SetField(subtopicprogress.FieldSubtopicID, field.TypeString, value)
		_node.SubtopicID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(subtopicprogress.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.SubLevel(); ok {
		_spec.SetField(subtopicprogress.FieldSubLevel, field.TypeInt, value)
		_node.SubLevel = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subtopicprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubtopicProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubtopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubtopicProgressCreate) OnConflict(opts ...sql.ConflictOption) *SubtopicProgressUpsertOne {
	_c.conflict = opts
	return &SubtopicProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubtopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubtopicProgressCreate) OnConflictColumns(columns ...string) *SubtopicProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubtopicProgressUpsertOne{
		create: _c,
	}
}

type (
	// SubtopicProgressUpsertOne is the builder for "upsert"-ing
	//  one SubtopicProgress node.
	SubtopicProgressUpsertOne struct {
		create *SubtopicProgressCreate
	}

	// SubtopicProgressUpsert is the "OnConflict" setter.
	SubtopicProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetTier sets the "tier" field.
func (u *SubtopicProgressUpsert) SetTier(v subtopicprogress.Tier) *SubtopicProgressUpsert {
	u.Set(subtopicprogress.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *SubtopicProgressUpsert) UpdateTier() *SubtopicProgressUpsert {
	u.SetExcluded(subtopicprogress.FieldTier)
	return u
}

// SetSubLevel sets the "sub_level" field.
func (u *SubtopicProgressUpsert) SetSubLevel(v int) *SubtopicProgressUpsert {
	u.Set(subtopicprogress.FieldSubLevel, v)
	return u
}

// UpdateSubLevel sets the "sub_level" field to the value that was provided on create.
func (u *SubtopicProgressUpsert) UpdateSubLevel() *SubtopicProgressUpsert {
	u.SetExcluded(subtopicprogress.FieldSubLevel)
	return u
}

// AddSubLevel adds v to the "sub_level" field.
func (u *SubtopicProgressUpsert) AddSubLevel(v int) *SubtopicProgressUpsert {
	u.Add(subtopicprogress.FieldSubLevel, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubtopicProgressUpsert) SetUpdatedAt(v time.Time) *SubtopicProgressUpsert {
	u.Set(subtopicprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubtopicProgressUpsert) UpdateUpdatedAt() *SubtopicProgressUpsert {
	u.SetExcluded(subtopicprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SubtopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubtopicProgressUpsertOne) UpdateNewValues() *SubtopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(subtopicprogress.FieldUserID)
		}
		if _, exists := u.create.mutation.SubtopicID(); exists {
			s.SetIgnore(subtopicprogress.FieldSubtopicID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubtopicProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubtopicProgressUpsertOne) Ignore() *SubtopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubtopicProgressUpsertOne) DoNothing() *SubtopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubtopicProgressCreate.OnConflict
// documentation for more info.
func (u *SubtopicProgressUpsertOne) Update(set func(*SubtopicProgressUpsert)) *SubtopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubtopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetTier sets the "tier" field.
func (u *SubtopicProgressUpsertOne) SetTier(v subtopicprogress.Tier) *SubtopicProgressUpsertOne {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *SubtopicProgressUpsertOne) UpdateTier() *SubtopicProgressUpsertOne {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.UpdateTier()
	})
}

// SetSubLevel sets the "sub_level" field.
func (u *SubtopicProgressUpsertOne) SetSubLevel(v int) *SubtopicProgressUpsertOne {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.SetSubLevel(v)
	})
}

// AddSubLevel adds v to the "sub_level" field.
func (u *SubtopicProgressUpsertOne) AddSubLevel(v int) *SubtopicProgressUpsertOne {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.AddSubLevel(v)
	})
}

// UpdateSubLevel sets the "sub_level" field to the value that was provided on create.
func (u *SubtopicProgressUpsertOne) UpdateSubLevel() *SubtopicProgressUpsertOne {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.UpdateSubLevel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubtopicProgressUpsertOne) SetUpdatedAt(v time.Time) *SubtopicProgressUpsertOne {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubtopicProgressUpsertOne) UpdateUpdatedAt() *SubtopicProgressUpsertOne {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubtopicProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubtopicProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubtopicProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubtopicProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubtopicProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubtopicProgressCreateBulk is the builder for creating many SubtopicProgress entities in bulk.
type SubtopicProgressCreateBulk struct {
	config
	err      error
	builders []*SubtopicProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the SubtopicProgress entities in the database.
func (_c *SubtopicProgressCreateBulk) Save(ctx context.Context) ([]*SubtopicProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubtopicProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtopicProgressMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SubtopicProgressCreateBulk) SaveX(ctx context.Context) []*SubtopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubtopicProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubtopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubtopicProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubtopicProgressUpsertBulk {
	_c.conflict = opts
	return &SubtopicProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubtopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubtopicProgressCreateBulk) OnConflictColumns(columns ...string) *SubtopicProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubtopicProgressUpsertBulk{
		create: _c,
	}
}

// SubtopicProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of SubtopicProgress nodes.
type SubtopicProgressUpsertBulk struct {
	create *SubtopicProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SubtopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubtopicProgressUpsertBulk) UpdateNewValues() *SubtopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(subtopicprogress.FieldUserID)
			}
			if _, exists := b.mutation.SubtopicID(); exists {
				s.SetIgnore(subtopicprogress.FieldSubtopicID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubtopicProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubtopicProgressUpsertBulk) Ignore() *SubtopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubtopicProgressUpsertBulk) DoNothing() *SubtopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubtopicProgressCreateBulk.OnConflict
// documentation for more info.
func (u *SubtopicProgressUpsertBulk) Update(set func(*SubtopicProgressUpsert)) *SubtopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubtopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetTier sets the "tier" field.
func (u *SubtopicProgressUpsertBulk) SetTier(v subtopicprogress.Tier) *SubtopicProgressUpsertBulk {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *SubtopicProgressUpsertBulk) UpdateTier() *SubtopicProgressUpsertBulk {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.UpdateTier()
	})
}

// SetSubLevel sets the "sub_level" field.
func (u *SubtopicProgressUpsertBulk) SetSubLevel(v int) *SubtopicProgressUpsertBulk {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.SetSubLevel(v)
	})
}

// AddSubLevel adds v to the "sub_level" field.
func (u *SubtopicProgressUpsertBulk) AddSubLevel(v int) *SubtopicProgressUpsertBulk {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.AddSubLevel(v)
	})
}

// UpdateSubLevel sets the "sub_level" field to the value that was provided on create.
func (u *SubtopicProgressUpsertBulk) UpdateSubLevel() *SubtopicProgressUpsertBulk {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.UpdateSubLevel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubtopicProgressUpsertBulk) SetUpdatedAt(v time.Time) *SubtopicProgressUpsertBulk {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubtopicProgressUpsertBulk) UpdateUpdatedAt() *SubtopicProgressUpsertBulk {
	return u.Update(func(s *SubtopicProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubtopicProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubtopicProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubtopicProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubtopicProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
