// Code generated by ent, DO NOT EDIT.

package subtopicprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldUserID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldSubtopicID, v))
}

// SubLevel applies equality check predicate on the "sub_level" field. It's identical to SubLevelEQ.
func SubLevel(v int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldSubLevel, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldContainsFold(FieldUserID, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLTE(FieldSubtopicID, v))
}

// SubtopicIDContains applies the Contains predicate on the "subtopic_id" field.
func SubtopicIDContains(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldContains(FieldSubtopicID, v))
}

// SubtopicIDHasPrefix applies the HasPrefix predicate on the "subtopic_id" field.
func SubtopicIDHasPrefix(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldHasPrefix(FieldSubtopicID, v))
}

// SubtopicIDHasSuffix applies the HasSuffix predicate on the "subtopic_id" field.
func SubtopicIDHasSuffix(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldHasSuffix(FieldSubtopicID, v))
}

// SubtopicIDEqualFold applies the EqualFold predicate on the "subtopic_id" field.
func SubtopicIDEqualFold(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEqualFold(FieldSubtopicID, v))
}

// SubtopicIDContainsFold applies the ContainsFold predicate on the "subtopic_id" field.
func SubtopicIDContainsFold(v string) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldContainsFold(FieldSubtopicID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNotIn(FieldTier, vs...))
}

// SubLevelEQ applies the EQ predicate on the "sub_level" field.
func SubLevelEQ(v int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldSubLevel, v))
}

// SubLevelNEQ applies the NEQ predicate on the "sub_level" field.
func SubLevelNEQ(v int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNEQ(FieldSubLevel, v))
}

// SubLevelIn applies the In predicate on the "sub_level" field.
func SubLevelIn(vs ...int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldIn(FieldSubLevel, vs...))
}

// SubLevelNotIn applies the NotIn predicate on the "sub_level" field.
func SubLevelNotIn(vs ...int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNotIn(FieldSubLevel, vs...))
}

// SubLevelGT applies the GT predicate on the "sub_level" field.
func SubLevelGT(v int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGT(FieldSubLevel, v))
}

// SubLevelGTE applies the GTE predicate on the "sub_level" field.
func SubLevelGTE(v int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGTE(FieldSubLevel, v))
}

// SubLevelLT applies the LT predicate on the "sub_level" field.
func SubLevelLT(v int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLT(FieldSubLevel, v))
}

// SubLevelLTE applies the LTE predicate on the "sub_level" field.
func SubLevelLTE(v int) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLTE(FieldSubLevel, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubtopicProgress) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubtopicProgress) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubtopicProgress) predicate.SubtopicProgress {
	return predicate.SubtopicProgress(sql.NotPredicates(p))
}
