// Code generated by ent, DO NOT EDIT.

package sessionsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldUserID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSubtopicID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldEndedAt, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldDurationSecs, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldTotal, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldCorrect, v))
}

// FinalDifficulty applies equality check predicate on the "final_difficulty" field. It's identical to FinalDifficultyEQ.
func FinalDifficulty(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldFinalDifficulty, v))
}

// Adaptations applies equality check predicate on the "adaptations" field. It's identical to AdaptationsEQ.
func Adaptations(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldAdaptations, v))
}

// Readiness applies equality check predicate on the "readiness" field. It's identical to ReadinessEQ.
func Readiness(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldReadiness, v))
}

// EndReason applies equality check predicate on the "end_reason" field. It's identical to EndReasonEQ.
func EndReason(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldEndReason, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldUserID, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldSubtopicID, v))
}

// SubtopicIDContains applies the Contains predicate on the "subtopic_id" field.
func SubtopicIDContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldSubtopicID, v))
}

// SubtopicIDHasPrefix applies the HasPrefix predicate on the "subtopic_id" field.
func SubtopicIDHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldSubtopicID, v))
}

// SubtopicIDHasSuffix applies the HasSuffix predicate on the "subtopic_id" field.
func SubtopicIDHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldSubtopicID, v))
}

// SubtopicIDEqualFold applies the EqualFold predicate on the "subtopic_id" field.
func SubtopicIDEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldSubtopicID, v))
}

// SubtopicIDContainsFold applies the ContainsFold predicate on the "subtopic_id" field.
func SubtopicIDContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldSubtopicID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldEndedAt, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldDurationSecs, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldTotal, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldCorrect, v))
}

// FinalDifficultyEQ applies the EQ predicate on the "final_difficulty" field.
func FinalDifficultyEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldFinalDifficulty, v))
}

// FinalDifficultyNEQ applies the NEQ predicate on the "final_difficulty" field.
func FinalDifficultyNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldFinalDifficulty, v))
}

// FinalDifficultyIn applies the In predicate on the "final_difficulty" field.
func FinalDifficultyIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldFinalDifficulty, vs...))
}

// FinalDifficultyNotIn applies the NotIn predicate on the "final_difficulty" field.
func FinalDifficultyNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldFinalDifficulty, vs...))
}

// FinalDifficultyGT applies the GT predicate on the "final_difficulty" field.
func FinalDifficultyGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldFinalDifficulty, v))
}

// FinalDifficultyGTE applies the GTE predicate on the "final_difficulty" field.
func FinalDifficultyGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldFinalDifficulty, v))
}

// FinalDifficultyLT applies the LT predicate on the "final_difficulty" field.
func FinalDifficultyLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldFinalDifficulty, v))
}

// FinalDifficultyLTE applies the LTE predicate on the "final_difficulty" field.
func FinalDifficultyLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldFinalDifficulty, v))
}

// FinalDifficultyContains applies the Contains predicate on the "final_difficulty" field.
func FinalDifficultyContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldFinalDifficulty, v))
}

// FinalDifficultyHasPrefix applies the HasPrefix predicate on the "final_difficulty" field.
func FinalDifficultyHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldFinalDifficulty, v))
}

// FinalDifficultyHasSuffix applies the HasSuffix predicate on the "final_difficulty" field.
func FinalDifficultyHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldFinalDifficulty, v))
}

// FinalDifficultyEqualFold applies the EqualFold predicate on the "final_difficulty" field.
func FinalDifficultyEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldFinalDifficulty, v))
}

// FinalDifficultyContainsFold applies the ContainsFold predicate on the "final_difficulty" field.
func FinalDifficultyContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldFinalDifficulty, v))
}

// AdaptationsEQ applies the EQ predicate on the "adaptations" field.
func AdaptationsEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldAdaptations, v))
}

// AdaptationsNEQ applies the NEQ predicate on the "adaptations" field.
func AdaptationsNEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldAdaptations, v))
}

// AdaptationsIn applies the In predicate on the "adaptations" field.
func AdaptationsIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldAdaptations, vs...))
}

// AdaptationsNotIn applies the NotIn predicate on the "adaptations" field.
func AdaptationsNotIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldAdaptations, vs...))
}

// AdaptationsGT applies the GT predicate on the "adaptations" field.
func AdaptationsGT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldAdaptations, v))
}

// AdaptationsGTE applies the GTE predicate on the "adaptations" field.
func AdaptationsGTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldAdaptations, v))
}

// AdaptationsLT applies the LT predicate on the "adaptations" field.
func AdaptationsLT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldAdaptations, v))
}

// AdaptationsLTE applies the LTE predicate on the "adaptations" field.
func AdaptationsLTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldAdaptations, v))
}

// ReadinessEQ applies the EQ predicate on the "readiness" field.
func ReadinessEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldReadiness, v))
}

// ReadinessNEQ applies the NEQ predicate on the "readiness" field.
func ReadinessNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldReadiness, v))
}

// ReadinessIn applies the In predicate on the "readiness" field.
func ReadinessIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldReadiness, vs...))
}

// ReadinessNotIn applies the NotIn predicate on the "readiness" field.
func ReadinessNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldReadiness, vs...))
}

// ReadinessGT applies the GT predicate on the "readiness" field.
func ReadinessGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldReadiness, v))
}

// ReadinessGTE applies the GTE predicate on the "readiness" field.
func ReadinessGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldReadiness, v))
}

// ReadinessLT applies the LT predicate on the "readiness" field.
func ReadinessLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldReadiness, v))
}

// ReadinessLTE applies the LTE predicate on the "readiness" field.
func ReadinessLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldReadiness, v))
}

// ReadinessContains applies the Contains predicate on the "readiness" field.
func ReadinessContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldReadiness, v))
}

// ReadinessHasPrefix applies the HasPrefix predicate on the "readiness" field.
func ReadinessHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldReadiness, v))
}

// ReadinessHasSuffix applies the HasSuffix predicate on the "readiness" field.
func ReadinessHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldReadiness, v))
}

// ReadinessEqualFold applies the EqualFold predicate on the "readiness" field.
func ReadinessEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldReadiness, v))
}

// ReadinessContainsFold applies the ContainsFold predicate on the "readiness" field.
func ReadinessContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldReadiness, v))
}

// EndReasonEQ applies the EQ predicate on the "end_reason" field.
func EndReasonEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldEndReason, v))
}

// EndReasonNEQ applies the NEQ predicate on the "end_reason" field.
func EndReasonNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldEndReason, v))
}

// EndReasonIn applies the In predicate on the "end_reason" field.
func EndReasonIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldEndReason, vs...))
}

// EndReasonNotIn applies the NotIn predicate on the "end_reason" field.
func EndReasonNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldEndReason, vs...))
}

// EndReasonGT applies the GT predicate on the "end_reason" field.
func EndReasonGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldEndReason, v))
}

// EndReasonGTE applies the GTE predicate on the "end_reason" field.
func EndReasonGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldEndReason, v))
}

// EndReasonLT applies the LT predicate on the "end_reason" field.
func EndReasonLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldEndReason, v))
}

// EndReasonLTE applies the LTE predicate on the "end_reason" field.
func EndReasonLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldEndReason, v))
}

// EndReasonContains applies the Contains predicate on the "end_reason" field.
func EndReasonContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldEndReason, v))
}

// EndReasonHasPrefix applies the HasPrefix predicate on the "end_reason" field.
func EndReasonHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldEndReason, v))
}

// EndReasonHasSuffix applies the HasSuffix predicate on the "end_reason" field.
func EndReasonHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldEndReason, v))
}

// EndReasonEqualFold applies the EqualFold predicate on the "end_reason" field.
func EndReasonEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldEndReason, v))
}

// EndReasonContainsFold applies the ContainsFold predicate on the "end_reason" field.
func EndReasonContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldEndReason, v))
}

// ByTierIsNil applies the IsNil predicate on the "by_tier" field.
func ByTierIsNil() predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIsNull(FieldByTier))
}

// ByTierNotNil applies the NotNil predicate on the "by_tier" field.
func ByTierNotNil() predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotNull(FieldByTier))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.NotPredicates(p))
}
