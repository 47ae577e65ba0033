// Code generated by ent, DO NOT EDIT.

package sessionsummary

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionsummary type in the database.
	Label = "session_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubtopicID holds the string denoting the subtopic_id field in the database.
	FieldSubtopicID = "subtopic_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldFinalDifficulty holds the string denoting the final_difficulty field in the database.
	FieldFinalDifficulty = "final_difficulty"
	// FieldAdaptations holds the string denoting the adaptations field in the database.
	FieldAdaptations = "adaptations"
	// FieldReadiness holds the string denoting the readiness field in the database.
	FieldReadiness = "readiness"
	// FieldEndReason holds the string denoting the end_reason field in the database.
	FieldEndReason = "end_reason"
	// FieldByTier holds the string denoting the by_tier field in the database.
	FieldByTier = "by_tier"
	// Table holds the table name of the sessionsummary in the database.
	Table = "session_summaries"
)

// Columns holds all SQL columns for sessionsummary fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubtopicID,
	FieldStartedAt,
	FieldEndedAt,
	FieldDurationSecs,
	FieldTotal,
	FieldCorrect,
	FieldFinalDifficulty,
	FieldAdaptations,
	FieldReadiness,
	FieldEndReason,
	FieldByTier,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSubtopicID holds the default value on creation for the "subtopic_id" field.
	DefaultSubtopicID string
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the SessionSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubtopicID orders the results by the subtopic_id field.
func BySubtopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByFinalDifficulty orders the results by the final_difficulty field.
func ByFinalDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalDifficulty, opts...).ToFunc()
}

// ByAdaptations orders the results by the adaptations field.
func ByAdaptations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdaptations, opts...).ToFunc()
}

// ByReadiness orders the results by the readiness field.
func ByReadiness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadiness, opts...).ToFunc()
}

// ByEndReason orders the results by the end_reason field.
func ByEndReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndReason, opts...).ToFunc()
}
