// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Exercise is the predicate function for exercise builders.
type Exercise func(*sql.Selector)

// OracleRequestEvent is the predicate function for oraclerequestevent builders.
type OracleRequestEvent func(*sql.Selector)

// SessionSummary is the predicate function for sessionsummary builders.
type SessionSummary func(*sql.Selector)

// SubtopicProgress is the predicate function for subtopicprogress builders.
type SubtopicProgress func(*sql.Selector)
