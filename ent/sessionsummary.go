// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpath/ent/sessionsummary"
	"github.com/abhisek/mathpath/internal/difficulty"
)

// SessionSummary is the model entity for the SessionSummary schema.
type SessionSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID string `json:"subtopic_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt time.Time `json:"ended_at,omitempty"`
	// DurationSecs holds the value of the "duration_secs" field.
	DurationSecs int `json:"duration_secs,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// FinalDifficulty holds the value of the "final_difficulty" field.
	FinalDifficulty string `json:"final_difficulty,omitempty"`
	// Number of tier changes during the session
	Adaptations int `json:"adaptations,omitempty"`
	// Readiness label at session end
	Readiness string `json:"readiness,omitempty"`
	// user, time-expired, completed or shutdown
	EndReason string `json:"end_reason,omitempty"`
	// Per-tier correct/total counts
	ByTier       difficulty.Breakdown `json:"by_tier,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionsummary.FieldByTier:
			values[i] = new([]byte)
		case sessionsummary.FieldDurationSecs, sessionsummary.FieldTotal, sessionsummary.FieldCorrect, sessionsummary.FieldAdaptations:
			values[i] = new(sql.NullInt64)
		case sessionsummary.FieldID, sessionsummary.FieldUserID, sessionsummary.FieldSubtopicID, sessionsummary.FieldFinalDifficulty, sessionsummary.FieldReadiness, sessionsummary.FieldEndReason:
			values[i] = new(sql.NullString)
		case sessionsummary.FieldStartedAt, sessionsummary.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionSummary fields.
func (_m *SessionSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionsummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionsummary.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sessionsummary.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				_m.SubtopicID = value.String
			}
		case sessionsummary.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case sessionsummary.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = value.Time
			}
		case sessionsummary.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case sessionsummary.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case sessionsummary.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case sessionsummary.FieldFinalDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_difficulty", values[i])
			} else if value.Valid {
				_m.FinalDifficulty = value.String
			}
		case sessionsummary.FieldAdaptations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field adaptations", values[i])
			} else if value.Valid {
				_m.Adaptations = int(value.Int64)
			}
		case sessionsummary.FieldReadiness:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field readiness", values[i])
			} else if value.Valid {
				_m.Readiness = value.String
			}
		case sessionsummary.FieldEndReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_reason", values[i])
			} else if value.Valid {
				_m.EndReason = value.String
			}
		case sessionsummary.FieldByTier:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field by_tier", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ByTier); err != nil {
					return fmt.Errorf("unmarshal field by_tier: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionSummary.
// This includes values selected through modifiers, order, etc.
func (_m *SessionSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionSummary.
// Note that you need to call SessionSummary.Unwrap() before calling this method if this SessionSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionSummary) Update() *SessionSummaryUpdateOne {
	return NewSessionSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionSummary) Unwrap() *SessionSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionSummary) String() string {
	var builder strings.Builder
	builder.WriteString("SessionSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subtopic_id=")
	builder.WriteString(_m.SubtopicID)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ended_at=")
	builder.WriteString(_m.EndedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("final_difficulty=")
	builder.WriteString(_m.FinalDifficulty)
	builder.WriteString(", ")
	builder.WriteString("adaptations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Adaptations))
	builder.WriteString(", ")
	builder.WriteString("readiness=")
	builder.WriteString(_m.Readiness)
	builder.WriteString(", ")
	builder.WriteString("end_reason=")
	builder.WriteString(_m.EndReason)
	builder.WriteString(", ")
	builder.WriteString("by_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.ByTier))
	builder.WriteByte(')')
	return builder.String()
}

// SessionSummaries is a parsable slice of SessionSummary.
type SessionSummaries []*SessionSummary
