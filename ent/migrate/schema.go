// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString, Nullable: true},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "exercise_id", Type: field.TypeString},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_exercises_attempts",
				Columns:    []*schema.Column{AttemptsColumns[7]},
				RefColumns: []*schema.Column{ExercisesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[6]},
			},
			{
				Name:    "attempt_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[7]},
			},
		},
	}
	// ExercisesColumns holds the columns for the "exercises" table.
	ExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}},
		{Name: "question", Type: field.TypeString, Default: ""},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Default: ""},
		{Name: "hint", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExercisesTable holds the schema information for the "exercises" table.
	ExercisesTable = &schema.Table{
		Name:       "exercises",
		Columns:    ExercisesColumns,
		PrimaryKey: []*schema.Column{ExercisesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exercise_subtopic_id_difficulty",
				Unique:  false,
				Columns: []*schema.Column{ExercisesColumns[1], ExercisesColumns[2]},
			},
		},
	}
	// OracleRequestEventsColumns holds the columns for the "oracle_request_events" table.
	OracleRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// OracleRequestEventsTable holds the schema information for the "oracle_request_events" table.
	OracleRequestEventsTable = &schema.Table{
		Name:       "oracle_request_events",
		Columns:    OracleRequestEventsColumns,
		PrimaryKey: []*schema.Column{OracleRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oraclerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[1]},
			},
			{
				Name:    "oraclerequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[4]},
			},
			{
				Name:    "oraclerequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[8]},
			},
		},
	}
	// SessionSummariesColumns holds the columns for the "session_summaries" table.
	SessionSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "final_difficulty", Type: field.TypeString},
		{Name: "adaptations", Type: field.TypeInt},
		{Name: "readiness", Type: field.TypeString},
		{Name: "end_reason", Type: field.TypeString},
		{Name: "by_tier", Type: field.TypeJSON, Nullable: true},
	}
	// SessionSummariesTable holds the schema information for the "session_summaries" table.
	SessionSummariesTable = &schema.Table{
		Name:       "session_summaries",
		Columns:    SessionSummariesColumns,
		PrimaryKey: []*schema.Column{SessionSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsummary_user_id_ended_at",
				Unique:  false,
				Columns: []*schema.Column{SessionSummariesColumns[1], SessionSummariesColumns[4]},
			},
		},
	}
	// SubtopicProgressesColumns holds the columns for the "subtopic_progresses" table.
	SubtopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}},
		{Name: "sub_level", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubtopicProgressesTable holds the schema information for the "subtopic_progresses" table.
	SubtopicProgressesTable = &schema.Table{
		Name:       "subtopic_progresses",
		Columns:    SubtopicProgressesColumns,
		PrimaryKey: []*schema.Column{SubtopicProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopicprogress_user_id_subtopic_id",
				Unique:  true,
				Columns: []*schema.Column{SubtopicProgressesColumns[1], SubtopicProgressesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		ExercisesTable,
		OracleRequestEventsTable,
		SessionSummariesTable,
		SubtopicProgressesTable,
	}
)

func init() {
	AttemptsTable.ForeignKeys[0].RefTable = ExercisesTable
}
