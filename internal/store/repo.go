package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/mathpath/internal/difficulty"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // id > After
	Before int64     // id < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Exercise is a problem with its canonical answer. The engine never
// mutates exercises.
type Exercise struct {
	ID            string
	SubtopicID    string
	Difficulty    difficulty.Tier
	Question      string
	CorrectAnswer string
	Explanation   string
	Hint          string
	CreatedAt     time.Time
}

// Attempt is one submission by a learner. Attempts are append-only.
type Attempt struct {
	ID               int64
	ExerciseID       string
	UserID           string
	UserAnswer       *string
	IsCorrect        bool
	HintsUsed        int
	TimeSpentSeconds *int
	CreatedAt        time.Time
}

// AttemptRecord is an attempt joined with the difficulty of its exercise.
type AttemptRecord struct {
	Attempt
	Difficulty difficulty.Tier
}

// Progress is the stored difficulty state of a learner in a subtopic.
type Progress struct {
	UserID     string
	SubtopicID string
	State      difficulty.State
	UpdatedAt  time.Time
}

// SessionSummary is the durable record of a finished session.
type SessionSummary struct {
	ID              string
	UserID          string
	SubtopicID      string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSecs    int
	Total           int
	Correct         int
	FinalDifficulty difficulty.Tier
	Adaptations     int
	Readiness       string
	EndReason       string
	ByTier          difficulty.Breakdown
}

// OracleRequestEventData captures the data for a single oracle request.
type OracleRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// OracleRequestEvent is a stored oracle request.
type OracleRequestEvent struct {
	ID        int64
	Timestamp time.Time
	OracleRequestEventData
}

// ExerciseRepo provides access to exercises.
type ExerciseRepo interface {
	// GetExercise returns ErrNotFound if id does not exist.
	GetExercise(ctx context.Context, id string) (*Exercise, error)

	// InsertExercise stores ex. CreatedAt is set when zero.
	InsertExercise(ctx context.Context, ex *Exercise) error

	// ListExercises returns exercises in a subtopic, oldest first. An empty
	// tier matches every tier. limit <= 0 means no limit.
	ListExercises(ctx context.Context, subtopicID string, tier difficulty.Tier, limit int) ([]Exercise, error)
}

// AttemptRepo provides append and read access to attempts.
type AttemptRepo interface {
	// InsertAttempt appends a. ID and CreatedAt are set on success.
	InsertAttempt(ctx context.Context, a *Attempt) error

	// RecentAttempts returns at most limit attempts by userID on exercises
	// in subtopicID, newest first.
	RecentAttempts(ctx context.Context, userID, subtopicID string, limit int) ([]AttemptRecord, error)

	// CountAttempts returns the number of attempts by userID on exercises in
	// subtopicID.
	CountAttempts(ctx context.Context, userID, subtopicID string) (int, error)
}

// ProgressRepo stores per-subtopic difficulty state.
type ProgressRepo interface {
	// GetProgress returns nil, nil when nothing is stored yet.
	GetProgress(ctx context.Context, userID, subtopicID string) (*Progress, error)

	// UpsertProgress writes p, replacing any previous state.
	UpsertProgress(ctx context.Context, p Progress) error
}

// SessionRepo stores finished session summaries.
type SessionRepo interface {
	SaveSessionSummary(ctx context.Context, s *SessionSummary) error

	// ListSessionSummaries returns the newest summaries for userID first.
	ListSessionSummaries(ctx context.Context, userID string, limit int) ([]SessionSummary, error)
}

// OracleEventRepo records and queries oracle requests.
type OracleEventRepo interface {
	AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error
	QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]OracleRequestEvent, error)
	GetOracleEvent(ctx context.Context, id int64) (*OracleRequestEvent, error)
}
