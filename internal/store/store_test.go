package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/mathpath/internal/difficulty"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedExercise(t *testing.T, s *Store, id, subtopic string, tier difficulty.Tier) {
	t.Helper()
	err := s.Exercises().InsertExercise(context.Background(), &Exercise{
		ID:            id,
		SubtopicID:    subtopic,
		Difficulty:    tier,
		Question:      "Solve x^2 = 9",
		CorrectAnswer: "x = 3, -3",
		Explanation:   "Take the square root of both sides.",
	})
	if err != nil {
		t.Fatalf("seed exercise %s: %v", id, err)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_FileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mathpath.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestExerciseRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedExercise(t, s, "ex-1", "quadratics", difficulty.TierMedium)

	got, err := s.Exercises().GetExercise(ctx, "ex-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SubtopicID != "quadratics" || got.Difficulty != difficulty.TierMedium {
		t.Errorf("got %+v", got)
	}
	if got.CorrectAnswer != "x = 3, -3" {
		t.Errorf("CorrectAnswer = %q", got.CorrectAnswer)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	_, err = s.Exercises().GetExercise(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing exercise: err = %v, want ErrNotFound", err)
	}
}

func TestListExercises_FiltersByTier(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedExercise(t, s, "e1", "quadratics", difficulty.TierEasy)
	seedExercise(t, s, "e2", "quadratics", difficulty.TierHard)
	seedExercise(t, s, "e3", "quadratics", difficulty.TierEasy)
	seedExercise(t, s, "e4", "fractions", difficulty.TierEasy)

	all, err := s.Exercises().ListExercises(ctx, "quadratics", "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}

	easy, err := s.Exercises().ListExercises(ctx, "quadratics", difficulty.TierEasy, 1)
	if err != nil {
		t.Fatalf("list easy: %v", err)
	}
	if len(easy) != 1 || easy[0].Difficulty != difficulty.TierEasy {
		t.Errorf("easy = %+v", easy)
	}
}

func TestRecentAttempts_NewestFirstScopedToSubtopic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedExercise(t, s, "q-easy", "quadratics", difficulty.TierEasy)
	seedExercise(t, s, "q-hard", "quadratics", difficulty.TierHard)
	seedExercise(t, s, "f-easy", "fractions", difficulty.TierEasy)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	insert := func(exID, user string, correct bool, offset time.Duration) {
		t.Helper()
		answer := "42"
		a := &Attempt{ExerciseID: exID, UserID: user, UserAnswer: &answer, IsCorrect: correct, CreatedAt: base.Add(offset)}
		if err := s.Attempts().InsertAttempt(ctx, a); err != nil {
			t.Fatalf("insert attempt: %v", err)
		}
		if a.ID == 0 {
			t.Fatal("expected attempt ID to be set")
		}
	}

	insert("q-easy", "u1", true, 0)
	insert("q-hard", "u1", false, time.Minute)
	insert("f-easy", "u1", true, 2*time.Minute)
	insert("q-easy", "u2", true, 3*time.Minute)
	insert("q-easy", "u1", false, 4*time.Minute)

	recs, err := s.Attempts().RecentAttempts(ctx, "u1", "quadratics", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	if recs[0].ExerciseID != "q-easy" || recs[0].IsCorrect {
		t.Errorf("recs[0] = %+v, want latest wrong easy attempt", recs[0])
	}
	if recs[1].Difficulty != difficulty.TierHard {
		t.Errorf("recs[1].Difficulty = %s, want hard", recs[1].Difficulty)
	}
	if !recs[2].CreatedAt.Equal(base) {
		t.Errorf("recs[2].CreatedAt = %v, want %v", recs[2].CreatedAt, base)
	}

	limited, err := s.Attempts().RecentAttempts(ctx, "u1", "quadratics", 2)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != recs[0].ID {
		t.Errorf("limited = %+v", limited)
	}

	n, err := s.Attempts().CountAttempts(ctx, "u1", "quadratics")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestInsertAttempt_NullableFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedExercise(t, s, "ex", "quadratics", difficulty.TierEasy)

	spent := 45
	if err := s.Attempts().InsertAttempt(ctx, &Attempt{ExerciseID: "ex", UserID: "u", TimeSpentSeconds: &spent}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	recs, err := s.Attempts().RecentAttempts(ctx, "u", "quadratics", 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if recs[0].UserAnswer != nil {
		t.Errorf("UserAnswer = %q, want nil", *recs[0].UserAnswer)
	}
	if recs[0].TimeSpentSeconds == nil || *recs[0].TimeSpentSeconds != 45 {
		t.Errorf("TimeSpentSeconds = %v, want 45", recs[0].TimeSpentSeconds)
	}
}

func TestInsertAttempt_UnknownExerciseRejected(t *testing.T) {
	s := openTestStore(t)
	err := s.Attempts().InsertAttempt(context.Background(), &Attempt{ExerciseID: "nope", UserID: "u"})
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Progress()

	p, err := repo.GetProgress(ctx, "u1", "quadratics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil progress, got %+v", p)
	}

	for _, st := range []difficulty.State{{Tier: difficulty.TierEasy, SubLevel: 2}, {Tier: difficulty.TierMedium, SubLevel: 3}} {
		if err := repo.UpsertProgress(ctx, Progress{UserID: "u1", SubtopicID: "quadratics", State: st}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	p, err = repo.GetProgress(ctx, "u1", "quadratics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.State != (difficulty.State{Tier: difficulty.TierMedium, SubLevel: 3}) {
		t.Errorf("State = %s, want medium/3", p.State)
	}

	rows, err := s.Client().SubtopicProgress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("progress rows = %d, want 1 after repeated upserts", rows)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"s1", "s2"} {
		sum := &SessionSummary{
			ID:              id,
			UserID:          "u1",
			SubtopicID:      "quadratics",
			StartedAt:       start.Add(time.Duration(i) * time.Hour),
			EndedAt:         start.Add(time.Duration(i)*time.Hour + 15*time.Minute),
			DurationSecs:    900,
			Total:           10,
			Correct:         8,
			FinalDifficulty: difficulty.TierHard,
			Adaptations:     2,
			Readiness:       "ready",
			EndReason:       "user-ended",
			ByTier:          difficulty.Breakdown{difficulty.TierEasy: {Correct: 4, Total: 4}},
		}
		if err := repo.SaveSessionSummary(ctx, sum); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := repo.ListSessionSummaries(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s2" {
		t.Fatalf("got %+v, want s2 first", got)
	}
	if got[0].ByTier[difficulty.TierEasy].Correct != 4 {
		t.Errorf("ByTier = %v", got[0].ByTier)
	}
}

func TestOracleEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.OracleEvents()

	for i := 0; i < 3; i++ {
		err := repo.AppendOracleRequest(ctx, OracleRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet",
			Purpose:      "exercise-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    1200,
			Success:      i != 1,
			RequestBody:  `{"q":1}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryOracleEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 || events[0].InputTokens != 102 {
		t.Fatalf("events = %+v", events)
	}

	older, err := repo.QueryOracleEvents(ctx, QueryOpts{Before: events[1].ID})
	if err != nil {
		t.Fatalf("query before: %v", err)
	}
	if len(older) != 1 || !older[0].Success {
		t.Errorf("older = %+v", older)
	}

	ev, err := repo.GetOracleEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ev.Success || ev.RequestBody != `{"q":1}` {
		t.Errorf("ev = %+v", ev)
	}

	if _, err := repo.GetOracleEvent(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: err = %v, want ErrNotFound", err)
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "sub", "db.sqlite")
	t.Setenv("MATHPATH_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHPATH_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "mathpath", "mathpath.db"); got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}
