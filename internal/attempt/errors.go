package attempt

import "errors"

var (
	// ErrInvalidSubmission is returned for a submission missing required
	// fields. Nothing is read or written.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrExerciseNotFound is returned when the exercise does not exist.
	// No attempt is written.
	ErrExerciseNotFound = errors.New("exercise not found")

	// ErrPersistence is returned when the attempt could not be recorded.
	// The evaluation is withheld so the caller can resubmit safely.
	ErrPersistence = errors.New("attempt not recorded")
)
