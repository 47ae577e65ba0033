// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathpath/ent/attempt"
	"github.com/abhisek/mathpath/ent/exercise"
	"github.com/abhisek/mathpath/ent/oraclerequestevent"
	"github.com/abhisek/mathpath/ent/schema"
	"github.com/abhisek/mathpath/ent/sessionsummary"
	"github.com/abhisek/mathpath/ent/subtopicprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescHintsUsed is the schema descriptor for hints_used field.
	attemptDescHintsUsed := attemptFields[4].Descriptor()
	// attempt.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attempt.DefaultHintsUsed = attemptDescHintsUsed.Default.(int)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[6].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	exerciseFields := schema.Exercise{}.Fields()
	_ = exerciseFields
	// exerciseDescQuestion is the schema descriptor for question field.
	exerciseDescQuestion := exerciseFields[3].Descriptor()
	// exercise.DefaultQuestion holds the default value on creation for the question field.
	exercise.DefaultQuestion = exerciseDescQuestion.Default.(string)
	// exerciseDescExplanation is the schema descriptor for explanation field.
	exerciseDescExplanation := exerciseFields[5].Descriptor()
	// exercise.DefaultExplanation holds the default value on creation for the explanation field.
	exercise.DefaultExplanation = exerciseDescExplanation.Default.(string)
	// exerciseDescHint is the schema descriptor for hint field.
	exerciseDescHint := exerciseFields[6].Descriptor()
	// exercise.DefaultHint holds the default value on creation for the hint field.
	exercise.DefaultHint = exerciseDescHint.Default.(string)
	// exerciseDescCreatedAt is the schema descriptor for created_at field.
	exerciseDescCreatedAt := exerciseFields[7].Descriptor()
	// exercise.DefaultCreatedAt holds the default value on creation for the created_at field.
	exercise.DefaultCreatedAt = exerciseDescCreatedAt.Default.(func() time.Time)
	// exerciseDescID is the schema descriptor for id field.
	exerciseDescID := exerciseFields[0].Descriptor()
	// exercise.IDValidator is a validator for the "id" field. It is called by the builders before save.
	exercise.IDValidator = exerciseDescID.Validators[0].(func(string) error)
	oraclerequesteventFields := schema.OracleRequestEvent{}.Fields()
	_ = oraclerequesteventFields
	// oraclerequesteventDescTimestamp is the schema descriptor for timestamp field.
	oraclerequesteventDescTimestamp := oraclerequesteventFields[0].Descriptor()
	// oraclerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	oraclerequestevent.DefaultTimestamp = oraclerequesteventDescTimestamp.Default.(func() time.Time)
	// oraclerequesteventDescInputTokens is the schema descriptor for input_tokens field.
	oraclerequesteventDescInputTokens := oraclerequesteventFields[4].Descriptor()
	// oraclerequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	oraclerequestevent.DefaultInputTokens = oraclerequesteventDescInputTokens.Default.(int)
	// oraclerequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	oraclerequesteventDescOutputTokens := oraclerequesteventFields[5].Descriptor()
	// oraclerequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	oraclerequestevent.DefaultOutputTokens = oraclerequesteventDescOutputTokens.Default.(int)
	// oraclerequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	oraclerequesteventDescLatencyMs := oraclerequesteventFields[6].Descriptor()
	// oraclerequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	oraclerequestevent.DefaultLatencyMs = oraclerequesteventDescLatencyMs.Default.(int64)
	// oraclerequesteventDescErrorMessage is the schema descriptor for error_message field.
	oraclerequesteventDescErrorMessage := oraclerequesteventFields[8].Descriptor()
	// oraclerequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	oraclerequestevent.DefaultErrorMessage = oraclerequesteventDescErrorMessage.Default.(string)
	// oraclerequesteventDescRequestBody is the schema descriptor for request_body field.
	oraclerequesteventDescRequestBody := oraclerequesteventFields[9].Descriptor()
	// oraclerequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	oraclerequestevent.DefaultRequestBody = oraclerequesteventDescRequestBody.Default.(string)
	// oraclerequesteventDescResponseBody is the schema descriptor for response_body field.
	oraclerequesteventDescResponseBody := oraclerequesteventFields[10].Descriptor()
	// oraclerequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	oraclerequestevent.DefaultResponseBody = oraclerequesteventDescResponseBody.Default.(string)
	sessionsummaryFields := schema.SessionSummary{}.Fields()
	_ = sessionsummaryFields
	// sessionsummaryDescSubtopicID is the schema descriptor for subtopic_id field.
	sessionsummaryDescSubtopicID := sessionsummaryFields[2].Descriptor()
	// sessionsummary.DefaultSubtopicID holds the default value on creation for the subtopic_id field.
	sessionsummary.DefaultSubtopicID = sessionsummaryDescSubtopicID.Default.(string)
	// sessionsummaryDescID is the schema descriptor for id field.
	sessionsummaryDescID := sessionsummaryFields[0].Descriptor()
	// sessionsummary.IDValidator is a validator for the "id" field. It is called by the builders before save.
	sessionsummary.IDValidator = sessionsummaryDescID.Validators[0].(func(string) error)
	subtopicprogressFields := schema.SubtopicProgress{}.Fields()
	_ = subtopicprogressFields
	// subtopicprogressDescSubLevel is the schema descriptor for sub_level field.
	subtopicprogressDescSubLevel := subtopicprogressFields[3].Descriptor()
	// subtopicprogress.SubLevelValidator is a validator for the "sub_level" field. It is called by the builders before save.
	subtopicprogress.SubLevelValidator = subtopicprogressDescSubLevel.Validators[0].(func(int) error)
	// subtopicprogressDescUpdatedAt is the schema descriptor for updated_at field.
	subtopicprogressDescUpdatedAt := subtopicprogressFields[4].Descriptor()
	// subtopicprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subtopicprogress.DefaultUpdatedAt = subtopicprogressDescUpdatedAt.Default.(func() time.Time)
}
