package problemgen

import "github.com/abhisek/mathpath/internal/oracle"

// ExerciseSchema defines the JSON reply expected from the oracle.
var ExerciseSchema = &oracle.Schema{
	Name:        "exercise",
	Description: "A single math practice exercise with its canonical answer and worked explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The exercise prompt shown to the student",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The canonical answer, e.g. \"12\", \"3/4\" or \"x = 3, -3\"",
			},
			"answer_type": map[string]any{
				"type":        "string",
				"enum":        []any{"integer", "decimal", "fraction", "expression"},
				"description": "The form of the answer",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short nudge that does not give the answer away",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution",
			},
		},
		"required":             []any{"question", "answer", "answer_type", "hint", "explanation"},
		"additionalProperties": false,
	},
}
