package oracle

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":   map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard"}},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"points": map[string]any{"type": "integer"},
		},
		"required": []any{"question", "difficulty"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if got := len(schema.Properties["difficulty"].Enum); got != 3 {
		t.Fatalf("expected 3 enum values, got %d", got)
	}
	if schema.Properties["steps"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %s", schema.Properties["steps"].Items.Type)
	}
	if schema.Properties["points"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER, got %s", schema.Properties["points"].Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
