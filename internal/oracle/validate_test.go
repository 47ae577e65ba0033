package oracle

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateReply(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"Alice","age":10,"grade":"A"}`, false},
		{"optional omitted", `{"name":"Bob","age":8}`, false},
		{"missing required", `{"name":"Charlie"}`, true},
		{"wrong type", `{"name":"Dave","age":"ten"}`, true},
		{"enum violation", `{"name":"Eve","age":9,"grade":"F"}`, true},
		{"below minimum", `{"name":"Finn","age":-1}`, true},
		{"not json", `definitely not json`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateReply(testSchema(), json.RawMessage(tc.raw))
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invalid *ErrInvalidReply
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidReply, got: %T (%v)", err, err)
			}
			if string(invalid.Content) != tc.raw {
				t.Errorf("Content = %s, want the raw reply", invalid.Content)
			}
		})
	}
}

func TestValidateReply_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateReply(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
