package repair

import (
	"encoding/json"
	"reflect"
	"testing"
)

// TestRepair_TruncatedMidString covers the canonical truncation case: a reply
// cut inside a string with two containers still open.
func TestRepair_TruncatedMidString(t *testing.T) {
	input := `{"name": "Tokyo", "funFacts": ["fact1", "fact2`

	repaired := Repair(input)

	var got map[string]any
	if err := json.Unmarshal([]byte(repaired), &got); err != nil {
		t.Fatalf("repaired text does not parse: %v\nrepaired: %s", err, repaired)
	}

	want := map[string]any{
		"name":     "Tokyo",
		"funFacts": []any{"fact1", "fact2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestRepair_Table exercises the individual repair behaviours.
func TestRepair_Table(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input becomes empty object",
			input: "",
			want:  "{}",
		},
		{
			name:  "whitespace-only input becomes empty object",
			input: "   \n\t  ",
			want:  "{}",
		},
		{
			name:  "already valid object untouched",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "unterminated string closed",
			input: `{"a": "bc`,
			want:  `{"a": "bc"}`,
		},
		{
			name:  "object truncated inside array",
			input: `[{"a": 1}, {"b": 2`,
			want:  `[{"a": 1}, {"b": 2}]`,
		},
		{
			name:  "array truncated inside object",
			input: `{"list": [1, 2`,
			want:  `{"list": [1, 2]}`,
		},
		{
			name:  "braces inside string values ignored",
			input: `{"text": "open { and [ here", "n": [1`,
			want:  `{"text": "open { and [ here", "n": [1]}`,
		},
		{
			name:  "escaped quote does not close string",
			input: `{"text": "she said \"hi`,
			want:  `{"text": "she said \"hi"}`,
		},
		{
			name:  "double backslash before quote closes string",
			input: `{"path": "C:\\"`,
			want:  `{"path": "C:\\"}`,
		},
		{
			name:  "deep nesting closed in order",
			input: `{"a": {"b": [{"c": 1`,
			want:  `{"a": {"b": [{"c": 1}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Repair(tt.input); got != tt.want {
				t.Errorf("Repair(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestRepair_OutputParses verifies that for the supported truncation shapes
// the repaired text is always valid JSON.
func TestRepair_OutputParses(t *testing.T) {
	inputs := []string{
		`{"a": 1}`,
		`{"a": "unterminated`,
		`[1, 2, 3`,
		`{"a": {"b": {"c": [`,
		`[{"name": "x"}, {"name": "y`,
	}

	for _, input := range inputs {
		var v any
		repaired := Repair(input)
		if err := json.Unmarshal([]byte(repaired), &v); err != nil {
			t.Errorf("Repair(%q) = %q does not parse: %v", input, repaired, err)
		}
	}
}

// TestRepair_StrayCloserLeftAlone verifies that inputs the heuristic cannot
// fix are not mangled into something that pretends to be valid.
func TestRepair_StrayCloserLeftAlone(t *testing.T) {
	input := `}{"a": 1`
	repaired := Repair(input)

	// The stray closer is preserved; the open object still gets closed.
	if repaired != `}{"a": 1}` {
		t.Errorf("Repair(%q) = %q", input, repaired)
	}
}
