package extract

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/webpmp/TerraExplorer/providers/observability"
)

func mustExtract(t *testing.T, raw string) map[string]any {
	t.Helper()

	value, ok := Extract(context.Background(), raw)
	if !ok {
		t.Fatalf("Extract(%q) reported a miss", raw)
	}

	var decoded map[string]any
	if err := json.Unmarshal(value, &decoded); err != nil {
		t.Fatalf("extracted value does not decode: %v", err)
	}
	return decoded
}

// TestExtract_FencedRoundTrip verifies that any valid JSON value wrapped in a
// ```json fence comes back deep-equal to the original.
func TestExtract_FencedRoundTrip(t *testing.T) {
	values := []string{
		`{"name":"Tokyo","zoom":7}`,
		`{"nested":{"list":[1,2,3],"flag":true}}`,
		`[{"a":1},{"b":null}]`,
		`{"url":"https://example.com/cut...","note":"a,}","quote":"she said \"go\""}`,
	}

	for _, original := range values {
		raw := "```json\n" + original + "\n```"

		value, ok := Extract(context.Background(), raw)
		if !ok {
			t.Fatalf("Extract failed for fenced %q", original)
		}

		var want, got any
		json.Unmarshal([]byte(original), &want)
		json.Unmarshal(value, &got)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round trip mismatch: got %v, want %v", got, want)
		}
	}
}

// TestExtract_Strategies covers the strategy ladder on representative reply
// shapes.
func TestExtract_Strategies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "bare json",
			raw:  `{"name": "Paris"}`,
			want: map[string]any{"name": "Paris"},
		},
		{
			name: "json wrapped in prose",
			raw:  `Sure! Here is the data you asked for: {"name": "Paris"} Hope that helps.`,
			want: map[string]any{"name": "Paris"},
		},
		{
			name: "fence without language tag",
			raw:  "```\n{\"name\": \"Paris\"}\n```",
			want: map[string]any{"name": "Paris"},
		},
		{
			name: "truncated object",
			raw:  `{"name": "Tokyo", "funFacts": ["fact1", "fact2`,
			want: map[string]any{"name": "Tokyo", "funFacts": []any{"fact1", "fact2"}},
		},
		{
			name: "truncated inside unclosed fence",
			raw:  "```json\n{\"name\": \"Tokyo\", \"zoom\": 5",
			want: map[string]any{"name": "Tokyo", "zoom": float64(5)},
		},
		{
			name: "trailing comma",
			raw:  `{"name": "Paris", "tags": ["a", "b",],}`,
			want: map[string]any{"name": "Paris", "tags": []any{"a", "b"}},
		},
		{
			name: "ellipsis artifacts",
			raw:  "{\"name\": \"Paris\", \"tags\": [\"a\"]}\n...",
			want: map[string]any{"name": "Paris", "tags": []any{"a"}},
		},
		{
			name: "unicode ellipsis",
			raw:  "{\"name\": \"Paris\"}…",
			want: map[string]any{"name": "Paris"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustExtract(t, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestExtract_ArrayPayload verifies that bracket-first payloads survive.
func TestExtract_ArrayPayload(t *testing.T) {
	raw := `Here are the places: [{"name": "A"}, {"name": "B"}]`

	value, ok := Extract(context.Background(), raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}

	var decoded []map[string]any
	if err := json.Unmarshal(value, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("expected 2 items, got %d", len(decoded))
	}
}

// TestExtract_PreservesStringContents verifies that cleaning never rewrites
// the interior of a string value: a visibly truncated URL keeps its ellipsis
// marker so downstream link filtering can still see it.
func TestExtract_PreservesStringContents(t *testing.T) {
	raw := `{"news":[{"headline":"Broken link","url":"https://example.com/trunc..."}]}`

	value, ok := Extract(context.Background(), raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}

	var decoded struct {
		News []struct {
			URL string `json:"url"`
		} `json:"news"`
	}
	if err := json.Unmarshal(value, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded.News) != 1 {
		t.Fatalf("expected 1 item, got %d", len(decoded.News))
	}
	if decoded.News[0].URL != "https://example.com/trunc..." {
		t.Errorf("truncation marker lost: got %q", decoded.News[0].URL)
	}
}

// TestExtract_Misses verifies that unusable inputs report a miss without
// panicking or fabricating data.
func TestExtract_Misses(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"The weather is nice today.",
		"]]]]",
		"42",
	}

	for _, raw := range inputs {
		if _, ok := Extract(context.Background(), raw); ok {
			t.Errorf("Extract(%q) unexpectedly succeeded", raw)
		}
	}
}

// countingLogger records how many Warn/Error records were emitted.
type countingLogger struct {
	observability.NopLogger
	warns, errors int
}

func (c *countingLogger) Warn(context.Context, string, ...observability.Attribute)  { c.warns++ }
func (c *countingLogger) Error(context.Context, string, ...observability.Attribute) { c.errors++ }

// TestExtract_RefusalSuppressed verifies that a conversational refusal
// returns a silent miss with no error-level side effect.
func TestExtract_RefusalSuppressed(t *testing.T) {
	logger := &countingLogger{}
	ctx := observability.ContextWithLogger(context.Background(), logger)

	value, ok := Extract(ctx, "I'm sorry, I cannot help with that request.")
	if ok || value != nil {
		t.Fatal("refusal must yield a miss")
	}

	if logger.warns != 0 || logger.errors != 0 {
		t.Errorf("refusal must not be logged as a failure (warns=%d errors=%d)", logger.warns, logger.errors)
	}
}

// TestExtract_UnparsableLogged verifies that a genuine garbage reply is
// logged, unlike a refusal.
func TestExtract_UnparsableLogged(t *testing.T) {
	logger := &countingLogger{}
	ctx := observability.ContextWithLogger(context.Background(), logger)

	if _, ok := Extract(ctx, "complete nonsense with no structure at all"); ok {
		t.Fatal("expected a miss")
	}

	if logger.warns == 0 {
		t.Error("expected the failure to be logged")
	}
}

// TestIsRefusal covers the marker list case-insensitively.
func TestIsRefusal(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"I'm sorry, I cannot help with that request.", true},
		{"I am unable to provide that.", true},
		{"Sorry, no.", true},
		{"Unfortunately the request is out of scope.", true},
		{"Please provide more details.", true},
		{"As an AI, I must decline.", true},
		{"I cannot do this", true},
		{`{"name": "Paris"}`, false},
		{"The capital of France is Paris.", false},
	}

	for _, tt := range tests {
		if got := IsRefusal(tt.text); got != tt.want {
			t.Errorf("IsRefusal(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

// TestClean verifies the individual cleaning rules.
func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fence markers removed anywhere",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "trailing comma before brace",
			input: `{"a": 1,}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing comma before bracket",
			input: `[1, 2,]`,
			want:  `[1, 2]`,
		},
		{
			name:  "literal ellipsis removed",
			input: `{"a": 1}...`,
			want:  `{"a": 1}`,
		},
		{
			name:  "ellipsis inside string preserved",
			input: `{"url": "https://example.com/trunc..."}`,
			want:  `{"url": "https://example.com/trunc..."}`,
		},
		{
			name:  "unicode ellipsis inside string preserved",
			input: `{"s": "wait…"}…`,
			want:  `{"s": "wait…"}`,
		},
		{
			name:  "comma-closer inside string preserved",
			input: `{"s": "a,}"}`,
			want:  `{"s": "a,}"}`,
		},
		{
			name:  "escaped quote does not end the string",
			input: `{"s": "say \"hi,]\"...", "n": 1,}`,
			want:  `{"s": "say \"hi,]\"...", "n": 1}`,
		},
		{
			name:  "fence marker inside string preserved",
			input: "{\"s\": \"use ``` to fence\"}",
			want:  "{\"s\": \"use ``` to fence\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
