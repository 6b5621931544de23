package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/webpmp/TerraExplorer/core/repair"
	"github.com/webpmp/TerraExplorer/internal/utils"
	"github.com/webpmp/TerraExplorer/providers/observability"
)

// refusalMarkers are the openings of conversational non-answers. A reply
// starting with one of these is an expected miss, not a parse bug, and is
// suppressed from error logs.
var refusalMarkers = []string{
	"i am",
	"i'm",
	"i cannot",
	"i can't",
	"sorry",
	"unfortunately",
	"please",
	"as an ai",
}

// Extract locates and parses a JSON payload inside raw model text. It never
// fails for malformed input; the second return value is false when no usable
// structured data could be recovered.
//
// Strategies are tried in order, first success wins:
//  1. the interior of a fenced code block,
//  2. the span from the first opening brace/bracket to the matching last
//     closer (or to end-of-string when the reply was truncated),
//  3. the whole cleaned text.
//
// Every candidate is cleaned, parsed, and on failure re-parsed after the
// truncation repairer and then after a full JSON repair pass.
func Extract(ctx context.Context, raw string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}

	candidates := []string{}
	if fenced, ok := fencedBlock(trimmed); ok {
		candidates = append(candidates, fenced)
	}
	if span, ok := bracketSpan(trimmed); ok {
		candidates = append(candidates, span)
	}
	candidates = append(candidates, trimmed)

	for _, candidate := range candidates {
		if value, ok := parseCandidate(candidate); ok {
			return value, true
		}
	}

	if IsRefusal(trimmed) {
		// Expected non-answer; not worth an error record.
		return nil, false
	}

	observability.LoggerFromContext(ctx).Warn(ctx, "no structured data recovered from model reply",
		observability.String("reply_preview", utils.TruncateString(trimmed, 200)),
	)
	return nil, false
}

// IsRefusal reports whether text reads as prose declining to answer rather
// than a malformed data payload.
func IsRefusal(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range refusalMarkers {
		if strings.HasPrefix(lowered, marker) {
			return true
		}
	}
	return false
}

// parseCandidate cleans candidate and attempts the parse ladder: direct,
// after truncation repair, after full JSON repair.
func parseCandidate(candidate string) (json.RawMessage, bool) {
	cleaned := Clean(candidate)
	if cleaned == "" {
		return nil, false
	}

	if value, ok := parseJSON(cleaned); ok {
		return value, true
	}

	if value, ok := parseJSON(repair.Repair(cleaned)); ok {
		return value, true
	}

	if repaired, err := jsonrepair.JSONRepair(cleaned); err == nil {
		if value, ok := parseJSON(repaired); ok {
			return value, true
		}
	}

	return nil, false
}

// parseJSON validates text as a JSON object or array and returns it in
// compact canonical form. Bare scalars are rejected: a stray number or word
// in prose is not a payload.
func parseJSON(text string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, false
	}

	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return nil, false
	}

	canonical, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}

	return canonical, true
}
