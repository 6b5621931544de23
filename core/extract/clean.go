package extract

import (
	"regexp"
	"strings"
)

var (
	fencePattern         = regexp.MustCompile("```(?:json|JSON)?")
	fencedBlockPattern   = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// Clean normalises a candidate before a parse attempt: markdown fence
// markers are removed wherever they appear, literal and unicode ellipses are
// dropped, and trailing commas immediately before a closer are stripped.
// String literal interiors pass through untouched: an ellipsis inside a
// value (a visibly truncated URL, say) is data, not an artifact.
func Clean(candidate string) string {
	return strings.TrimSpace(mapOutsideStrings(candidate, cleanSegment))
}

func cleanSegment(segment string) string {
	segment = fencePattern.ReplaceAllString(segment, "")
	segment = strings.ReplaceAll(segment, "…", "")
	segment = strings.ReplaceAll(segment, "...", "")
	return trailingCommaPattern.ReplaceAllString(segment, "$1")
}

// mapOutsideStrings applies transform to the spans of text lying outside
// JSON string literals and copies the literals through verbatim. An
// unterminated final literal (truncated reply) is also copied verbatim; the
// repair pass closes it later.
func mapOutsideStrings(text string, transform func(string) string) string {
	var builder strings.Builder
	segmentStart := 0
	inString := false

	for i := 0; i < len(text); i++ {
		if text[i] != '"' || quoteEscaped(text, i) {
			continue
		}
		if inString {
			// Closing quote: emit the literal verbatim.
			builder.WriteString(text[segmentStart : i+1])
		} else {
			builder.WriteString(transform(text[segmentStart:i]))
			builder.WriteByte('"')
		}
		inString = !inString
		segmentStart = i + 1
	}

	tail := text[segmentStart:]
	if inString {
		builder.WriteString(tail)
	} else {
		builder.WriteString(transform(tail))
	}

	return builder.String()
}

// quoteEscaped reports whether the quote at index is preceded by an odd run
// of backslashes and therefore part of a string's contents.
func quoteEscaped(text string, index int) bool {
	backslashes := 0
	for i := index - 1; i >= 0 && text[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 1
}
