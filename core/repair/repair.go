package repair

import "strings"

// Repair applies a heuristic fix to JSON text that was truncated mid-object,
// the common failure mode when a model reply hits its output token limit.
// It is a pure text transform and never fails; callers decide whether the
// result actually parses.
//
// The heuristic assumes at most the current string literal and the currently
// open nesting levels were cut off. Inputs with multiple independently
// truncated fragments are out of scope: the repaired text simply fails the
// subsequent parse and the caller falls through to its safe default.
func Repair(candidate string) string {
	repaired := strings.TrimSpace(candidate)
	if repaired == "" {
		return "{}"
	}

	if endsInsideString(repaired) {
		repaired += `"`
	}

	// Unclosed containers are closed deepest-first, so an object truncated
	// inside an array gets "}]" and an array truncated inside an object
	// gets "]}".
	for _, opener := range unclosedOpeners(structuralSkeleton(repaired)) {
		switch opener {
		case '{':
			repaired += "}"
		case '[':
			repaired += "]"
		}
	}

	return repaired
}

// endsInsideString scans s tracking string-literal state and reports whether
// the scan ends with a string still open. A quote preceded by an odd number
// of consecutive backslashes is escaped and does not toggle the state.
func endsInsideString(s string) bool {
	inString := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' && !isEscaped(s, i) {
			inString = !inString
		}
	}
	return inString
}

// isEscaped reports whether the character at index i is preceded by an odd
// number of consecutive backslashes.
func isEscaped(s string, i int) bool {
	backslashes := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		backslashes++
	}
	return backslashes%2 == 1
}

// structuralSkeleton returns a copy of s with every string literal's contents
// erased, so that brace and bracket counting is not confused by punctuation
// that happens to appear inside string values.
func structuralSkeleton(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	inString := false
	for i := 0; i < len(s); i++ {
		ch := s[i]

		if ch == '"' && !isEscaped(s, i) {
			inString = !inString
			builder.WriteByte('"')
			continue
		}

		if !inString {
			builder.WriteByte(ch)
		}
	}

	return builder.String()
}

// unclosedOpeners walks the structural skeleton and returns the openers that
// were never closed, most recently opened first. Stray closers with no
// matching opener are ignored; the result will not parse and the caller's
// fallback handles it.
func unclosedOpeners(skeleton string) []byte {
	var stack []byte

	for i := 0; i < len(skeleton); i++ {
		switch skeleton[i] {
		case '{', '[':
			stack = append(stack, skeleton[i])
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	// Reverse: deepest (most recently opened) construct closes first.
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}

	return stack
}
