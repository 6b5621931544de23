package extract

import "strings"

// fencedBlock returns the interior of the first fenced code block in text,
// when a complete ```...``` pair exists.
func fencedBlock(text string) (string, bool) {
	match := fencedBlockPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// bracketSpan returns the span from the first opening brace/bracket to the
// last closer of the same kind, or to end-of-string when no closer follows
// the opener (a truncated reply; the repair pass completes it later).
func bracketSpan(text string) (string, bool) {
	open := strings.IndexAny(text, "{[")
	if open < 0 {
		return "", false
	}

	closer := byte('}')
	if text[open] == '[' {
		closer = ']'
	}

	if last := strings.LastIndexByte(text, closer); last > open {
		return text[open : last+1], true
	}
	return text[open:], true
}
