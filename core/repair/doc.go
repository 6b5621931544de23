// Package repair closes off JSON text that a model truncated mid-reply:
// an unterminated string literal gets its closing quote, and unclosed
// braces/brackets are appended deepest-first.
//
// It is intentionally not a general JSON recoverer. The extraction layer
// runs it as a first pass and falls back to a full repair library, and
// ultimately to a safe default object, when the heuristic is not enough.
package repair
