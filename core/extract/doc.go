// Package extract recovers a JSON payload from raw model text.
//
// Model replies arrive as well-formed JSON, JSON wrapped in prose or
// markdown fences, JSON truncated mid-object, or conversational refusals.
// Extract tries a fixed ladder of strategies and repair passes and reports a
// miss rather than ever returning an error; the caller substitutes its safe
// default. Refusal prose is recognised and kept out of the error logs.
package extract
