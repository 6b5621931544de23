// Package jsonschema generates the JSON schema descriptors attached to
// generation requests as structured-output hints.
//
// The generated schema follows the restricted dialect Gemini accepts for its
// responseSchema field. A schema is a hint only; the extraction pipeline
// still treats the model reply as untrusted free-form text.
package jsonschema
