// Package gemini implements the genai.Provider interface against Google's
// Gemini generateContent REST API.
//
// The provider is deliberately narrow: one synchronous text exchange per
// call, optional Google Search grounding, optional structured-output schema.
// Throttling responses are decoded into genai.APIError so that the retry
// layer can recognise every rate-limit signature the API emits.
package gemini
