// Package genai defines the boundary with the remote text-generation
// service: the request/response shapes, the provider interface, and the
// error classification shared by every provider implementation.
//
// The gemini subpackage implements [Provider] against Google's Gemini REST
// API. Applications construct a provider explicitly and hand it to the
// exploration layer; there is no process-wide client.
package genai
