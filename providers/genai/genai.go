package genai

import (
	"context"
	"net/http"

	"github.com/webpmp/TerraExplorer/internal/jsonschema"
)

// Request describes one atomic generation exchange with the remote model.
type Request struct {
	// Prompt is the full prompt text for this request.
	Prompt string

	// UseSearchGrounding permits the model to consult web search before
	// answering. Used for live news and URL-sourced route extraction.
	UseSearchGrounding bool

	// MaxOutputTokens caps the length of the generated reply. Zero means
	// provider default.
	MaxOutputTokens int

	// ResponseSchema, when set, is attached to the request as a structured
	// output hint. The reply is still treated as free-form text by callers.
	ResponseSchema *jsonschema.Schema
}

// Response is the completed model reply. Text is the only field the
// extraction pipeline consumes; all domain structure is recovered from it.
type Response struct {
	Text string
}

// Provider is the interface every remote model implementation must satisfy.
// Implementations must be safe for concurrent use: orchestrator calls may be
// in flight simultaneously with fully independent state.
type Provider interface {
	// GenerateContent sends one generation request and returns the completed
	// response. Returns an error if the call fails, the context is cancelled,
	// or the response cannot be decoded.
	GenerateContent(ctx context.Context, request Request) (*Response, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHTTPClient sets the HTTP client used for outbound requests.
	WithHTTPClient(httpClient *http.Client) Provider
}
