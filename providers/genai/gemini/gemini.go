package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/webpmp/TerraExplorer/internal/httpx"
	"github.com/webpmp/TerraExplorer/providers/genai"
	"github.com/webpmp/TerraExplorer/providers/observability"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash-lite" // Most cost-effective model
)

// Provider implements the genai.Provider interface for Google's Gemini API.
type Provider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// New creates a new Gemini provider instance with default values from environment.
// Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: Base URL for API (optional, defaults to Google's API)
//   - GEMINI_MODEL: Model identifier (optional)
func New() *Provider {
	apiKey := os.Getenv("GEMINI_API_KEY")
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *Provider) WithAPIKey(apiKey string) genai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *Provider) WithBaseURL(baseURL string) genai.Provider {
	p.baseURL = strings.TrimSuffix(baseURL, "/")
	return p
}

// WithHTTPClient sets a custom HTTP client.
func (p *Provider) WithHTTPClient(httpClient *http.Client) genai.Provider {
	p.client = httpClient
	return p
}

// WithModel sets the model identifier used for requests.
func (p *Provider) WithModel(model string) *Provider {
	p.model = model
	return p
}

// GenerateContent implements the genai.Provider interface. It sends one
// generateContent request to the Gemini API and returns the reply text.
func (p *Provider) GenerateContent(ctx context.Context, request genai.Request) (*genai.Response, error) {
	logger := observability.LoggerFromContext(ctx)

	if p.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	geminiReq, err := requestToGemini(request)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "Gemini provider sending request",
		observability.String("model", p.model),
		observability.Bool("search_grounding", request.UseSearchGrounding),
		observability.Int("prompt_chars", len(request.Prompt)),
	)

	resp, err := httpx.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		geminiReq,
		httpx.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		var statusErr *httpx.StatusError
		if errors.As(err, &statusErr) {
			return nil, decodeAPIError(statusErr)
		}
		logger.Debug(ctx, "Gemini HTTP request failed", observability.Error(err))
		return nil, err
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	return &genai.Response{Text: text}, nil
}

// requestToGemini converts a generic generation request into the Gemini wire
// format. A response schema is only attached when search grounding is off:
// the API rejects requests combining both.
func requestToGemini(request genai.Request) (*generateContentRequest, error) {
	geminiReq := &generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: request.Prompt}},
		}},
	}

	config := &generationConfig{}
	hasConfig := false

	if request.MaxOutputTokens > 0 {
		tokens := request.MaxOutputTokens
		config.MaxOutputTokens = &tokens
		hasConfig = true
	}

	if request.UseSearchGrounding {
		geminiReq.Tools = []tool{{GoogleSearch: &googleSearchTool{}}}
	} else if request.ResponseSchema != nil {
		rawSchema, err := json.Marshal(request.ResponseSchema)
		if err != nil {
			return nil, fmt.Errorf("error marshaling response schema: %w", err)
		}
		config.ResponseMimeType = "application/json"
		config.ResponseSchema = rawSchema
		hasConfig = true
	}

	if hasConfig {
		geminiReq.GenerationConfig = config
	}

	return geminiReq, nil
}

// responseText extracts the reply text from the first candidate,
// concatenating all of its text parts.
func responseText(resp *generateContentResponse) (string, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked by Gemini API: %s", resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	var builder strings.Builder
	for _, candidatePart := range resp.Candidates[0].Content.Parts {
		builder.WriteString(candidatePart.Text)
	}

	return builder.String(), nil
}

// decodeAPIError converts a non-2xx response into a *genai.APIError,
// preserving the nested error object so the rate-limit signatures survive.
func decodeAPIError(statusErr *httpx.StatusError) error {
	apiErr := &genai.APIError{StatusCode: statusErr.StatusCode}

	var envelope errorResponse
	if err := json.Unmarshal(statusErr.Body, &envelope); err == nil && envelope.Error != nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Status = envelope.Error.Status
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Message = string(statusErr.Body)
	}

	return apiErr
}
