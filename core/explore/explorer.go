package explore

import (
	"context"
	"strings"
	"time"

	"github.com/webpmp/TerraExplorer/core/extract"
	"github.com/webpmp/TerraExplorer/core/invoke"
	"github.com/webpmp/TerraExplorer/internal/utils"
	"github.com/webpmp/TerraExplorer/providers/genai"
	"github.com/webpmp/TerraExplorer/providers/observability"
	"github.com/webpmp/TerraExplorer/providers/webfetch"
)

const (
	defaultMaxAttempts     = 3
	defaultMaxOutputTokens = 8192

	// maxPageContentChars bounds how much fetched page text is inlined into
	// a route-extraction prompt.
	maxPageContentChars = 15000
)

// PageFetcher retrieves a web page as markdown for route extraction.
type PageFetcher func(ctx context.Context, url string) (string, error)

// Explorer orchestrates model calls for the exploration operations. Its
// methods never return errors: every failure mode collapses into a typed
// fallback value the caller can render directly.
type Explorer struct {
	invoker         *invoke.Invoker
	logger          observability.Logger
	maxAttempts     int
	maxOutputTokens int
	fetchPage       PageFetcher
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithLogger sets the logger used for all operations.
func WithLogger(logger observability.Logger) Option {
	return func(e *Explorer) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxAttempts sets how many times a rate-limited call is attempted.
func WithMaxAttempts(attempts int) Option {
	return func(e *Explorer) {
		if attempts > 0 {
			e.maxAttempts = attempts
		}
	}
}

// WithMaxOutputTokens caps the model's reply length.
func WithMaxOutputTokens(tokens int) Option {
	return func(e *Explorer) {
		if tokens > 0 {
			e.maxOutputTokens = tokens
		}
	}
}

// WithPageFetcher replaces the page fetcher used for route extraction from
// URLs.
func WithPageFetcher(fetch PageFetcher) Option {
	return func(e *Explorer) {
		if fetch != nil {
			e.fetchPage = fetch
		}
	}
}

// New builds an Explorer over the given provider. baseDelay is the unit of
// the retry backoff; pass 0 for the default.
func New(provider genai.Provider, baseDelay time.Duration, options ...Option) *Explorer {
	explorer := &Explorer{
		invoker:         invoke.New(provider, baseDelay),
		logger:          observability.NopLogger{},
		maxAttempts:     defaultMaxAttempts,
		maxOutputTokens: defaultMaxOutputTokens,
		fetchPage:       webfetch.Fetch,
	}

	for _, option := range options {
		option(explorer)
	}

	return explorer
}

// generate runs one retried model call and extracts the JSON payload from
// its reply. The returned failureKind distinguishes rate-limit exhaustion,
// other call failures, and unparsable replies so each operation can pick
// the matching fallback.
func (e *Explorer) generate(ctx context.Context, request genai.Request) (payload []byte, fail failureKind) {
	// The invoker and extractor pick their logger up from the context.
	ctx = observability.ContextWithLogger(ctx, e.logger)

	response, err := e.invoker.Invoke(ctx, request, e.maxAttempts)
	if err != nil {
		if genai.IsRateLimited(err) {
			e.logger.Warn(ctx, "model call rate limited",
				observability.Int("maxAttempts", e.maxAttempts),
				observability.Error(err))
			return nil, failBusy
		}
		e.logger.Warn(ctx, "model call failed", observability.Error(err))
		return nil, failConnection
	}

	raw, ok := extract.Extract(ctx, response.Text)
	if !ok {
		return nil, failUnparsable
	}

	return raw, failNone
}

// ResolveByQuery finds the location best matching a free-text search.
// It returns nil when the query is empty or nothing usable comes back.
func (e *Explorer) ResolveByQuery(ctx context.Context, query string) *QueryResolution {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	e.logger.Debug(ctx, "resolving location by query",
		observability.String("query", utils.TruncateString(query, 80)))

	raw, fail := e.generate(ctx, genai.Request{
		Prompt:          queryPrompt(query),
		MaxOutputTokens: e.maxOutputTokens,
		ResponseSchema:  locationSchema,
	})
	if fail != failNone {
		return nil
	}

	record, ok := coerceLocation(raw, nil)
	if !ok {
		e.logger.Warn(ctx, "query reply did not describe a location",
			observability.String("query", utils.TruncateString(query, 80)))
		return nil
	}

	return &QueryResolution{Location: *record, SuggestedZoom: record.SuggestedZoom}
}

// ResolveByCoordinates describes the most significant feature at a point.
// It never returns nil: failures yield a fallback record carrying the input
// coordinates, so a map pin always has something to show.
func (e *Explorer) ResolveByCoordinates(ctx context.Context, point GeoPoint) *LocationRecord {
	e.logger.Debug(ctx, "resolving location by coordinates",
		observability.Float64("lat", point.Lat),
		observability.Float64("lng", point.Lng))

	raw, fail := e.generate(ctx, genai.Request{
		Prompt:          coordinatesPrompt(point.Lat, point.Lng),
		MaxOutputTokens: e.maxOutputTokens,
		ResponseSchema:  locationSchema,
	})
	if fail != failNone {
		return fallbackLocation(fail, point)
	}

	record, ok := coerceLocation(raw, &point)
	if !ok {
		return fallbackLocation(failUnparsable, point)
	}

	return record
}

// NearbyPlaces lists notable places around a point. Any failure yields an
// empty slice, never nil.
func (e *Explorer) NearbyPlaces(ctx context.Context, point GeoPoint) []MapMarker {
	e.logger.Debug(ctx, "listing nearby places",
		observability.Float64("lat", point.Lat),
		observability.Float64("lng", point.Lng))

	raw, fail := e.generate(ctx, genai.Request{
		Prompt:          nearbyPrompt(point.Lat, point.Lng),
		MaxOutputTokens: e.maxOutputTokens,
		ResponseSchema:  markerListSchema,
	})
	if fail != failNone {
		return []MapMarker{}
	}

	return coerceMarkers(raw)
}

// LiveNews finds current news stories about a query, using search grounding
// for freshness. Headlines in exclude are filtered out and echoed into the
// prompt so the model avoids them up front. When the service is rate
// limited, the result is a single synthetic item saying so; other failures
// yield an empty slice.
func (e *Explorer) LiveNews(ctx context.Context, query string, exclude []string) []NewsItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return []NewsItem{}
	}

	e.logger.Debug(ctx, "fetching live news",
		observability.String("query", utils.TruncateString(query, 80)),
		observability.Int("excluded", len(exclude)))

	// Search grounding and response schemas are mutually exclusive, so the
	// reply shape is enforced by the prompt and the extractor alone.
	raw, fail := e.generate(ctx, genai.Request{
		Prompt:             newsPrompt(query, exclude),
		UseSearchGrounding: true,
		MaxOutputTokens:    e.maxOutputTokens,
	})
	switch fail {
	case failBusy:
		return []NewsItem{busyNewsItem(query)}
	case failConnection, failUnparsable:
		return []NewsItem{}
	}

	return coerceNewsItems(decodeNewsList(raw), exclude)
}

// ExtractRoute turns a travel narrative into an ordered list of waypoints.
// source may be free text or a URL; URLs are fetched and converted to
// markdown first, falling back to search grounding when the fetch fails.
// Failures yield an empty route.
func (e *Explorer) ExtractRoute(ctx context.Context, source string) RouteResult {
	source = strings.TrimSpace(source)
	if source == "" {
		return RouteResult{Waypoints: []Waypoint{}}
	}

	isURL := looksLikeURL(source)
	pageContent := ""
	if isURL {
		content, err := e.fetchPage(ctx, source)
		if err != nil {
			e.logger.Warn(ctx, "route page fetch failed, falling back to search grounding",
				observability.String("url", source),
				observability.Error(err))
		} else {
			pageContent = utils.ClipString(content, maxPageContentChars)
		}
	}

	e.logger.Debug(ctx, "extracting route",
		observability.String("source", utils.TruncateString(source, 80)),
		observability.Bool("isURL", isURL),
		observability.Bool("fetchedPage", pageContent != ""))

	request := genai.Request{
		Prompt:          routePrompt(source, isURL, pageContent),
		MaxOutputTokens: e.maxOutputTokens,
	}
	if isURL && pageContent == "" {
		// Only the model's own search can see the page now.
		request.UseSearchGrounding = true
	} else {
		request.ResponseSchema = routeSchema
	}

	raw, fail := e.generate(ctx, request)
	if fail != failNone {
		return RouteResult{Waypoints: []Waypoint{}}
	}

	return coerceRoute(raw)
}

// looksLikeURL reports whether a route source should be treated as a web
// address rather than narrative text.
func looksLikeURL(source string) bool {
	if strings.ContainsAny(source, " \t\n") {
		return false
	}
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://") ||
		strings.HasPrefix(source, "www.")
}
