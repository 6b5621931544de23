package invoke

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/webpmp/TerraExplorer/providers/genai"
	"github.com/webpmp/TerraExplorer/providers/observability"
)

// DefaultBaseDelay is the backoff unit used when an Invoker is constructed
// with a zero BaseDelay. The wait before retry N is N base units.
const DefaultBaseDelay = 2 * time.Second

// ErrAttemptsExhausted is returned when every attempt failed with a
// rate-limit error. It wraps the last provider error, so
// genai.IsRateLimited and errors.Is/As keep working on the result.
var ErrAttemptsExhausted = errors.New("terraexplorer: all invoke attempts exhausted")

// Invoker wraps a provider call with bounded retries for rate-limited
// errors. Invocations share no mutable state; an Invoker is safe for
// concurrent use.
type Invoker struct {
	provider  genai.Provider
	baseDelay time.Duration
}

// New creates an Invoker around provider. A zero baseDelay falls back to
// [DefaultBaseDelay].
func New(provider genai.Provider, baseDelay time.Duration) *Invoker {
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &Invoker{provider: provider, baseDelay: baseDelay}
}

// Invoke executes the request, retrying up to maxAttempts times in total
// when the provider reports a rate-limit error. The wait before retry N is
// N×baseDelay, so delays strictly increase. Non-rate-limited errors
// propagate immediately; exhaustion returns [ErrAttemptsExhausted] wrapping
// the last provider error.
func (iv *Invoker) Invoke(ctx context.Context, request genai.Request, maxAttempts int) (*genai.Response, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	logger := observability.LoggerFromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			// Respect context cancellation while waiting out the quota window.
			backoff := time.Duration(attempt-1) * iv.baseDelay
			logger.Debug(ctx, "rate limited, backing off before retry",
				observability.Int("attempt", attempt),
				observability.String("backoff", backoff.String()),
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		response, err := iv.provider.GenerateContent(ctx, request)
		if err == nil {
			return response, nil
		}

		if !genai.IsRateLimited(err) {
			return nil, err
		}

		lastErr = err
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, maxAttempts, lastErr)
}
