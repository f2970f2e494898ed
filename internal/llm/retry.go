package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass sorts a Generate error into what the retrier should do next.
type retryClass int

const (
	retryNever retryClass = iota // configuration or caller problem
	retryOnce                    // schema miss; one more roll of the dice
	retryAlways                  // transient backend trouble
)

func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// The cap is wrong, not the weather.
		return retryNever
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}
	// Rate limits, 5xx, and plain network errors all get the full
	// backoff schedule.
	return retryAlways
}

type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider with exponential backoff and jitter. A
// schema-invalid answer is re-asked once; truncation and context errors
// fail immediately.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if invalidBudget == 0 {
				return nil, err
			}
			invalidBudget--
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

// wait picks the pause before the next attempt: the server's Retry-After
// when a rate limit carried one, otherwise exponential backoff capped at
// MaxWait with 20% jitter either way.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	base = math.Min(base, float64(r.cfg.MaxWait))
	base += base * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(base, 0))
}
