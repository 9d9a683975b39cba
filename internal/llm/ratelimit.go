package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type rateLimited struct {
	model   Model
	limiter *rate.Limiter
}

// WithRateLimit wraps m so that at most rps calls per second (with the given burst)
// reach it. Callers block until a slot frees up or ctx ends.
func WithRateLimit(m Model, rps float64, burst int) Model {
	if burst < 1 {
		burst = 1
	}
	return &rateLimited{
		model:   m,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Infer implements Model.
func (r *rateLimited) Infer(ctx context.Context, text string) ([]Candidate, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return r.model.Infer(ctx, text)
}
