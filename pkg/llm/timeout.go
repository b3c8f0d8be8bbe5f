package llm

import (
	"context"
	"time"
)

// TimeoutProvider bounds every call to the wrapped provider
type TimeoutProvider struct {
	inner   LLMProvider
	timeout time.Duration
}

// WithTimeout wraps a provider so no call outlives the given duration.
// A non-positive timeout returns the provider unchanged.
func WithTimeout(p LLMProvider, timeout time.Duration) LLMProvider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Chat(ctx context.Context, history []Message, opts ...Option) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := t.inner.Chat(ctx, history, opts...)
		done <- result{text, err}
	}()

	// Providers that ignore ctx must not hold the caller past the deadline
	select {
	case r := <-done:
		return r.text, r.err
	case <-ctx.Done():
		return "", &ErrProviderUnavailable{Err: ctx.Err()}
	}
}

func (t *TimeoutProvider) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	return t.Chat(ctx, []Message{{Role: RoleUser, Content: prompt}}, opts...)
}
