package llm

import "fmt"

// ErrProviderUnavailable indicates the provider is down, unreachable or timed out.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider answered without any text.
type ErrEmptyResponse struct {
	Provider string
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("%s returned an empty response", e.Provider)
}
