package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	// ErrProviderTimeout is returned when the fallback chain runs out of time
	// before every provider was tried.
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError tags an error with the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
