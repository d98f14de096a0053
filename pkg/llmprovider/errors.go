package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrCredentialMissing indicates no enabled provider has a usable API key
	ErrCredentialMissing = errors.New("provider credential missing")

	// ErrServiceUnavailable covers transport, auth, non-2xx and timeout failures
	ErrServiceUnavailable = errors.New("completion service unavailable")

	// ErrEmptyResponse indicates the call succeeded but returned no text
	ErrEmptyResponse = errors.New("completion service returned no content")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")
)

// ProviderError wraps provider-specific errors
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
