package model

import (
	"errors"
	"fmt"
)

// Lookup outcome kinds. ErrNoMatch is an empty-result outcome, not a provider
// failure; callers render it as "not found" rather than a service error.
var (
	ErrNoMatch           = errors.New("no location matched the search")
	ErrNetworkTimeout    = errors.New("provider call timed out")
	ErrConnectionFailure = errors.New("provider connection failed")
	ErrProviderAuth      = errors.New("provider rejected credentials")
	ErrMalformedReading  = errors.New("provider payload is malformed")
)

// ProviderHTTPError is a non-2xx provider response that is not an auth failure.
type ProviderHTTPError struct {
	Provider string
	Status   int
}

func (e *ProviderHTTPError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.Status)
}
