// Package gmaps provides a thin client for the Google Maps web APIs
// (Geocoding, Places Nearby Search and Directions).
package gmaps

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrMissingAPIKey is returned when a network call is attempted without a
// configured credential.
var ErrMissingAPIKey = errors.New("GOOGLE_MAPS_API_KEY not set")

// ProviderError represents a failure reported by or while talking to one of
// the Google Maps services. The raw provider status is carried verbatim so
// callers can surface it; the API key is never part of the message.
type ProviderError struct {
	Service    string // "geocode", "places", "directions"
	StatusCode int    // HTTP status code, 0 for transport-level failures
	Status     string // provider status string (e.g. "ZERO_RESULTS"), if any
	Message    string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// timeoutError builds the user-facing error for a timed-out request.
func timeoutError(service string) *ProviderError {
	return &ProviderError{
		Service: service,
		Message: "Request timed out. Please try again.",
	}
}

// transportError wraps a transport-level failure without echoing request
// details (the URL carries the credential).
func transportError(service string, err error) *ProviderError {
	return &ProviderError{
		Service: service,
		Message: fmt.Sprintf("Request failed: %s", sanitizeTransportError(err)),
	}
}

// sanitizeTransportError strips the request URL from a transport error so
// the query string (which carries the credential) cannot leak into user
// visible text.
func sanitizeTransportError(err error) string {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Sprintf("%s: %s", ue.Op, ue.Err)
	}
	return err.Error()
}
