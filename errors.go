package shipengine

import (
	"github.com/shipengine/shipengine-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks. Domain methods return transport
// errors unchanged, so these match anything a method returns.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidConfig is returned when client options fail validation.
	ErrInvalidConfig = apierrors.ErrInvalidConfig

	// ErrBadRequest matches 400 responses.
	ErrBadRequest = apierrors.ErrBadRequest

	// ErrUnauthorized matches 401 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden matches 403 responses.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound matches 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited matches 429 responses that exhausted their retries.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer matches 5xx responses.
	ErrServer = apierrors.ErrServer
)

// APIError represents an HTTP error from the ShipEngine API.
type APIError = apierrors.APIError

// ErrorDetail is one entry of an APIError's details.
type ErrorDetail = apierrors.ErrorDetail

// NetworkError represents a network-level failure.
type NetworkError = apierrors.NetworkError

// DecodeError indicates a successful response with a malformed body.
type DecodeError = apierrors.DecodeError
