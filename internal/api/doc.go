// Package api provides HTTP client functionality for communicating with the
// ShipEngine API. It owns the endpoint path registry, authentication,
// request/response serialization and the single-retry policy for rate-limited
// requests.
//
// # Path Registry
//
// [Paths] returns the immutable table of endpoint paths, addressed with field
// selectors so that a missing endpoint fails to compile:
//
//	path := api.Paths().VBeta.LTL.Carriers // "/v-beta/ltl/carriers"
//
// Paths that take an identifier are returned without it; callers append
// "/" and the escaped identifier.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// The API key is sent via the API-Key header on every request. GET and DELETE
// parameters are sent as the query string; all other methods send them as a
// JSON object.
//
// # Retry Behavior
//
// By default a request answered with 429 Too Many Requests is retried once,
// honouring a Retry-After header given in seconds. Configure retry behavior
// using [WithRetries], [WithRetryDelay] and [WithRetryOn].
//
// # Error Handling
//
// Non-2xx responses become *apierrors.APIError, decoded from ShipEngine's
// {"request_id", "errors": [...]} envelope. Transport failures become
// *apierrors.NetworkError.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
