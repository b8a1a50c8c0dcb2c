package shipengine

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/shipengine/shipengine-go/internal/api"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = api.DefaultBaseURL

	defaultBaseURL  = DefaultBaseURL
	defaultTimeout  = api.DefaultTimeout
	defaultRetries  = api.DefaultMaxRetries
	defaultPageSize = api.DefaultPageSize

	// EnvAPIKey is the environment variable read by NewFromEnv.
	EnvAPIKey = "API_KEY"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryOn    []int
	pageSize   int
	userAgent  string
	logger     *zap.Logger
	registerer prometheus.Registerer
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Its own Timeout takes precedence
// over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for rate-limited API calls.
// Default: 1
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [429]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithPageSize sets the page size reported by Client.PageSize.
// Default: 50
func WithPageSize(size int) Option {
	return func(c *clientConfig) {
		c.pageSize = size
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request tracing.
// Default: a no-op logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithMetrics records request counts and latencies on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}
