package shipengine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/shipengine/shipengine-go/internal/api"
)

// Registry is the immutable table of ShipEngine endpoint paths.
type Registry = api.Registry

// PathEntry is one row of the Registry.
type PathEntry = api.PathEntry

// Paths returns the endpoint path registry.
func Paths() Registry {
	return api.Paths()
}

// Client is the ShipEngine client. Each resource family is reachable through
// its own field; all of them share one HTTP transport. A Client holds no
// mutable state and is safe for concurrent use.
type Client struct {
	apiClient *api.Client
	pageSize  int

	Addresses       *Addresses
	Batches         *Batches
	CarrierAccounts *CarrierAccounts
	Carriers        *Carriers
	Shipsurance     *Shipsurance
	Labels          *Labels
	Manifests       *Manifests
	PackagePickups  *PackagePickups
	PackageTypes    *PackageTypes
	Rates           *Rates
	ServicePoints   *ServicePoints
	Shipments       *Shipments
	Tags            *Tags
	Tokens          *Tokens
	Tracking        *Tracking
	Warehouses      *Warehouses
	Webhooks        *Webhooks
	LTL             *LTL
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
		api.WithRetries(cfg.retries),
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	if cfg.registerer != nil {
		apiOpts = append(apiOpts, api.WithRegisterer(cfg.registerer))
	}
	return api.New(apiKey, apiOpts...)
}

// New creates a new ShipEngine client with the given API key. No request is
// made until a domain method is called.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:  defaultBaseURL,
		timeout:  defaultTimeout,
		retries:  defaultRetries,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	s := service{api: apiClient}
	return &Client{
		apiClient:       apiClient,
		pageSize:        cfg.pageSize,
		Addresses:       &Addresses{s},
		Batches:         &Batches{s},
		CarrierAccounts: &CarrierAccounts{s},
		Carriers:        &Carriers{s},
		Shipsurance:     &Shipsurance{s},
		Labels:          &Labels{s},
		Manifests:       &Manifests{s},
		PackagePickups:  &PackagePickups{s},
		PackageTypes:    &PackageTypes{s},
		Rates:           &Rates{s},
		ServicePoints:   &ServicePoints{s},
		Shipments:       &Shipments{s},
		Tags:            &Tags{s},
		Tokens:          &Tokens{s},
		Tracking:        &Tracking{s},
		Warehouses:      &Warehouses{s},
		Webhooks:        &Webhooks{s},
		LTL:             &LTL{s},
	}, nil
}

// NewFromEnv creates a client using the API_KEY environment variable. A .env
// file in the working directory, if present, is loaded first without
// overriding variables that are already set.
func NewFromEnv(opts ...Option) (*Client, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return New(os.Getenv(EnvAPIKey), opts...)
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// PageSize returns the configured default page size for list operations.
// Domain methods never inject it; callers add it to Params when they want it.
func (c *Client) PageSize() int {
	return c.pageSize
}

// Close releases idle connections held by the HTTP client.
func (c *Client) Close() error {
	c.apiClient.CloseIdleConnections()
	return nil
}
