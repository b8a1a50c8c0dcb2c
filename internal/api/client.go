package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/shipengine/shipengine-go/internal/apierrors"
)

// Defaults forwarded to the transport.
const (
	DefaultBaseURL    = "https://api.shipengine.com"
	DefaultTimeout    = 30000 * time.Millisecond
	DefaultMaxRetries = 1
	DefaultRetryDelay = time.Second
	DefaultPageSize   = 50
	DefaultUserAgent  = "shipengine-go/1.0"
)

// DefaultRetryOn lists the status codes retried when no override is given.
var DefaultRetryOn = []int{http.StatusTooManyRequests}

// Config holds the transport configuration.
type Config struct {
	APIKey     string        `validate:"required"`
	BaseURL    string        `validate:"required,url"`
	HTTPClient *http.Client  `validate:"-"`
	Timeout    time.Duration `validate:"gte=0"`
	MaxRetries int           `validate:"gte=0"`
	RetryDelay time.Duration `validate:"gte=0"`
	RetryOn    []int         `validate:"dive,gte=100,lte=599"`
	UserAgent  string
	Logger     *zap.Logger           `validate:"-"`
	Registerer prometheus.Registerer `validate:"-"`
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Client is the HTTP transport shared by every domain client. It is safe for
// concurrent use; nothing is mutated after construction.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	// transport is the round-tripper beneath any metrics wrapper.
	transport http.RoundTripper
	retry      *RetryConfig
	logger     *zap.Logger
}

// Result is a successful HTTP exchange.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewClient creates a transport from an explicit configuration. Zero values
// are replaced by the package defaults.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if len(cfg.RetryOn) == 0 {
		cfg.RetryOn = DefaultRetryOn
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if err := configValidator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrInvalidConfig, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	transport := httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cfg.Registerer != nil {
		instrumented, err := instrumentClient(httpClient, cfg.Registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		httpClient = instrumented
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = cfg.MaxRetries
	retry.BaseDelay = cfg.RetryDelay
	retry.RetryableOn = retryableStatuses(cfg.RetryOn)

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		transport:  transport,
		retry:      retry,
		logger:     cfg.Logger,
	}, nil
}

// Option configures the transport for New.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithRetries sets the number of retries.
func WithRetries(retries int) Option {
	return func(c *Config) {
		c.MaxRetries = retries
	}
}

// WithRetryDelay sets the base delay between retries.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Config) {
		c.RetryDelay = delay
	}
}

// WithRetryOn sets the status codes that trigger a retry.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Config) {
		c.RetryOn = statusCodes
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRegisterer enables Prometheus instrumentation of outgoing requests.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registerer = reg
	}
}

// New creates a transport using functional options.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		MaxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// CloseIdleConnections closes idle connections of the underlying transport,
// reaching past the metrics wrapper when one is installed.
func (c *Client) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if t, ok := c.transport.(closeIdler); ok {
		t.CloseIdleConnections()
	}
}

// Get issues a GET with params encoded as the query string.
func (c *Client) Get(ctx context.Context, path string, params map[string]any) (*Result, error) {
	return c.Do(ctx, http.MethodGet, path, params)
}

// Post issues a POST with params as the JSON body.
func (c *Client) Post(ctx context.Context, path string, params map[string]any) (*Result, error) {
	return c.Do(ctx, http.MethodPost, path, params)
}

// Put issues a PUT with params as the JSON body.
func (c *Client) Put(ctx context.Context, path string, params map[string]any) (*Result, error) {
	return c.Do(ctx, http.MethodPut, path, params)
}

// Patch issues a PATCH with params as the JSON body.
func (c *Client) Patch(ctx context.Context, path string, params map[string]any) (*Result, error) {
	return c.Do(ctx, http.MethodPatch, path, params)
}

// Delete issues a DELETE with params encoded as the query string.
func (c *Client) Delete(ctx context.Context, path string, params map[string]any) (*Result, error) {
	return c.Do(ctx, http.MethodDelete, path, params)
}

// Do performs an API request. For GET and DELETE the params become query
// parameters; for every other method they are sent as a JSON object, with a
// nil map sent as {}.
func (c *Client) Do(ctx context.Context, method, path string, params map[string]any) (*Result, error) {
	req := Request{Method: method, Path: path}
	if sendsQuery(method) {
		req.Query = params
	} else if params == nil {
		req.Body = map[string]any{}
	} else {
		req.Body = params
	}
	return c.Send(ctx, req)
}

// Request describes a call whose query and body are set independently, for
// the endpoints that take a JSON array or a bodiless POST.
type Request struct {
	Method string
	Path   string
	Query  map[string]any
	// Body is marshalled as JSON. Nil sends no body.
	Body any
}

// Send performs req, retrying per the client's retry policy.
func (c *Client) Send(ctx context.Context, r Request) (*Result, error) {
	method, path := r.Method, r.Path
	target := c.baseURL + path
	if q := encodeQuery(r.Query); q != "" {
		target += "?" + q
	}
	var body []byte
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = data
	}

	correlationID := uuid.NewString()
	log := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("correlation_id", correlationID),
	)

	for attempt := 0; ; attempt++ {
		req, err := c.newRequest(ctx, method, target, body, correlationID)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Debug("request failed", zap.Int("attempt", attempt), zap.Error(err))
			return nil, &apierrors.NetworkError{Err: err, URL: target, Attempt: attempt + 1}
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, &apierrors.NetworkError{Err: err, URL: target, Attempt: attempt + 1}
		}

		log.Debug("request completed",
			zap.Int("attempt", attempt),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
		)

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			retryAfter := parseRetryAfter(resp.Header)
			log.Warn("retrying request",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
				zap.Duration("retry_after", retryAfter),
			)
			if err := c.retry.Wait(ctx, attempt, retryAfter); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode >= 400 {
			return nil, parseErrorResponse(resp.StatusCode, data)
		}

		return &Result{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
	}
}

func (c *Client) newRequest(ctx context.Context, method, target string, body []byte, correlationID string) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Correlation-Id", correlationID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func sendsQuery(method string) bool {
	return method == http.MethodGet || method == http.MethodDelete || method == http.MethodHead
}

// encodeQuery flattens params into a query string, keys sorted by
// url.Values. Nested maps use the bracket form (created_at[start]=...).
// Slices of scalars repeat the key; slices of maps index it
// (items[0][sku]=...). Nil values are dropped.
func encodeQuery(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range params {
		addQuery(values, k, v)
	}
	return values.Encode()
}

func addQuery(values url.Values, key string, v any) {
	if v == nil {
		return
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return
	}
	switch x := v.(type) {
	case string:
		values.Add(key, x)
		return
	case json.Number:
		values.Add(key, x.String())
		return
	case time.Time:
		values.Add(key, x.Format(time.RFC3339))
		return
	case fmt.Stringer:
		values.Add(key, x.String())
		return
	case []byte:
		values.Add(key, string(x))
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		addQuery(values, key, rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			values.Add(key, jsonQueryValue(v))
			return
		}
		iter := rv.MapRange()
		for iter.Next() {
			addQuery(values, key+"["+iter.Key().String()+"]", iter.Value().Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i)
			for item.Kind() == reflect.Interface || item.Kind() == reflect.Pointer {
				if item.IsNil() {
					break
				}
				item = item.Elem()
			}
			if item.Kind() == reflect.Map || item.Kind() == reflect.Slice || item.Kind() == reflect.Array {
				addQuery(values, key+"["+strconv.Itoa(i)+"]", item.Interface())
				continue
			}
			addQuery(values, key, rv.Index(i).Interface())
		}
	case reflect.Bool:
		values.Add(key, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		values.Add(key, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		values.Add(key, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		values.Add(key, strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()))
	case reflect.String:
		values.Add(key, rv.String())
	default:
		values.Add(key, jsonQueryValue(v))
	}
}

// jsonQueryValue encodes values with no natural query form, such as structs.
func jsonQueryValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		RequestID string                  `json:"request_id"`
		Errors    []apierrors.ErrorDetail `json:"errors"`
		Message   string                  `json:"message"`
	}

	apiErr := &apierrors.APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, &errResp); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.RequestID = errResp.RequestID
	apiErr.Details = errResp.Errors
	apiErr.Message = errResp.Message
	if len(errResp.Errors) > 0 && errResp.Errors[0].Message != "" {
		apiErr.Message = errResp.Errors[0].Message
	}
	return apiErr
}
