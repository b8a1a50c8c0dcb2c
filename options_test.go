package shipengine

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func TestDefaultConstants(t *testing.T) {
	if defaultBaseURL != "https://api.shipengine.com" {
		t.Errorf("defaultBaseURL = %s, want https://api.shipengine.com", defaultBaseURL)
	}
	if defaultTimeout != 30*time.Second {
		t.Errorf("defaultTimeout = %v, want 30s", defaultTimeout)
	}
	if defaultRetries != 1 {
		t.Errorf("defaultRetries = %d, want 1", defaultRetries)
	}
	if defaultPageSize != 50 {
		t.Errorf("defaultPageSize = %d, want 50", defaultPageSize)
	}
}

func TestWithBaseURL(t *testing.T) {
	cfg := &clientConfig{}
	WithBaseURL("https://custom.example.com")(cfg)
	if cfg.baseURL != "https://custom.example.com" {
		t.Errorf("baseURL = %s, want https://custom.example.com", cfg.baseURL)
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	customClient := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(customClient)(cfg)
	if cfg.httpClient != customClient {
		t.Error("httpClient was not set")
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithTimeout(5 * time.Second)(cfg)
	if cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.timeout)
	}
}

func TestWithRetries(t *testing.T) {
	tests := []int{0, 1, 5}
	for _, n := range tests {
		cfg := &clientConfig{}
		WithRetries(n)(cfg)
		if cfg.retries != n {
			t.Errorf("retries = %d, want %d", cfg.retries, n)
		}
	}
}

func TestWithRetryOn(t *testing.T) {
	cfg := &clientConfig{}
	WithRetryOn([]int{429, 503})(cfg)
	if len(cfg.retryOn) != 2 || cfg.retryOn[0] != 429 || cfg.retryOn[1] != 503 {
		t.Errorf("retryOn = %v, want [429 503]", cfg.retryOn)
	}
}

func TestWithPageSize(t *testing.T) {
	cfg := &clientConfig{}
	WithPageSize(100)(cfg)
	if cfg.pageSize != 100 {
		t.Errorf("pageSize = %d, want 100", cfg.pageSize)
	}
}

func TestWithUserAgent(t *testing.T) {
	cfg := &clientConfig{}
	WithUserAgent("acme-shop/3.1")(cfg)
	if cfg.userAgent != "acme-shop/3.1" {
		t.Errorf("userAgent = %s, want acme-shop/3.1", cfg.userAgent)
	}
}

func TestWithLogger(t *testing.T) {
	cfg := &clientConfig{}
	logger := zap.NewNop()
	WithLogger(logger)(cfg)
	if cfg.logger != logger {
		t.Error("logger was not set")
	}
}

func TestWithMetrics(t *testing.T) {
	cfg := &clientConfig{}
	reg := prometheus.NewRegistry()
	WithMetrics(reg)(cfg)
	if cfg.registerer != reg {
		t.Error("registerer was not set")
	}
}
