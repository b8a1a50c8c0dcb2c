package api

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "shipengine_client"

// instrumentClient returns a shallow copy of hc whose transport records
// request counts and latencies. The caller's client is left untouched.
func instrumentClient(hc *http.Client, reg prometheus.Registerer) (*http.Client, error) {
	requests, err := registerOrExisting(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "requests_total",
		Help:      "ShipEngine API requests by status code and method.",
	}, []string{"code", "method"}))
	if err != nil {
		return nil, err
	}

	duration, err := registerOrExisting(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "request_duration_seconds",
		Help:      "ShipEngine API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"}))
	if err != nil {
		return nil, err
	}

	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	instrumented := *hc
	instrumented.Transport = promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(duration, base))
	return &instrumented, nil
}

// registerOrExisting lets several clients share one registry.
func registerOrExisting[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
