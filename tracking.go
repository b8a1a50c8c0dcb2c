package shipengine

import (
	"context"
	"net/http"

	"github.com/shipengine/shipengine-go/internal/api"
)

// Tracking groups parcel tracking. Every operation is keyed by the
// carrier_code and tracking_number params.
type Tracking struct {
	service
}

// Get returns the tracking information of a package.
func (t *Tracking) Get(ctx context.Context, params Params) (*Response, error) {
	return t.get(ctx, paths().V1.Tracking.Root, params)
}

// Start subscribes the package to tracking webhooks.
func (t *Tracking) Start(ctx context.Context, params Params) (*Response, error) {
	return t.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   paths().V1.Tracking.Root + "/start",
		Query:  params,
	})
}

// Stop unsubscribes the package from tracking webhooks.
func (t *Tracking) Stop(ctx context.Context, params Params) (*Response, error) {
	return t.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   paths().V1.Tracking.Root + "/stop",
		Query:  params,
	})
}
