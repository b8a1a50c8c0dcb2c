package shipengine

import "context"

// Manifests groups end-of-day manifest operations.
type Manifests struct {
	service
}

// List returns manifests.
func (m *Manifests) List(ctx context.Context, params Params) (*Response, error) {
	return m.get(ctx, paths().V1.Manifests.Root, params)
}

// Create creates a manifest.
func (m *Manifests) Create(ctx context.Context, params Params) (*Response, error) {
	return m.post(ctx, paths().V1.Manifests.Root, params)
}

// ByID retrieves a manifest.
func (m *Manifests) ByID(ctx context.Context, manifestID string, params Params) (*Response, error) {
	return m.get(ctx, join(paths().V1.Manifests.Root, manifestID), params)
}

// RequestByID retrieves the status of an asynchronous manifest request.
func (m *Manifests) RequestByID(ctx context.Context, manifestRequestID string, params Params) (*Response, error) {
	return m.get(ctx, join(paths().V1.Manifests.ManifestRequest, manifestRequestID), params)
}
