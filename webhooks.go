package shipengine

import "context"

// Webhooks groups environment webhook subscriptions.
type Webhooks struct {
	service
}

// List returns the webhooks.
func (w *Webhooks) List(ctx context.Context, params Params) (*Response, error) {
	return w.get(ctx, paths().V1.Webhooks.Root, params)
}

// Create subscribes a URL to an event.
func (w *Webhooks) Create(ctx context.Context, params Params) (*Response, error) {
	return w.post(ctx, paths().V1.Webhooks.Root, params)
}

// ByID retrieves a webhook.
func (w *Webhooks) ByID(ctx context.Context, webhookID string, params Params) (*Response, error) {
	return w.get(ctx, join(paths().V1.Webhooks.Root, webhookID), params)
}

// Update changes a webhook's URL or headers.
func (w *Webhooks) Update(ctx context.Context, webhookID string, params Params) (*Response, error) {
	return w.put(ctx, join(paths().V1.Webhooks.Root, webhookID), params)
}

// Delete deletes a webhook.
func (w *Webhooks) Delete(ctx context.Context, webhookID string, params Params) (*Response, error) {
	return w.delete(ctx, join(paths().V1.Webhooks.Root, webhookID), params)
}
