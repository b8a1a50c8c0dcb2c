package shipengine

import "context"

// Rates groups rate shopping.
type Rates struct {
	service
}

// Get quotes rates for a shipment.
func (r *Rates) Get(ctx context.Context, params Params) (*Response, error) {
	return r.post(ctx, paths().V1.Rates.Root, params)
}

// Estimate quotes rates without creating a shipment.
func (r *Rates) Estimate(ctx context.Context, params Params) (*Response, error) {
	return r.post(ctx, paths().V1.Rates.Root+"/estimate", params)
}

// Bulk quotes rates for several shipments at once.
func (r *Rates) Bulk(ctx context.Context, params Params) (*Response, error) {
	return r.post(ctx, paths().V1.Rates.Root+"/bulk", params)
}

// ByID retrieves a previously quoted rate.
func (r *Rates) ByID(ctx context.Context, rateID string, params Params) (*Response, error) {
	return r.get(ctx, join(paths().V1.Rates.Root, rateID), params)
}
