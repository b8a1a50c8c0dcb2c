package shipengine

import "context"

// PackagePickups groups parcel pickup scheduling.
type PackagePickups struct {
	service
}

// List returns scheduled pickups.
func (p *PackagePickups) List(ctx context.Context, params Params) (*Response, error) {
	return p.get(ctx, paths().V1.PackagePickups.Root, params)
}

// Schedule schedules a pickup.
func (p *PackagePickups) Schedule(ctx context.Context, params Params) (*Response, error) {
	return p.post(ctx, paths().V1.PackagePickups.Root, params)
}

// ByID retrieves a pickup.
func (p *PackagePickups) ByID(ctx context.Context, pickupID string, params Params) (*Response, error) {
	return p.get(ctx, join(paths().V1.PackagePickups.Root, pickupID), params)
}

// Delete cancels a pickup.
func (p *PackagePickups) Delete(ctx context.Context, pickupID string, params Params) (*Response, error) {
	return p.delete(ctx, join(paths().V1.PackagePickups.Root, pickupID), params)
}
