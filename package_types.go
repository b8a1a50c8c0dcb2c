package shipengine

import "context"

// PackageTypes groups custom package type definitions.
type PackageTypes struct {
	service
}

// List returns the custom package types.
func (p *PackageTypes) List(ctx context.Context, params Params) (*Response, error) {
	return p.get(ctx, paths().V1.PackageTypes.Root, params)
}

// Create defines a custom package type.
func (p *PackageTypes) Create(ctx context.Context, params Params) (*Response, error) {
	return p.post(ctx, paths().V1.PackageTypes.Root, params)
}

// ByID retrieves a package type.
func (p *PackageTypes) ByID(ctx context.Context, packageID string, params Params) (*Response, error) {
	return p.get(ctx, join(paths().V1.PackageTypes.Root, packageID), params)
}

// Update updates a package type.
func (p *PackageTypes) Update(ctx context.Context, packageID string, params Params) (*Response, error) {
	return p.put(ctx, join(paths().V1.PackageTypes.Root, packageID), params)
}

// Delete deletes a package type.
func (p *PackageTypes) Delete(ctx context.Context, packageID string, params Params) (*Response, error) {
	return p.delete(ctx, join(paths().V1.PackageTypes.Root, packageID), params)
}
