package shipengine

import "context"

// Carriers groups the connected-carrier operations.
type Carriers struct {
	service
}

// List returns the carriers connected to the account.
func (c *Carriers) List(ctx context.Context, params Params) (*Response, error) {
	return c.get(ctx, paths().V1.Carriers.Root, params)
}

// ByID retrieves a connected carrier.
func (c *Carriers) ByID(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return c.get(ctx, join(paths().V1.Carriers.Root, carrierID), params)
}

// Disconnect removes a carrier from the account.
func (c *Carriers) Disconnect(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return c.delete(ctx, join(paths().V1.Carriers.Root, carrierID), params)
}

// AddFunds adds funds to a carrier with a prepaid balance.
func (c *Carriers) AddFunds(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return c.put(ctx, join(paths().V1.Carriers.Root, carrierID)+"/add_funds", params)
}

// Options lists the advanced shipment options a carrier supports.
func (c *Carriers) Options(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return c.get(ctx, join(paths().V1.Carriers.Root, carrierID)+"/options", params)
}

// Services lists the services a carrier offers.
func (c *Carriers) Services(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return c.get(ctx, join(paths().V1.Carriers.Root, carrierID)+"/services", params)
}

// PackageTypes lists the package types a carrier accepts.
func (c *Carriers) PackageTypes(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return c.get(ctx, join(paths().V1.Carriers.Root, carrierID)+"/packages", params)
}
