package shipengine

import "context"

// CarrierAccounts groups carrier account connections. Every path is keyed by
// the carrier name (for example "fedex" or "ups").
type CarrierAccounts struct {
	service
}

// Connect connects a carrier account.
func (c *CarrierAccounts) Connect(ctx context.Context, carrierName string, params Params) (*Response, error) {
	return c.post(ctx, join(paths().V1.CarrierAccounts.Root, carrierName), params)
}

// Disconnect disconnects a carrier account.
func (c *CarrierAccounts) Disconnect(ctx context.Context, carrierName, carrierID string, params Params) (*Response, error) {
	return c.delete(ctx, join(paths().V1.CarrierAccounts.Root, carrierName, carrierID), params)
}

// Settings retrieves the settings of a carrier account.
func (c *CarrierAccounts) Settings(ctx context.Context, carrierName, carrierID string, params Params) (*Response, error) {
	return c.get(ctx, join(paths().V1.CarrierAccounts.Root, carrierName, carrierID)+"/settings", params)
}

// UpdateSettings updates the settings of a carrier account.
func (c *CarrierAccounts) UpdateSettings(ctx context.Context, carrierName, carrierID string, params Params) (*Response, error) {
	return c.put(ctx, join(paths().V1.CarrierAccounts.Root, carrierName, carrierID)+"/settings", params)
}
