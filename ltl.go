package shipengine

import "context"

// LTL groups the less-than-truckload freight operations of the beta API.
type LTL struct {
	service
}

// CarrierByID retrieves an LTL carrier connection.
func (l *LTL) CarrierByID(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return l.get(ctx, join(paths().VBeta.LTL.Carriers, carrierID), params)
}

// ShippingQuote requests a freight quote from the carrier.
func (l *LTL) ShippingQuote(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().VBeta.LTL.Quotes, carrierID), params)
}

// SpotQuote requests a spot (volume) quote from the carrier.
func (l *LTL) SpotQuote(ctx context.Context, carrierID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().VBeta.LTL.SpotQuotes, carrierID), params)
}

// SchedulePickupByQuoteID books a pickup for a previously issued quote.
func (l *LTL) SchedulePickupByQuoteID(ctx context.Context, quoteID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().VBeta.LTL.Quotes, quoteID)+"/pickup", params)
}

// BillOfLadingByQuoteID generates the bill of lading for a quote.
func (l *LTL) BillOfLadingByQuoteID(ctx context.Context, quoteID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().VBeta.LTL.Quotes, quoteID)+"/bill_of_lading", params)
}

// BillOfLadingByPickupID generates the bill of lading for a scheduled pickup.
func (l *LTL) BillOfLadingByPickupID(ctx context.Context, pickupID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().VBeta.LTL.Pickups, pickupID)+"/bill_of_lading", params)
}

// Tracking looks up freight tracking; pass the PRO number and carrier in params.
func (l *LTL) Tracking(ctx context.Context, params Params) (*Response, error) {
	return l.get(ctx, paths().VBeta.LTL.Tracking, params)
}
