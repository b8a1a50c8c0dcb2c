package shipengine

import "context"

// Labels groups shipping label purchase and management.
type Labels struct {
	service
}

// List returns labels, filtered and paged by params.
func (l *Labels) List(ctx context.Context, params Params) (*Response, error) {
	return l.get(ctx, paths().V1.Labels.Root, params)
}

// Purchase buys a label for the shipment described in params.
func (l *Labels) Purchase(ctx context.Context, params Params) (*Response, error) {
	return l.post(ctx, paths().V1.Labels.Root, params)
}

// ByID retrieves a label.
func (l *Labels) ByID(ctx context.Context, labelID string, params Params) (*Response, error) {
	return l.get(ctx, join(paths().V1.Labels.Root, labelID), params)
}

// ByExternalShipmentID retrieves the label of a shipment by its external ID.
func (l *Labels) ByExternalShipmentID(ctx context.Context, externalShipmentID string, params Params) (*Response, error) {
	return l.get(ctx, join(paths().V1.Labels.LabelByExternalShipmentID, externalShipmentID), params)
}

// PurchaseWithRateID buys a label from a previously quoted rate.
func (l *Labels) PurchaseWithRateID(ctx context.Context, rateID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().V1.Labels.PurchaseLabelWithRateID, rateID), params)
}

// PurchaseWithShipmentID buys a label for an existing shipment.
func (l *Labels) PurchaseWithShipmentID(ctx context.Context, shipmentID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().V1.Labels.PurchaseLabelWithShipmentID, shipmentID), params)
}

// CreateReturn creates a return label for an outbound label.
func (l *Labels) CreateReturn(ctx context.Context, labelID string, params Params) (*Response, error) {
	return l.post(ctx, join(paths().V1.Labels.Root, labelID)+"/return", params)
}

// Track returns the tracking information of a label.
func (l *Labels) Track(ctx context.Context, labelID string, params Params) (*Response, error) {
	return l.get(ctx, join(paths().V1.Labels.Root, labelID)+"/track", params)
}

// Void voids a label.
func (l *Labels) Void(ctx context.Context, labelID string, params Params) (*Response, error) {
	return l.put(ctx, join(paths().V1.Labels.Root, labelID)+"/void", params)
}
