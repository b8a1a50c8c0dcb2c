package shipengine

import "context"

// Shipments groups shipment management.
type Shipments struct {
	service
}

// List returns shipments, filtered and paged by params.
func (s *Shipments) List(ctx context.Context, params Params) (*Response, error) {
	return s.get(ctx, paths().V1.Shipments.Root, params)
}

// Create creates one or more shipments.
func (s *Shipments) Create(ctx context.Context, params Params) (*Response, error) {
	return s.post(ctx, paths().V1.Shipments.Root, params)
}

// ByID retrieves a shipment.
func (s *Shipments) ByID(ctx context.Context, shipmentID string, params Params) (*Response, error) {
	return s.get(ctx, join(paths().V1.Shipments.Root, shipmentID), params)
}

// ByExternalID retrieves a shipment by the caller-assigned external ID.
func (s *Shipments) ByExternalID(ctx context.Context, externalShipmentID string, params Params) (*Response, error) {
	return s.get(ctx, join(paths().V1.Shipments.ShipmentByExternalID, externalShipmentID), params)
}

// Parse extracts shipment details from free text.
func (s *Shipments) Parse(ctx context.Context, params Params) (*Response, error) {
	return s.put(ctx, paths().V1.Shipments.ParseShippingInfo, params)
}

// Update replaces a shipment.
func (s *Shipments) Update(ctx context.Context, shipmentID string, params Params) (*Response, error) {
	return s.put(ctx, join(paths().V1.Shipments.Root, shipmentID), params)
}

// Cancel cancels a shipment.
func (s *Shipments) Cancel(ctx context.Context, shipmentID string, params Params) (*Response, error) {
	return s.put(ctx, join(paths().V1.Shipments.Root, shipmentID)+"/cancel", params)
}

// Rates returns the rates quoted for a shipment.
func (s *Shipments) Rates(ctx context.Context, shipmentID string, params Params) (*Response, error) {
	return s.get(ctx, join(paths().V1.Shipments.Root, shipmentID)+"/rates", params)
}

// AddTag tags a shipment.
func (s *Shipments) AddTag(ctx context.Context, shipmentID, tagName string, params Params) (*Response, error) {
	return s.post(ctx, join(join(paths().V1.Shipments.Root, shipmentID)+"/tags", tagName), params)
}

// RemoveTag removes a tag from a shipment.
func (s *Shipments) RemoveTag(ctx context.Context, shipmentID, tagName string, params Params) (*Response, error) {
	return s.delete(ctx, join(join(paths().V1.Shipments.Root, shipmentID)+"/tags", tagName), params)
}
