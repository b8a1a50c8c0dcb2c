package shipengine

import "context"

// ServicePoints groups carrier drop-off and pickup location lookups.
type ServicePoints struct {
	service
}

// List searches for service points near an address or coordinates.
func (s *ServicePoints) List(ctx context.Context, params Params) (*Response, error) {
	return s.post(ctx, paths().V1.ServicePoints.Root+"/list", params)
}

// ByID retrieves one service point. countryCode is the two-letter code of
// the country the point is in.
func (s *ServicePoints) ByID(ctx context.Context, carrierCode, countryCode, servicePointID string, params Params) (*Response, error) {
	return s.get(ctx, join(paths().V1.ServicePoints.Root, carrierCode, countryCode, servicePointID), params)
}
