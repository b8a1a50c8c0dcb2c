package shipengine

import "context"

// Shipsurance groups the Shipsurance insurance provider operations.
type Shipsurance struct {
	service
}

// Connect connects a Shipsurance account.
func (s *Shipsurance) Connect(ctx context.Context, params Params) (*Response, error) {
	return s.post(ctx, paths().V1.Shipsurance.Root, params)
}

// Disconnect disconnects the Shipsurance account.
func (s *Shipsurance) Disconnect(ctx context.Context, params Params) (*Response, error) {
	return s.delete(ctx, paths().V1.Shipsurance.Root, params)
}

// AddFunds adds funds to the insurance balance.
func (s *Shipsurance) AddFunds(ctx context.Context, params Params) (*Response, error) {
	return s.patch(ctx, paths().V1.Shipsurance.AddFunds, params)
}

// Balance returns the insurance balance.
func (s *Shipsurance) Balance(ctx context.Context, params Params) (*Response, error) {
	return s.get(ctx, paths().V1.Shipsurance.Balance, params)
}
