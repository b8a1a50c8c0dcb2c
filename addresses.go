package shipengine

import (
	"context"
	"net/http"

	"github.com/shipengine/shipengine-go/internal/api"
)

// Addresses groups address parsing and validation.
type Addresses struct {
	service
}

// Parse extracts a structured address from free text.
func (a *Addresses) Parse(ctx context.Context, params Params) (*Response, error) {
	return a.put(ctx, paths().V1.Addresses.ParseAddress, params)
}

// Validate validates a list of addresses. The endpoint takes a JSON array,
// so each address is one Params; the response is an array in the same order.
func (a *Addresses) Validate(ctx context.Context, addresses []Params) (*Response, error) {
	if addresses == nil {
		addresses = []Params{}
	}
	return a.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   paths().V1.Addresses.ValidateAddress,
		Body:   addresses,
	})
}
