package shipengine

import "context"

// Tokens issues short-lived tokens for embedded UI components.
type Tokens struct {
	service
}

// Ephemeral requests an ephemeral token.
func (t *Tokens) Ephemeral(ctx context.Context, params Params) (*Response, error) {
	return t.post(ctx, paths().V1.Tokens.Root, params)
}
