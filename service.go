package shipengine

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shipengine/shipengine-go/internal/api"
)

// Params are the free-form query or body parameters of an operation. They
// are forwarded unmodified; nil is equivalent to an empty map.
type Params map[string]any

// service is embedded by every domain client. It resolves nothing itself:
// each method builds its path from the registry and hands it here.
type service struct {
	api *api.Client
}

func (s service) call(ctx context.Context, method, path string, params Params) (*Response, error) {
	result, err := s.api.Do(ctx, method, path, params)
	if err != nil {
		return nil, err
	}
	return newResponse(result)
}

func (s service) send(ctx context.Context, req api.Request) (*Response, error) {
	result, err := s.api.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return newResponse(result)
}

func (s service) get(ctx context.Context, path string, params Params) (*Response, error) {
	return s.call(ctx, http.MethodGet, path, params)
}

func (s service) post(ctx context.Context, path string, params Params) (*Response, error) {
	return s.call(ctx, http.MethodPost, path, params)
}

func (s service) put(ctx context.Context, path string, params Params) (*Response, error) {
	return s.call(ctx, http.MethodPut, path, params)
}

func (s service) patch(ctx context.Context, path string, params Params) (*Response, error) {
	return s.call(ctx, http.MethodPatch, path, params)
}

func (s service) delete(ctx context.Context, path string, params Params) (*Response, error) {
	return s.call(ctx, http.MethodDelete, path, params)
}

// paths is shorthand for the registry inside domain clients.
func paths() api.Registry {
	return api.Paths()
}

// join appends each identifier to base as its own escaped path segment.
func join(base string, ids ...string) string {
	for _, id := range ids {
		base += "/" + url.PathEscape(id)
	}
	return base
}
