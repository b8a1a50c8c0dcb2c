package shipengine

import "context"

// Tags groups account tag management. Tags are addressed by name.
type Tags struct {
	service
}

// List returns the account's tags.
func (t *Tags) List(ctx context.Context, params Params) (*Response, error) {
	return t.get(ctx, paths().V1.Tags.Root, params)
}

// Create creates a tag.
func (t *Tags) Create(ctx context.Context, tagName string, params Params) (*Response, error) {
	return t.post(ctx, join(paths().V1.Tags.Root, tagName), params)
}

// Delete deletes a tag.
func (t *Tags) Delete(ctx context.Context, tagName string, params Params) (*Response, error) {
	return t.delete(ctx, join(paths().V1.Tags.Root, tagName), params)
}

// Rename renames a tag.
func (t *Tags) Rename(ctx context.Context, tagName, newTagName string, params Params) (*Response, error) {
	return t.put(ctx, join(paths().V1.Tags.Root, tagName, newTagName), params)
}
