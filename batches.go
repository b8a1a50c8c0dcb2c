package shipengine

import "context"

// Batches groups batch label processing.
type Batches struct {
	service
}

// List returns batches, filtered and paged by params.
func (b *Batches) List(ctx context.Context, params Params) (*Response, error) {
	return b.get(ctx, paths().V1.Batches.Root, params)
}

// Create creates a batch.
func (b *Batches) Create(ctx context.Context, params Params) (*Response, error) {
	return b.post(ctx, paths().V1.Batches.Root, params)
}

// ByExternalID retrieves a batch by the caller-assigned external ID.
func (b *Batches) ByExternalID(ctx context.Context, externalBatchID string, params Params) (*Response, error) {
	return b.get(ctx, join(paths().V1.Batches.BatchByExternalID, externalBatchID), params)
}

// ByID retrieves a batch.
func (b *Batches) ByID(ctx context.Context, batchID string, params Params) (*Response, error) {
	return b.get(ctx, join(paths().V1.Batches.Root, batchID), params)
}

// Update updates a batch.
func (b *Batches) Update(ctx context.Context, batchID string, params Params) (*Response, error) {
	return b.put(ctx, join(paths().V1.Batches.Root, batchID), params)
}

// Delete deletes a batch.
func (b *Batches) Delete(ctx context.Context, batchID string, params Params) (*Response, error) {
	return b.delete(ctx, join(paths().V1.Batches.Root, batchID), params)
}

// Add adds shipments or rates to a batch.
func (b *Batches) Add(ctx context.Context, batchID string, params Params) (*Response, error) {
	return b.post(ctx, join(paths().V1.Batches.Root, batchID)+"/add", params)
}

// Remove removes shipments or rates from a batch.
func (b *Batches) Remove(ctx context.Context, batchID string, params Params) (*Response, error) {
	return b.post(ctx, join(paths().V1.Batches.Root, batchID)+"/remove", params)
}

// Errors lists the errors recorded while processing a batch.
func (b *Batches) Errors(ctx context.Context, batchID string, params Params) (*Response, error) {
	return b.get(ctx, join(paths().V1.Batches.Root, batchID)+"/errors", params)
}

// Process purchases the labels of a batch.
func (b *Batches) Process(ctx context.Context, batchID string, params Params) (*Response, error) {
	return b.post(ctx, join(paths().V1.Batches.Root, batchID)+"/process/labels", params)
}
