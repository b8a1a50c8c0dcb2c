package shipengine

import "context"

// Warehouses groups ship-from location management.
type Warehouses struct {
	service
}

// List returns warehouses.
func (w *Warehouses) List(ctx context.Context, params Params) (*Response, error) {
	return w.get(ctx, paths().V1.Warehouses.Root, params)
}

// Create creates a warehouse.
func (w *Warehouses) Create(ctx context.Context, params Params) (*Response, error) {
	return w.post(ctx, paths().V1.Warehouses.Root, params)
}

// ByID retrieves a warehouse.
func (w *Warehouses) ByID(ctx context.Context, warehouseID string, params Params) (*Response, error) {
	return w.get(ctx, join(paths().V1.Warehouses.Root, warehouseID), params)
}

// Update replaces a warehouse.
func (w *Warehouses) Update(ctx context.Context, warehouseID string, params Params) (*Response, error) {
	return w.put(ctx, join(paths().V1.Warehouses.Root, warehouseID), params)
}

// Delete deletes a warehouse.
func (w *Warehouses) Delete(ctx context.Context, warehouseID string, params Params) (*Response, error) {
	return w.delete(ctx, join(paths().V1.Warehouses.Root, warehouseID), params)
}

// UpdateSettings updates warehouse settings such as the default flag.
func (w *Warehouses) UpdateSettings(ctx context.Context, warehouseID string, params Params) (*Response, error) {
	return w.put(ctx, join(paths().V1.Warehouses.Root, warehouseID)+"/settings", params)
}
