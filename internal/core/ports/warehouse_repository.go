package ports

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
// Warehouses are keyed by their Global Location Number.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by its location number.
	Get(ctx context.Context, gln kernel.GLN) (*warehouse.Warehouse, error)
}
