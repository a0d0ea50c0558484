// Package ports defines repository interfaces for the warehouse domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate with its items to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Soft-deleted orders are not returned.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its business number.
	// Soft-deleted orders are not returned.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetUnpacked retrieves all orders that have line items but no pallets yet.
	// Used by the packing job to find work.
	GetUnpacked(ctx context.Context) ([]*order.Order, error)

	// SoftDelete marks the order and its items as deleted without removing rows.
	SoftDelete(ctx context.Context, id kernel.UUID) error

	// Restore clears the deletion mark from the order and its items.
	Restore(ctx context.Context, id kernel.UUID) error
}
