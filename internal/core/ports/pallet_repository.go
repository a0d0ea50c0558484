package ports

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/pallet"
)

// PalletRepository defines the persistence contract for packed pallets.
// Pallets are always written as a whole plan for one order; partial
// updates of individual pallets are not part of the contract.
type PalletRepository interface {
	// SavePackingPlan replaces the pallets of the order with the given set
	// inside the ambient transaction: existing pallets and their lines are
	// removed first, then the new ones are inserted. Empty pallets are not
	// written. On failure no partial plan is visible.
	SavePackingPlan(ctx context.Context, orderID kernel.UUID, pallets []*pallet.Pallet) error

	// GetByOrderID retrieves the pallets of the order in creation order,
	// with line annotations resolved from the catalog and the order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*pallet.Pallet, error)

	// ExistsForOrder reports whether the order has at least one pallet.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
