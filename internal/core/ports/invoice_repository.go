package ports

import (
	"context"

	"tehnoplast/internal/core/domain/model/invoice"
	"tehnoplast/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices.
// The at-most-one-invoice-per-order rule is backed by a unique index on
// the order reference.
type InvoiceRepository interface {
	// Add persists a new invoice.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByOrderID retrieves the invoice issued for the given order.
	// Returns an object-not-found error when the order has no invoice.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)

	// ExistsForOrder reports whether an invoice was issued for the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
