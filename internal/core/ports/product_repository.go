package ports

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
// Lookups by the in-house codes serve order entry; lookups by external
// codes serve counterparty document matching.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products with the given identifiers, keyed by id.
	// Missing identifiers are absent from the result rather than an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)

	// GetByInternalSKU retrieves a product by its unique in-house SKU.
	GetByInternalSKU(ctx context.Context, sku string) (*product.Product, error)

	// GetByInternalBarcode retrieves a product by its unique in-house barcode.
	GetByInternalBarcode(ctx context.Context, barcode string) (*product.Product, error)

	// GetByExternalCode retrieves a product by a counterparty barcode or SKU.
	GetByExternalCode(ctx context.Context, code string) (*product.Product, error)
}
