package order

import (
	"errors"
	"fmt"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents a single line of an order: a product, the ordered quantity
// and the agreed unit price. Items belong to exactly one order and reference
// the product by id.
//
// Business rules:
//   - Quantity must be greater than zero
//   - Unit price must not be negative
//   - The line total is always quantity times unit price
type Item struct {
	// id uniquely identifies the line item
	id kernel.UUID
	// productID references the ordered product
	productID kernel.UUID
	// quantity is the ordered amount (must be positive)
	quantity int
	// unitPrice is the agreed price per unit (must not be negative)
	unitPrice decimal.Decimal
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new order line item.
//
// Parameters:
//   - id: Unique identifier of the line (must be a valid UUID)
//   - productID: Identifier of the ordered product (must be a valid UUID)
//   - quantity: Ordered amount (must be positive)
//   - unitPrice: Price per unit (must not be negative)
//
// Returns the item or an aggregated validation error.
func NewItem(id, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item was properly constructed using NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the unique identifier of the line item.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the ordered product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered amount.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the agreed price per unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Total returns the line total: quantity times unit price.
func (i *Item) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// setID validates and sets the line identifier.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setProductID validates and sets the product reference.
func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	i.productID = productID
	return nil
}

// setQuantity validates and sets the ordered amount.
func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the price per unit.
func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
