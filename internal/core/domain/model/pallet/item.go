package pallet

import (
	"errors"
	"fmt"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPalletItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrPalletItemIsNotConstructed = errors.New("pallet Item must be created via NewItem constructor")

// Item is a packed line on a pallet: a reference to an order item and the
// quantity placed on this pallet. The coefficient, product group and unit
// price are denormalized annotations resolved from the catalog; they make
// the pallet's fill and value projections self-contained and are never
// persisted with the line.
type Item struct {
	// orderItemID references the packed order line
	orderItemID kernel.UUID
	// quantity is the amount packed on this pallet (must be positive)
	quantity int
	// coefficient is the capacity taken by one unit (annotation)
	coefficient float64
	// group is the product group of the packed item (annotation)
	group product.Group
	// unitPrice is the order line price per unit (annotation)
	unitPrice decimal.Decimal
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a packed line for the given order item.
//
// Parameters:
//   - orderItemID: Identifier of the packed order line (must be a valid UUID)
//   - quantity: Amount packed (must be positive)
//   - coefficient: Capacity taken by one unit (must be positive)
//   - group: Product group of the packed item (must be valid)
//   - unitPrice: Order line price per unit (must not be negative)
func NewItem(
	orderItemID kernel.UUID,
	quantity int,
	coefficient float64,
	group product.Group,
	unitPrice decimal.Decimal,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setOrderItemID(orderItemID),
		item.setQuantity(quantity),
		item.setCoefficient(coefficient),
		item.setGroup(group),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item was properly constructed using NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrPalletItemIsNotConstructed
	}
	return i.guard.Validate(ErrPalletItemIsNotConstructed)
}

// OrderItemID returns the identifier of the packed order line.
func (i *Item) OrderItemID() kernel.UUID {
	return i.orderItemID
}

// Quantity returns the amount packed on this pallet.
func (i *Item) Quantity() int {
	return i.quantity
}

// Coefficient returns the capacity taken by one unit.
func (i *Item) Coefficient() float64 {
	return i.coefficient
}

// Group returns the product group of the packed item.
func (i *Item) Group() product.Group {
	return i.group
}

// UnitPrice returns the order line price per unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Occupied returns the capacity taken by this line: quantity times coefficient.
func (i *Item) Occupied() float64 {
	return float64(i.quantity) * i.coefficient
}

// Value returns the monetary value of this line: quantity times unit price.
func (i *Item) Value() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// merge adds the quantity of another line for the same order item.
func (i *Item) merge(quantity int) {
	i.quantity += quantity
}

// setOrderItemID validates and sets the order line reference.
func (i *Item) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order item id", err)
	}
	i.orderItemID = orderItemID
	return nil
}

// setQuantity validates and sets the packed amount.
func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// setCoefficient validates and sets the per-unit capacity annotation.
func (i *Item) setCoefficient(coefficient float64) error {
	if coefficient <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("coefficient",
			fmt.Errorf("%g is not greater than 0", coefficient))
	}
	i.coefficient = coefficient
	return nil
}

// setGroup validates and sets the product group annotation.
func (i *Item) setGroup(group product.Group) error {
	if err := group.Validate(); err != nil {
		return err
	}
	i.group = group
	return nil
}

// setUnitPrice validates and sets the unit price annotation.
func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
