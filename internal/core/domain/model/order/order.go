package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// maxNumberLength is the maximum length of an order number in characters.
const maxNumberLength = 50

// Domain errors for order operations.
var (
	// ErrNumberIsRequired is returned when attempting to create an order without a number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrOrderDateIsRequired is returned when the order date is missing.
	ErrOrderDateIsRequired = errs.NewValueIsRequiredError("order date")
	// ErrDeliveryDateIsRequired is returned when the delivery date is missing.
	ErrDeliveryDateIsRequired = errs.NewValueIsRequiredError("delivery date")
	// ErrItemsAreRequired is returned when attempting to create an order without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrDuplicateItem is returned when adding a line item with an id already present.
	ErrDuplicateItem = errors.New("order already contains an item with this id")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order. It holds the order
// header and the line items, references the counterparty by INN and the
// destination warehouse by GLN, and derives its totals and classification
// on demand.
//
// The aggregate enforces:
//   - A non-empty number of at most 50 characters
//   - Both dates present, with the delivery date not before the order date
//   - Valid counterparty and warehouse references
//   - At least one line item, with unique item identifiers
type Order struct {
	// id uniquely identifies the order
	id kernel.UUID
	// number is the human-facing order number
	number string
	// orderDate is the date the order was placed
	orderDate time.Time
	// deliveryDate is the agreed delivery date
	deliveryDate time.Time
	// counteragentINN references the ordering counterparty
	counteragentINN kernel.INN
	// warehouseGLN references the destination warehouse
	warehouseGLN kernel.GLN
	// items are the order lines
	items []*Item
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with the given header fields and line items.
//
// Parameters:
//   - id: Unique identifier of the order (must be a valid UUID)
//   - number: Human-facing order number (non-empty, at most 50 characters)
//   - orderDate: Date the order was placed (must not be zero)
//   - deliveryDate: Agreed delivery date (must not precede the order date)
//   - counteragentINN: Tax identifier of the ordering counterparty
//   - warehouseGLN: Location number of the destination warehouse
//   - items: Order lines (at least one, unique identifiers)
//
// All validations run; errors are aggregated into a single error.
func NewOrder(
	id kernel.UUID,
	number string,
	orderDate time.Time,
	deliveryDate time.Time,
	counteragentINN kernel.INN,
	warehouseGLN kernel.GLN,
	items []*Item,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDates(orderDate, deliveryDate),
		o.setCounteragentINN(counteragentINN),
		o.setWarehouseGLN(warehouseGLN),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// It applies the same validations as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	number string,
	orderDate time.Time,
	deliveryDate time.Time,
	counteragentINN kernel.INN,
	warehouseGLN kernel.GLN,
	items []*Item,
) (*Order, error) {
	return NewOrder(id, number, orderDate, deliveryDate, counteragentINN, warehouseGLN, items)
}

// Validate checks if the Order was properly constructed using NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the unique identifier of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns the agreed delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// CounteragentINN returns the tax identifier of the ordering counterparty.
func (o *Order) CounteragentINN() kernel.INN {
	return o.counteragentINN
}

// WarehouseGLN returns the location number of the destination warehouse.
func (o *Order) WarehouseGLN() kernel.GLN {
	return o.warehouseGLN
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// AddItem appends a new line to the order. The item id must not collide
// with an existing line.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for _, existing := range o.items {
		if existing.IsEqual(item) {
			return ErrDuplicateItem
		}
	}

	o.items = append(o.items, item)
	return nil
}

// ItemsCount returns the number of lines in the order.
func (o *Order) ItemsCount() int {
	return len(o.items)
}

// TotalQuantity returns the sum of quantities across all lines.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// TotalAmount returns the sum of line totals across all lines.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// DaysToDelivery returns the number of whole calendar days from today
// until the delivery date, negative when the delivery date has passed.
func (o *Order) DaysToDelivery(today time.Time) int {
	return daysBetween(today, o.deliveryDate)
}

// Status derives the classification of the order for the given date.
// See DeriveStatus for the rules.
func (o *Order) Status(today time.Time, hasInvoice bool) Status {
	return DeriveStatus(o.deliveryDate, today, hasInvoice)
}

// setID validates and sets the order identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setNumber validates and sets the order number.
func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	if utf8.RuneCountInString(number) > maxNumberLength {
		return errs.NewValueIsOutOfRangeError("number", number, 1, maxNumberLength)
	}
	o.number = number
	return nil
}

// setDates validates and sets the order and delivery dates as a pair:
// the delivery date must not precede the order date.
func (o *Order) setDates(orderDate, deliveryDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}
	if daysBetween(orderDate, deliveryDate) < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery date",
			fmt.Errorf("%s is before the order date %s",
				deliveryDate.Format(time.DateOnly), orderDate.Format(time.DateOnly)))
	}
	o.orderDate = orderDate
	o.deliveryDate = deliveryDate
	return nil
}

// setCounteragentINN validates and sets the counterparty reference.
func (o *Order) setCounteragentINN(inn kernel.INN) error {
	if err := inn.Validate(); err != nil {
		return err
	}
	o.counteragentINN = inn
	return nil
}

// setWarehouseGLN validates and sets the warehouse reference.
func (o *Order) setWarehouseGLN(gln kernel.GLN) error {
	if err := gln.Validate(); err != nil {
		return err
	}
	o.warehouseGLN = gln
	return nil
}

// setItems validates and sets the order lines.
func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ID()]; ok {
			return ErrDuplicateItem
		}
		seen[item.ID()] = struct{}{}
	}

	o.items = items
	return nil
}
