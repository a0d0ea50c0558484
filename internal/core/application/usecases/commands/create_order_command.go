package commands

import (
	"errors"
	"fmt"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("number is required")
	ErrOrderDatesAreRequired = errors.New("order date and delivery date are required")
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrLineQuantityIsInvalid = errors.New("line quantity must be greater than 0")
	ErrLinePriceIsInvalid    = errors.New("line unit price must not be negative")
)

// OrderLine is one requested line of a new order: the product and the
// quantity and price agreed with the counterparty.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to register a new customer order
// with its line items. The counterparty and warehouse are referenced by
// INN and GLN and resolved by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), "ORD-2026-001", orderDate, deliveryDate, inn, gln, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	number          string
	orderDate       time.Time
	deliveryDate    time.Time
	counteragentINN kernel.INN
	warehouseGLN    kernel.GLN
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, the number, the dates and every line.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number string,
	orderDate time.Time,
	deliveryDate time.Time,
	counteragentINN kernel.INN,
	warehouseGLN kernel.GLN,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNumber(number),
		cmd.setDates(orderDate, deliveryDate),
		cmd.setCounteragentINN(counteragentINN),
		cmd.setWarehouseGLN(warehouseGLN),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the human-facing order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// OrderDate returns the date the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// DeliveryDate returns the agreed delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// CounteragentINN returns the tax identifier of the ordering counterparty.
func (c CreateOrderCommand) CounteragentINN() kernel.INN {
	return c.counteragentINN
}

// WarehouseGLN returns the location number of the destination warehouse.
func (c CreateOrderCommand) WarehouseGLN() kernel.GLN {
	return c.warehouseGLN
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return ErrOrderNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setDates(orderDate, deliveryDate time.Time) error {
	if orderDate.IsZero() || deliveryDate.IsZero() {
		return ErrOrderDatesAreRequired
	}

	c.orderDate = orderDate
	c.deliveryDate = deliveryDate
	return nil
}

func (c *CreateOrderCommand) setCounteragentINN(inn kernel.INN) error {
	if err := inn.Validate(); err != nil {
		return err
	}

	c.counteragentINN = inn
	return nil
}

func (c *CreateOrderCommand) setWarehouseGLN(gln kernel.GLN) error {
	if err := gln.Validate(); err != nil {
		return err
	}

	c.warehouseGLN = gln
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("line %d: %w", i, ErrLineQuantityIsInvalid)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("line %d: %w", i, ErrLinePriceIsInvalid)
		}
	}

	c.lines = lines
	return nil
}
