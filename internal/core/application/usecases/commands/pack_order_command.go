package commands

import (
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/guard"
)

var ErrPackOrderCommandIsNotConstructed = errors.New(
	"PackOrderCommand must be created via NewPackOrderCommand constructor",
)

// PackOrderCommand represents a request to distribute the items of an
// order onto pallets and persist the resulting plan.
//
// Example:
//
//	cmd, err := NewPackOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPackOrderCommandHandler(uowFactory, packer)
//	plan, err := handler.Handle(ctx, cmd)
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a command to pack the given order.
// Validates that the order id is a valid UUID.
func NewPackOrderCommand(orderID kernel.UUID) (PackOrderCommand, error) {
	cmd := PackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PackOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPackOrderCommandIsNotConstructed if validation fails.
func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pack.
func (c PackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PackOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
