package commands

import (
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to soft-delete an order.
// The order's rows stay in storage with the deletion mark set; queries
// filter them out until the order is restored.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to soft-delete the given order.
func NewRemoveOrderCommand(orderID kernel.UUID) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrderCommandIsNotConstructed if validation fails.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
