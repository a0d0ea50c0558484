package commands

import (
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/guard"
)

var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand represents a request to clear the deletion mark
// from a previously soft-deleted order.
type RestoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore the given order.
func NewRestoreOrderCommand(orderID kernel.UUID) (RestoreOrderCommand, error) {
	cmd := RestoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RestoreOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestoreOrderCommandIsNotConstructed if validation fails.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to restore.
func (c RestoreOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RestoreOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
