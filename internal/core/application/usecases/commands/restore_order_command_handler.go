package commands

import (
	"context"
)

// RestoreOrderCommandHandler handles the business logic for restoring a
// soft-deleted order.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestoreOrderCommandHandler creates a handler for order restoration.
// Requires an OrderUoWFactory for transactional persistence.
func NewRestoreOrderCommandHandler(uowFactory OrderUoWFactory) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order restoration command.
// Restoring an order that was never deleted is a no-op.
func (h *RestoreOrderCommandHandler) Handle(ctx context.Context, cmd RestoreOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Restore(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
