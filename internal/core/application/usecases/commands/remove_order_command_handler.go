package commands

import (
	"context"
)

// RemoveOrderCommandHandler handles the business logic for soft-deleting
// an order. The order must exist and not be deleted already.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
// Requires an OrderUoWFactory for transactional persistence.
func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order removal command.
// Loading the order first ensures a not-found error for unknown or
// already deleted orders.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.SoftDelete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
