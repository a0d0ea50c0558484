package commands

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
	"tehnoplast/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the counterparty, warehouse and products before persisting the
// order, so an order never references unknown entities.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, "ORD-2026-001", orderDate, deliveryDate, inn, gln, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Resolves the counteragent by INN, the warehouse by GLN and every line's
// product; unresolved references fail the command. Uses a transaction to
// ensure the order with all its items is persisted or rolled back as one.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.CounteragentRepository().Get(ctx, cmd.CounteragentINN()); err != nil {
		return err
	}
	if _, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseGLN()); err != nil {
		return err
	}

	items, err := h.buildItems(ctx, uow, cmd.Lines())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.Number(), cmd.OrderDate(), cmd.DeliveryDate(),
		cmd.CounteragentINN(), cmd.WarehouseGLN(), items)
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildItems resolves every line's product and constructs the order items.
func (h *CreateOrderCommandHandler) buildItems(
	ctx context.Context, uow CreateOrderUoW, lines []OrderLine,
) ([]*order.Item, error) {
	productIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		if _, ok := products[line.ProductID]; !ok {
			return nil, errs.NewObjectNotFoundError("productID", line.ProductID)
		}

		item, err := order.NewItem(kernel.NewUUID(), line.ProductID, line.Quantity, line.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
