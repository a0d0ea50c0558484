package commands

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/services"
)

// PackOrderCommandHandler handles the business logic for packing an order.
// Loads the order and the referenced catalog products, runs the packer and
// atomically replaces the order's pallet plan.
//
// Fatal packer errors (missing product, invalid input) abort before any
// write, leaving the previously persisted plan untouched.
type PackOrderCommandHandler struct {
	uowFactory PackOrderUoWFactory
	packer     *services.Packer
}

// NewPackOrderCommandHandler creates a handler for packing operations.
// Requires a PackOrderUoWFactory for transactional persistence and a
// configured Packer.
func NewPackOrderCommandHandler(
	uowFactory PackOrderUoWFactory, packer *services.Packer,
) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
		packer:     packer,
	}
}

// Handle processes the packing command and returns the produced plan with
// its remainders. Re-packing an already packed order replaces the stored
// pallets; the replacement is atomic within the transaction.
func (h *PackOrderCommandHandler) Handle(
	ctx context.Context, cmd PackOrderCommand,
) (*services.PackingPlan, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	productIDs := make([]kernel.UUID, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		productIDs = append(productIDs, item.ProductID())
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	plan, err := h.packer.Pack(aggregate, products)
	if err != nil {
		return nil, err
	}

	if err := uow.PalletRepository().SavePackingPlan(ctx, aggregate.ID(), plan.Pallets); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return plan, nil
}
