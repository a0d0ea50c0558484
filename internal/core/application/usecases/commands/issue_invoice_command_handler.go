package commands

import (
	"context"
	"errors"

	"tehnoplast/internal/core/domain/model/invoice"
)

// ErrInvoiceAlreadyIssued is returned when the order already has an invoice.
var ErrInvoiceAlreadyIssued = errors.New("order already has an invoice")

// IssueInvoiceCommandHandler handles the business logic for issuing an
// invoice. The order must exist and must not have an invoice yet; the
// invoice inherits the counterparty from the order.
type IssueInvoiceCommandHandler struct {
	uowFactory IssueInvoiceUoWFactory
}

// NewIssueInvoiceCommandHandler creates a handler for invoice issuing.
// Requires an IssueInvoiceUoWFactory for transactional persistence.
func NewIssueInvoiceCommandHandler(uowFactory IssueInvoiceUoWFactory) IssueInvoiceCommandHandler {
	return IssueInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice issuing command.
// Returns ErrInvoiceAlreadyIssued when the order is already invoiced.
func (h *IssueInvoiceCommandHandler) Handle(ctx context.Context, cmd IssueInvoiceCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	issued, err := uow.InvoiceRepository().ExistsForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if issued {
		return ErrInvoiceAlreadyIssued
	}

	inv, err := invoice.NewInvoice(
		cmd.InvoiceID(), cmd.Number(), cmd.IssueDate(), aggregate.ID(), aggregate.CounteragentINN())
	if err != nil {
		return err
	}

	if err := uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
