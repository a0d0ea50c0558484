// Package invoice provides the Invoice aggregate: a billing document issued
// for an order. An order has at most one invoice; the invoice references the
// order by id and the counterparty by tax identifier.
package invoice

import (
	"errors"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"
)

// Domain errors for invoice operations.
var (
	// ErrNumberIsRequired is returned when attempting to create an invoice without a number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrIssueDateIsRequired is returned when the issue date is missing.
	ErrIssueDateIsRequired = errs.NewValueIsRequiredError("issue date")
	// ErrInvoiceIsNotConstructed is returned when using an improperly initialized Invoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")
)

// Invoice represents a billing document tied to exactly one order.
// The at-most-one-invoice-per-order rule is enforced at the persistence
// boundary by the unique order reference.
type Invoice struct {
	// id uniquely identifies the invoice
	id kernel.UUID
	// number is the human-facing invoice number
	number string
	// issueDate is the date the invoice was issued
	issueDate time.Time
	// orderID references the invoiced order (unique per order)
	orderID kernel.UUID
	// counteragentINN references the billed counterparty
	counteragentINN kernel.INN
	// guard ensures the invoice was properly constructed
	guard guard.ConstructorGuard
}

// NewInvoice creates a new Invoice for the given order and counterparty.
// All parameters are validated; errors are aggregated.
func NewInvoice(
	id kernel.UUID,
	number string,
	issueDate time.Time,
	orderID kernel.UUID,
	counteragentINN kernel.INN,
) (*Invoice, error) {
	inv := &Invoice{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setNumber(number),
		inv.setIssueDate(issueDate),
		inv.setOrderID(orderID),
		inv.setCounteragentINN(counteragentINN),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate checks if the Invoice was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

// IsEqual compares two invoices by their unique identifiers.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the unique identifier of the invoice.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// Number returns the human-facing invoice number.
func (i *Invoice) Number() string {
	return i.number
}

// IssueDate returns the date the invoice was issued.
func (i *Invoice) IssueDate() time.Time {
	return i.issueDate
}

// OrderID returns the identifier of the invoiced order.
func (i *Invoice) OrderID() kernel.UUID {
	return i.orderID
}

// CounteragentINN returns the tax identifier of the billed counterparty.
func (i *Invoice) CounteragentINN() kernel.INN {
	return i.counteragentINN
}

// setID validates and sets the invoice identifier.
func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setNumber validates and sets the invoice number.
func (i *Invoice) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	i.number = number
	return nil
}

// setIssueDate validates and sets the issue date.
func (i *Invoice) setIssueDate(issueDate time.Time) error {
	if issueDate.IsZero() {
		return ErrIssueDateIsRequired
	}
	i.issueDate = issueDate
	return nil
}

// setOrderID validates and sets the order reference.
func (i *Invoice) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

// setCounteragentINN validates and sets the counterparty reference.
func (i *Invoice) setCounteragentINN(inn kernel.INN) error {
	if err := inn.Validate(); err != nil {
		return err
	}
	i.counteragentINN = inn
	return nil
}
