package commands

import (
	"errors"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/guard"
)

var (
	ErrIssueInvoiceCommandIsNotConstructed = errors.New(
		"IssueInvoiceCommand must be created via NewIssueInvoiceCommand constructor",
	)
	ErrInvoiceNumberIsRequired    = errors.New("invoice number is required")
	ErrInvoiceIssueDateIsRequired = errors.New("invoice issue date is required")
)

// IssueInvoiceCommand represents a request to issue an invoice for an
// order. At most one invoice may exist per order; the handler enforces
// this before writing.
type IssueInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	orderID   kernel.UUID
	number    string
	issueDate time.Time

	guard guard.ConstructorGuard
}

// NewIssueInvoiceCommand creates a command to issue an invoice.
// Validates both identifiers, the number and the issue date.
func NewIssueInvoiceCommand(
	invoiceID, orderID kernel.UUID, number string, issueDate time.Time,
) (IssueInvoiceCommand, error) {
	cmd := IssueInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setOrderID(orderID),
		cmd.setNumber(number),
		cmd.setIssueDate(issueDate),
	); err != nil {
		return IssueInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIssueInvoiceCommandIsNotConstructed if validation fails.
func (c IssueInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrIssueInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the unique identifier for the new invoice.
func (c IssueInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// OrderID returns the identifier of the invoiced order.
func (c IssueInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the human-facing invoice number.
func (c IssueInvoiceCommand) Number() string {
	return c.number
}

// IssueDate returns the date the invoice is issued.
func (c IssueInvoiceCommand) IssueDate() time.Time {
	return c.issueDate
}

func (c *IssueInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *IssueInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *IssueInvoiceCommand) setNumber(number string) error {
	if number == "" {
		return ErrInvoiceNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *IssueInvoiceCommand) setIssueDate(issueDate time.Time) error {
	if issueDate.IsZero() {
		return ErrInvoiceIssueDateIsRequired
	}

	c.issueDate = issueDate
	return nil
}
