// Package order provides domain entities and business logic for customer
// order management in the warehouse system. It implements the Order aggregate
// root with its line items and derived classification.
//
// The package includes:
//   - Order: The aggregate root holding the order header and its line items
//   - Item: A line item referencing a product with quantity and unit price
//   - Status: A derived classification of an order (Overdue, Invoiced, Urgent, InProgress)
//
// Key business rules:
//   - Orders must have a valid unique identifier, a number and both dates
//   - The delivery date may not precede the order date
//   - Counteragent and warehouse are referenced by INN and GLN respectively
//   - Line items require a positive quantity and a non-negative unit price
//   - Status is never stored; it is derived from the delivery date and the
//     existence of an invoice, with precedence Overdue > Invoiced > Urgent > InProgress
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
