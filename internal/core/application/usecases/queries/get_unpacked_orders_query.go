// Package queries contains read operations of the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections
// straight from the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/guard"
)

var ErrGetUnpackedOrdersQueryIsNotConstructed = errors.New(
	"GetUnpackedOrdersQuery must be created via NewGetUnpackedOrdersQuery constructor",
)

// GetUnpackedOrdersQuery retrieves all orders that have line items but no
// pallets yet. The packing job uses it to find work.
//
// Example:
//
//	query := NewGetUnpackedOrdersQuery()
//	handler := NewGetUnpackedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unpacked orders: %w", err)
//	}
type GetUnpackedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnpackedOrdersQuery creates a query to retrieve unpacked orders.
// This is a parameterless query.
func NewGetUnpackedOrdersQuery() GetUnpackedOrdersQuery {
	return GetUnpackedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnpackedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnpackedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnpackedOrdersQueryIsNotConstructed)
}

// GetUnpackedOrdersQueryResponse represents one order awaiting packing.
type GetUnpackedOrdersQueryResponse struct {
	ID            kernel.UUID
	Number        string
	DeliveryDate  time.Time
	ItemsCount    int
	TotalQuantity int
}
