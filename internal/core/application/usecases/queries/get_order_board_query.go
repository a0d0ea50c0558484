package queries

import (
	"errors"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
	"tehnoplast/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderBoardQueryIsNotConstructed = errors.New(
	"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
)

// GetOrderBoardQuery retrieves the order board: every non-deleted order
// with its derived totals and classification for a given reporting date.
//
// Example:
//
//	query, err := NewGetOrderBoardQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//
//	board, err := NewGetOrderBoardQueryHandler(db).Handle(ctx, query)
type GetOrderBoardQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery creates a query for the order board as of the
// given date. The date drives the Urgent/Overdue classification.
func NewGetOrderBoardQuery(asOf time.Time) (GetOrderBoardQuery, error) {
	if asOf.IsZero() {
		return GetOrderBoardQuery{}, errors.New("as-of date is required")
	}

	return GetOrderBoardQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

// AsOf returns the reporting date of the query.
func (q GetOrderBoardQuery) AsOf() time.Time {
	return q.asOf
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderBoardQueryIsNotConstructed if validation fails.
func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// GetOrderBoardQueryResponse represents one row of the order board.
// Status and days-to-delivery are derived, never read from storage.
type GetOrderBoardQueryResponse struct {
	ID               kernel.UUID
	Number           string
	OrderDate        time.Time
	DeliveryDate     time.Time
	CounteragentName string
	WarehouseAddress string
	ItemsCount       int
	TotalQuantity    int
	TotalAmount      decimal.Decimal
	HasInvoice       bool
	DaysToDelivery   int
	Status           order.Status
}
