package queries

import (
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/pallet"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPalletPlanQueryIsNotConstructed = errors.New(
	"GetPalletPlanQuery must be created via NewGetPalletPlanQuery constructor",
)

// GetPalletPlanQuery retrieves the persisted pallet plan of one order,
// with fill projections resolved from the catalog.
//
// Example:
//
//	query, err := NewGetPalletPlanQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	plan, err := NewGetPalletPlanQueryHandler(db).Handle(ctx, query)
type GetPalletPlanQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPalletPlanQuery creates a query for the pallet plan of the given order.
func NewGetPalletPlanQuery(orderID kernel.UUID) (GetPalletPlanQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPalletPlanQuery{}, err
	}

	return GetPalletPlanQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the identifier of the order whose plan is requested.
func (q GetPalletPlanQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPalletPlanQueryIsNotConstructed if validation fails.
func (q GetPalletPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetPalletPlanQueryIsNotConstructed)
}

// PalletItemView represents one line of a pallet in the plan view.
type PalletItemView struct {
	OrderItemID kernel.UUID
	ProductName string
	Group       product.Group
	Quantity    int
	Coefficient float64
	UnitPrice   decimal.Decimal
	LineValue   decimal.Decimal
}

// PalletView represents one pallet of the plan with its derived
// projections. Number is positional within the plan, starting at 1.
type PalletView struct {
	Number         int
	ID             kernel.UUID
	FillPercentage float64
	FillStatus     pallet.FillStatus
	ItemsCount     int
	TotalQuantity  int
	TotalValue     decimal.Decimal
	ProductGroups  []product.Group
	HasMixedGroups bool
	Items          []PalletItemView
}

// GetPalletPlanQueryResponse is the full plan view of one order.
type GetPalletPlanQueryResponse struct {
	OrderID kernel.UUID
	Pallets []PalletView
}
