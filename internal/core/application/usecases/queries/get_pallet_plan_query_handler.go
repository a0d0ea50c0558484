package queries

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/pallet"
	"tehnoplast/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPalletPlanQueryHandler reads the persisted pallet plan of an order
// and rebuilds the pallet projections. Line annotations (coefficient,
// group, unit price) are resolved by joining the catalog and the order
// lines, since only (pallet, order item, quantity) is persisted. Each
// pallet is rebuilt against the capacity it was packed under, so plans
// from older capacity configurations still read back.
type GetPalletPlanQueryHandler struct {
	db *gorm.DB
}

// NewGetPalletPlanQueryHandler creates a handler for pallet plan queries.
// Requires a GORM database connection for query execution.
func NewGetPalletPlanQueryHandler(db *gorm.DB) GetPalletPlanQueryHandler {
	return GetPalletPlanQueryHandler{db: db}
}

// Handle executes the query and returns the plan view with positional
// pallet numbers in creation order. An order without pallets yields an
// empty plan, not an error.
func (h GetPalletPlanQueryHandler) Handle(
	ctx context.Context,
	query GetPalletPlanQuery,
) (*GetPalletPlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.capacity,
			pi.order_item_id,
			pi.quantity,
			pr.coefficient,
			pr.product_group,
			pr.name,
			i.unit_price
		FROM pallets p
		JOIN pallet_items pi ON pi.pallet_id = p.id
		JOIN order_items i ON i.id = pi.order_item_id
		JOIN products pr ON pr.id = i.product_id
		WHERE p.order_id = ? AND p.is_deleted = false
		ORDER BY p.created_at, p.id, pr.name
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var palletOrder []kernel.UUID
	lines := make(map[kernel.UUID][]PalletItemView)
	capacities := make(map[kernel.UUID]float64)

	for rows.Next() {
		var palletID, orderItemID uuid.UUID
		var capacity float64
		var line PalletItemView
		var group int

		err = rows.Scan(
			&palletID,
			&capacity,
			&orderItemID,
			&line.Quantity,
			&line.Coefficient,
			&group,
			&line.ProductName,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		pid, idErr := kernel.UUIDFromBytes(palletID[:])
		if idErr != nil {
			return nil, idErr
		}
		oid, idErr := kernel.UUIDFromBytes(orderItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		line.OrderItemID = oid
		line.Group = product.Group(group)
		line.LineValue = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))

		if _, seen := lines[pid]; !seen {
			palletOrder = append(palletOrder, pid)
			capacities[pid] = capacity
		}
		lines[pid] = append(lines[pid], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	resp := &GetPalletPlanQueryResponse{
		OrderID: query.OrderID(),
		Pallets: make([]PalletView, 0, len(palletOrder)),
	}

	for number, pid := range palletOrder {
		view, buildErr := buildPalletView(
			number+1, pid, query.OrderID(), capacities[pid], lines[pid])
		if buildErr != nil {
			return nil, buildErr
		}
		resp.Pallets = append(resp.Pallets, view)
	}

	return resp, nil
}

// buildPalletView rebuilds the pallet aggregate from its lines to reuse
// the domain projections, then flattens it into the view. The persisted
// capacity is used so the fill figures match the plan as packed.
func buildPalletView(
	number int, palletID, orderID kernel.UUID, capacity float64, views []PalletItemView,
) (PalletView, error) {
	items := make([]*pallet.Item, 0, len(views))
	for _, view := range views {
		item, err := pallet.NewItem(
			view.OrderItemID, view.Quantity, view.Coefficient, view.Group, view.UnitPrice)
		if err != nil {
			return PalletView{}, err
		}
		items = append(items, item)
	}

	aggregate, err := pallet.RestorePallet(palletID, orderID, capacity, items)
	if err != nil {
		return PalletView{}, err
	}

	return PalletView{
		Number:         number,
		ID:             palletID,
		FillPercentage: aggregate.FillPercentage(),
		FillStatus:     aggregate.FillStatus(),
		ItemsCount:     aggregate.ItemsCount(),
		TotalQuantity:  aggregate.TotalQuantity(),
		TotalValue:     aggregate.TotalValue(),
		ProductGroups:  aggregate.ProductGroups(),
		HasMixedGroups: aggregate.HasMixedGroups(),
		Items:          views,
	}, nil
}
