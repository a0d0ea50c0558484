package queries

import (
	"context"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnpackedOrdersQueryHandler retrieves orders awaiting packing from the
// database: non-deleted orders that have line items but no pallets.
//
// Example:
//
//	handler := NewGetUnpackedOrdersQueryHandler(db)
//	query := NewGetUnpackedOrdersQuery()
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unpacked orders: %v", err)
//	    return err
//	}
type GetUnpackedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnpackedOrdersQueryHandler creates a handler for unpacked order queries.
// Requires a GORM database connection for query execution.
func NewGetUnpackedOrdersQueryHandler(db *gorm.DB) GetUnpackedOrdersQueryHandler {
	return GetUnpackedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unpacked orders.
// Results are sorted by delivery date so the most pressing orders pack first.
func (h GetUnpackedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnpackedOrdersQuery,
) ([]GetUnpackedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnpackedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.delivery_date,
			COUNT(i.id),
			COALESCE(SUM(i.quantity), 0)
		FROM orders o
		JOIN order_items i ON i.order_id = o.id AND i.is_deleted = false
		WHERE o.is_deleted = false
		  AND NOT EXISTS (
			SELECT 1 FROM pallets p
			WHERE p.order_id = o.id AND p.is_deleted = false
		  )
		GROUP BY o.id, o.number, o.delivery_date
		ORDER BY o.delivery_date, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnpackedOrdersQueryResponse
		var id uuid.UUID
		var deliveryDate time.Time

		err = rows.Scan(
			&id,
			&orderResp.Number,
			&deliveryDate,
			&orderResp.ItemsCount,
			&orderResp.TotalQuantity,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.DeliveryDate = deliveryDate
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
