package queries

import (
	"context"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderBoardQueryHandler builds the order board from the database:
// order headers joined with counterparty and warehouse names, item totals
// and invoice existence. Classification is derived in memory from the
// delivery date and the invoice flag.
type GetOrderBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBoardQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetOrderBoardQueryHandler(db *gorm.DB) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{db: db}
}

// Handle executes the query and returns the board rows sorted by delivery
// date, the most pressing orders first.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) ([]GetOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetOrderBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.order_date,
			o.delivery_date,
			c.name,
			w.address,
			COUNT(i.id),
			COALESCE(SUM(i.quantity), 0),
			COALESCE(SUM(i.quantity * i.unit_price), 0),
			(inv.id IS NOT NULL)
		FROM orders o
		JOIN counteragents c ON c.inn = o.counteragent_inn AND c.is_deleted = false
		JOIN warehouses w ON w.gln = o.warehouse_gln AND w.is_deleted = false
		LEFT JOIN order_items i ON i.order_id = o.id AND i.is_deleted = false
		LEFT JOIN invoices inv ON inv.order_id = o.id AND inv.is_deleted = false
		WHERE o.is_deleted = false
		GROUP BY o.id, o.number, o.order_date, o.delivery_date, c.name, w.address, inv.id
		ORDER BY o.delivery_date, o.number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOrderBoardQueryResponse
		var id uuid.UUID
		var orderDate, deliveryDate time.Time
		var totalAmount decimal.Decimal

		err = rows.Scan(
			&id,
			&row.Number,
			&orderDate,
			&deliveryDate,
			&row.CounteragentName,
			&row.WarehouseAddress,
			&row.ItemsCount,
			&row.TotalQuantity,
			&totalAmount,
			&row.HasInvoice,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		row.ID = orderID
		row.OrderDate = orderDate
		row.DeliveryDate = deliveryDate
		row.TotalAmount = totalAmount
		row.Status = order.DeriveStatus(deliveryDate, query.AsOf(), row.HasInvoice)
		row.DaysToDelivery = daysUntil(query.AsOf(), deliveryDate)
		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}

// daysUntil returns the number of whole calendar days from one date to
// another, negative when the target date has passed.
func daysUntil(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
