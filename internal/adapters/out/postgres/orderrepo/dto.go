// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order headers.
// Counterparty and warehouse are stored as natural keys (INN and GLN) and
// resolved against their own tables; line items live in order_items.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string    `gorm:"type:varchar(50);not null"`
	OrderDate       time.Time `gorm:"not null"`
	DeliveryDate    time.Time `gorm:"not null;index"`
	CounteragentINN string    `gorm:"type:varchar(12);index;not null"`
	WarehouseGLN    string    `gorm:"type:varchar(13);index;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
	IsDeleted       bool      `gorm:"default:false;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line of an order.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	IsDeleted bool            `gorm:"default:false;index"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation:
// the header row and one row per line item.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	header := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		OrderDate:       aggregate.OrderDate(),
		DeliveryDate:    aggregate.DeliveryDate(),
		CounteragentINN: aggregate.CounteragentINN().String(),
		WarehouseGLN:    aggregate.WarehouseGLN().String(),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return header, items
}

// toDomain converts database rows to an order domain aggregate.
// Reconstructs the complete aggregate with all line items using RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	inn, err := kernel.NewINN(dto.CounteragentINN)
	if err != nil {
		return nil, err
	}

	gln, err := kernel.NewGLN(dto.WarehouseGLN)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(itemID, productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, dto.Number, dto.OrderDate, dto.DeliveryDate, inn, gln, items)
}
