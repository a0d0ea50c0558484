// Package palletrepo provides data transfer objects and mapping functions for pallet persistence.
// A pallet plan is stored as pallet rows plus one row per packed line; the
// line annotations (coefficient, group, price) are resolved on read from
// the catalog and the order lines.
package palletrepo

import (
	"time"

	"tehnoplast/internal/core/domain/model/pallet"

	"github.com/google/uuid"
)

// PalletDTO represents the database structure for persisting pallets.
// Capacity is stored with the row so a plan packed under an older
// configuration still reads back consistently.
type PalletDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Capacity  float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	IsDeleted bool      `gorm:"default:false;index"`
}

// TableName specifies the database table name for pallet entities.
func (PalletDTO) TableName() string {
	return "pallets"
}

// PalletItemDTO represents one packed line of a pallet. Only the reference
// to the order line and the quantity are persisted.
type PalletItemDTO struct {
	PalletID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity    int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for pallet line entities.
func (PalletItemDTO) TableName() string {
	return "pallet_items"
}

// fromDomain converts a pallet domain aggregate to its database representation.
func fromDomain(aggregate *pallet.Pallet) (PalletDTO, []PalletItemDTO) {
	dto := PalletDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		Capacity: aggregate.Capacity(),
	}

	items := make([]PalletItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, PalletItemDTO{
			PalletID:    aggregate.ID().Bytes(),
			OrderItemID: item.OrderItemID().Bytes(),
			Quantity:    item.Quantity(),
		})
	}

	return dto, items
}
