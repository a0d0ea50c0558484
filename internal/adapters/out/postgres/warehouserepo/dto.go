// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence. Warehouses are keyed by their Global Location Number.
package warehouserepo

import (
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/warehouse"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	GLN       string    `gorm:"type:varchar(13);primaryKey"`
	Address   string    `gorm:"not null"`
	Region    string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	IsDeleted bool      `gorm:"default:false;index"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		GLN:     aggregate.GLN().String(),
		Address: aggregate.Address(),
		Region:  aggregate.Region(),
	}
}

// toDomain converts a database row to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	gln, err := kernel.NewGLN(dto.GLN)
	if err != nil {
		return nil, err
	}

	return warehouse.NewWarehouse(gln, dto.Address, dto.Region)
}
