// Package productrepo provides data transfer objects and mapping functions for catalog persistence.
package productrepo

import (
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog items.
// The group column is named product_group to stay clear of the SQL keyword.
type ProductDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	InternalBarcode string    `gorm:"uniqueIndex;not null"`
	ExternalBarcode string    `gorm:"index"`
	InternalSKU     string    `gorm:"uniqueIndex;not null"`
	ExternalSKU     string    `gorm:"index"`
	ProductGroup    int       `gorm:"column:product_group;type:smallint;not null"`
	Coefficient     float64   `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
	IsDeleted       bool      `gorm:"default:false;index"`
}

// TableName specifies the database table name for catalog entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		InternalBarcode: aggregate.InternalBarcode(),
		ExternalBarcode: aggregate.ExternalBarcode(),
		InternalSKU:     aggregate.InternalSKU(),
		ExternalSKU:     aggregate.ExternalSKU(),
		ProductGroup:    int(aggregate.Group()),
		Coefficient:     aggregate.Coefficient(),
	}
}

// toDomain converts a database row to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.InternalBarcode,
		dto.ExternalBarcode,
		dto.InternalSKU,
		dto.ExternalSKU,
		product.Group(dto.ProductGroup),
		dto.Coefficient,
	)
}
