package warehouserepo

import (
	"context"
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/warehouse"
	"tehnoplast/internal/core/ports"
	"tehnoplast/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.WarehouseRepository = &GormWarehouseRepository{}

// GormWarehouseRepository persists warehouses in PostgreSQL. The aggregate
// is keyed by its natural identifier, so no identity tracking applies.
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a repository bound to the given database handle.
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// Add persists a new warehouse.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing warehouse.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("gln = ?", dto.GLN).
		Updates(map[string]any{
			"address": dto.Address,
			"region":  dto.Region,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("warehouse", dto.GLN)
	}

	return nil
}

// Get retrieves a warehouse by its location number.
func (r *GormWarehouseRepository) Get(ctx context.Context, gln kernel.GLN) (*warehouse.Warehouse, error) {
	var dto WarehouseDTO

	err := r.db.WithContext(ctx).
		First(&dto, "gln = ? AND is_deleted = false", gln.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", gln.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
