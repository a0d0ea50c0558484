package counteragentrepo

import (
	"context"
	"errors"

	"tehnoplast/internal/core/domain/model/counteragent"
	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/ports"
	"tehnoplast/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.CounteragentRepository = &GormCounteragentRepository{}

// GormCounteragentRepository persists counterparties in PostgreSQL. The
// aggregate is keyed by its natural identifier, so no identity tracking
// applies.
type GormCounteragentRepository struct {
	db *gorm.DB
}

// NewGormCounteragentRepository creates a repository bound to the given database handle.
func NewGormCounteragentRepository(db *gorm.DB) *GormCounteragentRepository {
	return &GormCounteragentRepository{db: db}
}

// Add persists a new counteragent.
func (r *GormCounteragentRepository) Add(ctx context.Context, aggregate *counteragent.Counteragent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing counteragent.
func (r *GormCounteragentRepository) Update(ctx context.Context, aggregate *counteragent.Counteragent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&CounteragentDTO{}).
		Where("inn = ?", dto.INN).
		Update("name", dto.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("counteragent", dto.INN)
	}

	return nil
}

// Get retrieves a counteragent by its tax identifier.
func (r *GormCounteragentRepository) Get(ctx context.Context, inn kernel.INN) (*counteragent.Counteragent, error) {
	var dto CounteragentDTO

	err := r.db.WithContext(ctx).
		First(&dto, "inn = ? AND is_deleted = false", inn.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("counteragent", inn.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
