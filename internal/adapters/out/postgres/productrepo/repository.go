package productrepo

import (
	"context"
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/core/ports"
	"tehnoplast/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// aggregateTracker is implemented by the unit of work to register loaded
// aggregates for identity tracking within a business transaction.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.ProductRepository = &GormProductRepository{}

// GormProductRepository persists catalog products in PostgreSQL.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormProductRepository creates a repository bound to the given database handle.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new catalog product.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists changes to an existing catalog product.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":             dto.Name,
			"internal_barcode": dto.InternalBarcode,
			"external_barcode": dto.ExternalBarcode,
			"internal_sku":     dto.InternalSKU,
			"external_sku":     dto.ExternalSKU,
			"product_group":    dto.ProductGroup,
			"coefficient":      dto.Coefficient,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a product by its unique identifier.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return r.getOne(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByIDs retrieves the products with the given identifiers, keyed by id.
// Identifiers absent from the catalog are simply missing from the result.
func (r *GormProductRepository) GetByIDs(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]*product.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_deleted = false", raw).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	catalog := make(map[kernel.UUID]*product.Product, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		catalog[aggregate.ID()] = aggregate
	}

	return catalog, nil
}

// GetByInternalSKU retrieves a product by its unique in-house SKU.
func (r *GormProductRepository) GetByInternalSKU(ctx context.Context, sku string) (*product.Product, error) {
	return r.getOne(ctx, "internal_sku = ?", sku, sku)
}

// GetByInternalBarcode retrieves a product by its unique in-house barcode.
func (r *GormProductRepository) GetByInternalBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	return r.getOne(ctx, "internal_barcode = ?", barcode, barcode)
}

// GetByExternalCode retrieves a product by a counterparty barcode or SKU.
// External codes are not unique across counterparties; the first match wins.
func (r *GormProductRepository) GetByExternalCode(ctx context.Context, code string) (*product.Product, error) {
	var dto ProductDTO

	err := r.db.WithContext(ctx).
		Where("(external_barcode = ? OR external_sku = ?) AND is_deleted = false", code, code).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", code)
		}
		return nil, err
	}

	return r.track(dto)
}

func (r *GormProductRepository) getOne(
	ctx context.Context, condition string, value any, key string,
) (*product.Product, error) {
	var dto ProductDTO

	err := r.db.WithContext(ctx).
		Where(condition, value).
		Where("is_deleted = false").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", key)
		}
		return nil, err
	}

	return r.track(dto)
}

func (r *GormProductRepository) track(dto ProductDTO) (*product.Product, error) {
	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}
