package orderrepo

import (
	"context"
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
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

var _ ports.OrderRepository = &GormOrderRepository{}

// GormOrderRepository persists order aggregates in PostgreSQL. The header
// and its lines are written together; reads skip soft-deleted rows.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates a repository bound to the given database
// handle. When created by a unit of work the handle is the active
// transaction, so all writes share its boundary.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new order aggregate with all its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, items := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&header).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the order header and replaces its lines. Lines are
// replaced wholesale since the aggregate owns them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, items := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", header.ID).
		Updates(map[string]any{
			"number":           header.Number,
			"order_date":       header.OrderDate,
			"delivery_date":    header.DeliveryDate,
			"counteragent_inn": header.CounteragentINN,
			"warehouse_gln":    header.WarehouseGLN,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	err := r.db.WithContext(ctx).
		Where("order_id = ?", header.ID).
		Delete(&OrderItemDTO{}).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

// Get retrieves an order aggregate by its identifier. Soft-deleted orders
// are treated as absent.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto OrderDTO

	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND is_deleted = false", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	aggregate, err := toDomain(dto, items)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetByNumber retrieves an order aggregate by its business number.
// Soft-deleted orders are treated as absent.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	var dto OrderDTO

	err := r.db.WithContext(ctx).
		First(&dto, "number = ? AND is_deleted = false", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	aggregate, err := toDomain(dto, items)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetUnpacked retrieves all live orders that have no pallet plan yet,
// earliest delivery date first.
func (r *GormOrderRepository) GetUnpacked(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO

	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		Where("NOT EXISTS (SELECT 1 FROM pallets p WHERE p.order_id = orders.id AND p.is_deleted = false)").
		Order("delivery_date, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		items, loadErr := r.loadItems(ctx, dto.ID)
		if loadErr != nil {
			return nil, loadErr
		}

		aggregate, mapErr := toDomain(dto, items)
		if mapErr != nil {
			return nil, mapErr
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// SoftDelete marks an order and its lines as deleted without removing the
// rows, so the order can later be restored.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND is_deleted = false", id.Bytes()).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Where("order_id = ?", id.Bytes()).
		Update("is_deleted", true).Error
}

// Restore clears the deletion mark of an order and its lines. Restoring
// an order that is not deleted is a no-op.
func (r *GormOrderRepository) Restore(ctx context.Context, id kernel.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("is_deleted", false).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Where("order_id = ?", id.Bytes()).
		Update("is_deleted", false).Error
}

func (r *GormOrderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemDTO, error) {
	var items []OrderItemDTO

	err := r.db.WithContext(ctx).
		Where("order_id = ? AND is_deleted = false", orderID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
