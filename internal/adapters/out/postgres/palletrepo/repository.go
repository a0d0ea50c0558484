package palletrepo

import (
	"context"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/pallet"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// aggregateTracker is implemented by the unit of work to register loaded
// aggregates for identity tracking within a business transaction.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.PalletRepository = &GormPalletRepository{}

// GormPalletRepository persists pallet plans in PostgreSQL. A plan is
// always written and replaced as a whole for one order.
type GormPalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPalletRepository creates a repository bound to the given database handle.
func NewGormPalletRepository(db *gorm.DB, tracker aggregateTracker) *GormPalletRepository {
	return &GormPalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// SavePackingPlan replaces the pallets of the order with the given set.
// Runs inside the ambient transaction of the unit of work, so a failure
// leaves the previous plan intact. Empty pallets are skipped.
func (r *GormPalletRepository) SavePackingPlan(
	ctx context.Context, orderID kernel.UUID, pallets []*pallet.Pallet,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("pallet_id IN (SELECT id FROM pallets WHERE order_id = ?)", orderID.Bytes()).
		Delete(&PalletItemDTO{}).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&PalletDTO{}).Error
	if err != nil {
		return err
	}

	for _, aggregate := range pallets {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		if aggregate.IsEmpty() {
			continue
		}

		dto, items := fromDomain(aggregate)

		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}

	return nil
}

// GetByOrderID retrieves the pallets of the order in creation order. The
// line annotations are resolved by joining the order lines and the catalog,
// and the aggregates are rebuilt through the domain constructors so the
// capacity invariant is re-checked on the way out.
func (r *GormPalletRepository) GetByOrderID(
	ctx context.Context, orderID kernel.UUID,
) ([]*pallet.Pallet, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PalletDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND is_deleted = false", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return []*pallet.Pallet{}, nil
	}

	lines, err := r.loadAnnotatedLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	pallets := make([]*pallet.Pallet, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		aggregate, restoreErr := pallet.RestorePallet(id, orderID, dto.Capacity, lines[dto.ID])
		if restoreErr != nil {
			return nil, restoreErr
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		pallets = append(pallets, aggregate)
	}

	return pallets, nil
}

// ExistsForOrder reports whether the order has at least one live pallet.
func (r *GormPalletRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PalletDTO{}).
		Where("order_id = ? AND is_deleted = false", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// loadAnnotatedLines reads all packed lines of the order with their
// coefficient, group and price resolved, grouped by pallet.
func (r *GormPalletRepository) loadAnnotatedLines(
	ctx context.Context, orderID kernel.UUID,
) (map[uuid.UUID][]*pallet.Item, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			pi.pallet_id,
			pi.order_item_id,
			pi.quantity,
			pr.coefficient,
			pr.product_group,
			i.unit_price
		FROM pallet_items pi
		JOIN pallets p ON p.id = pi.pallet_id
		JOIN order_items i ON i.id = pi.order_item_id
		JOIN products pr ON pr.id = i.product_id
		WHERE p.order_id = ? AND p.is_deleted = false
		ORDER BY pi.order_item_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[uuid.UUID][]*pallet.Item)

	for rows.Next() {
		var palletID, orderItemID uuid.UUID
		var quantity int
		var coefficient float64
		var group int
		var unitPrice decimal.Decimal

		err = rows.Scan(&palletID, &orderItemID, &quantity, &coefficient, &group, &unitPrice)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(orderItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := pallet.NewItem(itemID, quantity, coefficient, product.Group(group), unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		lines[palletID] = append(lines[palletID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
