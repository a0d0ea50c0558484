package invoicerepo

import (
	"context"
	"errors"

	"tehnoplast/internal/core/domain/model/invoice"
	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/ports"
	"tehnoplast/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker is implemented by the unit of work to register loaded
// aggregates for identity tracking within a business transaction.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.InvoiceRepository = &GormInvoiceRepository{}

// GormInvoiceRepository persists invoices in PostgreSQL.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormInvoiceRepository creates a repository bound to the given database handle.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new invoice. The unique index on the order reference
// rejects a second invoice for the same order at the database level.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
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

// Get retrieves an invoice by its unique identifier.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	var dto InvoiceDTO

	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND is_deleted = false", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return r.track(dto)
}

// GetByOrderID retrieves the invoice issued for the given order.
func (r *GormInvoiceRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error) {
	var dto InvoiceDTO

	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND is_deleted = false", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice for order", orderID.String())
		}
		return nil, err
	}

	return r.track(dto)
}

// ExistsForOrder reports whether an invoice was issued for the order.
func (r *GormInvoiceRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("order_id = ? AND is_deleted = false", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormInvoiceRepository) track(dto InvoiceDTO) (*invoice.Invoice, error) {
	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}
