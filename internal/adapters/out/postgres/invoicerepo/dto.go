// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. A unique index on the order reference backs the
// at-most-one-invoice-per-order rule.
package invoicerepo

import (
	"time"

	"tehnoplast/internal/core/domain/model/invoice"
	"tehnoplast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string    `gorm:"type:varchar(50);not null"`
	IssueDate       time.Time `gorm:"not null"`
	OrderID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CounteragentINN string    `gorm:"type:varchar(12);index;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
	IsDeleted       bool      `gorm:"default:false;index"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		IssueDate:       aggregate.IssueDate(),
		OrderID:         aggregate.OrderID().Bytes(),
		CounteragentINN: aggregate.CounteragentINN().String(),
	}
}

// toDomain converts a database row to an invoice domain aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	inn, err := kernel.NewINN(dto.CounteragentINN)
	if err != nil {
		return nil, err
	}

	return invoice.NewInvoice(id, dto.Number, dto.IssueDate, orderID, inn)
}
