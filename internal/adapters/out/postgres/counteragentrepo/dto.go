// Package counteragentrepo provides data transfer objects and mapping functions
// for counterparty persistence. Counteragents are keyed by their tax identifier.
package counteragentrepo

import (
	"time"

	"tehnoplast/internal/core/domain/model/counteragent"
	"tehnoplast/internal/core/domain/model/kernel"
)

// CounteragentDTO represents the database structure for persisting counterparties.
type CounteragentDTO struct {
	INN       string    `gorm:"type:varchar(12);primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	IsDeleted bool      `gorm:"default:false;index"`
}

// TableName specifies the database table name for counterparty entities.
func (CounteragentDTO) TableName() string {
	return "counteragents"
}

// fromDomain converts a counteragent domain aggregate to its database representation.
func fromDomain(aggregate *counteragent.Counteragent) CounteragentDTO {
	return CounteragentDTO{
		INN:  aggregate.INN().String(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database row to a counteragent domain aggregate.
func toDomain(dto CounteragentDTO) (*counteragent.Counteragent, error) {
	inn, err := kernel.NewINN(dto.INN)
	if err != nil {
		return nil, err
	}

	return counteragent.NewCounteragent(inn, dto.Name)
}
