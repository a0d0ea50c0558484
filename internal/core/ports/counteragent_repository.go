package ports

import (
	"context"

	"tehnoplast/internal/core/domain/model/counteragent"
	"tehnoplast/internal/core/domain/model/kernel"
)

// CounteragentRepository defines the persistence contract for counterparties.
// Counteragents are keyed by their tax identifier.
type CounteragentRepository interface {
	// Add persists a new counteragent.
	Add(ctx context.Context, aggregate *counteragent.Counteragent) error

	// Update persists changes to an existing counteragent.
	Update(ctx context.Context, aggregate *counteragent.Counteragent) error

	// Get retrieves a counteragent by its tax identifier.
	Get(ctx context.Context, inn kernel.INN) (*counteragent.Counteragent, error)
}
