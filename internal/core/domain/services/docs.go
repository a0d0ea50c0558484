// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the warehouse system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Packer: A domain service that distributes order items onto pallets
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
