// Package pallet provides the Pallet aggregate: a physical pallet packed
// with order items for shipment. Pallets belong to exactly one order and
// hold lines referencing order items with a packed quantity.
//
// The package includes:
//   - Pallet: The aggregate root with capacity accounting and fill projections
//   - Item: A packed line with in-memory product annotations
//   - FillStatus: A derived label describing how full a pallet is
//
// Key business rules:
//   - The sum of quantity times coefficient over all lines never exceeds capacity
//   - Storing the same order item again merges into the existing line
//   - Annotations (coefficient, group, unit price) are carried in memory only;
//     the persistence layer resolves them from the catalog on load
package pallet
