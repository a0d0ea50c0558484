// Package product provides domain entities and business logic for the product
// catalog of the warehouse system. It implements the Product aggregate root and
// the material group classification used by the pallet packing rules.
//
// The package includes:
//   - Product: The aggregate root holding identification codes and packing attributes
//   - Group: A value object enumerating the material families (plastic, metal, HDPE)
//
// Key business rules:
//   - Products must have a valid unique identifier, a name, an internal barcode and SKU
//   - The packing coefficient must be positive; it expresses how many capacity-units
//     one item of the product occupies on a pallet
//   - Every product belongs to exactly one material group
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package product
