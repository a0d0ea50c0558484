package product

import (
	"errors"
	"fmt"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrInternalBarcodeIsRequired is returned when the internal barcode is missing.
	ErrInternalBarcodeIsRequired = errs.NewValueIsRequiredError("internal barcode")
	// ErrInternalSKUIsRequired is returned when the internal SKU is missing.
	ErrInternalSKUIsRequired = errs.NewValueIsRequiredError("internal SKU")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a catalog item of the plastics manufacturer.
// It is an aggregate root holding identification codes (barcodes and SKUs),
// the material group and the packing coefficient used by the pallet packer.
//
// Key responsibilities:
//   - Managing product identity (ID, name, internal/external codes)
//   - Carrying the packing coefficient (capacity-units per item on a pallet)
//   - Classifying the product into a material group
//
// Business rules:
//   - Product must have a valid UUID, non-empty name, internal barcode and internal SKU
//   - External barcode and SKU are optional (empty string when absent)
//   - The packing coefficient must be greater than zero
//   - The group must be one of the valid material families
//
// Example usage:
//
//	p, err := product.NewProduct(
//	    kernel.NewUUID(), "Bucket 10L", "4600000000017", "BKT-10",
//	    product.GroupPlastic, 2.5,
//	)
//	if err != nil {
//	    // Handle construction error
//	}
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the human-readable product name
	name string
	// internalBarcode is the unique in-house barcode
	internalBarcode string
	// externalBarcode is the optional barcode assigned by a counterparty
	externalBarcode string
	// internalSKU is the unique in-house stock keeping unit
	internalSKU string
	// externalSKU is the optional stock keeping unit assigned by a counterparty
	externalSKU string
	// group is the material family of the product
	group Group
	// coefficient expresses capacity-units per item on a pallet (must be positive)
	coefficient float64
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the required attributes.
// External codes default to empty and can be set with SetExternalCodes.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - internalBarcode: Unique in-house barcode (must be non-empty)
//   - internalSKU: Unique in-house SKU (must be non-empty)
//   - group: Material family (must be a valid group)
//   - coefficient: Capacity-units per item (must be positive)
//
// Returns:
//   - *Product: A fully initialized product
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewProduct(
	id kernel.UUID,
	name string,
	internalBarcode string,
	internalSKU string,
	group Group,
	coefficient float64,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setInternalBarcode(internalBarcode),
		p.setInternalSKU(internalSKU),
		p.setGroup(group),
		p.setCoefficient(coefficient),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage,
// including the optional external codes. Unlike NewProduct, a non-positive
// coefficient is tolerated: catalog rows predating the coefficient rule
// must still load, and HasValidCoefficient reports them to the packer.
func RestoreProduct(
	id kernel.UUID,
	name string,
	internalBarcode string,
	externalBarcode string,
	internalSKU string,
	externalSKU string,
	group Group,
	coefficient float64,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setInternalBarcode(internalBarcode),
		p.setInternalSKU(internalSKU),
		p.setGroup(group),
	); err != nil {
		return nil, err
	}

	p.coefficient = coefficient
	p.externalBarcode = externalBarcode
	p.externalSKU = externalSKU
	return p, nil
}

// Validate checks if the Product was properly constructed using the NewProduct constructor.
// The zero value of Product is invalid and will fail this validation.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the unique identifier of the product.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable product name.
func (p *Product) Name() string {
	return p.name
}

// InternalBarcode returns the unique in-house barcode.
func (p *Product) InternalBarcode() string {
	return p.internalBarcode
}

// ExternalBarcode returns the counterparty barcode, or empty when absent.
func (p *Product) ExternalBarcode() string {
	return p.externalBarcode
}

// InternalSKU returns the unique in-house stock keeping unit.
func (p *Product) InternalSKU() string {
	return p.internalSKU
}

// ExternalSKU returns the counterparty stock keeping unit, or empty when absent.
func (p *Product) ExternalSKU() string {
	return p.externalSKU
}

// Group returns the material family of the product.
func (p *Product) Group() Group {
	return p.group
}

// Coefficient returns the packing coefficient of the product:
// how many capacity-units one item occupies on a pallet.
func (p *Product) Coefficient() float64 {
	return p.coefficient
}

// HasValidCoefficient reports whether the packing coefficient allows the
// product to be placed on pallets at all.
func (p *Product) HasValidCoefficient() bool {
	return p.coefficient > 0
}

// SetExternalCodes assigns the optional counterparty barcode and SKU.
// Empty strings clear the codes.
func (p *Product) SetExternalCodes(barcode, sku string) {
	p.externalBarcode = barcode
	p.externalSKU = sku
}

// setID validates and sets the product's unique identifier.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the product name.
func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

// setInternalBarcode validates and sets the in-house barcode.
func (p *Product) setInternalBarcode(barcode string) error {
	if barcode == "" {
		return ErrInternalBarcodeIsRequired
	}
	p.internalBarcode = barcode
	return nil
}

// setInternalSKU validates and sets the in-house SKU.
func (p *Product) setInternalSKU(sku string) error {
	if sku == "" {
		return ErrInternalSKUIsRequired
	}
	p.internalSKU = sku
	return nil
}

// setGroup validates and sets the material group.
func (p *Product) setGroup(group Group) error {
	if err := group.Validate(); err != nil {
		return err
	}
	p.group = group
	return nil
}

// setCoefficient validates and sets the packing coefficient.
// The coefficient must be greater than zero.
func (p *Product) setCoefficient(coefficient float64) error {
	if coefficient <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("coefficient",
			fmt.Errorf("%v is not greater than 0", coefficient))
	}
	p.coefficient = coefficient
	return nil
}
