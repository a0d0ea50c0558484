// Package warehouse provides the Warehouse aggregate: a delivery destination
// identified by its 13-digit Global Location Number (GLN).
package warehouse

import (
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"
)

// Domain errors for warehouse operations.
var (
	// ErrAddressIsRequired is returned when attempting to create a warehouse without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New(
		"Warehouse must be created via NewWarehouse constructor")
)

// Warehouse represents a delivery warehouse. Its natural key is the GLN;
// orders reference warehouses by GLN rather than holding object references.
type Warehouse struct {
	// gln is the Global Location Number and natural key of the warehouse
	gln kernel.GLN
	// address is the postal address of the warehouse
	address string
	// region is the administrative region the warehouse belongs to
	region string
	// guard ensures the warehouse was properly constructed
	guard guard.ConstructorGuard
}

// NewWarehouse creates a new Warehouse with the given location number,
// address and region. The region is optional; GLN and address must be valid.
func NewWarehouse(gln kernel.GLN, address, region string) (*Warehouse, error) {
	w := &Warehouse{
		region: region,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setGLN(gln),
		w.setAddress(address),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate checks if the Warehouse was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by location number.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.gln.IsEqual(other.gln)
}

// GLN returns the Global Location Number of the warehouse.
func (w *Warehouse) GLN() kernel.GLN {
	return w.gln
}

// Address returns the postal address of the warehouse.
func (w *Warehouse) Address() string {
	return w.address
}

// Region returns the administrative region of the warehouse.
func (w *Warehouse) Region() string {
	return w.region
}

// setGLN validates and sets the location number.
func (w *Warehouse) setGLN(gln kernel.GLN) error {
	if err := gln.Validate(); err != nil {
		return err
	}
	w.gln = gln
	return nil
}

// setAddress validates and sets the postal address.
func (w *Warehouse) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	w.address = address
	return nil
}
