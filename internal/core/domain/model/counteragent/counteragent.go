// Package counteragent provides the Counteragent aggregate: a counterparty
// (customer or supplier) of the plastics manufacturer, identified by its
// tax identifier (INN).
package counteragent

import (
	"errors"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"
)

// Domain errors for counteragent operations.
var (
	// ErrNameIsRequired is returned when attempting to create a counteragent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCounteragentIsNotConstructed is returned when using an improperly initialized Counteragent.
	ErrCounteragentIsNotConstructed = errors.New(
		"Counteragent must be created via NewCounteragent constructor")
)

// Counteragent represents a counterparty in the system. Its natural key is
// the tax identifier; orders and invoices reference counteragents by INN
// rather than holding object references.
type Counteragent struct {
	// inn is the tax identifier and natural key of the counterparty
	inn kernel.INN
	// name is the legal name of the counterparty
	name string
	// guard ensures the counteragent was properly constructed
	guard guard.ConstructorGuard
}

// NewCounteragent creates a new Counteragent with the given tax identifier and name.
// Both must be valid; errors are aggregated.
func NewCounteragent(inn kernel.INN, name string) (*Counteragent, error) {
	c := &Counteragent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setINN(inn),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Counteragent was properly constructed.
func (c *Counteragent) Validate() error {
	if c == nil {
		return ErrCounteragentIsNotConstructed
	}
	return c.guard.Validate(ErrCounteragentIsNotConstructed)
}

// IsEqual compares two counteragents by tax identifier.
func (c *Counteragent) IsEqual(other *Counteragent) bool {
	return other != nil && c.inn.IsEqual(other.inn)
}

// INN returns the tax identifier of the counterparty.
func (c *Counteragent) INN() kernel.INN {
	return c.inn
}

// Name returns the legal name of the counterparty.
func (c *Counteragent) Name() string {
	return c.name
}

// Rename changes the legal name of the counterparty.
func (c *Counteragent) Rename(name string) error {
	return c.setName(name)
}

// setINN validates and sets the tax identifier.
func (c *Counteragent) setINN(inn kernel.INN) error {
	if err := inn.Validate(); err != nil {
		return err
	}
	c.inn = inn
	return nil
}

// setName validates and sets the legal name.
func (c *Counteragent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
