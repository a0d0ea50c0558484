package pallet

import (
	"errors"
	"fmt"
	"math"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for pallet operations.
var (
	// ErrCapacityExceeded is returned when storing a line would exceed the pallet capacity.
	ErrCapacityExceeded = errors.New("pallet capacity exceeded")
	// ErrPalletIsNotConstructed is returned when using an improperly initialized Pallet.
	ErrPalletIsNotConstructed = errors.New("Pallet must be created via NewPallet constructor")
)

// Pallet is the aggregate root for a packed pallet. A pallet belongs to
// exactly one order and holds packed lines. The capacity invariant holds
// at all times: the sum of quantity times coefficient over all lines never
// exceeds the capacity.
//
// Projections (fill percentage, groups, value) are derived from the line
// annotations and are never stored.
type Pallet struct {
	// id uniquely identifies the pallet
	id kernel.UUID
	// orderID references the order this pallet was packed for
	orderID kernel.UUID
	// capacity is the total capacity of the pallet in coefficient units
	capacity float64
	// items are the packed lines
	items []*Item
	// guard ensures the pallet was properly constructed
	guard guard.ConstructorGuard
}

// NewPallet creates a new empty Pallet for the given order.
//
// Parameters:
//   - id: Unique identifier of the pallet (must be a valid UUID)
//   - orderID: Identifier of the order being packed (must be a valid UUID)
//   - capacity: Total capacity in coefficient units (must be positive)
func NewPallet(id, orderID kernel.UUID, capacity float64) (*Pallet, error) {
	p := &Pallet{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePallet reconstructs a Pallet with its lines from persistent storage.
// The lines are stored one by one, so the capacity invariant is re-checked.
func RestorePallet(id, orderID kernel.UUID, capacity float64, items []*Item) (*Pallet, error) {
	p, err := NewPallet(id, orderID, capacity)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := p.Store(item); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate checks if the Pallet was properly constructed using NewPallet.
func (p *Pallet) Validate() error {
	if p == nil {
		return ErrPalletIsNotConstructed
	}
	return p.guard.Validate(ErrPalletIsNotConstructed)
}

// IsEqual compares two pallets by their unique identifiers.
func (p *Pallet) IsEqual(other *Pallet) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the unique identifier of the pallet.
func (p *Pallet) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this pallet was packed for.
func (p *Pallet) OrderID() kernel.UUID {
	return p.orderID
}

// Capacity returns the total capacity of the pallet.
func (p *Pallet) Capacity() float64 {
	return p.capacity
}

// Items returns the packed lines.
func (p *Pallet) Items() []*Item {
	return p.items
}

// Store places a packed line on the pallet. Storing a line for an order
// item already on the pallet merges the quantities into one line. The
// capacity invariant is enforced: the call fails with ErrCapacityExceeded
// when the line does not fit.
func (p *Pallet) Store(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if item.Occupied() > p.Residual() {
		return fmt.Errorf("%w: %g does not fit into residual %g",
			ErrCapacityExceeded, item.Occupied(), p.Residual())
	}

	for _, existing := range p.items {
		if existing.orderItemID.IsEqual(item.orderItemID) {
			existing.merge(item.quantity)
			return nil
		}
	}

	p.items = append(p.items, item)
	return nil
}

// CanStore reports whether a line of the given quantity and coefficient
// would fit into the remaining capacity.
func (p *Pallet) CanStore(quantity int, coefficient float64) bool {
	return float64(quantity)*coefficient <= p.Residual()
}

// Occupied returns the capacity taken by all lines.
func (p *Pallet) Occupied() float64 {
	occupied := 0.0
	for _, item := range p.items {
		occupied += item.Occupied()
	}
	return occupied
}

// Residual returns the remaining capacity of the pallet.
func (p *Pallet) Residual() float64 {
	return p.capacity - p.Occupied()
}

// IsEmpty reports whether the pallet holds no lines.
func (p *Pallet) IsEmpty() bool {
	return len(p.items) == 0
}

// ItemsCount returns the number of distinct lines on the pallet.
func (p *Pallet) ItemsCount() int {
	return len(p.items)
}

// TotalQuantity returns the sum of quantities across all lines.
func (p *Pallet) TotalQuantity() int {
	total := 0
	for _, item := range p.items {
		total += item.Quantity()
	}
	return total
}

// TotalValue returns the monetary value of all lines.
func (p *Pallet) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.items {
		total = total.Add(item.Value())
	}
	return total
}

// FillPercentage returns how full the pallet is, capped at 100.
func (p *Pallet) FillPercentage() float64 {
	if p.capacity <= 0 {
		return 0
	}
	return math.Min(100, p.Occupied()/p.capacity*100)
}

// FillStatus returns the derived fill label of the pallet.
func (p *Pallet) FillStatus() FillStatus {
	return deriveFillStatus(p.FillPercentage())
}

// ProductGroups returns the distinct product groups present on the pallet,
// in the canonical group order.
func (p *Pallet) ProductGroups() []product.Group {
	present := make(map[product.Group]bool, len(p.items))
	for _, item := range p.items {
		present[item.Group()] = true
	}

	groups := make([]product.Group, 0, len(present))
	for _, group := range product.AllGroups() {
		if present[group] {
			groups = append(groups, group)
		}
	}
	return groups
}

// HasMixedGroups reports whether the pallet holds more than one product group.
func (p *Pallet) HasMixedGroups() bool {
	return len(p.ProductGroups()) > 1
}

// PrimaryGroup returns the group occupying the most capacity on the pallet,
// ties resolved by the canonical group order. Returns GroupUnknown for an
// empty pallet.
func (p *Pallet) PrimaryGroup() product.Group {
	occupied := make(map[product.Group]float64, len(p.items))
	for _, item := range p.items {
		occupied[item.Group()] += item.Occupied()
	}

	primary := product.GroupUnknown
	best := 0.0
	for _, group := range product.AllGroups() {
		if taken, ok := occupied[group]; ok && taken > best {
			primary = group
			best = taken
		}
	}
	return primary
}

// setID validates and sets the pallet identifier.
func (p *Pallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setOrderID validates and sets the order reference.
func (p *Pallet) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	p.orderID = orderID
	return nil
}

// setCapacity validates and sets the total capacity.
func (p *Pallet) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%g is not greater than 0", capacity))
	}
	p.capacity = capacity
	return nil
}
