package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
	"tehnoplast/internal/core/domain/model/pallet"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/pkg/errs"
	"tehnoplast/internal/pkg/guard"
)

// DefaultPalletCapacity is the pallet capacity used when no explicit
// configuration is supplied.
const DefaultPalletCapacity = 100.0

// Domain errors for packing operations.
var (
	// ErrProductNotFound is returned when an order item references a product
	// missing from the supplied catalog. This is fatal: no plan is produced.
	ErrProductNotFound = errors.New("product not found for order item")
	// ErrPackerIsNotConstructed is returned when using an improperly initialized Packer.
	ErrPackerIsNotConstructed = errors.New("Packer must be created via NewPacker constructor")
)

// RemainderReason explains why a quantity could not be placed on any pallet.
type RemainderReason string

const (
	// ReasonOversized marks items whose single-unit coefficient exceeds the pallet capacity.
	ReasonOversized RemainderReason = "OVERSIZED"
	// ReasonInvalidCoefficient marks items whose product has a non-positive coefficient.
	ReasonInvalidCoefficient RemainderReason = "INVALID_COEFFICIENT"
	// ReasonNoGroupSpace marks items whose product group is absent from the
	// configured group order.
	ReasonNoGroupSpace RemainderReason = "NO_GROUP_SPACE"
)

// Remainder is an unplaced portion of an order item together with the
// reason it could not be packed.
type Remainder struct {
	// OrderItemID references the order line that could not be fully packed
	OrderItemID kernel.UUID
	// Quantity is the unplaced amount
	Quantity int
	// Reason explains why the quantity was left off the pallets
	Reason RemainderReason
}

// PackingPlan is the result of packing one order: the pallets in creation
// order and the remainders that could not be placed. The plan never
// contains empty pallets.
type PackingPlan struct {
	// Pallets are the packed pallets in the order they were opened
	Pallets []*pallet.Pallet
	// Remainders are the unplaced portions of order items
	Remainders []Remainder
}

// PackedQuantity returns the total quantity of the given order item placed
// across all pallets of the plan.
func (p *PackingPlan) PackedQuantity(orderItemID kernel.UUID) int {
	total := 0
	for _, plt := range p.Pallets {
		for _, item := range plt.Items() {
			if item.OrderItemID().IsEqual(orderItemID) {
				total += item.Quantity()
			}
		}
	}
	return total
}

// RemainingQuantity returns the portion of the order line left off the pallets.
func (p *PackingPlan) RemainingQuantity(item *order.Item) int {
	return item.Quantity() - p.PackedQuantity(item.ID())
}

// IsFullyPacked reports whether the whole quantity of the order line was placed.
func (p *PackingPlan) IsFullyPacked(item *order.Item) bool {
	return p.RemainingQuantity(item) <= 0
}

// PackerConfig configures the packing algorithm.
type PackerConfig struct {
	// Capacity is the capacity of every pallet in coefficient units (must be positive)
	Capacity float64
	// AllowMixedGroups permits placing different product groups on one pallet
	AllowMixedGroups bool
	// GroupOrder is the sequence in which product groups are packed; groups
	// absent from the list are not packed at all
	GroupOrder []product.Group
}

// DefaultPackerConfig returns the standard configuration: capacity 100,
// no group mixing, all groups packed in canonical order.
func DefaultPackerConfig() PackerConfig {
	return PackerConfig{
		Capacity:         DefaultPalletCapacity,
		AllowMixedGroups: false,
		GroupOrder:       product.AllGroups(),
	}
}

// Validate checks the configuration: the capacity must be positive and
// every listed group must be a valid product group.
func (c PackerConfig) Validate() error {
	if c.Capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%g is not greater than 0", c.Capacity))
	}
	for _, group := range c.GroupOrder {
		if err := group.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Packer is a domain service that distributes the items of one order onto
// pallets.
//
// Algorithm:
//   - Items are classified first: a missing product aborts packing, a
//     non-positive coefficient, a single unit larger than a pallet, or a
//     group absent from the configured group order become remainders.
//   - Packable items are traversed deterministically: configured group
//     order, then quantity descending, then order item id ascending.
//   - For each item the newest pallet with room for at least one unit is
//     filled first (restricted to the item's group unless mixing is
//     allowed); when no pallet fits, a new one is opened.
//   - The capacity invariant holds on every pallet at all times.
//
// The same order and catalog always produce the same plan.
type Packer struct {
	config PackerConfig
	guard  guard.ConstructorGuard
}

// NewPacker creates a Packer with the given configuration.
// Returns a validation error for a non-positive capacity or invalid groups.
func NewPacker(config PackerConfig) (*Packer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Packer{
		config: config,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Config returns the configuration the packer was created with.
func (p *Packer) Config() PackerConfig {
	return p.config
}

// Pack distributes the items of the order onto pallets using the supplied
// product catalog, keyed by product id.
//
// Returns the packing plan, or an error when packing cannot proceed at
// all: an invalid order, an invalid order item, or an item referencing a
// product missing from the catalog. Fatal errors produce no plan.
func (p *Packer) Pack(
	o *order.Order, products map[kernel.UUID]*product.Product,
) (*PackingPlan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	packable, remainders, err := p.classify(o, products)
	if err != nil {
		return nil, err
	}

	pallets, err := p.distribute(o.ID(), packable)
	if err != nil {
		return nil, err
	}

	sort.Slice(remainders, func(i, j int) bool {
		return remainders[i].OrderItemID.String() < remainders[j].OrderItemID.String()
	})

	return &PackingPlan{Pallets: pallets, Remainders: remainders}, nil
}

// Validate checks if the Packer was properly constructed using NewPacker.
func (p *Packer) Validate() error {
	if p == nil {
		return ErrPackerIsNotConstructed
	}
	return p.guard.Validate(ErrPackerIsNotConstructed)
}

// candidate pairs an order item with its resolved product for packing.
type candidate struct {
	item    *order.Item
	product *product.Product
}

// classify resolves every order item against the catalog and splits the
// lines into packable candidates and immediate remainders. A missing
// product is fatal and aborts classification.
func (p *Packer) classify(
	o *order.Order, products map[kernel.UUID]*product.Product,
) ([]candidate, []Remainder, error) {
	groupPackable := make(map[product.Group]bool, len(p.config.GroupOrder))
	for _, group := range p.config.GroupOrder {
		groupPackable[group] = true
	}

	var packable []candidate
	var remainders []Remainder

	for _, item := range o.Items() {
		if err := item.Validate(); err != nil {
			return nil, nil, err
		}
		if item.Quantity() == 0 {
			continue
		}

		prd, ok := products[item.ProductID()]
		if !ok {
			return nil, nil, fmt.Errorf("%w: order item %s references product %s",
				ErrProductNotFound, item.ID(), item.ProductID())
		}

		switch {
		case !prd.HasValidCoefficient():
			remainders = append(remainders, Remainder{
				OrderItemID: item.ID(), Quantity: item.Quantity(), Reason: ReasonInvalidCoefficient})
		case prd.Coefficient() > p.config.Capacity:
			remainders = append(remainders, Remainder{
				OrderItemID: item.ID(), Quantity: item.Quantity(), Reason: ReasonOversized})
		case !groupPackable[prd.Group()]:
			remainders = append(remainders, Remainder{
				OrderItemID: item.ID(), Quantity: item.Quantity(), Reason: ReasonNoGroupSpace})
		default:
			packable = append(packable, candidate{item: item, product: prd})
		}
	}

	return packable, remainders, nil
}

// distribute places the packable candidates onto pallets: configured group
// order first, larger quantities first, order item id as the final tie
// breaker. The newest pallet with room for at least one unit wins; when
// none fits, a new pallet is opened.
func (p *Packer) distribute(orderID kernel.UUID, packable []candidate) ([]*pallet.Pallet, error) {
	var pallets []*pallet.Pallet

	for _, group := range p.config.GroupOrder {
		for _, c := range p.sortedGroupCandidates(group, packable) {
			if err := p.place(orderID, c, &pallets); err != nil {
				return nil, err
			}
		}
	}

	return pallets, nil
}

// sortedGroupCandidates filters the candidates of one group and orders
// them by quantity descending, then order item id ascending.
func (p *Packer) sortedGroupCandidates(group product.Group, packable []candidate) []candidate {
	var matched []candidate
	for _, c := range packable {
		if c.product.Group() == group {
			matched = append(matched, c)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].item.Quantity() != matched[j].item.Quantity() {
			return matched[i].item.Quantity() > matched[j].item.Quantity()
		}
		return matched[i].item.ID().String() < matched[j].item.ID().String()
	})

	return matched
}

// place distributes the full quantity of one candidate across existing and
// newly opened pallets.
func (p *Packer) place(orderID kernel.UUID, c candidate, pallets *[]*pallet.Pallet) error {
	coefficient := c.product.Coefficient()
	remaining := c.item.Quantity()

	for remaining > 0 {
		target := p.findPallet(c.product.Group(), coefficient, *pallets)
		if target == nil {
			opened, err := pallet.NewPallet(kernel.NewUUID(), orderID, p.config.Capacity)
			if err != nil {
				return err
			}
			*pallets = append(*pallets, opened)
			target = opened
		}

		fit := int(math.Floor(target.Residual() / coefficient))
		if fit > remaining {
			fit = remaining
		}

		line, err := pallet.NewItem(
			c.item.ID(), fit, coefficient, c.product.Group(), c.item.UnitPrice())
		if err != nil {
			return err
		}
		if err := target.Store(line); err != nil {
			return err
		}

		remaining -= fit
	}

	return nil
}

// findPallet returns the newest pallet that can take at least one unit of
// the given coefficient, restricted to pallets of the item's group unless
// mixing is allowed. Returns nil when no pallet fits.
func (p *Packer) findPallet(
	group product.Group, coefficient float64, pallets []*pallet.Pallet,
) *pallet.Pallet {
	for i := len(pallets) - 1; i >= 0; i-- {
		plt := pallets[i]
		if !p.config.AllowMixedGroups && plt.PrimaryGroup() != group {
			continue
		}
		if plt.CanStore(1, coefficient) {
			return plt
		}
	}
	return nil
}
