package product

import (
	"fmt"

	"tehnoplast/internal/pkg/errs"
)

// Group represents the material family of a product. It constrains which
// products may share a pallet when mixed-group packing is disabled.
//
// Group is a value object with a fixed enumeration of valid members:
// plastic, metal and HDPE.
type Group int

const (
	// GroupUnknown represents an invalid or undefined group.
	// This value (0) helps catch uninitialized Group values.
	GroupUnknown Group = iota

	// GroupPlastic covers general plastic goods.
	GroupPlastic

	// GroupMetal covers metal goods.
	GroupMetal

	// GroupHDPE covers high-density polyethylene goods.
	GroupHDPE
)

// getGroupStrings returns a map of Group values to their string representations.
func getGroupStrings() map[Group]string {
	return map[Group]string{
		GroupUnknown: "unknown",
		GroupPlastic: "plastic",
		GroupMetal:   "metal",
		GroupHDPE:    "HDPE",
	}
}

// getValidGroupStrings returns a map of only valid Group values.
func getValidGroupStrings() map[Group]string {
	//nolint:exhaustive // GroupUnknown is intentionally excluded as it's invalid
	return map[Group]string{
		GroupPlastic: "plastic",
		GroupMetal:   "metal",
		GroupHDPE:    "HDPE",
	}
}

// AllGroups returns the valid groups in their canonical packing order:
// plastic, metal, HDPE. The order is stable and used as the default
// traversal order of the packer.
func AllGroups() []Group {
	return []Group{GroupPlastic, GroupMetal, GroupHDPE}
}

// GroupFromString parses a group from its string name.
// Accepted names are "plastic", "metal" and "HDPE".
// Returns a validation error for any other input.
func GroupFromString(name string) (Group, error) {
	for group, str := range getValidGroupStrings() {
		if str == name {
			return group, nil
		}
	}
	return GroupUnknown, errs.NewValueIsInvalidErrorWithCause("group",
		fmt.Errorf("%q is not a valid group name", name))
}

// Validate checks if the Group value is valid.
//
// Valid groups are: plastic, metal, HDPE.
// GroupUnknown (0) and any other values are invalid.
func (g Group) Validate() error {
	if _, ok := getValidGroupStrings()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("group",
			fmt.Errorf("%d is not a valid group", g))
	}
	return nil
}

// String returns the canonical name of the group.
//
// Returns "plastic", "metal" or "HDPE" for valid groups and "unknown"
// for invalid values. Implements the fmt.Stringer interface.
func (g Group) String() string {
	if str, ok := getGroupStrings()[g]; ok {
		return str
	}
	return "unknown"
}
