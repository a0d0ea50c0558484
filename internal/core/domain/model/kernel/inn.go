package kernel

import (
	"fmt"

	"tehnoplast/internal/pkg/errs"
)

// Allowed lengths for a counterparty tax identifier.
const (
	innLegalEntityLength = 10
	innIndividualLength  = 12
)

// ErrINNIsNotConstructed indicates that an INN was not created through NewINN.
var ErrINNIsNotConstructed = errs.NewValueIsRequiredError("INN must be created via NewINN")

// INN is a value object that represents a counterparty tax identifier.
// A valid INN consists exclusively of digits and is either 10 digits long
// (legal entities) or 12 digits long (individual entrepreneurs).
//
// INN is immutable and suitable for use as a natural key of a counteragent.
//
// Example usage:
//
//	inn, err := kernel.NewINN("7707083893")
//	if err != nil {
//	    // handle invalid tax identifier
//	}
//	fmt.Println(inn.String()) // "7707083893"
type INN struct {
	value string
}

// NewINN parses and validates a tax identifier from its string representation.
// The input must be all digits and exactly 10 or 12 characters long.
// Returns a validation error otherwise.
func NewINN(value string) (INN, error) {
	if value == "" {
		return INN{}, errs.NewValueIsRequiredError("inn")
	}

	if len(value) != innLegalEntityLength && len(value) != innIndividualLength {
		return INN{}, errs.NewValueIsInvalidErrorWithCause("inn",
			fmt.Errorf("%q must be %d or %d digits long", value, innLegalEntityLength, innIndividualLength))
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return INN{}, errs.NewValueIsInvalidErrorWithCause("inn",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}

	return INN{value: value}, nil
}

// String returns the digit string of the tax identifier.
func (i INN) String() string {
	return i.value
}

// IsEqual compares two tax identifiers for equality.
func (i INN) IsEqual(other INN) bool {
	return i.value == other.value
}

// Validate checks that the INN was constructed through NewINN.
// The zero value is invalid and returns ErrINNIsNotConstructed.
func (i INN) Validate() error {
	if i.value == "" {
		return ErrINNIsNotConstructed
	}
	return nil
}
