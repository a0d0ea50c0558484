package kernel

import (
	"fmt"

	"tehnoplast/internal/pkg/errs"
)

// glnLength is the fixed length of a Global Location Number.
const glnLength = 13

// ErrGLNIsNotConstructed indicates that a GLN was not created through NewGLN.
var ErrGLNIsNotConstructed = errs.NewValueIsRequiredError("GLN must be created via NewGLN")

// GLN is a value object that represents a Global Location Number, the
// 13-digit identifier of a warehouse. A valid GLN consists exclusively of
// digits and is exactly 13 characters long.
//
// GLN is immutable and suitable for use as a natural key of a warehouse.
//
// Example usage:
//
//	gln, err := kernel.NewGLN("4601234567892")
//	if err != nil {
//	    // handle invalid location number
//	}
//	fmt.Println(gln.String()) // "4601234567892"
type GLN struct {
	value string
}

// NewGLN parses and validates a Global Location Number from its string
// representation. The input must be exactly 13 digits.
// Returns a validation error otherwise.
func NewGLN(value string) (GLN, error) {
	if value == "" {
		return GLN{}, errs.NewValueIsRequiredError("gln")
	}

	if len(value) != glnLength {
		return GLN{}, errs.NewValueIsInvalidErrorWithCause("gln",
			fmt.Errorf("%q must be %d digits long", value, glnLength))
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return GLN{}, errs.NewValueIsInvalidErrorWithCause("gln",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}

	return GLN{value: value}, nil
}

// String returns the digit string of the location number.
func (g GLN) String() string {
	return g.value
}

// IsEqual compares two location numbers for equality.
func (g GLN) IsEqual(other GLN) bool {
	return g.value == other.value
}

// Validate checks that the GLN was constructed through NewGLN.
// The zero value is invalid and returns ErrGLNIsNotConstructed.
func (g GLN) Validate() error {
	if g.value == "" {
		return ErrGLNIsNotConstructed
	}
	return nil
}
