package guard

import (
	"fmt"

	"github.com/wippyai/transmute/errors"
)

// Policy selects how strictly a buffer length must fit the element size.
type Policy uint8

const (
	// SingleValue accepts only a buffer holding exactly one element.
	SingleValue Policy = iota
	// Pedantic accepts a non-empty buffer holding whole elements only.
	Pedantic
	// Exact accepts any buffer holding whole elements, including none.
	Exact
	// AtLeast accepts a buffer holding at least one whole element and
	// ignores a partial trailing element.
	AtLeast
	// Permissive accepts every buffer and yields however many whole
	// elements fit.
	Permissive
)

// String returns the policy name
func (p Policy) String() string {
	switch p {
	case SingleValue:
		return "single_value"
	case Pedantic:
		return "pedantic"
	case Exact:
		return "exact"
	case AtLeast:
		return "at_least"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// Check applies the policy to a buffer of length bytes viewed as elements
// of size bytes each. On success it returns the element count the view
// holds. On failure it returns a *errors.GuardError describing the deficit
// or surplus.
//
// Check panics if size is not positive or the policy is unknown. Element
// sizes come from the compiler, so a bad size is a programming error, not
// input to validate.
func Check(p Policy, length, size int) (int, error) {
	if size < 1 {
		panic(fmt.Sprintf("guard: element size %d is not positive", size))
	}

	switch p {
	case SingleValue:
		if length < size {
			return 0, errors.NotEnough(size, length)
		}
		if length > size {
			return 0, errors.TooMany(size, length)
		}
		return 1, nil

	case Pedantic:
		if length < size {
			return 0, errors.NotEnough(size, length)
		}
		if length%size != 0 {
			return 0, errors.Inexact(size, length)
		}
		return length / size, nil

	case Exact:
		if length%size != 0 {
			return 0, errors.Inexact(size, length)
		}
		return length / size, nil

	case AtLeast:
		if length < size {
			return 0, errors.NotEnough(size, length)
		}
		return length / size, nil

	case Permissive:
		return length / size, nil

	default:
		panic(fmt.Sprintf("guard: unknown policy %d", uint8(p)))
	}
}
