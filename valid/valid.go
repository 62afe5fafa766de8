package valid

import "github.com/wippyai/transmute/errors"

// Checker validates that candidate bytes are legal encodings of a
// constrained target type.
type Checker interface {
	// Size returns the element size in bytes the checker understands.
	Size() int

	// Check scans data, which holds whole elements only, and returns a
	// *errors.InvalidValueError for the first illegal encoding, or nil
	// when every element is legal. Check never modifies data.
	Check(data []byte) error
}

// Bool validates one-byte boolean encodings. The only legal encodings
// are 0x00 (false) and 0x01 (true); anything else has no boolean meaning.
var Bool Checker = boolChecker{}

type boolChecker struct{}

func (boolChecker) Size() int { return 1 }

func (boolChecker) Check(data []byte) error {
	for i, b := range data {
		if b > 1 {
			return errors.InvalidValue(i, b, "bool")
		}
	}
	return nil
}
