package transmute

import (
	"github.com/wippyai/transmute/guard"
	"github.com/wippyai/transmute/internal/cast"
	"github.com/wippyai/transmute/valid"
)

// Bools views b as booleans under the given policy. Every byte in the
// whole-element window must be 0x00 or 0x01; the first other value fails
// the call with a *errors.InvalidValueError before any view is produced.
// The result aliases b.
func Bools(b []byte, p Policy) ([]bool, error) {
	return ManyChecked[bool](b, p, valid.Bool)
}

// BoolsPedantic views b as booleans, requiring a non-empty buffer.
func BoolsPedantic(b []byte) ([]bool, error) {
	return Bools(b, Pedantic)
}

// BoolsPermissive views b as booleans, accepting any length. Validity is
// still enforced; permissiveness governs length only.
func BoolsPermissive(b []byte) ([]bool, error) {
	return Bools(b, Permissive)
}

// ConvertBools takes over b's allocation and returns it viewed as
// booleans. Bytes within len(b) must be legal encodings; capacity bytes
// beyond the length are never read and stay unchecked. The caller must
// not touch b afterwards.
func ConvertBools(b []byte, p Policy) ([]bool, error) {
	if err := valid.Bool.Check(b); err != nil {
		return nil, err
	}
	count, err := guard.Check(p, len(b), 1)
	if err != nil {
		return nil, err
	}
	return cast.SliceCap[bool](b, count, cap(b)), nil
}

// BoolsToBytes views s as raw bytes. A Go bool is stored as a single
// 0x00 or 0x01 byte, so the conversion cannot fail. The view aliases s.
func BoolsToBytes(s []bool) []byte {
	return cast.SliceBytes(s)
}
