package transmute

import (
	"github.com/wippyai/transmute/internal/cast"
)

// ToBytes views the storage of *v as sizeof(T) bytes. The view aliases
// *v: writes through either side are visible through the other. Byte
// storage has no alignment requirement, so the only failure mode is a
// type that is not trivially transmutable.
//
// Padding bytes inside T appear in the view with whatever contents the
// storage holds.
func ToBytes[T any](v *T) ([]byte, error) {
	if err := Trivial[T](); err != nil {
		return nil, err
	}
	return cast.Bytes(v), nil
}

// SliceToBytes views the storage of s as bytes. Length and capacity scale
// by sizeof(T); the view aliases s.
func SliceToBytes[T any](s []T) ([]byte, error) {
	if err := Trivial[T](); err != nil {
		return nil, err
	}
	return cast.SliceBytes(s), nil
}
