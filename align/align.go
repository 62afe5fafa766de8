package align

import (
	"unsafe"

	"github.com/wippyai/transmute/errors"
)

// Offset returns the smallest n >= 0 such that p+n is aligned for align.
// The result is always in [0, align). align must be a power of two, which
// holds for every Go type's alignment.
func Offset(p unsafe.Pointer, align uintptr) int {
	addr := uintptr(p)
	return int((align - addr%align) % align)
}

// Check returns nil when the storage at p is aligned for align, and a
// *errors.UnalignedError carrying the discard offset otherwise.
func Check(p unsafe.Pointer, align uintptr) error {
	if off := Offset(p, align); off != 0 {
		return errors.Unaligned(off, int(align))
	}
	return nil
}
