package memview

import (
	"math"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/transmute"
	"github.com/wippyai/transmute/errors"
	"github.com/wippyai/transmute/internal/cast"
)

// safeMul returns a*b, reporting overflow instead of wrapping.
func safeMul(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

// Raw returns a window of length bytes into guest memory at off. The
// window aliases the guest's backing buffer; writes through it are
// visible to the guest. A window that exceeds the memory's current size
// fails with a *errors.OutOfRangeError.
func Raw(mem api.Memory, off, length uint32) ([]byte, error) {
	b, ok := mem.Read(off, length)
	if !ok {
		Logger().Debug("rejected memory window",
			zap.Uint32("offset", off),
			zap.Uint32("length", length),
			zap.Uint32("memory_size", mem.Size()))
		return nil, errors.OutOfRange(off, length, mem.Size())
	}
	return b, nil
}

// Of views count elements of type T in guest memory at off. The view
// aliases guest memory and its capacity is clamped to count.
func Of[T any](mem api.Memory, off, count uint32) ([]T, error) {
	if err := transmute.Trivial[T](); err != nil {
		return nil, err
	}

	length, ok := safeMul(count, uint32(cast.Size[T]()))
	if !ok {
		// The window cannot even be addressed in a 32-bit memory.
		return nil, errors.OutOfRange(off, math.MaxUint32, mem.Size())
	}
	b, err := Raw(mem, off, length)
	if err != nil {
		return nil, err
	}

	out, err := transmute.Many[T](b, transmute.Exact)
	if err != nil {
		Logger().Debug("rejected typed view",
			zap.Uint32("offset", off),
			zap.Uint32("count", count),
			zap.Error(err))
		return nil, err
	}
	return out, nil
}

// One reads one T from guest memory at off. The value is copied out and
// does not alias guest memory.
func One[T any](mem api.Memory, off uint32) (T, error) {
	var zero T
	if err := transmute.Trivial[T](); err != nil {
		return zero, err
	}

	b, err := Raw(mem, off, uint32(cast.Size[T]()))
	if err != nil {
		return zero, err
	}
	return transmute.One[T](b)
}

// Bools views count bytes of guest memory at off as booleans, validating
// every byte first. The view aliases guest memory.
func Bools(mem api.Memory, off, count uint32) ([]bool, error) {
	b, err := Raw(mem, off, count)
	if err != nil {
		return nil, err
	}

	out, err := transmute.Bools(b, transmute.Exact)
	if err != nil {
		Logger().Debug("rejected bool view",
			zap.Uint32("offset", off),
			zap.Uint32("count", count),
			zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Put writes one T into guest memory at off. Byte copies need no host
// alignment, so any offset within bounds works.
func Put[T any](mem api.Memory, off uint32, v T) error {
	src, err := transmute.ToBytes(&v)
	if err != nil {
		return err
	}
	if !mem.Write(off, src) {
		return errors.OutOfRange(off, uint32(len(src)), mem.Size())
	}
	return nil
}

// PutSlice writes all of s into guest memory at off.
func PutSlice[T any](mem api.Memory, off uint32, s []T) error {
	src, err := transmute.SliceToBytes(s)
	if err != nil {
		return err
	}
	if uint64(len(src)) > math.MaxUint32 {
		return errors.OutOfRange(off, math.MaxUint32, mem.Size())
	}
	if !mem.Write(off, src) {
		return errors.OutOfRange(off, uint32(len(src)), mem.Size())
	}
	return nil
}
