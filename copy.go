package transmute

import (
	stderrors "errors"

	"github.com/wippyai/transmute/errors"
	"github.com/wippyai/transmute/guard"
	"github.com/wippyai/transmute/internal/cast"
)

// isUnaligned reports whether err is an alignment failure, the one
// failure a copy can heal.
func isUnaligned(err error) bool {
	var ue *errors.UnalignedError
	return stderrors.As(err, &ue)
}

// OneOrCopy behaves like One but heals misalignment by copying the first
// sizeof(T) bytes into properly aligned storage. Length and capability
// failures pass through unchanged, so a buffer that is both misaligned
// and too short still fails.
func OneOrCopy[T any](b []byte) (T, error) {
	v, err := One[T](b)
	if err == nil || !isUnaligned(err) {
		return v, err
	}

	var out T
	size := cast.Size[T]()
	if _, err := guard.Check(guard.AtLeast, len(b), size); err != nil {
		return out, err
	}
	copy(cast.Bytes(&out), b[:size])
	return out, nil
}

// ManyOrCopy behaves like Many but returns a freshly allocated, aligned
// slice when b is misaligned. The result aliases b only in the zero-copy
// case; callers that rely on aliasing should use Many and handle the
// alignment error themselves.
func ManyOrCopy[T any](b []byte, p Policy) ([]T, error) {
	out, err := Many[T](b, p)
	if err == nil || !isUnaligned(err) {
		return out, err
	}

	size := cast.Size[T]()
	count, err := guard.Check(p, len(b), size)
	if err != nil {
		return nil, err
	}
	fresh := make([]T, count)
	copy(cast.SliceBytes(fresh), b[:count*size])
	return fresh, nil
}
