package errors

import "fmt"

// Kind categorizes the violated precondition
type Kind string

const (
	KindUnaligned       Kind = "unaligned"
	KindInvalidValue    Kind = "invalid_value"
	KindSizeMismatch    Kind = "size_mismatch"
	KindNotEnoughBytes  Kind = "not_enough_bytes"
	KindTooManyBytes    Kind = "too_many_bytes"
	KindUnsupportedType Kind = "unsupported_type"
	KindOutOfRange      Kind = "out_of_range"
)

// Reason states how the buffer length relates to the element size for a
// rejected guard check.
type Reason uint8

const (
	// NotEnoughBytes: too few bytes to fill even one element.
	NotEnoughBytes Reason = iota
	// TooManyBytes: surplus bytes after a single mandatory value.
	TooManyBytes
	// InexactByteCount: length is not a whole multiple of the element size.
	InexactByteCount
)

func (r Reason) String() string {
	switch r {
	case NotEnoughBytes:
		return "not enough bytes to fill type"
	case TooManyBytes:
		return "too many bytes for a single value"
	case InexactByteCount:
		return "byte count not a multiple of element size"
	default:
		return fmt.Sprintf("unknown reason %d", uint8(r))
	}
}

// Kind maps the reason onto the error taxonomy.
func (r Reason) Kind() Kind {
	switch r {
	case NotEnoughBytes:
		return KindNotEnoughBytes
	case TooManyBytes:
		return KindTooManyBytes
	default:
		return KindSizeMismatch
	}
}

// GuardError reports a buffer length that a guard policy rejected.
type GuardError struct {
	Size   int // element size in bytes
	Actual int // buffer length in bytes
	Reason Reason
}

// Error implements the error interface
func (e *GuardError) Error() string {
	return fmt.Sprintf("%s (size: %d, actual: %d)", e.Reason, e.Size, e.Actual)
}

// Kind returns the taxonomy kind for this failure.
func (e *GuardError) Kind() Kind {
	return e.Reason.Kind()
}

// Deficit returns how many bytes are missing to reach the next whole-element
// boundary. Appending this many bytes would make a strict policy accept.
func (e *GuardError) Deficit() int {
	switch e.Reason {
	case NotEnoughBytes:
		return e.Size - e.Actual
	case InexactByteCount:
		return e.Size - e.Actual%e.Size
	default:
		return 0
	}
}

// Surplus returns how many trailing bytes lie beyond the last whole element.
// Trimming this many bytes would make a strict policy accept.
func (e *GuardError) Surplus() int {
	switch e.Reason {
	case TooManyBytes:
		return e.Actual - e.Size
	case InexactByteCount:
		return e.Actual % e.Size
	default:
		return 0
	}
}

// Is reports whether target matches this error by reason
func (e *GuardError) Is(target error) bool {
	if t, ok := target.(*GuardError); ok {
		return e.Reason == t.Reason
	}
	return false
}

// UnalignedError reports a buffer whose start address does not satisfy the
// target type's alignment. Discarding Offset leading bytes realigns the data.
type UnalignedError struct {
	Offset int // leading bytes to discard, always in (0, Align)
	Align  int // the target type's alignment requirement
}

// Error implements the error interface
func (e *UnalignedError) Error() string {
	return fmt.Sprintf("data is unaligned for alignment %d (discard %d leading bytes)", e.Align, e.Offset)
}

// Kind returns the taxonomy kind for this failure.
func (e *UnalignedError) Kind() Kind {
	return KindUnaligned
}

// Is reports whether target matches this error type
func (e *UnalignedError) Is(target error) bool {
	_, ok := target.(*UnalignedError)
	return ok
}

// InvalidValueError reports a byte that is not a legal encoding of a
// constrained target type.
type InvalidValueError struct {
	Offset int    // position of the offending byte within the buffer
	Value  byte   // the raw value observed
	Type   string // target type name, e.g. "bool"
}

// Error implements the error interface
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value 0x%02X for %s at byte offset %d", e.Value, e.Type, e.Offset)
}

// Kind returns the taxonomy kind for this failure.
func (e *InvalidValueError) Kind() Kind {
	return KindInvalidValue
}

// Is reports whether target matches this error type
func (e *InvalidValueError) Is(target error) bool {
	_, ok := target.(*InvalidValueError)
	return ok
}

// UnsupportedTypeError reports a target type that is not trivially
// transmutable. This is a programming error, not a data error.
type UnsupportedTypeError struct {
	Type   string // Go type name
	Detail string // which part of the type disqualifies it
}

// Error implements the error interface
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s: %s", e.Type, e.Detail)
}

// Kind returns the taxonomy kind for this failure.
func (e *UnsupportedTypeError) Kind() Kind {
	return KindUnsupportedType
}

// Is reports whether target matches this error type
func (e *UnsupportedTypeError) Is(target error) bool {
	_, ok := target.(*UnsupportedTypeError)
	return ok
}

// OutOfRangeError reports a guest memory window that exceeds the memory's
// current size.
type OutOfRangeError struct {
	Offset uint32 // requested start offset
	Length uint32 // requested window length in bytes
	Size   uint32 // current memory size in bytes
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("memory region out of range (offset: %d, length: %d, memory size: %d)", e.Offset, e.Length, e.Size)
}

// Kind returns the taxonomy kind for this failure.
func (e *OutOfRangeError) Kind() Kind {
	return KindOutOfRange
}

// Is reports whether target matches this error type
func (e *OutOfRangeError) Is(target error) bool {
	_, ok := target.(*OutOfRangeError)
	return ok
}

// Convenience constructors for common error patterns

// NotEnough creates a guard error for a buffer too short for one element.
func NotEnough(size, actual int) *GuardError {
	return &GuardError{Size: size, Actual: actual, Reason: NotEnoughBytes}
}

// TooMany creates a guard error for surplus bytes after a single value.
func TooMany(size, actual int) *GuardError {
	return &GuardError{Size: size, Actual: actual, Reason: TooManyBytes}
}

// Inexact creates a guard error for a length that is not a whole multiple
// of the element size.
func Inexact(size, actual int) *GuardError {
	return &GuardError{Size: size, Actual: actual, Reason: InexactByteCount}
}

// Unaligned creates an alignment error.
func Unaligned(offset, align int) *UnalignedError {
	return &UnalignedError{Offset: offset, Align: align}
}

// InvalidValue creates a validity error for the offending byte.
func InvalidValue(offset int, value byte, typ string) *InvalidValueError {
	return &InvalidValueError{Offset: offset, Value: value, Type: typ}
}

// UnsupportedType creates a capability error for an ineligible target type.
func UnsupportedType(typ, detail string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Type: typ, Detail: detail}
}

// OutOfRange creates a guest memory bounds error.
func OutOfRange(offset, length, size uint32) *OutOfRangeError {
	return &OutOfRangeError{Offset: offset, Length: length, Size: size}
}

// kinded is satisfied by every error type in this package.
type kinded interface {
	error
	Kind() Kind
}

// KindOf returns the Kind of any error produced by this library, or the
// empty string for nil and foreign errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if k, ok := err.(kinded); ok {
		return k.Kind()
	}
	return ""
}
