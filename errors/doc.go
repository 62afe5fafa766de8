// Package errors provides structured error types for the transmute library.
//
// Errors are categorized by Kind (which precondition was violated) and carry
// the exact numbers a caller needs to diagnose or recover: byte counts for
// guard failures, the leading-byte skip for alignment failures, and the
// offending offset and raw value for validity failures.
//
// Every failure is terminal and reports the first violation found. Recovery
// is the caller's decision; the payloads make it mechanical:
//
//	many, err := transmute.Many[uint32](buf, transmute.Pedantic)
//	var ge *errors.GuardError
//	if stderrors.As(err, &ge) {
//	    many, err = transmute.Many[uint32](buf[:len(buf)-ge.Surplus()], transmute.Pedantic)
//	}
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
