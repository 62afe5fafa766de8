// Package transmute provides guarded reinterpretation of byte buffers as
// typed values and slices.
//
// Viewing raw bytes as integers, floats or records normally requires
// unsafe code and a handful of preconditions that are easy to get wrong.
// This library keeps the unsafe cast in one place and makes every
// precondition explicit: the target type must tolerate arbitrary bytes,
// the storage must be aligned, constrained encodings must be validated,
// and the byte count must fit the element size under a chosen policy.
//
// # Architecture Overview
//
// The library is organized into small packages with one concern each:
//
//	transmute/           Root package: typed views, conversions, capability gate
//	├── guard/           Byte-count policies (pure length arithmetic)
//	├── align/           Storage alignment checks
//	├── valid/           Validity checkers for constrained encodings
//	├── errors/          Structured error types with recovery payloads
//	├── memview/         Typed views over WebAssembly linear memory
//	└── cmd/inspect/     Interactive binary inspector
//
// # Quick Start
//
// View a byte buffer as a slice of float64 samples:
//
//	raw, _ := os.ReadFile("samples.bin")
//
//	samples, err := transmute.Many[float64](raw, transmute.Exact)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// samples aliases raw: no bytes were copied
//
// Read a single header value and hand the buffer's allocation over to a
// typed slice:
//
//	magic, err := transmute.One[uint32](raw)
//	words, err := transmute.Convert[uint32](raw, transmute.Permissive)
//
// # Safety Model
//
// Every entry point runs the same pipeline before any unsafe cast:
//
//  1. Capability: the target type must be trivially transmutable, meaning
//     fixed-size and pointer-free. Trivial[T] exposes the same check.
//  2. Alignment: the buffer's address must satisfy the target type's
//     alignment. Empty buffers skip this; nothing will be dereferenced.
//  3. Validity: for constrained types (bool, or anything paired with a
//     valid.Checker), every candidate byte is inspected first.
//  4. Guard: the byte count must fit the element size under the chosen
//     policy.
//
// The first violated precondition fails the call with a structured error
// from the errors package; no partial views are produced.
//
// # Policies
//
// Five policies cover the strictness ladder for step 4:
//
//	Policy       Accepts                          Elements
//	─────────────────────────────────────────────────────────
//	SingleValue  length == size                   1
//	Pedantic     length >= size, whole multiple   length/size
//	Exact        whole multiple, empty allowed    length/size
//	AtLeast      length >= size, tail ignored     length/size
//	Permissive   always                           length/size
//
// Permissiveness governs length only. A misaligned buffer fails under
// every policy; copy-healing entry points (OneOrCopy, ManyOrCopy) exist
// for buffers whose alignment the caller cannot control.
//
// # Zero-Copy and Ownership
//
// Many and friends return views that alias their input: mutating the
// buffer mutates the view. View capacity is clamped to the accepted
// element count so appends reallocate instead of clobbering bytes beyond
// the window.
//
// Convert and friends take the allocation over instead, scaling both
// length and capacity. The input must not be used after a successful
// Convert; the two headers share storage and appends through either
// corrupt the other.
//
// ToBytes and SliceToBytes run the other direction and always succeed for
// trivially transmutable types; byte storage has no alignment requirement.
//
// # Error Recovery
//
// Guard failures carry the arithmetic needed to retry: Deficit is the
// byte count to append, Surplus the count to trim. Alignment failures
// carry the leading byte count to discard. See the errors package for the
// full taxonomy.
//
// # Constrained Types
//
// bool accepts only 0x00 and 0x01, so byte buffers become []bool through
// the dedicated Bools entry points, which validate every byte first.
// User-defined constrained types plug in through valid.Checker and
// ManyChecked.
//
// # Floats from Untrusted Bytes
//
// Any bit pattern is a valid float, but signaling NaNs can trap in later
// arithmetic. Quiet and QuietSlice rewrite them to their quiet form with
// payloads intact.
//
// # Thread Safety
//
// All operations are pure functions over their arguments; the library
// holds no state. Concurrent calls are safe, including over shared
// buffers, as long as callers follow the ownership rule for Convert.
package transmute
