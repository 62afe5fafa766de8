// Package memview provides typed views over WebAssembly linear memory.
//
// wazero's api.Memory.Read returns a slice that aliases the guest's
// backing buffer, so the guarded reinterpretation pipeline of the root
// package applies to guest memory exactly as it does to any byte slice:
// bounds first, then capability, alignment, validity and length.
//
// # Reading
//
//	header, err := memview.One[uint32](mem, ptr)
//	samples, err := memview.Of[float64](mem, ptr, count)
//	flags, err := memview.Bools(mem, ptr, count)
//
// Views alias guest memory: the guest sees host writes through a view and
// vice versa. A view stays valid until the guest memory grows, which may
// move the backing buffer; treat views as short-lived.
//
// # Writing
//
//	err := memview.Put(mem, ptr, uint32(42))
//	err := memview.PutSlice(mem, ptr, samples)
//
// # Alignment
//
// The backing buffer is page-sized, so its base satisfies every primitive
// alignment and a guest offset's residue decides alignment for the view.
// An offset misaligned for the target type fails with the same
// *errors.UnalignedError a host slice would produce.
//
// # Byte Order
//
// Values keep host byte order, which matches the wasm little-endian
// layout on the little-endian hosts wazero compiles for.
//
// # Logging
//
// The package logs rejected views at debug level through a package
// logger. It is a no-op by default; install one with SetLogger.
package memview
