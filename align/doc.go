// Package align checks whether byte storage satisfies a type's alignment.
//
// Reinterpreting bytes as a wider type is only sound when the storage
// address is a multiple of the type's alignment. Offset computes how many
// leading bytes would have to be discarded to reach an aligned address;
// Check turns a nonzero offset into a structured error.
//
// Slice base addresses are not stable across allocations, so outcomes are
// computed fresh per call and never cached.
package align
