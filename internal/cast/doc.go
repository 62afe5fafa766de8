// Package cast performs the raw slice-header reshaping behind the typed
// views of the transmute module.
//
// Nothing here validates anything. Callers must already have proved that
// the storage is aligned for the target type and long enough for the
// requested element count; these helpers only reinterpret pointers and
// scale lengths.
//
// This package is internal to the transmute module.
package cast
