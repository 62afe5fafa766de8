// Package valid defines validity checkers for constrained target types.
//
// Most fixed-size types accept every bit pattern, so reinterpreting bytes
// as them needs no inspection. A few types constrain their encoding; for
// those, a Checker scans candidate bytes before any view is produced and
// reports the first illegal encoding it finds.
//
// The package ships one built-in checker, Bool. The Checker interface is
// the extension point: implement it for any user-defined constrained type
// and pass it to the checked entry points of the root package.
package valid
