// Package guard implements byte-count policies for buffer reinterpretation.
//
// A guard decides whether a buffer of a given length may be viewed as
// elements of a given size, and how many whole elements the view holds.
// The decision is pure arithmetic over (length, size); guards never touch
// the buffer contents.
//
// # Policies
//
// Five policies cover the useful points on the strictness ladder:
//
//	Policy       Accepts                          Elements
//	─────────────────────────────────────────────────────────
//	SingleValue  length == size                   1
//	Pedantic     length >= size, whole multiple   length/size
//	Exact        whole multiple, empty allowed    length/size
//	AtLeast      length >= size, tail ignored     length/size
//	Permissive   always                           length/size
//
// Pedantic and Exact differ only on the empty buffer: Pedantic insists on
// at least one element, Exact accepts zero. AtLeast and Permissive both
// ignore a partial trailing element; AtLeast still requires one whole
// element to be present.
//
// # Usage
//
//	count, err := guard.Check(guard.Pedantic, len(buf), 4)
//	if err != nil {
//	    return err
//	}
//	// buf holds exactly count uint32 values
//
// Failures carry enough arithmetic to recover: a *errors.GuardError reports
// how many bytes to append (Deficit) or trim (Surplus) so that a retry with
// the same policy succeeds.
package guard
