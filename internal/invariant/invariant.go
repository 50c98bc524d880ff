// Package invariant provides a debug-only precondition check for internal
// callers that have already validated their arguments through the public
// Check/Check2 path. Go has no compiled-out ASSERT macro, so Assert always
// runs; shipping a silent no-op here would hide a real programming error,
// and returning an error instead would just duplicate Check.
package invariant

// Assert panics with msg if cond is false. It is for preconditions a caller
// within this module is responsible for, never for validating untrusted
// input — that belongs to the Check/Check2 family, which return errors.
func Assert(cond bool, msg string) {
	if !cond {
		panic("btok: invariant violated: " + msg)
	}
}
