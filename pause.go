package pageink

// PauseFunc is the caller-supplied pause predicate. The session calls
// it after each fully painted primitive; returning true suspends the
// walk and hands control back to the caller. A nil PauseFunc never
// pauses.
//
// The predicate only decides when control returns, never what gets
// painted: the pixel output is identical for any predicate.
type PauseFunc func() bool

// PauseAlways requests a pause at every opportunity. Useful for tests
// and for callers that want the finest-grained progress reporting.
func PauseAlways() bool { return true }

// PauseNever never requests a pause; equivalent to a nil predicate.
func PauseNever() bool { return false }

// PauseAfter returns a predicate that passes n times and then pauses
// at every subsequent opportunity.
func PauseAfter(n int) PauseFunc {
	count := 0
	return func() bool {
		count++
		return count > n
	}
}
