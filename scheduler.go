package grid

// Scheduler is the external boundary that defers a layout pass. The grid
// hands it at most one callback at a time: repeated dirtying events between
// two scheduling opportunities collapse into a single pending invocation, so
// implementations never need to coalesce themselves.
//
// A real host typically runs the callback on its next animation frame or
// event-loop turn. The zero-dependency default is [Immediate].
type Scheduler interface {
	Schedule(func())
}

// Immediate runs scheduled callbacks synchronously. Useful for hosts without
// an event loop and for driving layout deterministically in tests.
type Immediate struct{}

// Schedule invokes fn right away.
func (Immediate) Schedule(fn func()) { fn() }
