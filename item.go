package grid

// Item is the host element abstraction the grid lays out. The grid never
// inspects an element beyond these methods, so any widget, DOM wrapper, or
// test double can participate.
type Item interface {
	// SizeLimits returns the element's intrinsic size limits, applied as a
	// second constraint layer after the track-driven extent is computed.
	SizeLimits() Limits

	// SetRect applies computed geometry to the element. The grid calls it
	// only when the rectangle differs from the last one applied.
	SetRect(Rect)

	// Resized is called after SetRect when the width or height changed.
	// Position-only moves do not trigger it.
	Resized(width, height float64)
}

// itemRecord tracks per-member layout state. The rectangle cache is what
// makes repeated layout passes idempotent: an unchanged rect is never
// re-applied.
type itemRecord struct {
	item    Item
	rect    Rect
	applied bool
}
