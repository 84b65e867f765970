package grid

import "math"

// Rect is an axis-aligned rectangle in fractional pixels. Left and Top are
// the coordinates of the top-left corner.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Limits bounds an item's width and height independently of the track sizes
// driving its cell. The grid applies these as a second constraint layer after
// the track-driven extent is computed.
type Limits struct {
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Unbounded returns Limits that impose no constraint.
func Unbounded() Limits {
	return Limits{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// ClampWidth restricts w to [MinWidth, MaxWidth], minimum winning over an
// inverted range.
func (l Limits) ClampWidth(w float64) float64 {
	return clampFloat(w, l.MinWidth, l.MaxWidth)
}

// ClampHeight restricts h to [MinHeight, MaxHeight], minimum winning over an
// inverted range.
func (l Limits) ClampHeight(h float64) float64 {
	return clampFloat(h, l.MinHeight, l.MaxHeight)
}

// Insets is the container's own border and padding contribution. The grid
// subtracts it from the available size to obtain the content area and offsets
// every computed rectangle by the top-left inset.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns the sum of Left and Right.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the sum of Top and Bottom.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// clampFloat restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// clampInt restricts v to the range [minVal, maxVal], minimum winning.
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
