package sizer

// Box holds the working state for a single track during space distribution.
// It is transient: the owner rebuilds boxes whenever the underlying track
// constraints change, then runs [Distribute] against the current extent.
type Box struct {
	// SizeHint is the preferred size of the box before stretching and
	// bound clamping.
	SizeHint float64

	// MinSize is the hard lower bound on the computed size.
	MinSize float64

	// MaxSize is the hard upper bound on the computed size.
	MaxSize float64

	// Stretch is the relative weight used when apportioning surplus or
	// deficit space among boxes.
	Stretch int

	// Size is the computed size, written by Distribute.
	Size float64

	// done marks a box that saturated a bound during the current
	// distribution and no longer participates.
	done bool
}

// NewBox returns a box with the given constraints normalized: negative
// values clamp to zero, and a max below the min is raised to the min (the
// minimum always wins).
func NewBox(hint, minSize, maxSize float64, stretch int) *Box {
	if hint < 0 {
		hint = 0
	}
	if minSize < 0 {
		minSize = 0
	}
	if maxSize < 0 {
		maxSize = 0
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	if stretch < 0 {
		stretch = 0
	}
	return &Box{SizeHint: hint, MinSize: minSize, MaxSize: maxSize, Stretch: stretch}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
