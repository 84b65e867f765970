package sizer

// nearZero is the tolerance below which leftover space is not worth another
// distribution pass. Allocation is in fractional pixels, so a hundredth of a
// pixel is invisible.
const nearZero = 0.01

// Distribute computes the Size of each box so that the total matches space
// as closely as the aggregate bounds allow.
//
// Each box starts at its SizeHint clamped into [MinSize, MaxSize]. Surplus
// space is then distributed proportionally to Stretch among boxes below
// their max, folding each saturated box's excess back into the pool; any
// remainder (including the case where every stretchy box saturated, or no
// box has nonzero stretch) is split evenly among the boxes still below
// their max. Deficit space is removed symmetrically against MinSize.
//
// The return value is the space left unallocated: zero when the target is
// reachable, negative when the aggregate minimum exceeds space (every box
// pins to its min), and positive when the aggregate maximum is below space
// (every box pins to its max). Infeasible aggregates are expected inputs,
// not errors.
func Distribute(boxes []*Box, space float64) float64 {
	if len(boxes) == 0 {
		return space
	}

	totalMin := 0.0
	totalMax := 0.0
	totalSize := 0.0
	totalStretch := 0
	for _, b := range boxes {
		b.done = false
		b.Size = clamp(b.SizeHint, b.MinSize, b.MaxSize)
		totalMin += b.MinSize
		totalMax += b.MaxSize
		totalSize += b.Size
		if b.Stretch > 0 {
			totalStretch += b.Stretch
		}
	}

	if space == totalSize {
		return 0
	}

	// Infeasible aggregates pin every box to the violated bound.
	if space <= totalMin {
		for _, b := range boxes {
			b.Size = b.MinSize
		}
		return space - totalMin
	}
	if space >= totalMax {
		for _, b := range boxes {
			b.Size = b.MaxSize
		}
		return space - totalMax
	}

	if space < totalSize {
		shrink(boxes, totalSize-space, totalStretch, len(boxes))
	} else {
		grow(boxes, space-totalSize, totalStretch, len(boxes))
	}
	return 0
}

// grow distributes surplus space among the boxes. The caller guarantees the
// surplus fits under the aggregate maximum, so the loops always terminate by
// exhausting the surplus.
func grow(boxes []*Box, growth float64, totalStretch, notDone int) {
	// Stretch-weighted passes. A box pushed past its max is clamped there
	// and its excess share folds back into the pool for the next pass.
	for growth > nearZero && notDone > 0 && totalStretch > 0 {
		distGrowth := growth
		distStretch := totalStretch
		for _, b := range boxes {
			if b.done || b.Stretch == 0 {
				continue
			}
			amt := float64(b.Stretch) * distGrowth / float64(distStretch)
			if b.Size+amt >= b.MaxSize {
				growth -= b.MaxSize - b.Size
				totalStretch -= b.Stretch
				b.Size = b.MaxSize
				b.done = true
				notDone--
			} else {
				growth -= amt
				b.Size += amt
			}
		}
	}

	// Whatever the stretchy boxes could not absorb is split evenly among
	// every box still below its max, zero-stretch boxes included.
	for growth > nearZero && notDone > 0 {
		amt := growth / float64(notDone)
		for _, b := range boxes {
			if b.done {
				continue
			}
			if b.Size+amt >= b.MaxSize {
				growth -= b.MaxSize - b.Size
				b.Size = b.MaxSize
				b.done = true
				notDone--
			} else {
				growth -= amt
				b.Size += amt
			}
		}
	}
}

// shrink removes deficit space from the boxes, the mirror image of grow
// against each box's MinSize.
func shrink(boxes []*Box, shortfall float64, totalStretch, notDone int) {
	for shortfall > nearZero && notDone > 0 && totalStretch > 0 {
		distShortfall := shortfall
		distStretch := totalStretch
		for _, b := range boxes {
			if b.done || b.Stretch == 0 {
				continue
			}
			amt := float64(b.Stretch) * distShortfall / float64(distStretch)
			if b.Size-amt <= b.MinSize {
				shortfall -= b.Size - b.MinSize
				totalStretch -= b.Stretch
				b.Size = b.MinSize
				b.done = true
				notDone--
			} else {
				shortfall -= amt
				b.Size -= amt
			}
		}
	}

	for shortfall > nearZero && notDone > 0 {
		amt := shortfall / float64(notDone)
		for _, b := range boxes {
			if b.done {
				continue
			}
			if b.Size-amt <= b.MinSize {
				shortfall -= b.Size - b.MinSize
				b.Size = b.MinSize
				b.done = true
				notDone--
			} else {
				shortfall -= amt
				b.Size -= amt
			}
		}
	}
}
