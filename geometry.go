package grid

import "github.com/grindlemire/go-grid/pkg/sizer"

// buildBoxes mirrors a spec list into fresh sizer boxes. Boxes are transient:
// they are rebuilt on every fit rather than shared across distribution runs,
// and NewBox resolves any min/max inversion in the specs.
func buildBoxes(specs []*TrackSpec) []*sizer.Box {
	boxes := make([]*sizer.Box, len(specs))
	for i, s := range specs {
		boxes[i] = sizer.NewBox(s.Basis(), s.MinSize(), s.MaxSize(), s.Stretch())
	}
	return boxes
}

// aggregateLimits sums the bounds of one axis's boxes plus the fixed
// inter-track spacing. An unbounded box makes the aggregate max +Inf, which
// float addition handles on its own.
func aggregateLimits(boxes []*sizer.Box, spacing float64) (minSize, maxSize float64) {
	for _, b := range boxes {
		minSize += b.MinSize
		maxSize += b.MaxSize
	}
	if n := len(boxes); n > 1 {
		total := spacing * float64(n-1)
		minSize += total
		maxSize += total
	}
	return minSize, maxSize
}

// startOffsets computes the cumulative leading-edge offset of each track:
// start[0] is the origin and each subsequent track begins one size plus one
// spacing gap after the previous one.
func startOffsets(boxes []*sizer.Box, origin, spacing float64, starts []float64) []float64 {
	starts = starts[:0]
	offset := origin
	for _, b := range boxes {
		starts = append(starts, offset)
		offset += b.Size + spacing
	}
	return starts
}

// axisExtent maps an item's track range onto a pixel offset and extent along
// one axis. The index clamps into the valid track range and the span clamps
// against the tracks remaining, so out-of-range assignments degrade instead
// of failing. A span absorbs the inter-track spacing between the tracks it
// covers and nothing beyond the last one.
//
// With zero tracks the item stacks at the origin and receives the full
// content extent; its own limits are the only constraint left.
func axisExtent(starts []float64, boxes []*sizer.Box, index, span int, origin, contentExtent float64) (pos, extent float64) {
	count := len(boxes)
	if count == 0 {
		return origin, contentExtent
	}
	start := clampInt(index, 0, count-1)
	end := clampInt(start+span-1, start, count-1)
	return starts[start], starts[end] + boxes[end].Size - starts[start]
}
