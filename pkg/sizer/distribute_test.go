package sizer

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestDistribute_Allocation(t *testing.T) {
	inf := math.Inf(1)

	type tc struct {
		boxes        []*Box
		space        float64
		wantSizes    []float64
		wantLeftover float64
	}

	tests := map[string]tc{
		"space equals clamped hints": {
			boxes: []*Box{
				NewBox(30, 0, inf, 1),
				NewBox(70, 0, inf, 1),
			},
			space:        100,
			wantSizes:    []float64{30, 70},
			wantLeftover: 0,
		},
		"surplus split proportionally to stretch": {
			boxes: []*Box{
				NewBox(0, 0, inf, 1),
				NewBox(0, 0, inf, 3),
			},
			space:        100,
			wantSizes:    []float64{25, 75},
			wantLeftover: 0,
		},
		"saturated box folds excess back": {
			boxes: []*Box{
				NewBox(0, 0, 20, 1),
				NewBox(0, 0, inf, 1),
			},
			space:        100,
			wantSizes:    []float64{20, 80},
			wantLeftover: 0,
		},
		"zero stretch grows only after stretchy boxes saturate": {
			boxes: []*Box{
				NewBox(0, 0, inf, 0),
				NewBox(0, 0, 30, 1),
			},
			space:        100,
			wantSizes:    []float64{70, 30},
			wantLeftover: 0,
		},
		"all zero stretch splits surplus evenly": {
			boxes: []*Box{
				NewBox(10, 0, inf, 0),
				NewBox(10, 0, inf, 0),
			},
			space:        100,
			wantSizes:    []float64{50, 50},
			wantLeftover: 0,
		},
		"deficit removed proportionally to stretch": {
			boxes: []*Box{
				NewBox(300, 50, inf, 1),
				NewBox(150, 50, inf, 1),
			},
			space:        284,
			wantSizes:    []float64{217, 67},
			wantLeftover: 0,
		},
		"box pinned at min folds shortfall back": {
			boxes: []*Box{
				NewBox(100, 90, inf, 1),
				NewBox(100, 0, inf, 1),
			},
			space:        100,
			wantSizes:    []float64{90, 10},
			wantLeftover: 0,
		},
		"zero stretch shrinks only after stretchy boxes pin": {
			boxes: []*Box{
				NewBox(100, 0, inf, 0),
				NewBox(100, 80, inf, 1),
			},
			space:        120,
			wantSizes:    []float64{40, 80},
			wantLeftover: 0,
		},
		"aggregate min exceeds space": {
			boxes: []*Box{
				NewBox(0, 60, inf, 1),
				NewBox(0, 60, inf, 1),
			},
			space:        100,
			wantSizes:    []float64{60, 60},
			wantLeftover: -20,
		},
		"aggregate max below space": {
			boxes: []*Box{
				NewBox(0, 0, 30, 1),
				NewBox(0, 0, 30, 1),
			},
			space:        100,
			wantSizes:    []float64{30, 30},
			wantLeftover: 40,
		},
		"stable order when a bound saturates mid-pass": {
			boxes: []*Box{
				NewBox(0, 0, 2, 1),
				NewBox(0, 0, inf, 1),
			},
			space:        10,
			wantSizes:    []float64{2, 8},
			wantLeftover: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			leftover := Distribute(tt.boxes, tt.space)
			if !almostEqual(leftover, tt.wantLeftover) {
				t.Errorf("leftover = %v, want %v", leftover, tt.wantLeftover)
			}
			for i, b := range tt.boxes {
				if !almostEqual(b.Size, tt.wantSizes[i]) {
					t.Errorf("box %d: Size = %v, want %v", i, b.Size, tt.wantSizes[i])
				}
			}
		})
	}
}

func TestDistribute_EmptyList(t *testing.T) {
	if leftover := Distribute(nil, 100); leftover != 100 {
		t.Errorf("leftover = %v, want 100", leftover)
	}
}

// Conservation: whenever space fits within the aggregate bounds, the solved
// sizes sum to space exactly (modulo float error).
func TestDistribute_Conservation(t *testing.T) {
	inf := math.Inf(1)

	for _, space := range []float64{150, 284, 333.5, 468, 500} {
		boxes := []*Box{
			NewBox(300, 50, inf, 1),
			NewBox(150, 50, inf, 1),
			NewBox(200, 50, 400, 0),
		}
		Distribute(boxes, space)

		total := 0.0
		for _, b := range boxes {
			total += b.Size
		}
		if math.Abs(total-space) > nearZero {
			t.Errorf("space %v: total = %v, want %v", space, total, space)
		}
	}
}

// Bound respect: every solved size sits within the box's own bounds for any
// feasible space.
func TestDistribute_BoundRespect(t *testing.T) {
	inf := math.Inf(1)

	for space := 200.0; space <= 900; space += 50 {
		boxes := []*Box{
			NewBox(100, 40, 250, 2),
			NewBox(0, 60, inf, 1),
			NewBox(300, 0, 300, 0),
			NewBox(50, 50, 120, 3),
		}
		Distribute(boxes, space)

		for i, b := range boxes {
			if b.Size < b.MinSize-epsilon || b.Size > b.MaxSize+epsilon {
				t.Errorf("space %v: box %d size %v outside [%v, %v]",
					space, i, b.Size, b.MinSize, b.MaxSize)
			}
		}
	}
}

// Monotonicity: growing the available space never shrinks any individual box.
func TestDistribute_Monotonicity(t *testing.T) {
	inf := math.Inf(1)

	prev := []float64{-1, -1, -1}
	for space := 0.0; space <= 800; space += 7 {
		boxes := []*Box{
			NewBox(100, 50, 200, 1),
			NewBox(0, 0, inf, 2),
			NewBox(150, 100, 300, 0),
		}
		Distribute(boxes, space)

		for i, b := range boxes {
			if b.Size < prev[i]-epsilon {
				t.Fatalf("space %v: box %d shrank from %v to %v", space, i, prev[i], b.Size)
			}
			prev[i] = b.Size
		}
	}
}

// Equal-stretch fairness: identical unconstrained boxes always end with
// identical sizes, surplus or deficit alike.
func TestDistribute_EqualStretchFairness(t *testing.T) {
	inf := math.Inf(1)

	for _, space := range []float64{30, 100, 100.0 / 3 * 7, 450} {
		boxes := []*Box{
			NewBox(50, 0, inf, 2),
			NewBox(50, 0, inf, 2),
			NewBox(50, 0, inf, 2),
		}
		Distribute(boxes, space)

		for i := 1; i < len(boxes); i++ {
			if !almostEqual(boxes[i].Size, boxes[0].Size) {
				t.Errorf("space %v: box %d size %v != box 0 size %v",
					space, i, boxes[i].Size, boxes[0].Size)
			}
		}
	}
}

// Distribute resets per-box state, so re-running with the same inputs is
// deterministic even after a previous run saturated bounds.
func TestDistribute_Rerun(t *testing.T) {
	boxes := []*Box{
		NewBox(0, 0, 20, 1),
		NewBox(0, 0, math.Inf(1), 1),
	}
	Distribute(boxes, 100)
	first := []float64{boxes[0].Size, boxes[1].Size}

	Distribute(boxes, 100)
	for i, b := range boxes {
		if !almostEqual(b.Size, first[i]) {
			t.Errorf("box %d: rerun size %v, want %v", i, b.Size, first[i])
		}
	}
}
