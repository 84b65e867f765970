package grid

import (
	"math"
	"testing"
)

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if r.Right() != 110 {
		t.Errorf("Right() = %v, want 110", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", r.Bottom())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !NewRect(0, 0, 0, 50).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestLimits_Clamp(t *testing.T) {
	type tc struct {
		limits       Limits
		w, h         float64
		wantW, wantH float64
	}

	tests := map[string]tc{
		"unbounded passes through": {
			limits: Unbounded(),
			w:      217, h: 292,
			wantW: 217, wantH: 292,
		},
		"min raises": {
			limits: Limits{MinWidth: 300, MinHeight: 400, MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)},
			w:      217, h: 292,
			wantW: 300, wantH: 400,
		},
		"max lowers": {
			limits: Limits{MaxWidth: 100, MaxHeight: 150},
			w:      217, h: 292,
			wantW: 100, wantH: 150,
		},
		"min wins over inverted range": {
			limits: Limits{MinWidth: 200, MaxWidth: 100, MinHeight: 200, MaxHeight: 100},
			w:      150, h: 150,
			wantW: 200, wantH: 200,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.limits.ClampWidth(tt.w); got != tt.wantW {
				t.Errorf("ClampWidth(%v) = %v, want %v", tt.w, got, tt.wantW)
			}
			if got := tt.limits.ClampHeight(tt.h); got != tt.wantH {
				t.Errorf("ClampHeight(%v) = %v, want %v", tt.h, got, tt.wantH)
			}
		})
	}
}

func TestInsets_Sums(t *testing.T) {
	i := Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}

	if i.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", i.Horizontal())
	}
	if i.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", i.Vertical())
	}
}
