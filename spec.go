package grid

import "math"

// TrackSpec describes the sizing constraints for a single row or column.
// All numeric inputs are clamped into range rather than rejected; min/max
// ordering is resolved when the grid builds its sizer boxes, never here.
//
// Specs are long-lived and mutable. Every mutation that changes a stored
// value raises a synchronous [SpecChange] to registered handlers, which is
// how an owning grid learns its track sizing is stale.
type TrackSpec struct {
	basis   float64
	minSize float64
	maxSize float64
	stretch int

	handlers []*specHandler
}

// Spec field names carried by SpecChange events.
const (
	FieldBasis   = "basis"
	FieldMinSize = "minSize"
	FieldMaxSize = "maxSize"
	FieldStretch = "stretch"
)

// SpecChange describes a single field mutation on a TrackSpec.
// Stretch changes carry the values as float64 like the other fields.
type SpecChange struct {
	Field string
	Old   float64
	New   float64
}

// specHandler is a registered change callback with a liveness flag so
// unbinding never reslices under a running notification.
type specHandler struct {
	fn     func(SpecChange)
	active bool
}

// Unbind removes a previously registered change handler. Calling it more
// than once is harmless.
type Unbind func()

// TrackSpecOption configures a TrackSpec during construction. Only the
// options supplied are applied; everything else keeps its default.
type TrackSpecOption func(*TrackSpec)

// WithBasis sets the preferred size of the track.
func WithBasis(v float64) TrackSpecOption {
	return func(s *TrackSpec) { s.SetBasis(v) }
}

// WithMinSize sets the hard lower bound of the track.
func WithMinSize(v float64) TrackSpecOption {
	return func(s *TrackSpec) { s.SetMinSize(v) }
}

// WithMaxSize sets the hard upper bound of the track.
func WithMaxSize(v float64) TrackSpecOption {
	return func(s *TrackSpec) { s.SetMaxSize(v) }
}

// WithStretch sets the relative growth/shrink weight of the track.
func WithStretch(n int) TrackSpecOption {
	return func(s *TrackSpec) { s.SetStretch(n) }
}

// NewTrackSpec creates a spec with defaults (basis 0, min 0, max +Inf,
// stretch 1) and applies the given options through the validating setters.
func NewTrackSpec(opts ...TrackSpecOption) *TrackSpec {
	s := &TrackSpec{maxSize: math.Inf(1), stretch: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Basis returns the preferred size of the track.
func (s *TrackSpec) Basis() float64 { return s.basis }

// MinSize returns the hard lower bound of the track.
func (s *TrackSpec) MinSize() float64 { return s.minSize }

// MaxSize returns the hard upper bound of the track.
func (s *TrackSpec) MaxSize() float64 { return s.maxSize }

// Stretch returns the relative growth/shrink weight of the track.
func (s *TrackSpec) Stretch() int { return s.stretch }

// SetBasis stores max(0, v) and notifies handlers if the value changed.
func (s *TrackSpec) SetBasis(v float64) {
	s.setField(FieldBasis, &s.basis, math.Max(0, v))
}

// SetMinSize stores max(0, v) and notifies handlers if the value changed.
// No cross-field validation happens here; a min above the current max is
// resolved at sizer construction time, where the minimum wins.
func (s *TrackSpec) SetMinSize(v float64) {
	s.setField(FieldMinSize, &s.minSize, math.Max(0, v))
}

// SetMaxSize stores max(0, v) and notifies handlers if the value changed.
func (s *TrackSpec) SetMaxSize(v float64) {
	s.setField(FieldMaxSize, &s.maxSize, math.Max(0, v))
}

// SetStretch stores max(0, n) and notifies handlers if the value changed.
func (s *TrackSpec) SetStretch(n int) {
	if n < 0 {
		n = 0
	}
	if s.stretch == n {
		return
	}
	old := s.stretch
	s.stretch = n
	s.notify(SpecChange{Field: FieldStretch, Old: float64(old), New: float64(n)})
}

// OnChange registers fn to be called synchronously whenever a field of the
// spec changes value. The returned Unbind removes the handler.
func (s *TrackSpec) OnChange(fn func(SpecChange)) Unbind {
	h := &specHandler{fn: fn, active: true}
	s.handlers = append(s.handlers, h)
	return func() { h.active = false }
}

func (s *TrackSpec) setField(field string, dst *float64, v float64) {
	if *dst == v {
		return
	}
	old := *dst
	*dst = v
	s.notify(SpecChange{Field: field, Old: old, New: v})
}

// notify invokes handlers in registration order. Active handlers are copied
// into a fresh slice and inactive ones removed before any callback runs, so
// a handler may register or unbind handlers mid-notification: additions take
// effect from the next change, removals from the next handler invoked.
func (s *TrackSpec) notify(c SpecChange) {
	active := make([]*specHandler, 0, len(s.handlers))
	for _, h := range s.handlers {
		if h.active {
			active = append(active, h)
		}
	}
	s.handlers = active

	for _, h := range active {
		if h.active {
			h.fn(c)
		}
	}
}
