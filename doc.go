// Package grid provides a constraint-driven 2-D grid layout engine.
//
// A [Grid] arranges items into rows and columns described by [TrackSpec]
// values (preferred size, hard min/max bounds, stretch weight). Solving is
// built on the single-axis distribution algorithm in pkg/sizer, run once per
// axis, with items mapped onto their spanned cell rectangles afterwards.
//
// The engine is a library component: the host supplies elements through the
// [Item] interface and a deferral point through [Scheduler], and the grid
// keeps itself consistent through a size/position invalidation protocol that
// coalesces repeated changes into single layout passes.
//
// Error policy is clamp, never throw: negative sizes, inverted bounds,
// out-of-range cell indices, and infeasible aggregate constraints all degrade
// to well-defined geometry instead of failing.
package grid
