// Package sizer implements single-axis flexible space distribution.
//
// A [Box] holds the sizing constraints for one track (a row or a column):
// a preferred size hint, hard minimum and maximum bounds, and a stretch
// weight. [Distribute] solves the allocation problem for a list of boxes
// against a target extent, writing each box's final size such that the total
// matches the target whenever the aggregate bounds allow it.
//
// The main entry point is [Distribute]; the 2-D grid solver in the root
// package runs it once per axis.
package sizer
