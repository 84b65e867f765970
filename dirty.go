package grid

// Invalidation state machine. A grid is in one of three effective states:
//
//   - Clean: nothing to do.
//   - Size-Dirty: track specs, spacing, insets, or membership changed. The
//     sizer boxes and aggregate limits must be rebuilt before any item is
//     repositioned.
//   - Position-Dirty: tracks are valid, only item rectangles are stale
//     (container resize, cell-assignment change).
//
// Size-Dirty always subsumes Position-Dirty: rebuilding the boxes implies a
// repositioning pass, and ensureFit enforces that ordering even when both
// flags are raised by the same batch of events.

// markSizeDirty flags track sizing as stale and schedules a pass.
func (g *Grid) markSizeDirty() {
	g.sizeDirty = true
	g.schedulePass()
}

// markPositionDirty flags item rectangles as stale and schedules a pass.
func (g *Grid) markPositionDirty() {
	g.posDirty = true
	g.schedulePass()
}

// ensureFit rebuilds stale track sizing. Clearing sizeDirty while raising
// posDirty is what guarantees a size-affecting change is visible before any
// position-only pass reads the boxes.
func (g *Grid) ensureFit() {
	if !g.sizeDirty {
		return
	}
	g.fit()
	g.sizeDirty = false
	g.posDirty = true
}

// schedulePass hands the scheduler a single coalesced flush. The pending
// flag collapses any number of dirtying events into one deferred invocation;
// events raised while a pass is running are re-scheduled after it completes
// so the running pass finishes with the snapshot it started from.
func (g *Grid) schedulePass() {
	if g.inPass {
		g.deferredSched = true
		return
	}
	if g.pending.Swap(true) {
		return
	}
	g.scheduler.Schedule(g.flushPass)
}

// flushPass is the deferred entry point. It clears the pending slot before
// running so dirtying events raised during the pass schedule a fresh one.
func (g *Grid) flushPass() {
	g.pending.Store(false)
	if !g.sizeDirty && !g.posDirty {
		return
	}
	if !g.hasSize {
		// No container size yet: only the aggregate limits can be kept
		// fresh. Rectangles wait for the first Resize or RunLayoutPass.
		g.ensureFit()
		g.posDirty = false
		return
	}
	g.RunLayoutPass(g.lastWidth, g.lastHeight)
}
