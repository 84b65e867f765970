package grid

import (
	"math"
	"sync/atomic"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/pkg/sizer"
)

// Grid arranges items into a two-dimensional grid of rows and columns. Each
// track is governed by a [TrackSpec]; each item carries a [CellAssignment]
// naming the cell range it occupies.
//
// A grid is single-threaded: all mutation and layout happens on one logical
// thread of control, with the [Scheduler] as the only deferral point.
type Grid struct {
	rowSpecs []*TrackSpec
	colSpecs []*TrackSpec

	// Subscriptions to the current spec lists, released on replacement.
	rowUnbinds []Unbind
	colUnbinds []Unbind

	rowSpacing float64
	colSpacing float64
	insets     Insets

	// Members in insertion order plus the assignment side table. The side
	// table is keyed by item identity and outlives membership, so an
	// assignment made before AddItem (or kept across remove/re-add) holds.
	records     []*itemRecord
	byItem      map[Item]*itemRecord
	assignments map[Item]CellAssignment

	// Solved per-axis state, rebuilt by fit and filled in by layout passes.
	rowBoxes  []*sizer.Box
	colBoxes  []*sizer.Box
	rowStarts []float64
	colStarts []float64

	minSize Size
	maxSize Size

	// Invalidation state. sizeDirty implies the sizer boxes and aggregate
	// limits are stale; posDirty implies only item rectangles are.
	sizeDirty bool
	posDirty  bool

	// pending is the single-slot coalescing flag for deferred passes.
	pending atomic.Bool

	// inPass defers re-scheduling triggered by item callbacks until the
	// running pass has finished with its snapshot.
	inPass        bool
	deferredSched bool

	lastWidth  float64
	lastHeight float64
	hasSize    bool

	scheduler Scheduler
}

// Option configures a Grid during construction.
type Option func(*Grid)

// WithRowSpacing sets the fixed gap between adjacent rows.
func WithRowSpacing(v float64) Option {
	return func(g *Grid) { g.rowSpacing = math.Max(0, v) }
}

// WithColumnSpacing sets the fixed gap between adjacent columns.
func WithColumnSpacing(v float64) Option {
	return func(g *Grid) { g.colSpacing = math.Max(0, v) }
}

// WithInsets sets the container's border+padding contribution, subtracted
// from the available size before tracks are solved.
func WithInsets(i Insets) Option {
	return func(g *Grid) { g.insets = i }
}

// WithScheduler sets the deferral boundary used to coalesce layout passes.
func WithScheduler(s Scheduler) Option {
	return func(g *Grid) {
		if s != nil {
			g.scheduler = s
		}
	}
}

// New creates an empty grid. With no options it has zero spacing, zero
// insets, and runs deferred passes immediately.
func New(opts ...Option) *Grid {
	g := &Grid{
		byItem:      make(map[Item]*itemRecord),
		assignments: make(map[Item]CellAssignment),
		scheduler:   Immediate{},
		maxSize:     Size{Width: math.Inf(1), Height: math.Inf(1)},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetRowSpecs replaces the row spec list. The slice is copied, the grid
// re-subscribes to each spec's change event, and track sizing is marked
// stale. Specs may be shared between tracks when identical constraints are
// intended; only the list is copied, never the specs.
func (g *Grid) SetRowSpecs(specs []*TrackSpec) {
	g.rowSpecs, g.rowUnbinds = g.resubscribe(specs, g.rowUnbinds)
	g.markSizeDirty()
}

// SetColumnSpecs replaces the column spec list. Semantics match SetRowSpecs.
func (g *Grid) SetColumnSpecs(specs []*TrackSpec) {
	g.colSpecs, g.colUnbinds = g.resubscribe(specs, g.colUnbinds)
	g.markSizeDirty()
}

// RowSpecs returns a copy of the current row spec list.
func (g *Grid) RowSpecs() []*TrackSpec {
	return append([]*TrackSpec(nil), g.rowSpecs...)
}

// ColumnSpecs returns a copy of the current column spec list.
func (g *Grid) ColumnSpecs() []*TrackSpec {
	return append([]*TrackSpec(nil), g.colSpecs...)
}

func (g *Grid) resubscribe(specs []*TrackSpec, unbinds []Unbind) ([]*TrackSpec, []Unbind) {
	for _, unbind := range unbinds {
		unbind()
	}
	frozen := append([]*TrackSpec(nil), specs...)
	unbinds = unbinds[:0]
	for _, s := range frozen {
		unbinds = append(unbinds, s.OnChange(g.onSpecChange))
	}
	return frozen, unbinds
}

func (g *Grid) onSpecChange(SpecChange) {
	g.markSizeDirty()
}

// SetSpacing sets the fixed gap between adjacent rows and columns. Negative
// values clamp to zero. A change marks track sizing stale because the
// aggregate limits depend on spacing.
func (g *Grid) SetSpacing(row, col float64) {
	row = math.Max(0, row)
	col = math.Max(0, col)
	if row == g.rowSpacing && col == g.colSpacing {
		return
	}
	g.rowSpacing = row
	g.colSpacing = col
	g.markSizeDirty()
}

// Spacing returns the current row and column spacing.
func (g *Grid) Spacing() (row, col float64) {
	return g.rowSpacing, g.colSpacing
}

// SetInsets replaces the container's border+padding contribution.
func (g *Grid) SetInsets(i Insets) {
	if i == g.insets {
		return
	}
	g.insets = i
	g.markSizeDirty()
}

// AddItem appends items to the grid in order. An assignment stored earlier
// via SetCellAssignment is picked up; otherwise the item lands in cell
// (0, 0) with span 1x1.
func (g *Grid) AddItem(items ...Item) {
	for _, item := range items {
		if _, ok := g.byItem[item]; ok {
			continue
		}
		rec := &itemRecord{item: item}
		g.records = append(g.records, rec)
		g.byItem[item] = rec
	}
	g.markSizeDirty()
}

// RemoveItem removes an item from the grid. Its cell assignment is retained
// in the side table so a later re-add restores it; its cached rectangle is
// dropped so a re-add re-applies geometry. Returns true if the item was a
// member.
func (g *Grid) RemoveItem(item Item) bool {
	rec, ok := g.byItem[item]
	if !ok {
		return false
	}
	delete(g.byItem, item)
	for i, r := range g.records {
		if r == rec {
			g.records = append(g.records[:i], g.records[i+1:]...)
			break
		}
	}
	g.markSizeDirty()
	return true
}

// Items returns the grid's members in insertion order.
func (g *Grid) Items() []Item {
	items := make([]Item, len(g.records))
	for i, rec := range g.records {
		items[i] = rec.item
	}
	return items
}

// SetCellAssignment stores the cell assignment for an item. It never fails:
// negative indices and spans clamp immediately, out-of-range indices clamp
// against the live track count at layout time. Assigning to a non-member is
// allowed and takes effect when the item is added. A changed assignment on a
// member marks positions stale; track sizing is unaffected.
func (g *Grid) SetCellAssignment(item Item, a CellAssignment) {
	a = a.normalized()
	if stored, ok := g.assignments[item]; ok && stored == a {
		return
	}
	g.assignments[item] = a
	if _, member := g.byItem[item]; member {
		g.markPositionDirty()
	}
}

// CellAssignment returns the stored assignment for an item, or the default
// (0, 0, 1, 1) when none was ever set.
func (g *Grid) CellAssignment(item Item) CellAssignment {
	if a, ok := g.assignments[item]; ok {
		return a
	}
	return DefaultAssignment()
}

// Resize records the container's new outer size and marks positions stale.
// The actual recomputation happens in the next scheduled pass.
func (g *Grid) Resize(width, height float64) {
	g.lastWidth = width
	g.lastHeight = height
	g.hasSize = true
	g.markPositionDirty()
}

// MinSize returns the aggregate minimum size of the grid: the per-axis sums
// of track minimums plus spacing plus insets. Containers publish this
// upstream as their own lower size limit.
func (g *Grid) MinSize() Size {
	g.ensureFit()
	return g.minSize
}

// MaxSize returns the aggregate maximum size of the grid. Axes with any
// unbounded track report +Inf.
func (g *Grid) MaxSize() Size {
	g.ensureFit()
	return g.maxSize
}

// RunLayoutPass solves both axes against the given available size and
// applies the resulting rectangle to every item. Stale track sizing is
// rebuilt first, so a size-affecting change is always visible before
// positions are read.
//
// The pass runs on a snapshot of its inputs: mutations performed by item
// callbacks (SetRect, Resized) dirty the grid for the next pass and are
// never processed mid-pass. Running the pass twice with no intervening
// dirtying event applies nothing the second time.
func (g *Grid) RunLayoutPass(availableWidth, availableHeight float64) {
	g.lastWidth = availableWidth
	g.lastHeight = availableHeight
	g.hasSize = true

	g.inPass = true
	defer func() {
		g.inPass = false
		if g.deferredSched {
			g.deferredSched = false
			g.schedulePass()
		}
	}()

	g.ensureFit()
	g.posDirty = false

	// Snapshot membership and assignments together: a mutation raised by an
	// item callback must not be visible to items placed later in this pass.
	records := append([]*itemRecord(nil), g.records...)
	assignments := make([]CellAssignment, len(records))
	for i, rec := range records {
		assignments[i] = g.CellAssignment(rec.item)
	}

	contentW := math.Max(0, availableWidth-g.insets.Horizontal())
	contentH := math.Max(0, availableHeight-g.insets.Vertical())
	originX := g.insets.Left
	originY := g.insets.Top

	if n := len(g.colBoxes); n > 0 {
		sizer.Distribute(g.colBoxes, contentW-g.colSpacing*float64(n-1))
	}
	if n := len(g.rowBoxes); n > 0 {
		sizer.Distribute(g.rowBoxes, contentH-g.rowSpacing*float64(n-1))
	}
	g.colStarts = startOffsets(g.colBoxes, originX, g.colSpacing, g.colStarts)
	g.rowStarts = startOffsets(g.rowBoxes, originY, g.rowSpacing, g.rowStarts)

	debug.Log("grid: layout pass %dx%d tracks, %d items, available %.1fx%.1f",
		len(g.rowBoxes), len(g.colBoxes), len(records), availableWidth, availableHeight)

	for i, rec := range records {
		a := assignments[i]
		left, width := axisExtent(g.colStarts, g.colBoxes, a.Column, a.ColumnSpan, originX, contentW)
		top, height := axisExtent(g.rowStarts, g.rowBoxes, a.Row, a.RowSpan, originY, contentH)

		limits := rec.item.SizeLimits()
		width = limits.ClampWidth(width)
		height = limits.ClampHeight(height)

		g.applyRect(rec, Rect{Left: left, Top: top, Width: width, Height: height})
	}
}

// fit rebuilds the sizer boxes from the current specs and recomputes the
// aggregate min/max size.
func (g *Grid) fit() {
	g.rowBoxes = buildBoxes(g.rowSpecs)
	g.colBoxes = buildBoxes(g.colSpecs)

	rowMin, rowMax := aggregateLimits(g.rowBoxes, g.rowSpacing)
	colMin, colMax := aggregateLimits(g.colBoxes, g.colSpacing)

	g.minSize = Size{
		Width:  colMin + g.insets.Horizontal(),
		Height: rowMin + g.insets.Vertical(),
	}
	g.maxSize = Size{
		Width:  colMax + g.insets.Horizontal(),
		Height: rowMax + g.insets.Vertical(),
	}
}

// applyRect applies a computed rectangle, skipping the call entirely when
// nothing changed and signalling a resize only when the size component did.
func (g *Grid) applyRect(rec *itemRecord, r Rect) {
	if rec.applied && rec.rect == r {
		return
	}
	prev := rec.rect
	hadRect := rec.applied
	rec.rect = r
	rec.applied = true

	rec.item.SetRect(r)
	if !hadRect || prev.Width != r.Width || prev.Height != r.Height {
		rec.item.Resized(r.Width, r.Height)
	}
}
