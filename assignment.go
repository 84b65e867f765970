package grid

// CellAssignment locates an item within the grid: the leading row and column
// it occupies and how many consecutive tracks it spans on each axis.
//
// Assignment never fails. Negative indices and spans are clamped here;
// indices at or beyond the track count are clamped to the last valid track
// at layout time, not at assignment time, so an assignment can be made
// before the specs it refers to exist.
type CellAssignment struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
}

// DefaultAssignment returns the assignment every item starts with:
// cell (0, 0) spanning a single row and column.
func DefaultAssignment() CellAssignment {
	return CellAssignment{RowSpan: 1, ColumnSpan: 1}
}

// normalized clamps indices to be non-negative and spans to at least 1.
func (a CellAssignment) normalized() CellAssignment {
	if a.Row < 0 {
		a.Row = 0
	}
	if a.Column < 0 {
		a.Column = 0
	}
	if a.RowSpan < 1 {
		a.RowSpan = 1
	}
	if a.ColumnSpan < 1 {
		a.ColumnSpan = 1
	}
	return a
}
