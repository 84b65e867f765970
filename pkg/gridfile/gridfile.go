// Package gridfile loads declarative grid definitions from TOML documents.
//
// A definition names the row and column tracks, the spacing between them,
// and a list of named cells. It converts directly into a configured
// [grid.Grid] plus the per-cell assignments and limits, so tools can
// describe layouts in files instead of code.
//
// A minimal document:
//
//	row_spacing = 8
//	column_spacing = 8
//
//	[[rows]]
//	basis = 300
//	min = 50
//
//	[[columns]]
//	basis = 200
//	min = 50
//	stretch = 0
//
//	[[cells]]
//	name = "sidebar"
//	row = 0
//	column = 0
//	row_span = 2
package gridfile

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	grid "github.com/grindlemire/go-grid"
)

// Track describes one row or column. Max and Stretch are pointers so the
// document can tell "omitted" apart from zero: an omitted max is unbounded
// and an omitted stretch is the default of 1.
type Track struct {
	Basis   float64  `toml:"basis"`
	Min     float64  `toml:"min"`
	Max     *float64 `toml:"max"`
	Stretch *int     `toml:"stretch"`
}

// Spec converts the track into a live spec. Out-of-range values clamp the
// same way the spec setters do.
func (t Track) Spec() *grid.TrackSpec {
	opts := []grid.TrackSpecOption{
		grid.WithBasis(t.Basis),
		grid.WithMinSize(t.Min),
	}
	if t.Max != nil {
		opts = append(opts, grid.WithMaxSize(*t.Max))
	}
	if t.Stretch != nil {
		opts = append(opts, grid.WithStretch(*t.Stretch))
	}
	return grid.NewTrackSpec(opts...)
}

// Cell is a named occupant of the grid. Omitted spans default to 1; omitted
// width/height limits leave the cell unconstrained on that side.
type Cell struct {
	Name       string   `toml:"name"`
	Row        int      `toml:"row"`
	Column     int      `toml:"column"`
	RowSpan    int      `toml:"row_span"`
	ColumnSpan int      `toml:"column_span"`
	MinWidth   float64  `toml:"min_width"`
	MinHeight  float64  `toml:"min_height"`
	MaxWidth   *float64 `toml:"max_width"`
	MaxHeight  *float64 `toml:"max_height"`
}

// Assignment converts the cell's placement fields. Zero spans are treated as
// omitted and default to 1.
func (c Cell) Assignment() grid.CellAssignment {
	a := grid.CellAssignment{
		Row:        c.Row,
		Column:     c.Column,
		RowSpan:    c.RowSpan,
		ColumnSpan: c.ColumnSpan,
	}
	if a.RowSpan == 0 {
		a.RowSpan = 1
	}
	if a.ColumnSpan == 0 {
		a.ColumnSpan = 1
	}
	return a
}

// Limits converts the cell's optional intrinsic size bounds.
func (c Cell) Limits() grid.Limits {
	l := grid.Limits{
		MinWidth:  math.Max(0, c.MinWidth),
		MinHeight: math.Max(0, c.MinHeight),
		MaxWidth:  math.Inf(1),
		MaxHeight: math.Inf(1),
	}
	if c.MaxWidth != nil {
		l.MaxWidth = *c.MaxWidth
	}
	if c.MaxHeight != nil {
		l.MaxHeight = *c.MaxHeight
	}
	return l
}

// Definition is a parsed grid document.
type Definition struct {
	RowSpacing    float64 `toml:"row_spacing"`
	ColumnSpacing float64 `toml:"column_spacing"`

	Insets struct {
		Top    float64 `toml:"top"`
		Right  float64 `toml:"right"`
		Bottom float64 `toml:"bottom"`
		Left   float64 `toml:"left"`
	} `toml:"insets"`

	Rows    []Track `toml:"rows"`
	Columns []Track `toml:"columns"`
	Cells   []Cell  `toml:"cells"`
}

// Parse decodes and validates a grid document.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse grid definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses a grid document from disk.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// validate rejects the few things that cannot clamp into sense: unnamed and
// duplicate cells. Numeric fields are left to the spec setters' clamping.
func (d *Definition) validate() error {
	seen := make(map[string]struct{}, len(d.Cells))
	for i, c := range d.Cells {
		if c.Name == "" {
			return fmt.Errorf("cell %d has no name", i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("duplicate cell name %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// InsetsValue converts the document's insets table.
func (d *Definition) InsetsValue() grid.Insets {
	return grid.Insets{
		Top:    d.Insets.Top,
		Right:  d.Insets.Right,
		Bottom: d.Insets.Bottom,
		Left:   d.Insets.Left,
	}
}

// Grid builds a configured grid from the definition. Cells are not added;
// callers own the items occupying them and attach each one with
// [Definition.Place] or manually.
func (d *Definition) Grid(opts ...grid.Option) *grid.Grid {
	base := []grid.Option{
		grid.WithRowSpacing(d.RowSpacing),
		grid.WithColumnSpacing(d.ColumnSpacing),
		grid.WithInsets(d.InsetsValue()),
	}
	g := grid.New(append(base, opts...)...)

	rows := make([]*grid.TrackSpec, len(d.Rows))
	for i, t := range d.Rows {
		rows[i] = t.Spec()
	}
	cols := make([]*grid.TrackSpec, len(d.Columns))
	for i, t := range d.Columns {
		cols[i] = t.Spec()
	}
	g.SetRowSpecs(rows)
	g.SetColumnSpecs(cols)
	return g
}

// Place attaches one item per cell, in document order, storing each cell's
// assignment before membership so the first layout pass sees it. The build
// function receives the cell and returns the item that will occupy it; a nil
// return skips the cell.
func (d *Definition) Place(g *grid.Grid, build func(Cell) grid.Item) {
	for _, c := range d.Cells {
		item := build(c)
		if item == nil {
			continue
		}
		g.SetCellAssignment(item, c.Assignment())
		g.AddItem(item)
	}
}
