package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
	"github.com/grindlemire/go-grid/pkg/gridfile"
)

// reloadMsg carries a freshly parsed definition (or the error that kept it
// from parsing) from the file watcher into the update loop.
type reloadMsg struct {
	def *gridfile.Definition
	err error
}

// cellBox occupies one named cell in the live preview.
type cellBox struct {
	cell gridfile.Cell
	rect grid.Rect
}

func (b *cellBox) SizeLimits() grid.Limits { return b.cell.Limits() }
func (b *cellBox) SetRect(r grid.Rect)     { b.rect = r }
func (b *cellBox) Resized(w, h float64)    {}

type model struct {
	path   string
	cfg    *config.Config
	styles theme

	g     *grid.Grid
	cells []*cellBox

	width  int
	height int
	err    error
}

func newModel(path string, def *gridfile.Definition, cfg *config.Config) *model {
	m := &model{
		path:   path,
		cfg:    cfg,
		styles: newTheme(cfg.Render.Theme),
	}
	m.load(def)
	return m
}

// load swaps in a new definition and, once the terminal size is known,
// re-solves immediately so the next View reflects it.
func (m *model) load(def *gridfile.Definition) {
	m.g = def.Grid()
	m.cells = nil
	def.Place(m.g, func(c gridfile.Cell) grid.Item {
		b := &cellBox{cell: c}
		m.cells = append(m.cells, b)
		return b
	})
	m.solve()
}

func (m *model) solve() {
	if m.width > 0 && m.height > 1 {
		// The bottom line is reserved for the status bar.
		m.g.RunLayoutPass(float64(m.width), float64(m.height-1))
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.solve()
	case reloadMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.load(msg.def)
	}
	return m, nil
}

func (m *model) View() string {
	if m.width == 0 || m.height < 2 {
		return ""
	}

	c := newCanvas(m.width, m.height-1, m.cfg.Render.ASCII)
	for i, b := range m.cells {
		label := ""
		if m.cfg.Render.ShowLabels {
			label = b.cell.Name
		}
		c.drawBox(b.rect, label, i)
	}

	status := m.statusLine()
	return c.render(m.styles.cells) + "\n" + status
}

func (m *model) statusLine() string {
	if m.err != nil {
		return m.styles.errText.Render("reload error: " + m.err.Error())
	}
	min := m.g.MinSize()
	return m.styles.status.Render(fmt.Sprintf(
		"%s  %dx%d  min %.0fx%.0f  q to quit",
		m.path, m.width, m.height-1, min.Width, min.Height))
}
