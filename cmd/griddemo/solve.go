package main

import (
	"fmt"

	"github.com/spf13/cobra"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
	"github.com/grindlemire/go-grid/pkg/gridfile"
)

var (
	solveWidth  float64
	solveHeight float64
)

var solveCmd = &cobra.Command{
	Use:   "solve <gridfile>",
	Short: "Run one layout pass and print each cell's rectangle",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Float64Var(&solveWidth, "width", 0, "available width (defaults to solve.width)")
	solveCmd.Flags().Float64Var(&solveHeight, "height", 0, "available height (defaults to solve.height)")
}

// solvedCell occupies one named cell and remembers the rectangle the grid
// assigned to it.
type solvedCell struct {
	cell gridfile.Cell
	rect grid.Rect
}

func (s *solvedCell) SizeLimits() grid.Limits { return s.cell.Limits() }
func (s *solvedCell) SetRect(r grid.Rect)     { s.rect = r }
func (s *solvedCell) Resized(w, h float64)    {}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	width, height := solveWidth, solveHeight
	if width <= 0 {
		width = cfg.Solve.Width
	}
	if height <= 0 {
		height = cfg.Solve.Height
	}

	def, err := gridfile.Load(args[0])
	if err != nil {
		return err
	}

	g := def.Grid()
	var cells []*solvedCell
	def.Place(g, func(c gridfile.Cell) grid.Item {
		sc := &solvedCell{cell: c}
		cells = append(cells, sc)
		return sc
	})
	g.RunLayoutPass(width, height)

	p := cfg.Solve.Precision
	min := g.MinSize()
	fmt.Printf("available  %.*f x %.*f\n", p, width, p, height)
	fmt.Printf("min size   %.*f x %.*f\n", p, min.Width, p, min.Height)
	for _, sc := range cells {
		fmt.Printf("%-16s left=%.*f top=%.*f width=%.*f height=%.*f\n",
			sc.cell.Name,
			p, sc.rect.Left, p, sc.rect.Top, p, sc.rect.Width, p, sc.rect.Height)
	}
	return nil
}
