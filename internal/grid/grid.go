package grid

import "fmt"

// Float is a dense row-major raster of real values (elevation, clay%, ...).
type Float struct {
	Rows, Cols int
	Cells      []float64
}

func NewFloat(rows, cols int) *Float {
	return &Float{Rows: rows, Cols: cols, Cells: make([]float64, rows*cols)}
}

func NewFloatFrom(rows, cols int, cells []float64) (*Float, error) {
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("grid: %d cells given for %dx%d grid", len(cells), rows, cols)
	}
	return &Float{Rows: rows, Cols: cols, Cells: cells}, nil
}

func (g *Float) At(r, c int) float64     { return g.Cells[r*g.Cols+c] }
func (g *Float) Set(r, c int, v float64) { g.Cells[r*g.Cols+c] = v }
func (g *Float) Dims() (int, int)        { return g.Rows, g.Cols }

// Int holds ordinal classifications (drainage class, patch labels).
type Int struct {
	Rows, Cols int
	Cells      []int
}

func NewInt(rows, cols int) *Int {
	return &Int{Rows: rows, Cols: cols, Cells: make([]int, rows*cols)}
}

func NewIntFrom(rows, cols int, cells []int) (*Int, error) {
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("grid: %d cells given for %dx%d grid", len(cells), rows, cols)
	}
	return &Int{Rows: rows, Cols: cols, Cells: cells}, nil
}

func (g *Int) At(r, c int) int     { return g.Cells[r*g.Cols+c] }
func (g *Int) Set(r, c int, v int) { g.Cells[r*g.Cols+c] = v }
func (g *Int) Dims() (int, int)    { return g.Rows, g.Cols }

// Bool marks per-cell feasibility.
type Bool struct {
	Rows, Cols int
	Cells      []bool
}

func NewBool(rows, cols int) *Bool {
	return &Bool{Rows: rows, Cols: cols, Cells: make([]bool, rows*cols)}
}

func NewBoolFrom(rows, cols int, cells []bool) (*Bool, error) {
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("grid: %d cells given for %dx%d grid", len(cells), rows, cols)
	}
	return &Bool{Rows: rows, Cols: cols, Cells: cells}, nil
}

func (g *Bool) At(r, c int) bool     { return g.Cells[r*g.Cols+c] }
func (g *Bool) Set(r, c int, v bool) { g.Cells[r*g.Cols+c] = v }
func (g *Bool) Dims() (int, int)     { return g.Rows, g.Cols }

// CountTrue returns the number of set cells.
func (g *Bool) CountTrue() int {
	n := 0
	for _, v := range g.Cells {
		if v {
			n++
		}
	}
	return n
}

type shaped interface {
	Dims() (int, int)
}

// SameDims reports whether all grids share identical dimensions. Grids from
// different bands must be co-registered before entering the pipeline.
func SameDims(grids ...shaped) bool {
	if len(grids) < 2 {
		return true
	}
	r0, c0 := grids[0].Dims()
	for _, g := range grids[1:] {
		r, c := g.Dims()
		if r != r0 || c != c0 {
			return false
		}
	}
	return true
}
