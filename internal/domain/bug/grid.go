package bug

import "fmt"

// Grid is a rectangular 2D array of non-negative pixel values.
// Cells are stored row-major so that degenerate shapes (3x0, 0x3) keep
// both dimensions through transposes.
type Grid struct {
	rows  int
	cols  int
	cells []int
}

// NewGrid returns a zero-filled grid of the given shape.
func NewGrid(rows, cols int) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// GridFromRows copies a slice of rows into a new grid.
// All rows must have the same length and every value must be non-negative.
func GridFromRows(rows [][]int) (Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}

	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, r, len(row), cols)
		}
		for c, v := range row {
			if v < 0 {
				return Grid{}, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidPixel, v, r, c)
			}
			g.cells[r*cols+c] = v
		}
	}
	return g, nil
}

// Rows returns the number of rows
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g Grid) Cols() int {
	return g.cols
}

// At returns the value at (row, col), or 0 outside the grid.
func (g Grid) At(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0
	}
	return g.cells[row*g.cols+col]
}

func (g Grid) set(row, col, v int) {
	g.cells[row*g.cols+col] = v
}

// ToRows copies the grid into a freshly allocated slice of rows.
func (g Grid) ToRows() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Equal reports whether both grids have the same shape and values.
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of non-zero cells.
func (g Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

func (g Grid) clone() Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// transpose moves (r, c) to (c, r).
func (g Grid) transpose() Grid {
	out := NewGrid(g.cols, g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.set(c, r, g.At(r, c))
		}
	}
	return out
}

// reverseCols mirrors the grid across its vertical axis.
func (g Grid) reverseCols() Grid {
	out := NewGrid(g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.set(r, g.cols-1-c, g.At(r, c))
		}
	}
	return out
}

// reverseRows mirrors the grid across its horizontal axis.
func (g Grid) reverseRows() Grid {
	out := NewGrid(g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		copy(out.cells[(g.rows-1-r)*g.cols:(g.rows-r)*g.cols], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// upsample replicates every cell into a ys x xs block.
func (g Grid) upsample(xs, ys int) Grid {
	out := NewGrid(g.rows*ys, g.cols*xs)
	for r := 0; r < out.rows; r++ {
		for c := 0; c < out.cols; c++ {
			out.set(r, c, g.At(r/ys, c/xs))
		}
	}
	return out
}

// dilate ORs the grid into a (rows+2m) x (cols+2m) canvas at every offset
// (i, j) with 0 <= i, j < 2m+1. A cell ends up set iff some source cell lies
// within Chebyshev distance m of its centred position.
func (g Grid) dilate(m int) Grid {
	side := 2*m + 1
	out := NewGrid(g.rows+2*m, g.cols+2*m)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			for r := 0; r < g.rows; r++ {
				base := (r+i)*out.cols + j
				for c := 0; c < g.cols; c++ {
					out.cells[base+c] |= g.cells[r*g.cols+c]
				}
			}
		}
	}
	return out
}

// filled returns a grid of the same shape with every cell set to v.
func (g Grid) filled(v int) Grid {
	out := NewGrid(g.rows, g.cols)
	for i := range out.cells {
		out.cells[i] = v
	}
	return out
}
