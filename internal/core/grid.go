package core

import "fmt"

// Grid stores a fixed-size 2D array of cells in row-major order.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions. All cells start as the
// default cell.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice for renderers. Index with y*Width()+x.
func (g *Grid) Cells() []Cell { return g.cells }

// Exists reports whether (x, y) lies inside the grid.
func (g *Grid) Exists(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// TryGet returns the cell at (x, y) if it exists.
func (g *Grid) TryGet(x, y int) (Cell, bool) {
	if !g.Exists(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.w+x], true
}

// Get returns the cell at (x, y). It panics when (x, y) is outside the grid;
// callers are expected to have validated the coordinate.
func (g *Grid) Get(x, y int) Cell {
	g.mustExist(x, y)
	return g.cells[y*g.w+x]
}

// TrySet writes c at (x, y) if the coordinate exists and does nothing
// otherwise.
func (g *Grid) TrySet(x, y int, c Cell) {
	if g.Exists(x, y) {
		g.cells[y*g.w+x] = c
	}
}

// Set writes c at (x, y). It panics when (x, y) is outside the grid.
func (g *Grid) Set(x, y int, c Cell) {
	g.mustExist(x, y)
	g.cells[y*g.w+x] = c
}

// Fill overwrites every cell with c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// IterMasked returns an iterator over the cells selected by m at its current
// anchor.
func (g *Grid) IterMasked(m Mask) *MaskedIterator {
	return &MaskedIterator{grid: g, mask: m}
}

func (g *Grid) mustExist(x, y int) {
	if !g.Exists(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
}
