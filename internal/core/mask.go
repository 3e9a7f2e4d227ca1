package core

import (
	"fmt"
	"iter"
	"strings"
)

// Mask is a rectangular boolean stencil with a declared center. Center is the
// stencil cell treated as the origin; Coords is where that origin sits on the
// grid. The stencil itself is never modified after construction, so copies of
// a Mask share it safely.
type Mask struct {
	name   string
	data   []bool
	stride int

	Center Coords
	Coords Coords
}

// NewMask validates and builds a mask. The stencil is copied.
func NewMask(name string, data []bool, stride int, center Coords) (Mask, error) {
	if stride <= 0 {
		return Mask{}, fmt.Errorf("mask %q: stride %d: %w", name, stride, ErrInvalidMask)
	}
	if len(data)%stride != 0 {
		return Mask{}, fmt.Errorf("mask %q: %d cells not a multiple of stride %d: %w", name, len(data), stride, ErrInvalidMask)
	}
	return Mask{
		name:   name,
		data:   append([]bool(nil), data...),
		stride: stride,
		Center: center,
	}, nil
}

// MustMask is NewMask that panics on an invalid stencil. It is meant for
// package-level mask tables.
func MustMask(name string, data []bool, stride int, center Coords) Mask {
	m, err := NewMask(name, data, stride, center)
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the mask identifier.
func (m Mask) Name() string { return m.name }

// Width returns the stencil stride.
func (m Mask) Width() int { return m.stride }

// Height returns the number of stencil rows.
func (m Mask) Height() int {
	if m.stride == 0 {
		return 0
	}
	return len(m.data) / m.stride
}

// Get reports the stencil value at (x, y) in stencil space.
func (m Mask) Get(x, y int) bool {
	return m.data[y*m.stride+x]
}

// At returns a copy of m anchored at c.
func (m Mask) At(c Coords) Mask {
	m.Coords = c
	return m
}

// String draws the stencil with '*' for selected cells.
func (m Mask) String() string {
	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.stride; x++ {
			if m.Get(x, y) {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// MaskedIterator walks the grid cells selected by a mask. It reads the grid
// live, is single-pass, and must not be used across a mutation of the grid.
type MaskedIterator struct {
	grid *Grid
	mask Mask
	idx  int
}

// Next returns the next selected in-bounds coordinate and its current cell.
// Selected stencil cells that fall outside the grid are skipped.
func (it *MaskedIterator) Next() (Coords, Cell, bool) {
	m := it.mask
	for it.idx < len(m.data) {
		i := it.idx
		it.idx++
		if !m.data[i] {
			continue
		}
		x := m.Coords.X - m.Center.X + i%m.stride
		y := m.Coords.Y - m.Center.Y + i/m.stride
		if !it.grid.Exists(x, y) {
			continue
		}
		return Coords{X: x, Y: y}, it.grid.Get(x, y), true
	}
	return Coords{}, Cell{}, false
}

// All adapts the iterator for range loops. It drains the same iterator, so
// ranging twice yields nothing the second time.
func (it *MaskedIterator) All() iter.Seq2[Coords, Cell] {
	return func(yield func(Coords, Cell) bool) {
		for {
			c, cell, ok := it.Next()
			if !ok || !yield(c, cell) {
				return
			}
		}
	}
}
