package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Coords addresses a grid position. Values outside the grid are valid inputs
// to the bounds-checking accessors and are never clamped.
type Coords struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Coords) Add(o Coords) Coords { return Coords{X: c.X + o.X, Y: c.Y + o.Y} }

// Kind enumerates the cell materials.
type Kind uint8

const (
	KindAir Kind = iota
	KindWall
	KindSand

	// KindCount is the number of kinds; rule tables are sized by it.
	KindCount
)

var kindNames = [KindCount]string{
	KindAir:  "air",
	KindWall: "wall",
	KindSand: "sand",
}

var kindHardness = [KindCount]int{
	KindAir:  2,
	KindWall: 100,
	KindSand: 100,
}

var kindColors = [KindCount]color.RGBA{
	KindAir:  {R: 255, G: 255, B: 255, A: 255},
	KindWall: {R: 0, G: 0, B: 0, A: 255},
	KindSand: {R: 255, G: 255, B: 0, A: 255},
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Hardness orders kinds for displacement and movement blocking.
func (k Kind) Hardness() int {
	if k < KindCount {
		return kindHardness[k]
	}
	return 0
}

// Color returns the base display color of the kind.
func (k Kind) Color() color.RGBA {
	if k < KindCount {
		return kindColors[k]
	}
	return color.RGBA{A: 255}
}

// ColorMode returns the color mode assigned to freshly created cells of k.
func (k Kind) ColorMode() ColorMode {
	return StaticColor(k.Color())
}

// ParseKind resolves a kind by its name, ignoring case.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := Kind(0); k < KindCount; k++ {
		if kindNames[k] == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("kind %q: %w", name, ErrUnknownKind)
}

// ColorMode selects between a fixed stored color and one derived from the
// cell kind when read. The zero value is dynamic.
type ColorMode struct {
	static bool
	color  color.RGBA
}

// StaticColor returns a mode that always reports c.
func StaticColor(c color.RGBA) ColorMode { return ColorMode{static: true, color: c} }

// DynamicColor returns a mode that derives the color from the cell kind.
func DynamicColor() ColorMode { return ColorMode{} }

// Static reports whether the mode stores a fixed color, and that color.
func (m ColorMode) Static() (color.RGBA, bool) { return m.color, m.static }

// Cell is the per-position state. Cells are plain values; the zero Cell is
// air with a derived color.
type Cell struct {
	Kind      Kind
	ColorMode ColorMode
}

// NewCell returns a cell of the given kind using the kind's default color mode.
func NewCell(kind Kind) Cell {
	return Cell{Kind: kind, ColorMode: kind.ColorMode()}
}

// DefaultCell returns the state cleared cells are reset to.
func DefaultCell() Cell { return Cell{} }

// Color returns the display color of the cell.
func (c Cell) Color() color.RGBA {
	if col, ok := c.ColorMode.Static(); ok {
		return col
	}
	return c.Kind.Color()
}

// Hardness is shorthand for c.Kind.Hardness().
func (c Cell) Hardness() int { return c.Kind.Hardness() }
