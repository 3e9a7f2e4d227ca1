package physics

import (
	"math"

	"sandfall/internal/core"
)

// Shape is the geometry of a hitbox, in cell units. Rect and Circle are the
// only shapes.
type Shape interface {
	shape()
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Circle is declared for completeness; circle overlap is not implemented.
type Circle struct {
	X, Y, R float64
}

func (Rect) shape()   {}
func (Circle) shape() {}

// Hitbox tests a shape against grid cells at least as hard as Hardness.
type Hitbox struct {
	Shape    Shape
	Hardness int
	// BorderCollision treats cells outside the grid as blocking.
	BorderCollision bool
}

// NewHitbox returns a hitbox that collides with the grid border.
func NewHitbox(shape Shape, hardness int) Hitbox {
	return Hitbox{Shape: shape, Hardness: hardness, BorderCollision: true}
}

// Collides reports whether any cell under the hitbox blocks it.
func (h Hitbox) Collides(g *core.Grid) bool {
	switch s := h.Shape.(type) {
	case Rect:
		x0 := int(math.Floor(s.X))
		y0 := int(math.Floor(s.Y))
		w := int(math.Floor(s.W))
		hgt := int(math.Floor(s.H))
		for x := x0; x < x0+w; x++ {
			for y := y0; y < y0+hgt; y++ {
				cell, ok := g.TryGet(x, y)
				if !ok {
					if h.BorderCollision {
						return true
					}
					continue
				}
				if cell.Hardness() >= h.Hardness {
					return true
				}
			}
		}
		return false
	case Circle:
		return false
	default:
		return false
	}
}
