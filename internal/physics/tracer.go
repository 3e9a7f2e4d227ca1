package physics

import (
	"math"

	"sandfall/internal/core"
)

// DefaultCellSize is the edge length of a grid cell in world units.
const DefaultCellSize = 16.0

// arriveRadius is the distance at which a traced point counts as arrived.
const arriveRadius = 3.0

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// StopReason classifies why a traced movement halted.
type StopReason uint8

const (
	StopNatural StopReason = iota
	StopCollision
	StopBorder
)

// String returns a short label for the reason.
func (r StopReason) String() string {
	switch r {
	case StopNatural:
		return "natural"
	case StopCollision:
		return "collision"
	case StopBorder:
		return "border"
	default:
		return "unknown"
	}
}

// MoveBy is the outcome of a traced movement: the reachable point and why the
// walk stopped there.
type MoveBy struct {
	X, Y   float64
	StopBy StopReason
}

// Point returns the final position.
func (m MoveBy) Point() Point { return Point{X: m.X, Y: m.Y} }

// Tracer walks rays through a grid whose cells are CellSize world units wide.
type Tracer struct {
	CellSize float64
}

// MovePointTo traces start towards dest with the default cell size.
func MovePointTo(g *core.Grid, start, dest Point, hardness int) MoveBy {
	return Tracer{CellSize: DefaultCellSize}.MovePointTo(g, start, dest, hardness)
}

// MovePointTo walks the segment from start to dest one cell boundary at a
// time. It stops at the first cell outside the grid (StopBorder) or with
// hardness >= hardness (StopCollision), returning the point where the ray
// entered that cell. Reaching the destination cell, or coming within a few
// units of dest, returns dest with StopNatural. Destinations are clamped to
// non-negative coordinates. The walk is capped at one step per grid cell; if
// the cap runs out the start point is returned.
func (t Tracer) MovePointTo(g *core.Grid, start, dest Point, hardness int) MoveBy {
	size := t.CellSize
	if size <= 0 {
		size = DefaultCellSize
	}
	dest.X = math.Max(dest.X, 0)
	dest.Y = math.Max(dest.Y, 0)

	vx := dest.X - start.X
	vy := dest.Y - start.Y
	if vx == 0 && vy == 0 {
		return MoveBy{X: start.X, Y: start.Y, StopBy: StopNatural}
	}

	destX := int(math.Floor(dest.X / size))
	destY := int(math.Floor(dest.Y / size))

	p := start
	cx := cellOf(p.X, vx, size)
	cy := cellOf(p.Y, vy, size)

	limit := g.Width() * g.Height()
	for i := 0; i < limit; i++ {
		if !g.Exists(cx, cy) {
			return MoveBy{X: p.X, Y: p.Y, StopBy: StopBorder}
		}
		if g.Get(cx, cy).Hardness() >= hardness {
			return MoveBy{X: p.X, Y: p.Y, StopBy: StopCollision}
		}
		if (cx == destX && cy == destY) || math.Hypot(p.X-dest.X, p.Y-dest.Y) <= arriveRadius {
			return MoveBy{X: dest.X, Y: dest.Y, StopBy: StopNatural}
		}

		dx, bx := boundaryStep(p.X, vx, size)
		dy, by := boundaryStep(p.Y, vy, size)
		switch {
		case dx < dy:
			p.X = bx
			p.Y += dx * vy
		case dy < dx:
			p.X += dy * vx
			p.Y = by
		default:
			p.X = bx
			p.Y = by
		}
		cx = cellOf(p.X, vx, size)
		cy = cellOf(p.Y, vy, size)
	}
	return MoveBy{X: start.X, Y: start.Y, StopBy: StopNatural}
}

// cellOf returns the cell index containing coordinate v. A coordinate lying
// exactly on a boundary belongs to the lower cell when travelling backwards.
func cellOf(v, dir, size float64) int {
	c := math.Floor(v / size)
	if dir < 0 && math.Mod(v, size) == 0 {
		c--
	}
	return int(c)
}

// boundaryStep returns the ray parameter needed to reach the next cell
// boundary along one axis and that boundary's coordinate. Axes without
// motion never reach a boundary.
func boundaryStep(v, dir, size float64) (float64, float64) {
	if dir == 0 {
		return math.Inf(1), v
	}
	var next float64
	if dir > 0 {
		next = (math.Floor(v/size) + 1) * size
	} else {
		next = (math.Ceil(v/size) - 1) * size
	}
	return (next - v) / dir, next
}
