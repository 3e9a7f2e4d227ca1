package sand

import "sandfall/internal/core"

// rule decides the actions for one sampled cell.
type rule func(s *Scheduler, g *core.Grid, f *core.Frame, at core.Coords, c core.Cell)

// rules maps every kind to its rule. Kinds without behavior map to nil.
var rules = [core.KindCount]rule{
	core.KindAir:  nil,
	core.KindWall: nil,
	core.KindSand: fallSand,
}

var (
	down      = core.Coords{Y: 1}
	downLeft  = core.Coords{X: -1, Y: 1}
	downRight = core.Coords{X: 1, Y: 1}
)

// fallSand swaps sand with a softer cell directly below it. Resting on a hard
// cell, it picks a lower diagonal at random and tries to slide there.
func fallSand(s *Scheduler, g *core.Grid, f *core.Frame, at core.Coords, c core.Cell) {
	below := at.Add(down)
	under, ok := g.TryGet(below.X, below.Y)
	if !ok {
		return
	}
	if under.Hardness() < c.Hardness() {
		f.Add(core.Swap{A: at, B: below})
		return
	}

	diag := at.Add(downLeft)
	if s.rng.Bool() {
		diag = at.Add(downRight)
	}
	target, ok := g.TryGet(diag.X, diag.Y)
	if !ok {
		return
	}
	if s.DiagonalSlide && target.Hardness() < c.Hardness() {
		f.Add(core.Swap{A: at, B: diag})
	}
}
