package sand

import "sandfall/internal/core"

// DefaultIteration returns the per-tick sample count for a w*h grid: one
// tenth of its area.
func DefaultIteration(w, h int) int {
	return w * h / 10
}

// Scheduler advances a grid by sampling random cells and applying the rule of
// each sampled cell's kind.
type Scheduler struct {
	// Iteration is the number of samples taken per tick.
	Iteration int
	// DiagonalSlide lets sand resting on a hard cell slide into a softer
	// diagonal neighbor. When false the diagonal candidate is still drawn
	// and bounds-checked, but never displaced.
	DiagonalSlide bool

	rng *core.RNG
}

// NewScheduler returns a scheduler drawing from rng.
func NewScheduler(rng *core.RNG, iteration int) *Scheduler {
	return &Scheduler{Iteration: iteration, rng: rng}
}

// Update runs one tick. Every sample is applied before the next one is
// drawn, so cells moved early in a tick are visible to later samples. Cells
// are drawn uniformly with replacement. f is empty when Update returns.
func (s *Scheduler) Update(g *core.Grid, f *core.Frame) {
	w, h := g.Width(), g.Height()
	for i := 0; i < s.Iteration; i++ {
		at := core.Coords{X: s.rng.IntN(w), Y: s.rng.IntN(h)}
		s.Sample(g, f, at)
	}
}

// Sample evaluates the cell at at and applies the resulting actions.
func (s *Scheduler) Sample(g *core.Grid, f *core.Frame, at core.Coords) {
	s.Evaluate(g, f, at)
	g.ApplyFrame(f)
}

// Evaluate queues the actions decided by the rule for the cell at at without
// applying them. The grid is only read.
func (s *Scheduler) Evaluate(g *core.Grid, f *core.Frame, at core.Coords) {
	cell := g.Get(at.X, at.Y)
	if cell.Kind >= core.KindCount {
		return
	}
	if r := rules[cell.Kind]; r != nil {
		r(s, g, f, at, cell)
	}
}
