package sand

import (
	"sandfall/internal/core"
	"sandfall/internal/physics"
)

// World couples a grid with the scheduler that evolves it and the frame used
// to mutate it.
type World struct {
	cfg Config

	grid    *core.Grid
	frame   *core.Frame
	sched   *Scheduler
	rng     *core.RNG
	display []uint8

	tick     int
	sceneErr error
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
// The grid starts with every cell at its default; call Reset to stamp the
// scene.
func NewWithConfig(cfg Config) *World {
	if cfg.CellSize <= 0 {
		cfg.CellSize = physics.DefaultCellSize
	}
	grid := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	rng := core.NewRNG(cfg.Seed)
	sched := NewScheduler(rng, cfg.Iterations())
	sched.DiagonalSlide = cfg.DiagonalSlide
	w := &World{
		cfg:     cfg,
		grid:    grid,
		frame:   core.NewFrame(),
		sched:   sched,
		rng:     rng,
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	w.rebuildDisplay()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string {
	if w.sched.DiagonalSlide {
		return "sand-slide"
	}
	return "sand"
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the per-cell kind buffer, refreshed after every tick.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the simulated grid.
func (w *World) Grid() *core.Grid { return w.grid }

// Frame exposes the action buffer shared with the scheduler.
func (w *World) Frame() *core.Frame { return w.frame }

// Scheduler exposes the tick scheduler.
func (w *World) Scheduler() *Scheduler { return w.sched }

// Config returns the configuration, reflecting any parameter changes.
func (w *World) Config() Config { return w.cfg }

// Tick returns the number of ticks run since the last reset.
func (w *World) Tick() int { return w.tick }

// SceneErr reports why the last Reset could not stamp the scene, if it
// failed.
func (w *World) SceneErr() error { return w.sceneErr }

// Reset clears the grid, reseeds the scheduler and stamps the scene. A zero
// seed selects the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.tick = 0
	w.grid.Fill(core.DefaultCell())
	w.frame.Clear()
	w.sceneErr = w.cfg.Scene.Queue(w.grid, w.frame)
	w.grid.ApplyFrame(w.frame)
	w.rebuildDisplay()
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	w.sched.Update(w.grid, w.frame)
	w.tick++
	w.rebuildDisplay()
}

// Paint writes kind into every in-bounds cell m selects when anchored at at,
// and returns the number of cells written.
func (w *World) Paint(m core.Mask, at core.Coords, kind core.Kind) int {
	n := queueMask(w.grid, w.frame, m.At(at), kind)
	w.grid.ApplyFrame(w.frame)
	w.rebuildDisplay()
	return n
}

// Trace resolves a point moving from start towards dest against the current
// grid using the configured cell size.
func (w *World) Trace(start, dest physics.Point, hardness int) physics.MoveBy {
	return physics.Tracer{CellSize: w.cfg.CellSize}.MovePointTo(w.grid, start, dest, hardness)
}

func (w *World) rebuildDisplay() {
	for i, c := range w.grid.Cells() {
		w.display[i] = uint8(c.Kind)
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("sand-slide", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.DiagonalSlide = true
		return NewWithConfig(c)
	})
}
