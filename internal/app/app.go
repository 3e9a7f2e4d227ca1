//go:build ebiten

package app

import (
	"errors"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	brush    core.Mask
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config, seed int64) *Game {
	cfg.Normalize()
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(world, cfg.HUDWidth),
		overlay:  ui.NewOverlay(world, world.Config().CellSize, cfg.Scale, cfg.Hardness),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     seed,
		brush:    core.StarMask,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.cycleBrush()
	}

	g.paint()
	g.hud.Update(g.gridWidth())
	g.overlay.Update(ebiten.CursorPosition())

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// paint stamps the brush under the cursor: sand with the left button, wall
// with the right. Clicks on the HUD are ignored.
func (g *Game) paint() {
	var kind core.Kind
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		kind = core.KindSand
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		kind = core.KindWall
	default:
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.gridWidth() {
		return
	}
	at := core.Coords{X: mx / g.scale, Y: my / g.scale}
	if !g.world.Grid().Exists(at.X, at.Y) {
		return
	}
	g.world.Paint(g.brush, at, kind)
}

func (g *Game) cycleBrush() {
	names := core.MaskNames()
	for i, name := range names {
		if name == g.brush.Name() {
			next, err := core.MaskByName(names[(i+1)%len(names)])
			if err == nil {
				g.brush = next
			}
			return
		}
	}
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Grid(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return g.gridWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.world.Size().W * g.scale }

// Run opens the window and blocks until it is closed.
func Run(world *sand.World, cfg *Config, seed int64) error {
	game := New(world, cfg, seed)
	size := world.Size()

	ebiten.SetWindowTitle("sandfall - " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
