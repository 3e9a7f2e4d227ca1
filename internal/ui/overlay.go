//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"sandfall/internal/physics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Tracer resolves point movement against the world.
type Tracer interface {
	Trace(start, dest physics.Point, hardness int) physics.MoveBy
}

// Overlay draws the movement probe: a point placed with P and traced every
// frame towards the cursor. T toggles it; [ and ] change the probe hardness.
type Overlay struct {
	tracer   Tracer
	cellSize float64
	scale    int
	hardness int

	show     bool
	hasProbe bool
	probe    physics.Point
	cursor   physics.Point
	last     physics.MoveBy

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a world with the given cell size,
// drawn at scale screen pixels per cell.
func NewOverlay(t Tracer, cellSize float64, scale, hardness int) *Overlay {
	if cellSize <= 0 {
		cellSize = physics.DefaultCellSize
	}
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{tracer: t, cellSize: cellSize, scale: scale, hardness: hardness, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles probe keys and re-traces from the probe to the cursor at
// screen position (cx, cy).
func (o *Overlay) Update(cx, cy int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.show = !o.show
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		o.hardness = max(o.hardness-10, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		o.hardness += 10
	}
	o.cursor = o.toWorld(float64(cx), float64(cy))
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.probe = o.cursor
		o.hasProbe = true
	}
	if o.hasProbe {
		o.last = o.tracer.Trace(o.probe, o.cursor, o.hardness)
	}
}

// Draw renders the probe path onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hasProbe {
		return
	}
	px, py := o.toScreen(o.probe)
	rx, ry := o.toScreen(o.last.Point())
	cx, cy := o.toScreen(o.cursor)

	col := stopColor(o.last.StopBy)
	o.drawLine(screen, rx, ry, cx, cy, 1, color.RGBA{R: 120, G: 120, B: 130, A: 140})
	o.drawLine(screen, px, py, rx, ry, 2, col)
	o.drawPoint(screen, px, py, 5, color.RGBA{R: 60, G: 120, B: 220, A: 255})
	o.drawPoint(screen, rx, ry, 7, col)

	label := fmt.Sprintf("%s (%.1f, %.1f) h=%d", o.last.StopBy, o.last.X, o.last.Y, o.hardness)
	text.Draw(screen, label, basicfont.Face7x13, 4, 14, color.RGBA{R: 40, G: 40, B: 50, A: 255})
}

func (o *Overlay) toWorld(sx, sy float64) physics.Point {
	k := o.cellSize / float64(o.scale)
	return physics.Point{X: sx * k, Y: sy * k}
}

func (o *Overlay) toScreen(p physics.Point) (float64, float64) {
	k := float64(o.scale) / o.cellSize
	return p.X * k, p.Y * k
}

func stopColor(r physics.StopReason) color.RGBA {
	switch r {
	case physics.StopCollision:
		return color.RGBA{R: 220, G: 50, B: 40, A: 255}
	case physics.StopBorder:
		return color.RGBA{R: 240, G: 150, B: 30, A: 255}
	default:
		return color.RGBA{R: 40, G: 170, B: 70, A: 255}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
