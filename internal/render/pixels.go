// Package render turns sand grids into pixels and text.
package render

import (
	"image"
	"strings"

	"sandfall/internal/core"
)

// fillCellRGBA converts cells into RGBA pixels in buf using each cell's
// display color. buf must hold 4*len(cells) bytes.
func fillCellRGBA(buf []byte, cells []core.Cell) {
	for i, c := range cells {
		base := i * 4
		col := c.Color()
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders g at one pixel per cell, upscaled by scale.
func Image(g *core.Grid, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w, h := g.Width(), g.Height()
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	fillCellRGBA(base.Pix, g.Cells())
	if scale == 1 {
		return base
	}

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			src := base.PixOffset(x/scale, y/scale)
			dst := img.PixOffset(x, y)
			copy(img.Pix[dst:dst+4], base.Pix[src:src+4])
		}
	}
	return img
}

var glyphs = [core.KindCount]byte{
	core.KindAir:  '.',
	core.KindWall: '#',
	core.KindSand: 'o',
}

// ASCII draws g with one character per cell and a newline per row.
func ASCII(g *core.Grid) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			k := g.Get(x, y).Kind
			if k < core.KindCount {
				b.WriteByte(glyphs[k])
			} else {
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
