// Package telemetry summarises sand worlds tick by tick and writes the
// summaries as CSV.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"sandfall/internal/core"
)

// TickStats summarises one grid state.
type TickStats struct {
	Tick int `csv:"tick"`

	Air  int `csv:"air"`
	Wall int `csv:"wall"`
	Sand int `csv:"sand"`

	// Settled counts sand cells that cannot fall straight down: the cell
	// below is missing or at least as hard as sand.
	Settled int `csv:"settled"`

	// Column heights are the number of sand cells in each column.
	MeanColumnHeight float64 `csv:"column_mean"`
	StdColumnHeight  float64 `csv:"column_std"`
	MaxColumnHeight  int     `csv:"column_max"`
}

// Sample computes the stats for g at the given tick.
func Sample(tick int, g *core.Grid) TickStats {
	s := TickStats{Tick: tick}
	w, h := g.Width(), g.Height()
	columns := make([]float64, w)
	sandHardness := core.KindSand.Hardness()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := g.Get(x, y)
			switch c.Kind {
			case core.KindAir:
				s.Air++
			case core.KindWall:
				s.Wall++
			case core.KindSand:
				s.Sand++
				columns[x]++
				below, ok := g.TryGet(x, y+1)
				if !ok || below.Hardness() >= sandHardness {
					s.Settled++
				}
			}
		}
	}

	for _, v := range columns {
		if int(v) > s.MaxColumnHeight {
			s.MaxColumnHeight = int(v)
		}
	}
	if len(columns) < 2 {
		s.MeanColumnHeight = stat.Mean(columns, nil)
		return s
	}
	s.MeanColumnHeight, s.StdColumnHeight = stat.MeanStdDev(columns, nil)
	return s
}

// AtRest reports whether every sand cell in s has settled.
func (s TickStats) AtRest() bool { return s.Settled == s.Sand }
