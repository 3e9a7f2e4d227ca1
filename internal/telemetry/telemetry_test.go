package telemetry

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"

	"sandfall/internal/core"
)

func TestSampleCounts(t *testing.T) {
	g := core.NewGrid(4, 3)
	g.Set(0, 2, core.NewCell(core.KindSand)) // on the floor
	g.Set(1, 0, core.NewCell(core.KindSand)) // falling
	g.Set(2, 1, core.NewCell(core.KindSand)) // on a wall
	g.Set(2, 2, core.NewCell(core.KindWall))
	g.Set(3, 1, core.NewCell(core.KindSand)) // on sand
	g.Set(3, 2, core.NewCell(core.KindSand))

	s := Sample(7, g)
	if s.Tick != 7 || s.Air != 6 || s.Wall != 1 || s.Sand != 5 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.Settled != 4 {
		t.Fatalf("expected 4 settled cells, got %d", s.Settled)
	}
	if s.AtRest() {
		t.Fatal("falling sand means the grid is not at rest")
	}

	// Column heights are 1, 1, 1, 2.
	if math.Abs(s.MeanColumnHeight-1.25) > 1e-9 {
		t.Fatalf("mean height %v", s.MeanColumnHeight)
	}
	if math.Abs(s.StdColumnHeight-0.5) > 1e-9 {
		t.Fatalf("std height %v", s.StdColumnHeight)
	}
	if s.MaxColumnHeight != 2 {
		t.Fatalf("max height %d", s.MaxColumnHeight)
	}
}

func TestSampleSingleColumn(t *testing.T) {
	g := core.NewGrid(1, 3)
	g.Set(0, 2, core.NewCell(core.KindSand))
	s := Sample(0, g)
	if s.MeanColumnHeight != 1 || s.StdColumnHeight != 0 {
		t.Fatalf("single column stats %+v", s)
	}
	if !s.AtRest() {
		t.Fatal("sand on the floor is at rest")
	}
}

func TestWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for tick := 0; tick < 3; tick++ {
		if err := w.Write(TickStats{Tick: tick, Sand: tick * 2}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if w.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", w.Rows())
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "tick,air,wall,sand,settled") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if strings.Count(buf.String(), "tick,") != 1 {
		t.Fatal("header written more than once")
	}

	var rows []TickStats
	if err := gocsv.UnmarshalString(buf.String(), &rows); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 || rows[2].Sand != 4 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}
