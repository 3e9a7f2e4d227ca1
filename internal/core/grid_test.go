package core

import (
	"slices"
	"testing"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	for i, c := range g.Cells() {
		if c != DefaultCell() {
			t.Fatalf("cell %d not default: %+v", i, c)
		}
		if c.Kind != KindAir {
			t.Fatalf("cell %d kind %v, expected air", i, c.Kind)
		}
	}
}

func TestExists(t *testing.T) {
	g := NewGrid(5, 4)
	for y := -2; y < 7; y++ {
		for x := -2; x < 8; x++ {
			want := x >= 0 && x < 5 && y >= 0 && y < 4
			if got := g.Exists(x, y); got != want {
				t.Fatalf("Exists(%d,%d)=%v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := NewGrid(6, 6)
	cell := Cell{Kind: KindSand, ColorMode: StaticColor(KindWall.Color())}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			g.Set(x, y, cell)
			if got := g.Get(x, y); got != cell {
				t.Fatalf("Get(%d,%d)=%+v after Set, expected %+v", x, y, got, cell)
			}
			tried, ok := g.TryGet(x, y)
			if !ok || tried != cell {
				t.Fatalf("TryGet(%d,%d)=%+v,%v disagrees with Get", x, y, tried, ok)
			}
			g.TrySet(x, y, NewCell(KindWall))
			if got := g.Get(x, y); got != NewCell(KindWall) {
				t.Fatalf("TrySet(%d,%d) did not write", x, y)
			}
		}
	}
}

func TestCheckedAccessorsOutOfRange(t *testing.T) {
	g := NewGrid(3, 3)
	before := slices.Clone(g.Cells())
	for _, c := range []Coords{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, 1}, {100, 100}} {
		if _, ok := g.TryGet(c.X, c.Y); ok {
			t.Fatalf("TryGet(%d,%d) should be absent", c.X, c.Y)
		}
		g.TrySet(c.X, c.Y, NewCell(KindSand))
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("TrySet out of range must not modify the grid")
	}
}

func TestUncheckedAccessorsPanic(t *testing.T) {
	g := NewGrid(3, 3)
	// (-1,1) maps to a valid flat index; it must still fault.
	mustPanic(t, "Get(-1,1)", func() { g.Get(-1, 1) })
	mustPanic(t, "Get(3,0)", func() { g.Get(3, 0) })
	mustPanic(t, "Set(0,3)", func() { g.Set(0, 3, Cell{}) })
	mustPanic(t, "Set(3,-1)", func() { g.Set(3, -1, Cell{}) })
}

func TestIterMaskedFullStencil(t *testing.T) {
	full, err := NewMask("full", []bool{true, true, true, true, true, true, true, true, true}, 3, Coords{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := NewGrid(10, 10)
	g.Set(5, 5, NewCell(KindWall))
	g.Set(4, 6, NewCell(KindSand))

	var got []Coords
	it := g.IterMasked(full.At(Coords{X: 5, Y: 5}))
	for {
		c, cell, ok := it.Next()
		if !ok {
			break
		}
		if cell != g.Get(c.X, c.Y) {
			t.Fatalf("iterator cell at %v does not match grid", c)
		}
		got = append(got, c)
	}
	want := []Coords{
		{4, 4}, {5, 4}, {6, 4},
		{4, 5}, {5, 5}, {6, 5},
		{4, 6}, {5, 6}, {6, 6},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("masked coords %v, expected %v", got, want)
	}

	// Exhausted iterators stay exhausted.
	if _, _, ok := it.Next(); ok {
		t.Fatal("iterator should not restart")
	}

	got = got[:0]
	for c := range g.IterMasked(full.At(Coords{})).All() {
		got = append(got, c)
	}
	want = []Coords{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if !slices.Equal(got, want) {
		t.Fatalf("corner coords %v, expected %v", got, want)
	}
}

func TestIterMaskedSkipsUnselected(t *testing.T) {
	g := NewGrid(5, 5)
	var got []Coords
	for c, cell := range g.IterMasked(NearMask.At(Coords{X: 2, Y: 2})).All() {
		if cell.Kind != KindAir {
			t.Fatalf("unexpected kind %v", cell.Kind)
		}
		got = append(got, c)
	}
	want := []Coords{{2, 1}, {1, 2}, {3, 2}, {2, 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("near coords %v, expected %v", got, want)
	}
}

func TestIterMaskedReadsLive(t *testing.T) {
	g := NewGrid(3, 1)
	it := g.IterMasked(RowMask.At(Coords{X: 1, Y: 0}))
	if c, _, _ := it.Next(); c != (Coords{0, 0}) {
		t.Fatalf("first coord %v", c)
	}
	g.Set(1, 0, NewCell(KindSand))
	if _, cell, _ := it.Next(); cell.Kind != KindSand {
		t.Fatalf("iterator should observe live grid, got %v", cell.Kind)
	}
}

func TestFill(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill(NewCell(KindWall))
	for i, c := range g.Cells() {
		if c.Kind != KindWall {
			t.Fatalf("cell %d kind %v after Fill", i, c.Kind)
		}
	}
}
