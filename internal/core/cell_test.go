package core

import (
	"errors"
	"testing"
)

func TestKindProperties(t *testing.T) {
	cases := []struct {
		kind     Kind
		name     string
		hardness int
	}{
		{KindAir, "air", 2},
		{KindWall, "wall", 100},
		{KindSand, "sand", 100},
	}
	for _, tc := range cases {
		if tc.kind.String() != tc.name {
			t.Errorf("%v: name %q", tc.kind, tc.kind.String())
		}
		if tc.kind.Hardness() != tc.hardness {
			t.Errorf("%v: hardness %d, expected %d", tc.kind, tc.kind.Hardness(), tc.hardness)
		}
		parsed, err := ParseKind(" " + tc.name + " ")
		if err != nil || parsed != tc.kind {
			t.Errorf("ParseKind(%q)=%v,%v", tc.name, parsed, err)
		}
	}
	if _, err := ParseKind("lava"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestCellColor(t *testing.T) {
	if got := (Cell{Kind: KindSand}).Color(); got != KindSand.Color() {
		t.Fatalf("dynamic sand color %v", got)
	}
	fixed := KindWall.Color()
	c := Cell{Kind: KindSand, ColorMode: StaticColor(fixed)}
	if c.Color() != fixed {
		t.Fatalf("static color ignored: %v", c.Color())
	}
	if col, ok := NewCell(KindAir).ColorMode.Static(); !ok || col != KindAir.Color() {
		t.Fatal("NewCell should store the kind color statically")
	}
	if _, ok := DefaultCell().ColorMode.Static(); ok {
		t.Fatal("default cell should derive its color")
	}
}
