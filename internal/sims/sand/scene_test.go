package sand

import (
	"errors"
	"testing"

	"sandfall/internal/core"
)

func TestSceneQueueDoesNotMutate(t *testing.T) {
	g := core.NewGrid(10, 10)
	f := core.NewFrame()
	if err := DefaultScene().Queue(g, f); err != nil {
		t.Fatalf("queue: %v", err)
	}
	if f.Len() != 8+20 {
		t.Fatalf("expected 28 queued writes, got %d", f.Len())
	}
	if countKind(g, core.KindAir) != 100 {
		t.Fatal("queueing must not touch the grid")
	}
	g.ApplyFrame(f)
	// Fill cells past the 10x10 grid edge are ignored.
	if countKind(g, core.KindWall) != 0 || countKind(g, core.KindSand) != 8 {
		t.Fatalf("unexpected result: %d walls, %d sand", countKind(g, core.KindWall), countKind(g, core.KindSand))
	}
}

func TestSceneStampClipsToGrid(t *testing.T) {
	g := core.NewGrid(4, 4)
	f := core.NewFrame()
	s := Scene{Stamps: []Stamp{{Mask: "far", X: 0, Y: 0, Kind: "wall"}}}
	if err := s.Queue(g, f); err != nil {
		t.Fatalf("queue: %v", err)
	}
	if f.Len() != 3 {
		t.Fatalf("corner far stamp should queue 3 cells, got %d", f.Len())
	}
}

func TestSceneQueueRejectsUnknownNames(t *testing.T) {
	g := core.NewGrid(4, 4)
	cases := []struct {
		scene Scene
		want  error
	}{
		{Scene{Stamps: []Stamp{{Mask: "blob", Kind: "sand"}}}, core.ErrUnknownMask},
		{Scene{Stamps: []Stamp{{Mask: "row", Kind: "water"}}}, core.ErrUnknownKind},
		{Scene{Fills: []Fill{{W: 1, H: 1, Kind: "lava"}}}, core.ErrUnknownKind},
	}
	for i, tc := range cases {
		f := core.NewFrame()
		// A valid stamp first: nothing should be queued when a later entry fails.
		tc.scene.Stamps = append([]Stamp{{Mask: "star", X: 1, Y: 1, Kind: "sand"}}, tc.scene.Stamps...)
		err := tc.scene.Queue(g, f)
		if !errors.Is(err, tc.want) {
			t.Errorf("case %d: expected %v, got %v", i, tc.want, err)
		}
		if f.Len() != 0 {
			t.Errorf("case %d: %d actions queued despite error", i, f.Len())
		}
	}
}

func TestResetReportsSceneError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene = Scene{Fills: []Fill{{W: 2, H: 2, Kind: "glass"}}}
	world := NewWithConfig(cfg)
	world.Reset(0)
	if !errors.Is(world.SceneErr(), core.ErrUnknownKind) {
		t.Fatalf("expected scene error, got %v", world.SceneErr())
	}
	if countKind(world.Grid(), core.KindAir) != 100*100 {
		t.Fatal("failed scene should leave the grid cleared")
	}
}
