package sand

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sandfall/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":              "64",
		"h":              "48",
		"seed":           "7",
		"iteration":      "12",
		"diagonal_slide": "true",
		"cell_size":      "8",
	})
	if c.Width != 64 || c.Height != 48 || c.Seed != 7 || c.Iteration != 12 || !c.DiagonalSlide || c.CellSize != 8 {
		t.Fatalf("unexpected config %+v", c)
	}

	bad := FromMap(map[string]string{"w": "-4", "h": "abc", "iteration": "-1", "cell_size": "0"})
	def := DefaultConfig()
	if bad.Width != def.Width || bad.Height != def.Height || bad.Iteration != 0 || bad.CellSize != def.CellSize {
		t.Fatalf("invalid values should keep defaults, got %+v", bad)
	}
	if FromMap(nil).Width != def.Width {
		t.Fatal("nil map should give defaults")
	}
}

func TestIterations(t *testing.T) {
	c := DefaultConfig()
	if c.Iterations() != 1000 {
		t.Fatalf("expected default 1000, got %d", c.Iterations())
	}
	c.Iteration = 3
	if c.Iterations() != 3 {
		t.Fatalf("explicit iteration ignored, got %d", c.Iterations())
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sand.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
width: 32
height: 24
diagonal_slide: true
scene:
  stamps:
    - mask: star
      x: 5
      y: 5
      kind: wall
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 24 || !cfg.DiagonalSlide {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Seed != DefaultConfig().Seed || cfg.CellSize != 16 {
		t.Fatal("keys missing from the file should keep their defaults")
	}
	if len(cfg.Scene.Stamps) != 1 || cfg.Scene.Stamps[0].Mask != "star" {
		t.Fatalf("stamps not replaced: %+v", cfg.Scene.Stamps)
	}

	world := NewWithConfig(cfg)
	world.Reset(0)
	if world.Grid().Get(5, 4).Kind != core.KindWall {
		t.Fatal("loaded scene should be stamped on reset")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, "width: [")); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := LoadConfig(writeConfig(t, "width: 0\n")); err == nil {
		t.Fatal("expected size error")
	}
	_, err := LoadConfig(writeConfig(t, "scene:\n  stamps:\n    - {mask: hexagon, kind: sand}\n"))
	if !errors.Is(err, core.ErrUnknownMask) {
		t.Fatalf("expected ErrUnknownMask, got %v", err)
	}
}

func TestWithOverridesKeepsBase(t *testing.T) {
	base := DefaultConfig()
	base.Width = 12
	base.Scene = Scene{}
	c := base.WithOverrides(map[string]string{"h": "9", "unknown": "1"})
	if c.Width != 12 || c.Height != 9 || len(c.Scene.Stamps) != 0 {
		t.Fatalf("overrides should start from the receiver, got %+v", c)
	}
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "..", "configs", "sand.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	world := NewWithConfig(cfg)
	world.Reset(0)
	if err := world.SceneErr(); err != nil {
		t.Fatalf("scene: %v", err)
	}
	if world.Name() != "sand-slide" {
		t.Fatalf("expected sand-slide, got %s", world.Name())
	}
	if countKind(world.Grid(), core.KindSand) == 0 || countKind(world.Grid(), core.KindWall) == 0 {
		t.Fatal("shipped scene should place sand and walls")
	}
}

func TestDefaultConfigFromEmbeddedYAML(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 100 || c.Height != 100 || c.Seed != 42 || c.CellSize != 16 || c.Iteration != 0 || c.DiagonalSlide {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	c.Scene.Stamps[0].Kind = "wall"
	if DefaultConfig().Scene.Stamps[0].Kind != "sand" {
		t.Fatal("each DefaultConfig call should return an independent copy")
	}
}
