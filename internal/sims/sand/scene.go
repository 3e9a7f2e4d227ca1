package sand

import (
	"fmt"

	"sandfall/internal/core"
)

// Scene describes the cells stamped onto a freshly reset grid.
type Scene struct {
	Stamps []Stamp `yaml:"stamps"`
	Fills  []Fill  `yaml:"fills"`
}

// Stamp writes Kind into every cell a predefined mask selects when anchored
// at (X, Y).
type Stamp struct {
	Mask string `yaml:"mask"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"`
}

// Fill writes Kind into a W*H rectangle whose top-left corner is (X, Y).
// Parts outside the grid are ignored.
type Fill struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
	Kind string `yaml:"kind"`
}

// DefaultScene returns the scene of the built-in configuration: a small sand
// cluster above a wall ledge.
func DefaultScene() Scene { return DefaultConfig().Scene }

// Validate resolves every mask and kind name.
func (s Scene) Validate() error {
	for i, st := range s.Stamps {
		if _, err := core.MaskByName(st.Mask); err != nil {
			return fmt.Errorf("stamp %d: %w", i, err)
		}
		if _, err := core.ParseKind(st.Kind); err != nil {
			return fmt.Errorf("stamp %d: %w", i, err)
		}
	}
	for i, fl := range s.Fills {
		if _, err := core.ParseKind(fl.Kind); err != nil {
			return fmt.Errorf("fill %d: %w", i, err)
		}
	}
	return nil
}

// Queue adds the scene's writes to f. Nothing is queued if the scene does not
// validate. Stamps read g to find in-bounds cells; the grid is not modified.
func (s Scene) Queue(g *core.Grid, f *core.Frame) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, st := range s.Stamps {
		mask, _ := core.MaskByName(st.Mask)
		kind, _ := core.ParseKind(st.Kind)
		queueMask(g, f, mask.At(core.Coords{X: st.X, Y: st.Y}), kind)
	}
	for _, fl := range s.Fills {
		kind, _ := core.ParseKind(fl.Kind)
		for y := fl.Y; y < fl.Y+fl.H; y++ {
			for x := fl.X; x < fl.X+fl.W; x++ {
				f.Add(core.SetCell{At: core.Coords{X: x, Y: y}, Cell: core.NewCell(kind)})
			}
		}
	}
	return nil
}

// queueMask adds a SetCell for every in-bounds cell m selects and returns how
// many were queued.
func queueMask(g *core.Grid, f *core.Frame, m core.Mask, kind core.Kind) int {
	n := 0
	it := g.IterMasked(m)
	for {
		at, _, ok := it.Next()
		if !ok {
			return n
		}
		f.Add(core.SetCell{At: at, Cell: core.NewCell(kind)})
		n++
	}
}
