package core

// Action is a deferred grid mutation. The set of actions is closed; see
// SetCell, ClearCell, SetKind, SetColorMode and Swap.
type Action interface {
	apply(g *Grid)
}

// SetCell replaces the full cell at At. Out-of-bounds targets are ignored.
type SetCell struct {
	At   Coords
	Cell Cell
}

// ClearCell resets the cell at At to the default. At must be in bounds.
type ClearCell struct {
	At Coords
}

// SetKind changes only the kind of the cell at At. At must be in bounds. A
// static color survives the change, so the cell keeps drawing its old color;
// use SetCell with NewCell to take on the new kind's color.
type SetKind struct {
	At   Coords
	Kind Kind
}

// SetColorMode changes only the color mode of the cell at At. At must be in
// bounds.
type SetColorMode struct {
	At   Coords
	Mode ColorMode
}

// Swap exchanges the full state of A and B. Both must be in bounds.
type Swap struct {
	A, B Coords
}

func (a SetCell) apply(g *Grid) { g.TrySet(a.At.X, a.At.Y, a.Cell) }

func (a ClearCell) apply(g *Grid) { g.Set(a.At.X, a.At.Y, DefaultCell()) }

func (a SetKind) apply(g *Grid) {
	c := g.Get(a.At.X, a.At.Y)
	c.Kind = a.Kind
	g.Set(a.At.X, a.At.Y, c)
}

func (a SetColorMode) apply(g *Grid) {
	c := g.Get(a.At.X, a.At.Y)
	c.ColorMode = a.Mode
	g.Set(a.At.X, a.At.Y, c)
}

func (a Swap) apply(g *Grid) {
	first := g.Get(a.A.X, a.A.Y)
	second := g.Get(a.B.X, a.B.Y)
	g.Set(a.A.X, a.A.Y, second)
	g.Set(a.B.X, a.B.Y, first)
}

// Frame collects pending actions. Actions drain last-in first-out: the most
// recently added action is applied first.
type Frame struct {
	actions []Action
}

// NewFrame returns an empty frame.
func NewFrame() *Frame { return &Frame{} }

// Add queues an action.
func (f *Frame) Add(a Action) { f.actions = append(f.actions, a) }

// Poll removes and returns the most recently added action.
func (f *Frame) Poll() (Action, bool) {
	n := len(f.actions)
	if n == 0 {
		return nil, false
	}
	a := f.actions[n-1]
	f.actions[n-1] = nil
	f.actions = f.actions[:n-1]
	return a, true
}

// Len returns the number of pending actions.
func (f *Frame) Len() int { return len(f.actions) }

// Clear drops all pending actions without applying them.
func (f *Frame) Clear() {
	clear(f.actions)
	f.actions = f.actions[:0]
}

// ApplyFrame drains f, applying each action to the grid in LIFO order.
func (g *Grid) ApplyFrame(f *Frame) {
	for {
		a, ok := f.Poll()
		if !ok {
			return
		}
		a.apply(g)
	}
}
