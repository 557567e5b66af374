package domain

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// LampSet is the play state of one puzzle: the corridor cells currently
// holding a lamp. It is bound to exactly one Grid at a time.
//
// LampSet is not safe for concurrent use; a host with several writers
// must serialize mutating calls.
type LampSet struct {
	grid  *Grid
	lamps mapset.Set[Position]
	subs  subscribers[*LampSet]
}

// NewLampSet returns an empty lamp set bound to g.
func NewLampSet(g *Grid) *LampSet {
	return &LampSet{grid: g, lamps: mapset.New[Position]()}
}

// Grid returns the grid the lamps are placed on.
func (l *LampSet) Grid() *Grid { return l.grid }

// Place puts a lamp on the corridor cell (r, c). Placing on a cell that
// already holds a lamp changes nothing and notifies no one.
func (l *LampSet) Place(r, c int) error {
	if err := l.checkCorridor("place lamp", r, c); err != nil {
		return err
	}
	p := Position{Row: r, Col: c}
	if l.lamps.Has(p) {
		return nil
	}
	l.lamps.Put(p)
	l.subs.notify(l)
	return nil
}

// Remove takes the lamp off the corridor cell (r, c), if there is one.
func (l *LampSet) Remove(r, c int) error {
	if err := l.checkCorridor("remove lamp", r, c); err != nil {
		return err
	}
	p := Position{Row: r, Col: c}
	if !l.lamps.Has(p) {
		return nil
	}
	l.lamps.Remove(p)
	l.subs.notify(l)
	return nil
}

// Has reports whether (r, c) holds a lamp. Any in-bounds cell may be
// queried regardless of its kind.
func (l *LampSet) Has(r, c int) (bool, error) {
	if !l.grid.InBounds(r, c) {
		return false, cellErr("has lamp", r, c, ErrOutOfBounds)
	}
	return l.lamps.Has(Position{Row: r, Col: c}), nil
}

// Contains is Has without bounds checking.
func (l *LampSet) Contains(p Position) bool { return l.lamps.Has(p) }

// Len returns the number of lamps placed.
func (l *LampSet) Len() int { return l.lamps.Size() }

// Positions returns every lamp in row-major order.
func (l *LampSet) Positions() []Position {
	out := make([]Position, 0, l.lamps.Size())
	l.lamps.Each(func(p Position) { out = append(out, p) })
	slices.SortFunc(out, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

// Reset removes every lamp and notifies listeners.
func (l *LampSet) Reset() {
	l.lamps = mapset.New[Position]()
	l.subs.notify(l)
}

// Rebind clears the set, binds it to g and notifies listeners. Listeners
// stay registered across puzzles.
func (l *LampSet) Rebind(g *Grid) {
	l.grid = g
	l.Reset()
}

// Subscribe registers fn to run after every committed change.
func (l *LampSet) Subscribe(fn func(*LampSet)) Subscription { return l.subs.add(fn) }

// Unsubscribe removes a listener. It reports whether id was registered.
func (l *LampSet) Unsubscribe(id Subscription) bool { return l.subs.remove(id) }

// Listeners returns the number of registered listeners.
func (l *LampSet) Listeners() int { return l.subs.len() }

func (l *LampSet) checkCorridor(op string, r, c int) error {
	if !l.grid.InBounds(r, c) {
		return cellErr(op, r, c, ErrOutOfBounds)
	}
	if l.grid.At(Position{Row: r, Col: c}).Kind() != Corridor {
		return cellErr(op, r, c, ErrInvalidCellKind)
	}
	return nil
}
