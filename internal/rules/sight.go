// Package rules evaluates a lamp placement against a grid: which cells
// are lit, which lamps see each other, which clues are met, and whether
// the puzzle is solved. Every query is a fresh scan; nothing is cached.
package rules

import "svw.info/akari/internal/domain"

// Lamps is read access to a set of placed lamps.
type Lamps interface {
	Contains(p domain.Position) bool
}

// Hit is what a ray ran into.
type Hit int

const (
	HitEdge  Hit = iota // left the grid
	HitBlock            // wall or clue
	HitLamp
)

// FirstObstructionOrLamp walks from origin (exclusive) in direction d and
// returns the first lamp or non-corridor cell it meets. For HitEdge the
// returned position is the first one outside the grid.
func FirstObstructionOrLamp(g *domain.Grid, lamps Lamps, origin domain.Position, d domain.Direction) (domain.Position, Hit) {
	p := origin.Step(d)
	for g.InBounds(p.Row, p.Col) {
		if g.At(p).Kind() != domain.Corridor {
			return p, HitBlock
		}
		if lamps.Contains(p) {
			return p, HitLamp
		}
		p = p.Step(d)
	}
	return p, HitEdge
}

// Sightline returns the corridor cells visible from origin along the four
// rays, origin excluded, in Up/Down/Left/Right order.
func Sightline(g *domain.Grid, origin domain.Position) []domain.Position {
	var out []domain.Position
	for _, d := range domain.Directions {
		for p := origin.Step(d); g.InBounds(p.Row, p.Col) && g.At(p).Kind() == domain.Corridor; p = p.Step(d) {
			out = append(out, p)
		}
	}
	return out
}

// Neighbors returns the in-bounds orthogonal neighbours of p.
func Neighbors(g *domain.Grid, p domain.Position) []domain.Position {
	out := make([]domain.Position, 0, 4)
	for _, d := range domain.Directions {
		n := p.Step(d)
		if g.InBounds(n.Row, n.Col) {
			out = append(out, n)
		}
	}
	return out
}

func seesLamp(g *domain.Grid, lamps Lamps, p domain.Position) bool {
	for _, d := range domain.Directions {
		if _, hit := FirstObstructionOrLamp(g, lamps, p, d); hit == HitLamp {
			return true
		}
	}
	return false
}

func cellError(op string, r, c int, err error) error {
	return &domain.CellError{Op: op, Pos: domain.Position{Row: r, Col: c}, Err: err}
}
