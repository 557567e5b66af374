package rules

import "svw.info/akari/internal/domain"

// IsLit reports whether the corridor cell (r, c) holds a lamp or sees one
// along an unobstructed ray.
func IsLit(g *domain.Grid, lamps Lamps, r, c int) (bool, error) {
	if !g.InBounds(r, c) {
		return false, cellError("is lit", r, c, domain.ErrOutOfBounds)
	}
	p := domain.Position{Row: r, Col: c}
	if g.At(p).Kind() != domain.Corridor {
		return false, cellError("is lit", r, c, domain.ErrInvalidCellKind)
	}
	return lit(g, lamps, p), nil
}

func lit(g *domain.Grid, lamps Lamps, p domain.Position) bool {
	return lamps.Contains(p) || seesLamp(g, lamps, p)
}

// IsLampIllegal reports whether the lamp at (r, c) sees another lamp.
// The relation is symmetric.
func IsLampIllegal(g *domain.Grid, lamps Lamps, r, c int) (bool, error) {
	if !g.InBounds(r, c) {
		return false, cellError("is lamp illegal", r, c, domain.ErrOutOfBounds)
	}
	p := domain.Position{Row: r, Col: c}
	if !lamps.Contains(p) {
		return false, cellError("is lamp illegal", r, c, domain.ErrNoLampPresent)
	}
	return seesLamp(g, lamps, p), nil
}

// IsClueSatisfied reports whether exactly as many orthogonal neighbours of
// the clue at (r, c) hold lamps as the clue's number.
func IsClueSatisfied(g *domain.Grid, lamps Lamps, r, c int) (bool, error) {
	if !g.InBounds(r, c) {
		return false, cellError("is clue satisfied", r, c, domain.ErrOutOfBounds)
	}
	p := domain.Position{Row: r, Col: c}
	cell := g.At(p)
	if cell.Kind() != domain.Clue {
		return false, cellError("is clue satisfied", r, c, domain.ErrInvalidCellKind)
	}
	return AdjacentLamps(g, lamps, p) == cell.Value(), nil
}

// AdjacentLamps counts lamps on the in-bounds orthogonal neighbours of p.
func AdjacentLamps(g *domain.Grid, lamps Lamps, p domain.Position) int {
	n := 0
	for _, q := range Neighbors(g, p) {
		if lamps.Contains(q) {
			n++
		}
	}
	return n
}

// IsSolved reports whether every corridor is lit, every clue is satisfied
// and no lamp is illegal. Cells are scanned row-major and the scan stops
// at the first violation.
func IsSolved(g *domain.Grid, lamps Lamps) bool {
	solved := true
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		switch cell.Kind() {
		case domain.Corridor:
			if lamps.Contains(p) {
				solved = !seesLamp(g, lamps, p)
			} else {
				solved = seesLamp(g, lamps, p)
			}
		case domain.Clue:
			solved = AdjacentLamps(g, lamps, p) == cell.Value()
		case domain.Wall:
		}
		return solved
	})
	return solved
}
