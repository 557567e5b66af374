package solver

import (
	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/rules"
)

// model indexes a grid's corridor cells for the solvers. Cell i of the
// model is the i-th corridor cell in row-major order.
type model struct {
	cells    []domain.Position
	sight    [][]int // cells a lamp on i would light, i included
	clues    []clue
	cluesOf  [][]int // clue indexes next to cell i
	closes   [][]int // cells whose last sight cell is i
	segments [][]int // maximal horizontal and vertical corridor runs
}

type clue struct {
	pos   domain.Position
	value int
	cells []int // adjacent corridor cells
}

func newModel(g *domain.Grid) *model {
	m := &model{}
	index := make(map[domain.Position]int)
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		if cell.Kind() == domain.Corridor {
			index[p] = len(m.cells)
			m.cells = append(m.cells, p)
		}
		return true
	})
	n := len(m.cells)
	m.sight = make([][]int, n)
	m.cluesOf = make([][]int, n)
	m.closes = make([][]int, n)
	for i, p := range m.cells {
		last := i
		m.sight[i] = append(m.sight[i], i)
		for _, q := range rules.Sightline(g, p) {
			j := index[q]
			m.sight[i] = append(m.sight[i], j)
			last = max(last, j)
		}
		m.closes[last] = append(m.closes[last], i)
	}
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		if cell.Kind() != domain.Clue {
			return true
		}
		k := clue{pos: p, value: cell.Value()}
		for _, q := range rules.Neighbors(g, p) {
			if j, ok := index[q]; ok {
				k.cells = append(k.cells, j)
				m.cluesOf[j] = append(m.cluesOf[j], len(m.clues))
			}
		}
		m.clues = append(m.clues, k)
		return true
	})
	m.segments = segments(g, index)
	return m
}

// segments collects runs of two or more corridor cells along rows, then
// along columns.
func segments(g *domain.Grid, index map[domain.Position]int) [][]int {
	var out [][]int
	scan := func(outer, inner int, at func(o, i int) domain.Position) {
		for o := 0; o < outer; o++ {
			var run []int
			for i := 0; i <= inner; i++ {
				if i < inner {
					if j, ok := index[at(o, i)]; ok {
						run = append(run, j)
						continue
					}
				}
				if len(run) > 1 {
					out = append(out, run)
				}
				run = nil
			}
		}
	}
	scan(g.Height(), g.Width(), func(r, c int) domain.Position { return domain.Position{Row: r, Col: c} })
	scan(g.Width(), g.Height(), func(c, r int) domain.Position { return domain.Position{Row: r, Col: c} })
	return out
}

// feasible reports whether every clue could be met at all.
func (m *model) feasible() bool {
	for _, k := range m.clues {
		if k.value > len(k.cells) {
			return false
		}
	}
	return true
}

func (m *model) positions(lamp []bool) []domain.Position {
	var out []domain.Position
	for i, on := range lamp {
		if on {
			out = append(out, m.cells[i])
		}
	}
	return out
}
