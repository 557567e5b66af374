package domain

import (
	"fmt"
	"strings"
)

// Grid is the static definition of a puzzle. It is never mutated after
// construction, so one Grid may be shared freely.
type Grid struct {
	width, height int
	cells         []Cell // row-major
}

// NewGrid builds a grid from rows of cell codes. Rows must be non-empty
// and of equal length.
func NewGrid(codes [][]int) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidGrid)
	}
	h, w := len(codes), len(codes[0])
	g := &Grid{width: w, height: h, cells: make([]Cell, 0, w*h)}
	for r, row := range codes {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), w)
		}
		for c, code := range row {
			cell, err := CellFromCode(code)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			g.cells = append(g.cells, cell)
		}
	}
	return g, nil
}

// MustGrid is NewGrid for constant puzzle data; it panics on error.
func MustGrid(codes [][]int) *Grid {
	g, err := NewGrid(codes)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// At returns the cell at p without bounds checking; p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[p.Row*g.width+p.Col]
}

// Cell returns the cell at (r, c).
func (g *Grid) Cell(r, c int) (Cell, error) {
	if !g.InBounds(r, c) {
		return Cell{}, cellErr("cell", r, c, ErrOutOfBounds)
	}
	return g.At(Position{Row: r, Col: c}), nil
}

// CellKind returns the kind of the cell at (r, c).
func (g *Grid) CellKind(r, c int) (Kind, error) {
	cell, err := g.Cell(r, c)
	if err != nil {
		return Wall, err
	}
	return cell.Kind(), nil
}

// ClueValue returns the number of the clue at (r, c).
func (g *Grid) ClueValue(r, c int) (int, error) {
	cell, err := g.Cell(r, c)
	if err != nil {
		return 0, err
	}
	if cell.Kind() != Clue {
		return 0, cellErr("clue value", r, c, ErrInvalidCellKind)
	}
	return cell.Value(), nil
}

// Each calls fn for every cell in row-major order until fn returns false.
func (g *Grid) Each(fn func(p Position, cell Cell) bool) {
	for i, cell := range g.cells {
		if !fn(Position{Row: i / g.width, Col: i % g.width}, cell) {
			return
		}
	}
}

// Codes returns a fresh copy of the grid as rows of cell codes.
func (g *Grid) Codes() [][]int {
	out := make([][]int, g.height)
	for r := range out {
		out[r] = make([]int, g.width)
		for c := range out[r] {
			out[r][c] = g.At(Position{Row: r, Col: c}).Code()
		}
	}
	return out
}

// String renders the grid one row per line: '#' wall, '.' corridor,
// digits for clues.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			cell := g.At(Position{Row: r, Col: c})
			switch cell.Kind() {
			case Wall:
				sb.WriteByte('#')
			case Corridor:
				sb.WriteByte('.')
			case Clue:
				sb.WriteByte(byte('0' + cell.Value()))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
