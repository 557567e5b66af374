package domain

import "fmt"

// Position identifies a cell on the grid. It is a value type and is
// used directly as a set/map key.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Cell codes used by puzzle data: 0..4 are clues, then wall and corridor.
const (
	MaxClue      = 4
	CodeWall     = 5
	CodeCorridor = 6
)

// Cell is one square of a grid: a wall, a corridor, or a clue carrying
// its value. The zero Cell is a wall.
type Cell struct {
	kind  Kind
	value uint8
}

func WallCell() Cell     { return Cell{kind: Wall} }
func CorridorCell() Cell { return Cell{kind: Corridor} }

// ClueCell returns a clue cell; values outside 0..4 are rejected.
func ClueCell(n int) (Cell, error) {
	if n < 0 || n > MaxClue {
		return Cell{}, fmt.Errorf("%w: clue value %d", ErrInvalidGrid, n)
	}
	return Cell{kind: Clue, value: uint8(n)}, nil
}

// CellFromCode decodes a puzzle cell code.
func CellFromCode(code int) (Cell, error) {
	switch {
	case code >= 0 && code <= MaxClue:
		return ClueCell(code)
	case code == CodeWall:
		return WallCell(), nil
	case code == CodeCorridor:
		return CorridorCell(), nil
	default:
		return Cell{}, fmt.Errorf("%w: unknown cell code %d", ErrInvalidGrid, code)
	}
}

func (c Cell) Kind() Kind { return c.kind }

// Value is the clue number; it is only meaningful for clue cells.
func (c Cell) Value() int { return int(c.value) }

// Code encodes the cell back to its puzzle cell code.
func (c Cell) Code() int {
	switch c.kind {
	case Clue:
		return int(c.value)
	case Corridor:
		return CodeCorridor
	default:
		return CodeWall
	}
}

// Report is a whole-board check of the current lamps.
type Report struct {
	Solved      bool       `json:"solved"`
	Unlit       []Position `json:"unlit,omitempty"`
	Illegal     []Position `json:"illegal,omitempty"`
	Unsatisfied []Position `json:"unsatisfied,omitempty"`
}

// Hint describes a suggested next step for the UI.
type Hint struct {
	Message string     `json:"message,omitempty"`
	Action  HintAction `json:"action"`
	Cells   []Position `json:"cells,omitempty"`
}
