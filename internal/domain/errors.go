package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidCellKind reports an operation on a cell kind that does not support it.
	ErrInvalidCellKind = errors.New("invalid cell kind")
	// ErrNoLampPresent reports a lamp query on a cell without a lamp.
	ErrNoLampPresent = errors.New("no lamp present")
	// ErrInvalidGrid reports malformed puzzle data.
	ErrInvalidGrid = errors.New("invalid grid")
)

// CellError is a precondition failure at a specific cell.
type CellError struct {
	Op  string
	Pos Position
	Err error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Pos, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

func cellErr(op string, r, c int, err error) error {
	return &CellError{Op: op, Pos: Position{Row: r, Col: c}, Err: err}
}
