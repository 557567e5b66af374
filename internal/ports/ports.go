package ports

import (
	"context"
	"errors"
	"time"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/rules"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds a lamp placement for a grid and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) ([]domain.Position, Stats, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Validator checks every rule over the whole board.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid, lamps rules.Lamps) (domain.Report, error)
}

// Hinter returns the next logical step for the player.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, lamps rules.Lamps) (domain.Hint, bool, error)
}

// Library is an indexed, read-only collection of puzzles.
type Library interface {
	Count() int
	Grid(i int) (*domain.Grid, error)
}

// ErrUnsolvable is returned by solvers when no lamp placement solves the grid.
var ErrUnsolvable = errors.New("puzzle has no solution")
