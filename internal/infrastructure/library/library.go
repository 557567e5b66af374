package library

import (
	"fmt"

	"svw.info/akari/internal/domain"
)

// Library is an in-memory, read-only list of puzzles.
type Library struct{ grids []*domain.Grid }

func New(grids ...*domain.Grid) *Library { return &Library{grids: grids} }

func (l *Library) Count() int { return len(l.grids) }

func (l *Library) Grid(i int) (*domain.Grid, error) {
	if i < 0 || i >= len(l.grids) {
		return nil, fmt.Errorf("puzzle %d of %d: %w", i, len(l.grids), domain.ErrOutOfBounds)
	}
	return l.grids[i], nil
}

const (
	w = domain.CodeWall
	o = domain.CodeCorridor
)

// builtin puzzles, each with exactly one solution.
var builtin = [][][]int{
	{
		{1, o, 1, o, o},
		{o, 1, o, o, o},
		{o, o, o, 3, o},
		{o, 1, 3, o, o},
		{o, o, o, o, 0},
	},
	{
		{o, w, o, o, o},
		{w, o, o, o, w},
		{o, w, o, 4, o},
		{2, o, 4, o, o},
		{0, 2, o, o, 0},
	},
	{
		{o, 3, o, o, 0},
		{o, o, o, o, 1},
		{o, o, 1, o, o},
		{o, o, o, o, w},
		{0, 0, 1, 1, o},
	},
	{
		{o, o, o, 0, w, o, o, o},
		{o, o, o, o, 2, o, 3, o},
		{w, o, 1, o, o, o, o, 1},
		{0, o, o, 0, o, o, 0, o},
		{w, o, o, 1, o, 0, 1, o},
	},
	{
		{o, o, w, o, o, o, o},
		{o, o, 0, 1, o, o, o},
		{o, o, 2, o, o, o, o},
		{1, o, o, 2, o, o, o},
		{1, o, o, o, o, 3, 0},
		{o, w, o, o, o, o, o},
		{o, o, w, o, 1, o, o},
	},
	{
		{o, 2, o, o, o, o, w},
		{2, w, w, o, o, o, w},
		{o, 1, 1, o, o, o, w},
		{o, o, 0, 2, o, o, o},
		{o, o, 1, o, o, 0, o},
		{o, o, o, o, 0, o, o},
		{o, o, 3, o, 2, o, w},
	},
}

// Builtin returns the puzzles shipped with the game.
func Builtin() *Library {
	grids := make([]*domain.Grid, len(builtin))
	for i, codes := range builtin {
		grids[i] = domain.MustGrid(codes)
	}
	return New(grids...)
}
