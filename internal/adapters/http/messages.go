package httpadapter

import (
	"github.com/leonelquinteros/gotext"

	"svw.info/akari/internal/usecase"
)

// statusMessage is the one-line status shown above the board.
func statusMessage(s usecase.Snapshot) string {
	if s.Solved {
		return gotext.Get("Solved! Puzzle %d of %d", s.Index+1, s.Count)
	}
	return gotext.Get("Puzzle %d of %d", s.Index+1, s.Count)
}
