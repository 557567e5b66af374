package solver

import (
	"context"
	"time"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	count := 0
	nodes, err := search(ctx, newModel(g), func([]bool) bool {
		count++
		return count >= 2
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
