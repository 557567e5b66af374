package solver

import (
	"context"
	"time"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) ([]domain.Position, ports.Stats, error) {
	start := time.Now()
	m := newModel(g)
	var sol []domain.Position
	solved := false
	nodes, err := search(ctx, m, func(lamp []bool) bool {
		sol = m.positions(lamp)
		solved = true
		return true
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	if !solved {
		return nil, st, ports.ErrUnsolvable
	}
	return sol, st, nil
}
