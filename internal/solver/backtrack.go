package solver

import "context"

// BacktrackingSolver is a straightforward recursive solver. It decides the
// corridor cells in row-major order, lamp first, and prunes on clue counts
// and on cells that can no longer be lit.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// search walks the decision tree and calls found for every solution until
// found returns true. It returns the number of nodes visited.
func search(ctx context.Context, m *model, found func(lamp []bool) bool) (int, error) {
	n := len(m.cells)
	lamp := make([]bool, n)
	litBy := make([]int, n)
	placed := make([]int, len(m.clues))
	open := make([]int, len(m.clues))
	for k, c := range m.clues {
		open[k] = len(c.cells)
	}
	nodes := 0
	stop := false

	cluesOK := func(i int) bool {
		for _, k := range m.cluesOf[i] {
			if placed[k] > m.clues[k].value || placed[k]+open[k] < m.clues[k].value {
				return false
			}
		}
		return true
	}

	var dfs func(i int)
	dfs = func(i int) {
		if stop {
			return
		}
		if ctx.Err() != nil {
			stop = true
			return
		}
		nodes++
		if i == n {
			for _, c := range litBy {
				if c == 0 {
					return
				}
			}
			stop = found(lamp)
			return
		}
		for _, k := range m.cluesOf[i] {
			open[k]--
		}

		// lamp on i
		if litBy[i] == 0 {
			lamp[i] = true
			for _, j := range m.sight[i] {
				litBy[j]++
			}
			for _, k := range m.cluesOf[i] {
				placed[k]++
			}
			if cluesOK(i) {
				dfs(i + 1)
			}
			for _, k := range m.cluesOf[i] {
				placed[k]--
			}
			for _, j := range m.sight[i] {
				litBy[j]--
			}
			lamp[i] = false
		}

		// no lamp on i
		if !stop && cluesOK(i) {
			dark := false
			for _, j := range m.closes[i] {
				if litBy[j] == 0 {
					dark = true
					break
				}
			}
			if !dark {
				dfs(i + 1)
			}
		}

		for _, k := range m.cluesOf[i] {
			open[k]++
		}
	}
	if m.feasible() {
		dfs(0)
	}
	return nodes, ctx.Err()
}
