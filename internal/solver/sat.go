package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/ports"
)

// SATSolver encodes the puzzle as CNF and hands it to gini.
//
// Variable i+1 is true iff corridor cell i of the model holds a lamp.
// Clauses:
//
//	lit       every corridor sees at least one lamp (itself included)
//	legal     at most one lamp per corridor segment
//	clues     exactly n lamps around a clue with value n
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func lampLit(i int) z.Lit { return z.Var(i + 1).Pos() }

type cnf struct {
	g       *gini.Gini
	clauses int
}

func (c *cnf) add(lits ...z.Lit) {
	for _, m := range lits {
		c.g.Add(m)
	}
	c.g.Add(z.LitNull)
	c.clauses++
}

func encode(m *model) *cnf {
	c := &cnf{g: gini.New()}
	for _, seen := range m.sight {
		lits := make([]z.Lit, len(seen))
		for k, j := range seen {
			lits[k] = lampLit(j)
		}
		c.add(lits...)
	}
	for _, seg := range m.segments {
		for a := 0; a < len(seg); a++ {
			for b := a + 1; b < len(seg); b++ {
				c.add(lampLit(seg[a]).Not(), lampLit(seg[b]).Not())
			}
		}
	}
	for _, k := range m.clues {
		// at most value: no value+1 neighbours all lit
		combinations(k.cells, k.value+1, func(set []int) {
			lits := make([]z.Lit, len(set))
			for i, j := range set {
				lits[i] = lampLit(j).Not()
			}
			c.add(lits...)
		})
		// at least value: any len-value+1 neighbours include a lamp
		combinations(k.cells, len(k.cells)-k.value+1, func(set []int) {
			lits := make([]z.Lit, len(set))
			for i, j := range set {
				lits[i] = lampLit(j)
			}
			c.add(lits...)
		})
	}
	return c
}

// combinations calls fn with every size-k subset of items; fn must not
// keep the slice.
func combinations(items []int, k int, fn func([]int)) {
	if k <= 0 || k > len(items) {
		return
	}
	set := make([]int, 0, k)
	var rec func(from int)
	rec = func(from int) {
		if len(set) == k {
			fn(set)
			return
		}
		for i := from; i <= len(items)-(k-len(set)); i++ {
			set = append(set, items[i])
			rec(i + 1)
			set = set[:len(set)-1]
		}
	}
	rec(0)
}

func (c *cnf) assignment(n int) []bool {
	lamp := make([]bool, n)
	for i := range lamp {
		lamp[i] = c.g.Value(lampLit(i))
	}
	return lamp
}

// block forbids the given assignment from being found again.
func (c *cnf) block(lamp []bool) {
	lits := make([]z.Lit, len(lamp))
	for i, on := range lamp {
		if on {
			lits[i] = lampLit(i).Not()
		} else {
			lits[i] = lampLit(i)
		}
	}
	c.add(lits...)
}

func (s *SATSolver) Solve(ctx context.Context, g *domain.Grid) ([]domain.Position, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	m := newModel(g)
	if !m.feasible() {
		return nil, ports.Stats{Duration: time.Since(start)}, ports.ErrUnsolvable
	}
	c := encode(m)
	res := c.g.Solve()
	st := ports.Stats{Nodes: c.clauses, Duration: time.Since(start)}
	if res != 1 {
		return nil, st, ports.ErrUnsolvable
	}
	return m.positions(c.assignment(len(m.cells))), st, nil
}

func (s *SATSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	m := newModel(g)
	if !m.feasible() {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	c := encode(m)
	if c.g.Solve() != 1 {
		return false, ports.Stats{Nodes: c.clauses, Duration: time.Since(start)}, nil
	}
	if len(m.cells) == 0 {
		return true, ports.Stats{Nodes: c.clauses, Duration: time.Since(start)}, nil
	}
	c.block(c.assignment(len(m.cells)))
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: c.clauses, Duration: time.Since(start)}, err
	}
	unique := c.g.Solve() != 1
	return unique, ports.Stats{Nodes: c.clauses, Duration: time.Since(start)}, nil
}
