package hint

import (
	"context"
	"fmt"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/rules"
)

// Singles implements a minimal Hinter: it fixes conflicts first, then
// looks for clues and dark cells that leave exactly one way forward.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first applicable suggestion, or false if none applies.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid, lamps rules.Lamps) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	for _, step := range []func(*domain.Grid, rules.Lamps) (domain.Hint, bool){
		illegalLamp, overfullClue, forcedClue, loneCandidate,
	} {
		if hh, ok := step(g, lamps); ok {
			return hh, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func illegalLamp(g *domain.Grid, lamps rules.Lamps) (out domain.Hint, found bool) {
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		if !lamps.Contains(p) {
			return true
		}
		if bad, _ := rules.IsLampIllegal(g, lamps, p.Row, p.Col); bad {
			out = domain.Hint{
				Message: fmt.Sprintf("Lamp at %v shines on another lamp", p),
				Action:  domain.HintRemove,
				Cells:   []domain.Position{p},
			}
			found = true
		}
		return !found
	})
	return out, found
}

func overfullClue(g *domain.Grid, lamps rules.Lamps) (out domain.Hint, found bool) {
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		if cell.Kind() == domain.Clue && rules.AdjacentLamps(g, lamps, p) > cell.Value() {
			out = domain.Hint{
				Message: fmt.Sprintf("Clue at %v has more than %d lamps around it", p, cell.Value()),
				Action:  domain.HintRemove,
				Cells:   []domain.Position{p},
			}
			found = true
		}
		return !found
	})
	return out, found
}

func forcedClue(g *domain.Grid, lamps rules.Lamps) (out domain.Hint, found bool) {
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		if cell.Kind() != domain.Clue {
			return true
		}
		need := cell.Value() - rules.AdjacentLamps(g, lamps, p)
		if need <= 0 {
			return true
		}
		var cands []domain.Position
		for _, q := range rules.Neighbors(g, p) {
			if candidate(g, lamps, q) {
				cands = append(cands, q)
			}
		}
		if len(cands) == need {
			out = domain.Hint{
				Message: fmt.Sprintf("Clue at %v needs a lamp on every free neighbour", p),
				Action:  domain.HintPlace,
				Cells:   cands,
			}
			found = true
		}
		return !found
	})
	return out, found
}

func loneCandidate(g *domain.Grid, lamps rules.Lamps) (out domain.Hint, found bool) {
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		if cell.Kind() != domain.Corridor {
			return true
		}
		if lit, _ := rules.IsLit(g, lamps, p.Row, p.Col); lit {
			return true
		}
		var only []domain.Position
		for _, q := range append([]domain.Position{p}, rules.Sightline(g, p)...) {
			if candidate(g, lamps, q) {
				only = append(only, q)
				if len(only) > 1 {
					return true
				}
			}
		}
		if len(only) == 1 {
			out = domain.Hint{
				Message: fmt.Sprintf("Only %v can light %v", only[0], p),
				Action:  domain.HintPlace,
				Cells:   only,
			}
			found = true
		}
		return !found
	})
	return out, found
}

// candidate reports whether a lamp could still go on p: an empty, unlit
// corridor that is not next to a clue already full.
func candidate(g *domain.Grid, lamps rules.Lamps, p domain.Position) bool {
	if g.At(p).Kind() != domain.Corridor || lamps.Contains(p) {
		return false
	}
	if lit, _ := rules.IsLit(g, lamps, p.Row, p.Col); lit {
		return false
	}
	for _, q := range rules.Neighbors(g, p) {
		if cell := g.At(q); cell.Kind() == domain.Clue && rules.AdjacentLamps(g, lamps, q) >= cell.Value() {
			return false
		}
	}
	return true
}
