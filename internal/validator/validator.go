package validator

import (
	"context"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/rules"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate lists every unlit corridor, illegal lamp and unsatisfied clue
// in row-major order.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid, lamps rules.Lamps) (domain.Report, error) {
	var rep domain.Report
	var err error
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		switch cell.Kind() {
		case domain.Corridor:
			if lamps.Contains(p) {
				if bad, _ := rules.IsLampIllegal(g, lamps, p.Row, p.Col); bad {
					rep.Illegal = append(rep.Illegal, p)
				}
				return true
			}
			if lit, _ := rules.IsLit(g, lamps, p.Row, p.Col); !lit {
				rep.Unlit = append(rep.Unlit, p)
			}
		case domain.Clue:
			if ok, _ := rules.IsClueSatisfied(g, lamps, p.Row, p.Col); !ok {
				rep.Unsatisfied = append(rep.Unsatisfied, p)
			}
		case domain.Wall:
		}
		return true
	})
	if err != nil {
		return domain.Report{}, err
	}
	rep.Solved = len(rep.Unlit) == 0 && len(rep.Illegal) == 0 && len(rep.Unsatisfied) == 0
	return rep, nil
}
