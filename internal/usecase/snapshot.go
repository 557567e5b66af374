package usecase

import (
	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/rules"
)

// Snapshot is a self-contained view of the active puzzle for adapters.
type Snapshot struct {
	Index  int               `json:"index"`
	Count  int               `json:"count"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Cells  [][]CellView      `json:"cells"`
	Lamps  []domain.Position `json:"lamps"`
	Solved bool              `json:"solved"`
}

// CellView is one cell of a Snapshot with its derived state.
type CellView struct {
	Kind      domain.Kind `json:"kind"`
	Clue      int         `json:"clue,omitempty"`
	Lamp      bool        `json:"lamp,omitempty"`
	Lit       bool        `json:"lit,omitempty"`
	Illegal   bool        `json:"illegal,omitempty"`
	Satisfied bool        `json:"satisfied,omitempty"`
}

func (u *Service) Snapshot() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot()
}

// snapshot expects u.mu to be held.
func (u *Service) snapshot() Snapshot {
	g := u.lamps.Grid()
	s := Snapshot{
		Index:  u.index,
		Count:  u.Library.Count(),
		Width:  g.Width(),
		Height: g.Height(),
		Cells:  make([][]CellView, g.Height()),
		Lamps:  u.lamps.Positions(),
		Solved: rules.IsSolved(g, u.lamps),
	}
	for r := range s.Cells {
		s.Cells[r] = make([]CellView, g.Width())
	}
	g.Each(func(p domain.Position, cell domain.Cell) bool {
		v := CellView{Kind: cell.Kind()}
		switch cell.Kind() {
		case domain.Corridor:
			v.Lamp = u.lamps.Contains(p)
			v.Lit, _ = rules.IsLit(g, u.lamps, p.Row, p.Col)
			if v.Lamp {
				v.Illegal, _ = rules.IsLampIllegal(g, u.lamps, p.Row, p.Col)
			}
		case domain.Clue:
			v.Clue = cell.Value()
			v.Satisfied, _ = rules.IsClueSatisfied(g, u.lamps, p.Row, p.Col)
		case domain.Wall:
		}
		s.Cells[p.Row][p.Col] = v
		return true
	})
	return s
}
