package hint

import (
	"context"
	"slices"
	"testing"

	"svw.info/akari/internal/domain"
)

const (
	w = domain.CodeWall
	o = domain.CodeCorridor
)

func TestHint(t *testing.T) {
	cases := []struct {
		name   string
		codes  [][]int
		lamps  []domain.Position
		action domain.HintAction
		cells  []domain.Position
	}{
		{
			name:   "illegal lamp first",
			codes:  [][]int{{o, o, o}},
			lamps:  []domain.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}},
			action: domain.HintRemove,
			cells:  []domain.Position{{Row: 0, Col: 0}},
		},
		{
			name:   "overfull clue",
			codes:  [][]int{{o, 1, o}},
			lamps:  []domain.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}},
			action: domain.HintRemove,
			cells:  []domain.Position{{Row: 0, Col: 1}},
		},
		{
			name:   "clue with exactly enough room",
			codes:  [][]int{{o, 2, o}},
			action: domain.HintPlace,
			cells:  []domain.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}},
		},
		{
			name: "only one cell can light a corner",
			codes: [][]int{
				{o, o},
				{0, w},
			},
			action: domain.HintPlace,
			cells:  []domain.Position{{Row: 0, Col: 1}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := domain.MustGrid(tc.codes)
			l := domain.NewLampSet(g)
			for _, p := range tc.lamps {
				if err := l.Place(p.Row, p.Col); err != nil {
					t.Fatalf("Place%v: %v", p, err)
				}
			}
			hh, ok, err := NewSingles().Hint(context.Background(), g, l)
			if err != nil || !ok {
				t.Fatalf("Hint = %v, %v; want a hint", ok, err)
			}
			if hh.Action != tc.action || !slices.Equal(hh.Cells, tc.cells) {
				t.Fatalf("Hint = %v %v (%q), want %v %v", hh.Action, hh.Cells, hh.Message, tc.action, tc.cells)
			}
			if hh.Message == "" {
				t.Fatalf("hint without message")
			}
		})
	}
}

func TestNoHintWhenSolved(t *testing.T) {
	g := domain.MustGrid([][]int{{o, w, o}})
	l := domain.NewLampSet(g)
	_ = l.Place(0, 0)
	_ = l.Place(0, 2)
	if hh, ok, err := NewSingles().Hint(context.Background(), g, l); err != nil || ok {
		t.Fatalf("Hint on solved board = %+v, %v, %v", hh, ok, err)
	}
}
