package domain

import (
	"errors"
	"testing"
)

const (
	w = CodeWall
	o = CodeCorridor
)

func TestNewGridRejectsMalformedData(t *testing.T) {
	cases := []struct {
		name  string
		codes [][]int
	}{
		{"empty", nil},
		{"empty row", [][]int{{}}},
		{"ragged", [][]int{{o, o}, {o}}},
		{"unknown code", [][]int{{o, 7}}},
		{"negative code", [][]int{{-1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.codes); !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("NewGrid(%v) err=%v, want ErrInvalidGrid", tc.codes, err)
			}
		})
	}
}

func TestGridLookups(t *testing.T) {
	g := MustGrid([][]int{
		{o, w, 3},
		{0, o, o},
	})
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", g.Width(), g.Height())
	}
	kinds := map[Position]Kind{
		{0, 0}: Corridor, {0, 1}: Wall, {0, 2}: Clue,
		{1, 0}: Clue, {1, 1}: Corridor, {1, 2}: Corridor,
	}
	for p, want := range kinds {
		got, err := g.CellKind(p.Row, p.Col)
		if err != nil || got != want {
			t.Fatalf("CellKind%v = %v, %v; want %v", p, got, err, want)
		}
	}
	if v, err := g.ClueValue(0, 2); err != nil || v != 3 {
		t.Fatalf("ClueValue(0,2) = %d, %v; want 3", v, err)
	}
	if v, err := g.ClueValue(1, 0); err != nil || v != 0 {
		t.Fatalf("ClueValue(1,0) = %d, %v; want 0", v, err)
	}
}

func TestGridErrors(t *testing.T) {
	g := MustGrid([][]int{{o, w, 1}})
	for _, p := range []Position{{-1, 0}, {0, -1}, {1, 0}, {0, 3}} {
		if _, err := g.CellKind(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("CellKind%v err=%v, want ErrOutOfBounds", p, err)
		}
		if _, err := g.ClueValue(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("ClueValue%v err=%v, want ErrOutOfBounds", p, err)
		}
	}
	for _, c := range []int{0, 1} {
		_, err := g.ClueValue(0, c)
		if !errors.Is(err, ErrInvalidCellKind) {
			t.Fatalf("ClueValue(0,%d) err=%v, want ErrInvalidCellKind", c, err)
		}
		var ce *CellError
		if !errors.As(err, &ce) || ce.Pos != (Position{0, c}) {
			t.Fatalf("ClueValue(0,%d) err=%v, want CellError at (0,%d)", c, err, c)
		}
	}
}

func TestGridCodesRoundTrip(t *testing.T) {
	codes := [][]int{
		{o, w, 4},
		{2, o, o},
	}
	g := MustGrid(codes)
	got := g.Codes()
	for r := range codes {
		for c := range codes[r] {
			if got[r][c] != codes[r][c] {
				t.Fatalf("Codes()[%d][%d] = %d, want %d", r, c, got[r][c], codes[r][c])
			}
		}
	}
	got[0][0] = w
	if k, _ := g.CellKind(0, 0); k != Corridor {
		t.Fatalf("mutating Codes() changed the grid")
	}
	if s := g.String(); s != ".#4\n2..\n" {
		t.Fatalf("String() = %q", s)
	}
}
