package validator

import (
	"context"
	"slices"
	"testing"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/rules"
)

const o = domain.CodeCorridor

var ring = [][]int{
	{o, o, o},
	{o, 2, o},
	{o, o, o},
}

func TestValidateListsEveryViolation(t *testing.T) {
	g := domain.MustGrid(ring)
	l := domain.NewLampSet(g)
	_ = l.Place(0, 0)
	_ = l.Place(0, 2)

	rep, err := New().Validate(context.Background(), g, l)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rep.Solved {
		t.Fatalf("report says solved")
	}
	if want := []domain.Position{{Row: 2, Col: 1}}; !slices.Equal(rep.Unlit, want) {
		t.Fatalf("Unlit = %v, want %v", rep.Unlit, want)
	}
	if want := []domain.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}}; !slices.Equal(rep.Illegal, want) {
		t.Fatalf("Illegal = %v, want %v", rep.Illegal, want)
	}
	if want := []domain.Position{{Row: 1, Col: 1}}; !slices.Equal(rep.Unsatisfied, want) {
		t.Fatalf("Unsatisfied = %v, want %v", rep.Unsatisfied, want)
	}
}

func TestValidateAgreesWithIsSolved(t *testing.T) {
	g := domain.MustGrid(ring)
	l := domain.NewLampSet(g)
	for _, p := range []domain.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 2}} {
		_ = l.Place(p.Row, p.Col)
	}
	rep, err := New().Validate(context.Background(), g, l)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !rep.Solved || !rules.IsSolved(g, l) {
		t.Fatalf("report=%+v IsSolved=%v, want both solved", rep, rules.IsSolved(g, l))
	}
}

func TestValidateHonoursContext(t *testing.T) {
	g := domain.MustGrid(ring)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Validate(ctx, g, domain.NewLampSet(g)); err == nil {
		t.Fatalf("Validate with canceled context returned nil error")
	}
}
