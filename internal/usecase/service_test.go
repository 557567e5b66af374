package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/hint"
	"svw.info/akari/internal/infrastructure/library"
	"svw.info/akari/internal/solver"
	"svw.info/akari/internal/validator"
)

const (
	w = domain.CodeWall
	o = domain.CodeCorridor
)

// small returns a three-puzzle library of tiny grids.
func small() *library.Library {
	return library.New(
		domain.MustGrid([][]int{{o, w, o}}),
		domain.MustGrid([][]int{{o, 1, w}}),
		domain.MustGrid([][]int{
			{o, o},
			{0, w},
		}),
	)
}

func newService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	u, err := NewService(small(), solver.NewBacktrackingSolver(), validator.New(), hint.NewSingles(), opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return u
}

func TestNewServiceNeedsPuzzles(t *testing.T) {
	if _, err := NewService(nil, nil, nil, nil); !errors.Is(err, ErrEmptyLibrary) {
		t.Fatalf("nil library err=%v", err)
	}
	if _, err := NewService(library.New(), nil, nil, nil); !errors.Is(err, ErrEmptyLibrary) {
		t.Fatalf("empty library err=%v", err)
	}
}

func TestPuzzleNavigation(t *testing.T) {
	u := newService(t)
	if u.ActiveIndex() != 0 || u.PuzzleCount() != 3 {
		t.Fatalf("start index=%d count=%d", u.ActiveIndex(), u.PuzzleCount())
	}
	if err := u.PrevPuzzle(); err != nil || u.ActiveIndex() != 0 {
		t.Fatalf("PrevPuzzle on first: index=%d err=%v", u.ActiveIndex(), err)
	}
	for i := 1; i < 3; i++ {
		if err := u.NextPuzzle(); err != nil || u.ActiveIndex() != i {
			t.Fatalf("NextPuzzle: index=%d err=%v, want %d", u.ActiveIndex(), err, i)
		}
	}
	if err := u.NextPuzzle(); err != nil || u.ActiveIndex() != 2 {
		t.Fatalf("NextPuzzle on last: index=%d err=%v", u.ActiveIndex(), err)
	}
	if err := u.PrevPuzzle(); err != nil || u.ActiveIndex() != 1 {
		t.Fatalf("PrevPuzzle: index=%d err=%v", u.ActiveIndex(), err)
	}
	if u.ActiveGrid().Width() != 3 {
		t.Fatalf("ActiveGrid width=%d, want 3", u.ActiveGrid().Width())
	}
}

func TestSetActiveIndex(t *testing.T) {
	u := newService(t)
	calls := 0
	u.Subscribe(func(Snapshot) { calls++ })

	if err := u.PlaceLamp(0, 0); err != nil {
		t.Fatalf("PlaceLamp: %v", err)
	}
	if err := u.SetActiveIndex(3); !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("SetActiveIndex(3) err=%v", err)
	}
	if calls != 1 {
		t.Fatalf("failed switch notified: calls=%d", calls)
	}
	if err := u.SetActiveIndex(0); err != nil {
		t.Fatalf("SetActiveIndex(0): %v", err)
	}
	if calls != 2 {
		t.Fatalf("reselecting the active puzzle should notify, calls=%d", calls)
	}
	if has, _ := u.IsLamp(0, 0); has {
		t.Fatalf("lamp survived a puzzle switch")
	}
}

func TestClickCellToggles(t *testing.T) {
	u := newService(t)
	if err := u.ClickCell(0, 0); err != nil {
		t.Fatalf("ClickCell: %v", err)
	}
	if has, _ := u.IsLamp(0, 0); !has {
		t.Fatalf("first click did not place a lamp")
	}
	if err := u.ClickCell(0, 0); err != nil {
		t.Fatalf("ClickCell: %v", err)
	}
	if has, _ := u.IsLamp(0, 0); has {
		t.Fatalf("second click did not remove the lamp")
	}
	if err := u.ClickCell(0, 1); !errors.Is(err, domain.ErrInvalidCellKind) {
		t.Fatalf("ClickCell on wall err=%v", err)
	}
	if err := u.ClickCell(5, 5); !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("ClickCell out of bounds err=%v", err)
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	u := newService(t)
	var got []Snapshot
	id := u.Subscribe(func(s Snapshot) { got = append(got, s) })

	_ = u.PlaceLamp(0, 0)
	_ = u.PlaceLamp(0, 0) // no change
	_ = u.PlaceLamp(0, 2)
	if len(got) != 2 {
		t.Fatalf("snapshots=%d, want 2", len(got))
	}
	last := got[1]
	if !last.Solved || len(last.Lamps) != 2 || !last.Cells[0][2].Lamp || !last.Cells[0][0].Lit {
		t.Fatalf("last snapshot = %+v", last)
	}
	if last.Cells[0][1].Kind != domain.Wall {
		t.Fatalf("cell (0,1) kind = %v", last.Cells[0][1].Kind)
	}

	if !u.Unsubscribe(id) {
		t.Fatalf("Unsubscribe returned false")
	}
	u.Reset()
	if len(got) != 2 {
		t.Fatalf("unsubscribed listener still called")
	}
}

func TestQueries(t *testing.T) {
	u := newService(t)
	_ = u.SetActiveIndex(1) // {o, 1, w}
	_ = u.PlaceLamp(0, 0)

	if lit, err := u.IsLit(0, 0); err != nil || !lit {
		t.Fatalf("IsLit = %v, %v", lit, err)
	}
	if bad, err := u.IsLampIllegal(0, 0); err != nil || bad {
		t.Fatalf("IsLampIllegal = %v, %v", bad, err)
	}
	if ok, err := u.IsClueSatisfied(0, 1); err != nil || !ok {
		t.Fatalf("IsClueSatisfied = %v, %v", ok, err)
	}
	if !u.IsSolved() {
		t.Fatalf("IsSolved = false")
	}
	if err := u.RemoveLamp(0, 0); err != nil {
		t.Fatalf("RemoveLamp: %v", err)
	}
	if u.IsSolved() {
		t.Fatalf("IsSolved after removing the only lamp")
	}
}

func TestApplySolution(t *testing.T) {
	u := newService(t)
	_ = u.SetActiveIndex(2)
	_ = u.PlaceLamp(0, 0) // wrong: next to the 0 clue

	sol, _, err := u.ApplySolution(context.Background())
	if err != nil {
		t.Fatalf("ApplySolution: %v", err)
	}
	if len(sol) != 1 || sol[0] != (domain.Position{Row: 0, Col: 1}) {
		t.Fatalf("solution = %v", sol)
	}
	if !u.IsSolved() {
		t.Fatalf("board not solved after ApplySolution")
	}
	if has, _ := u.IsLamp(0, 0); has {
		t.Fatalf("player lamp kept after ApplySolution")
	}
}

func TestSolveDoesNotTouchLamps(t *testing.T) {
	u := newService(t)
	sol, _, err := u.Solve(context.Background())
	if err != nil || len(sol) != 2 {
		t.Fatalf("Solve = %v, %v", sol, err)
	}
	if len(u.Snapshot().Lamps) != 0 {
		t.Fatalf("Solve placed lamps")
	}
}

func TestAssistance(t *testing.T) {
	u := newService(t)
	rep, err := u.Validate(context.Background())
	if err != nil || rep.Solved || len(rep.Unlit) != 2 {
		t.Fatalf("Validate = %+v, %v", rep, err)
	}
	hh, ok, err := u.Hint(context.Background())
	if err != nil || !ok || hh.Action != domain.HintPlace {
		t.Fatalf("Hint = %+v, %v, %v", hh, ok, err)
	}
}

func TestNotConfigured(t *testing.T) {
	u, err := NewService(small(), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	ctx := context.Background()
	if _, _, err := u.Solve(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Solve err=%v", err)
	}
	if _, _, err := u.ApplySolution(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("ApplySolution err=%v", err)
	}
	if _, err := u.Validate(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Validate err=%v", err)
	}
	if _, _, err := u.Hint(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Hint err=%v", err)
	}
}

func TestRandomPuzzleUsesSource(t *testing.T) {
	want := rand.New(rand.NewSource(7)).Intn(3)
	u := newService(t, WithRand(rand.New(rand.NewSource(7))))
	if err := u.RandomPuzzle(); err != nil {
		t.Fatalf("RandomPuzzle: %v", err)
	}
	if u.ActiveIndex() != want {
		t.Fatalf("index=%d, want %d", u.ActiveIndex(), want)
	}
}
