package usecase

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/akari/internal/domain"
	"svw.info/akari/internal/ports"
	"svw.info/akari/internal/rules"
)

var (
	ErrNotConfigured = errors.New("usecase dependency not configured")
	ErrEmptyLibrary  = errors.New("puzzle library is empty")
	// ErrStale is returned when the active puzzle changed while solving.
	ErrStale = errors.New("active puzzle changed")
)

// Service is the play session: the active puzzle of a library, its lamps
// and the listeners watching them.
//
// All methods are safe for concurrent use; mutations are serialized.
// Listeners run synchronously under the session lock after each committed
// change and must not call back into the Service.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Library   ports.Library

	mu    sync.Mutex
	log   logrus.FieldLogger
	rng   *rand.Rand
	index int
	lamps *domain.LampSet
}

type Option func(*Service)

func WithLogger(l logrus.FieldLogger) Option { return func(s *Service) { s.log = l } }

// WithRand sets the source used by RandomPuzzle.
func WithRand(r *rand.Rand) Option { return func(s *Service) { s.rng = r } }

func NewService(lib ports.Library, sv ports.Solver, v ports.Validator, h ports.Hinter, opts ...Option) (*Service, error) {
	if lib == nil || lib.Count() == 0 {
		return nil, ErrEmptyLibrary
	}
	g, err := lib.Grid(0)
	if err != nil {
		return nil, err
	}
	u := &Service{Solver: sv, Validator: v, Hinter: h, Library: lib, lamps: domain.NewLampSet(g)}
	for _, opt := range opts {
		opt(u)
	}
	if u.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		u.log = l
	}
	if u.rng == nil {
		u.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return u, nil
}

// ---- puzzle library ----

func (u *Service) ActiveGrid() *domain.Grid {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lamps.Grid()
}

func (u *Service) ActiveIndex() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.index
}

func (u *Service) PuzzleCount() int { return u.Library.Count() }

// SetActiveIndex switches to puzzle i with no lamps placed. Listeners are
// notified even when i is already active.
func (u *Service) SetActiveIndex(i int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.activate(i)
}

func (u *Service) activate(i int) error {
	g, err := u.Library.Grid(i)
	if err != nil {
		return err
	}
	u.index = i
	u.log.WithFields(logrus.Fields{"index": i, "width": g.Width(), "height": g.Height()}).Debug("puzzle activated")
	u.lamps.Rebind(g)
	return nil
}

// NextPuzzle moves to the following puzzle; it does nothing on the last one.
func (u *Service) NextPuzzle() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.index+1 >= u.Library.Count() {
		return nil
	}
	return u.activate(u.index + 1)
}

// PrevPuzzle moves to the preceding puzzle; it does nothing on the first one.
func (u *Service) PrevPuzzle() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.index == 0 {
		return nil
	}
	return u.activate(u.index - 1)
}

func (u *Service) RandomPuzzle() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.activate(u.rng.Intn(u.Library.Count()))
}

// ---- lamps ----

func (u *Service) PlaceLamp(r, c int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lamps.Place(r, c)
}

func (u *Service) RemoveLamp(r, c int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lamps.Remove(r, c)
}

// ClickCell toggles the lamp on a corridor cell.
func (u *Service) ClickCell(r, c int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	has, err := u.lamps.Has(r, c)
	if err != nil {
		return err
	}
	if has {
		return u.lamps.Remove(r, c)
	}
	return u.lamps.Place(r, c)
}

// Reset removes every lamp from the active puzzle.
func (u *Service) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.log.WithField("index", u.index).Debug("puzzle reset")
	u.lamps.Reset()
}

// Subscribe registers fn to receive a snapshot after every change.
func (u *Service) Subscribe(fn func(Snapshot)) domain.Subscription {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lamps.Subscribe(func(*domain.LampSet) { fn(u.snapshot()) })
}

func (u *Service) Unsubscribe(id domain.Subscription) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lamps.Unsubscribe(id)
}

// ---- queries ----

func (u *Service) IsLamp(r, c int) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lamps.Has(r, c)
}

func (u *Service) IsLit(r, c int) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return rules.IsLit(u.lamps.Grid(), u.lamps, r, c)
}

func (u *Service) IsLampIllegal(r, c int) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return rules.IsLampIllegal(u.lamps.Grid(), u.lamps, r, c)
}

func (u *Service) IsClueSatisfied(r, c int) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return rules.IsClueSatisfied(u.lamps.Grid(), u.lamps, r, c)
}

func (u *Service) IsSolved() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return rules.IsSolved(u.lamps.Grid(), u.lamps)
}

// ---- assistance ----

func (u *Service) Validate(ctx context.Context) (domain.Report, error) {
	if u.Validator == nil {
		return domain.Report{}, ErrNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.Validator.Validate(ctx, u.lamps.Grid(), u.lamps)
}

func (u *Service) Hint(ctx context.Context) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, ErrNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.Hinter.Hint(ctx, u.lamps.Grid(), u.lamps)
}

// Solve returns a solution of the active puzzle without applying it.
func (u *Service) Solve(ctx context.Context) ([]domain.Position, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, ErrNotConfigured
	}
	return u.solve(ctx, u.ActiveGrid())
}

func (u *Service) solve(ctx context.Context, g *domain.Grid) ([]domain.Position, ports.Stats, error) {
	sol, st, err := u.Solver.Solve(ctx, g)
	u.log.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration, "err": err}).Debug("solve")
	return sol, st, err
}

// ApplySolution solves the active puzzle and replaces the player's lamps
// with the solution.
func (u *Service) ApplySolution(ctx context.Context) ([]domain.Position, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, ErrNotConfigured
	}
	g := u.ActiveGrid()
	sol, st, err := u.solve(ctx, g)
	if err != nil {
		return nil, st, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.lamps.Grid() != g {
		return nil, st, ErrStale
	}
	u.lamps.Reset()
	for _, p := range sol {
		if err := u.lamps.Place(p.Row, p.Col); err != nil {
			return nil, st, err
		}
	}
	return sol, st, nil
}
