package solve

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/roster-framework/rosty/internal/solver"
	"github.com/roster-framework/rosty/pkg/roster"
)

// Engine names accepted by WithEngine.
const (
	EngineGopherSAT = solver.EngineGopherSAT
	EngineGini      = solver.EngineGini
)

// ErrNotIdle is returned when EnumerateAll is invoked on an Enumerator
// that has already run. A search outcome, successful or not, is terminal;
// enumeration is never retried on the same Enumerator.
var ErrNotIdle = errors.New("enumerator has already run")

const (
	stateIdle int32 = iota
	stateSearching
	stateCompleted
)

// Enumerator drives one exhaustive search over a model. It issues a
// single blocking call into the selected engine, hands the caller's
// handler to it, and reports the engine's final statistics once the call
// returns. An Enumerator is single-shot: create a new one per search.
type Enumerator struct {
	engine string
	state  atomic.Int32
}

type Option func(*Enumerator) error

// WithEngine selects the search engine. The default is gophersat.
func WithEngine(name string) Option {
	return func(e *Enumerator) error {
		// delegate name validation to the engine factory
		if _, err := solver.NewSolver(solver.WithEngine(name)); err != nil {
			return err
		}
		e.engine = name
		return nil
	}
}

func NewEnumerator(options ...Option) (*Enumerator, error) {
	e := &Enumerator{engine: EngineGopherSAT}
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// EnumerateAll blocks until the engine has exhausted the search space
// (or returned a terminal non-success status), invoking h once per
// distinct satisfying assignment along the way. The handler's count is
// read only after the blocking call returns.
func (e *Enumerator) EnumerateAll(ctx context.Context, m *roster.Model, h roster.SolutionHandler) (roster.Result, error) {
	if !e.state.CompareAndSwap(stateIdle, stateSearching) {
		return roster.Result{}, ErrNotIdle
	}
	defer e.state.Store(stateCompleted)

	s, err := solver.NewSolver(solver.WithEngine(e.engine))
	if err != nil {
		return roster.Result{}, err
	}
	return s.SolveAll(ctx, m, h)
}

// SolutionCounter counts solutions atomically. It satisfies
// roster.SolutionHandler on its own and is meant for embedding in
// handlers that do more per solution.
type SolutionCounter struct {
	n atomic.Int64
}

func (c *SolutionCounter) OnSolutionFound(roster.Solution) {
	c.n.Add(1)
}

func (c *SolutionCounter) SolutionCount() int {
	return int(c.n.Load())
}
