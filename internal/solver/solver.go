package solver

import (
	"context"
	"fmt"

	"github.com/roster-framework/rosty/pkg/roster"
)

// Engine names accepted by WithEngine.
const (
	EngineGopherSAT = "gophersat"
	EngineGini      = "gini"
)

// Solver runs an exhaustive search over a model, invoking the handler
// once per satisfying assignment found, and reports terminal status and
// search statistics once the search space is exhausted. The call blocks
// until the underlying engine returns.
type Solver interface {
	SolveAll(ctx context.Context, m *roster.Model, h roster.SolutionHandler) (roster.Result, error)
}

type config struct {
	engine string
}

type Option func(*config) error

// WithEngine selects the search engine backing the solver.
func WithEngine(name string) Option {
	return func(c *config) error {
		switch name {
		case EngineGopherSAT, EngineGini:
			c.engine = name
			return nil
		default:
			return fmt.Errorf("unknown engine %q", name)
		}
	}
}

func NewSolver(options ...Option) (Solver, error) {
	cfg := &config{engine: EngineGopherSAT}
	for _, option := range options {
		if err := option(cfg); err != nil {
			return nil, err
		}
	}
	switch cfg.engine {
	case EngineGini:
		return &cnfSolver{}, nil
	default:
		return &pbSolver{}, nil
	}
}
