package solver

import (
	"fmt"

	"github.com/roster-framework/rosty/pkg/roster"
)

// validate rejects structurally malformed models before they reach an
// engine: constraints over variables the model does not own, clauses
// with no literals, or linear bounds over no terms. Infeasible-but-wellformed
// constraints (e.g. an empty bound interval) pass validation; the engine
// reports those as infeasible.
func validate(m *roster.Model) error {
	n := roster.Var(m.NumVars())
	owned := func(v roster.Var) bool {
		return v >= 0 && v < n
	}

	for i, c := range m.Linears() {
		if len(c.Vars) == 0 {
			return fmt.Errorf("%w: linear constraint %d has no terms", roster.ErrInvalidModel, i)
		}
		for _, v := range c.Vars {
			if !owned(v) {
				return fmt.Errorf("%w: linear constraint %d references unknown variable %d", roster.ErrInvalidModel, i, v)
			}
		}
	}
	for i, c := range m.Clauses() {
		if len(c.Lits) == 0 {
			return fmt.Errorf("%w: clause %d is empty", roster.ErrInvalidModel, i)
		}
		for _, l := range c.Lits {
			if l == 0 || !owned(l.Var()) {
				return fmt.Errorf("%w: clause %d references unknown variable", roster.ErrInvalidModel, i)
			}
		}
	}
	for i, c := range m.MaxEqualities() {
		if len(c.Sources) == 0 {
			return fmt.Errorf("%w: max-equality %d has no sources", roster.ErrInvalidModel, i)
		}
		if !owned(c.Target) {
			return fmt.Errorf("%w: max-equality %d references unknown target %d", roster.ErrInvalidModel, i, c.Target)
		}
		for _, v := range c.Sources {
			if !owned(v) {
				return fmt.Errorf("%w: max-equality %d references unknown variable %d", roster.ErrInvalidModel, i, v)
			}
		}
	}
	return nil
}
