package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/samber/lo"

	"github.com/roster-framework/rosty/pkg/roster"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// cnfSolver lowers the model onto a gini logic circuit (sorting networks
// for the linear bounds, plain clauses for the rest) and enumerates by
// re-solving under a blocking clause per found assignment. gini does not
// export conflict or branch counters, so the result reports them as zero.
type cnfSolver struct{}

func (s *cnfSolver) SolveAll(ctx context.Context, m *roster.Model, h roster.SolutionHandler) (roster.Result, error) {
	res := roster.Result{Engine: EngineGini}
	if err := validate(m); err != nil {
		res.Status = roster.StatusInvalid
		return res, err
	}

	c := logic.NewC()
	lits := make([]z.Lit, m.NumVars())
	for i := range lits {
		lits[i] = c.Lit()
	}

	// Cardinality bounds become asserted outputs of sorting networks.
	// Bounds that no assignment can meet degrade to a contradiction on
	// one of the constraint's own variables.
	var asserts []z.Lit
	for _, lc := range m.Linears() {
		if lc.Max < 0 || lc.Min > len(lc.Vars) || lc.Min > lc.Max {
			first := lits[lc.Vars[0]]
			asserts = append(asserts, first, first.Not())
			continue
		}
		ms := lo.Map(lc.Vars, func(v roster.Var, _ int) z.Lit { return lits[v] })
		cs := c.CardSort(ms)
		if lc.Min > 0 {
			asserts = append(asserts, cs.Geq(lc.Min))
		}
		if lc.Max < len(ms) {
			asserts = append(asserts, cs.Leq(lc.Max))
		}
	}

	g := gini.New()
	c.ToCnf(g)
	for _, a := range asserts {
		g.Add(a)
		g.Add(z.LitNull)
	}
	for _, cl := range m.Clauses() {
		for _, l := range cl.Lits {
			g.Add(giniLit(lits, l))
		}
		g.Add(z.LitNull)
	}
	for _, me := range m.MaxEqualities() {
		g.Add(lits[me.Target].Not())
		for _, src := range me.Sources {
			g.Add(lits[src])
		}
		g.Add(z.LitNull)
		for _, src := range me.Sources {
			g.Add(lits[me.Target])
			g.Add(lits[src].Not())
			g.Add(z.LitNull)
		}
	}

	start := time.Now()
	count := 0
	outcome := g.Solve()
	for outcome == satisfiable {
		// Snapshot before the handler runs: the next Solve invalidates
		// the engine's assignment.
		assign := make([]bool, len(lits))
		for i, l := range lits {
			assign[i] = g.Value(l)
		}
		h.OnSolutionFound(&cnfSolution{assign: assign, elapsed: time.Since(start)})
		count++

		// Block this assignment over the decision variables only; the
		// sorting-network auxiliaries are left free.
		for i, l := range lits {
			if assign[i] {
				g.Add(l.Not())
			} else {
				g.Add(l)
			}
		}
		g.Add(z.LitNull)

		if err := ctx.Err(); err != nil {
			res.Status = roster.StatusUnknown
			res.WallTime = time.Since(start)
			res.SolutionCount = count
			return res, err
		}
		outcome = g.Solve()
	}

	res.WallTime = time.Since(start)
	res.SolutionCount = count
	switch outcome {
	case unsatisfiable:
		if count == 0 {
			res.Status = roster.StatusInfeasible
		} else {
			res.Status = roster.StatusExhausted
		}
	default:
		res.Status = roster.StatusUnknown
	}
	return res, nil
}

func giniLit(lits []z.Lit, l roster.Literal) z.Lit {
	if l.Negated() {
		return lits[l.Var()].Not()
	}
	return lits[l.Var()]
}

type cnfSolution struct {
	assign  []bool
	elapsed time.Duration
}

func (s *cnfSolution) Value(v roster.Var) bool {
	if v < 0 || int(v) >= len(s.assign) {
		return false
	}
	return s.assign[v]
}

func (s *cnfSolution) WallTime() time.Duration {
	return s.elapsed
}
