package solver

import (
	"context"
	"time"

	gophersat "github.com/crillab/gophersat/solver"
	"github.com/samber/lo"

	"github.com/roster-framework/rosty/pkg/roster"
)

// pbSolver lowers the model onto gophersat's pseudo-boolean constraints
// and enumerates by re-solving under a blocking clause per found
// assignment. Blocking covers every model variable, so each satisfying
// assignment is delivered exactly once even when the engine's search
// left some of them unbound. It is the only engine that exports search
// statistics.
type pbSolver struct{}

func (s *pbSolver) SolveAll(ctx context.Context, m *roster.Model, h roster.SolutionHandler) (roster.Result, error) {
	res := roster.Result{Engine: EngineGopherSAT}
	if err := validate(m); err != nil {
		res.Status = roster.StatusInvalid
		return res, err
	}

	engine := gophersat.New(gophersat.ParsePBConstrs(compilePB(m)))

	start := time.Now()
	count := 0
	outcome := gophersat.Unsat
	for {
		if err := ctx.Err(); err != nil {
			res.Status = roster.StatusUnknown
			res.WallTime = time.Since(start)
			res.SolutionCount = count
			res.Conflicts = int64(engine.Stats.NbConflicts)
			res.Branches = int64(engine.Stats.NbDecisions)
			return res, err
		}

		outcome = engine.Solve()
		if outcome != gophersat.Sat {
			break
		}

		// Snapshot before the handler runs: the engine reuses its model
		// slice on the next solve.
		model := engine.Model()
		assign := make([]bool, len(model))
		copy(assign, model)
		h.OnSolutionFound(&pbSolution{assign: assign, elapsed: time.Since(start)})
		count++

		block := make([]gophersat.Lit, len(assign))
		for i, b := range assign {
			if b {
				block[i] = gophersat.IntToLit(int32(-(i + 1)))
			} else {
				block[i] = gophersat.IntToLit(int32(i + 1))
			}
		}
		engine.AppendClause(gophersat.NewClause(block))
	}

	res.WallTime = time.Since(start)
	res.SolutionCount = count
	res.Conflicts = int64(engine.Stats.NbConflicts)
	res.Branches = int64(engine.Stats.NbDecisions)
	switch outcome {
	case gophersat.Unsat:
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

// compilePB lowers every constraint kind onto weighted at-least/at-most
// constraints. Clauses and max-equalities become degree-1 constraints
// over their literals. Constructors get fresh slices because gophersat
// rewrites literal slices in place.
func compilePB(m *roster.Model) []gophersat.PBConstr {
	var constrs []gophersat.PBConstr

	for _, c := range m.Linears() {
		if c.Min > 0 {
			constrs = append(constrs, gophersat.GtEq(varLits(c.Vars), ones(len(c.Vars)), c.Min))
		}
		if c.Max < len(c.Vars) {
			constrs = append(constrs, gophersat.LtEq(varLits(c.Vars), ones(len(c.Vars)), c.Max))
		}
	}
	for _, c := range m.Clauses() {
		lits := lo.Map(c.Lits, func(l roster.Literal, _ int) int { return int(l) })
		constrs = append(constrs, gophersat.GtEq(lits, ones(len(lits)), 1))
	}
	for _, c := range m.MaxEqualities() {
		lits := make([]int, 0, len(c.Sources)+1)
		lits = append(lits, int(c.Target.Neg()))
		for _, v := range c.Sources {
			lits = append(lits, int(v.Pos()))
		}
		constrs = append(constrs, gophersat.GtEq(lits, ones(len(lits)), 1))
		for _, v := range c.Sources {
			pair := []int{int(c.Target.Pos()), int(v.Neg())}
			constrs = append(constrs, gophersat.GtEq(pair, ones(2), 1))
		}
	}
	return constrs
}

func varLits(vars []roster.Var) []int {
	return lo.Map(vars, func(v roster.Var, _ int) int { return int(v.Pos()) })
}

func ones(n int) []int {
	ws := make([]int, n)
	for i := range ws {
		ws[i] = 1
	}
	return ws
}

// pbSolution holds one snapshotted assignment, indexed by variable.
type pbSolution struct {
	assign  []bool
	elapsed time.Duration
}

func (s *pbSolution) Value(v roster.Var) bool {
	return v >= 0 && int(v) < len(s.assign) && s.assign[v]
}

func (s *pbSolution) WallTime() time.Duration {
	return s.elapsed
}
