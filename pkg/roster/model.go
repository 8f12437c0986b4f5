package roster

import (
	"fmt"
	"strings"
)

// Model owns a set of named boolean decision variables and the
// constraints relating them. Variables and constraints are write-once:
// they are added while the model is built and never removed or mutated.
// Engines treat a built Model as read-only input.
type Model struct {
	names   []string
	linears []LinearConstraint
	clauses []Clause
	maxEqs  []MaxEquality
}

func NewModel() *Model {
	return &Model{}
}

// NewBool creates a fresh boolean decision variable. The name is kept
// for debuggability and reporting only; it carries no semantics.
func (m *Model) NewBool(name string) Var {
	m.names = append(m.names, name)
	return Var(len(m.names) - 1)
}

// AddExactly constrains exactly k of vars to be true.
func (m *Model) AddExactly(vars []Var, k int) {
	m.linears = append(m.linears, LinearConstraint{Vars: vars, Min: k, Max: k})
}

// AddLinearRange constrains the number of true variables among vars to
// lie in the closed interval [lo, hi].
func (m *Model) AddLinearRange(vars []Var, lo, hi int) {
	m.linears = append(m.linears, LinearConstraint{Vars: vars, Min: lo, Max: hi})
}

// AddClause adds the disjunction of the given literals.
func (m *Model) AddClause(lits ...Literal) {
	m.clauses = append(m.clauses, Clause{Lits: lits})
}

// AddMaxEquality constrains target to equal the maximum over sources.
func (m *Model) AddMaxEquality(target Var, sources []Var) {
	m.maxEqs = append(m.maxEqs, MaxEquality{Target: target, Sources: sources})
}

// NumVars returns the number of decision variables the model owns.
func (m *Model) NumVars() int {
	return len(m.names)
}

// NumConstraints returns the total number of constraints of all kinds.
func (m *Model) NumConstraints() int {
	return len(m.linears) + len(m.clauses) + len(m.maxEqs)
}

// NameOf returns the name the variable was created with, or a positional
// placeholder for a variable the model does not own.
func (m *Model) NameOf(v Var) string {
	if v < 0 || int(v) >= len(m.names) {
		return fmt.Sprintf("var#%d", v)
	}
	return m.names[v]
}

func (m *Model) Linears() []LinearConstraint {
	return m.linears
}

func (m *Model) Clauses() []Clause {
	return m.clauses
}

func (m *Model) MaxEqualities() []MaxEquality {
	return m.maxEqs
}

func (m *Model) nameList(vars []Var) string {
	s := make([]string, len(vars))
	for i, v := range vars {
		s[i] = m.NameOf(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
