package roster

import (
	"fmt"
	"strings"
)

// LinearConstraint bounds the number of true variables among Vars:
// Min <= sum(Vars) <= Max. All coefficients are 1; an equality is a
// constraint with Min == Max.
type LinearConstraint struct {
	Vars []Var
	Min  int
	Max  int
}

// Exact returns the equality constant and true when the constraint pins
// the sum to a single value.
func (c LinearConstraint) Exact() (int, bool) {
	if c.Min == c.Max {
		return c.Min, true
	}
	return 0, false
}

func (c LinearConstraint) String(m *Model) string {
	if k, ok := c.Exact(); ok {
		return fmt.Sprintf("exactly %d of %s", k, m.nameList(c.Vars))
	}
	return fmt.Sprintf("between %d and %d of %s", c.Min, c.Max, m.nameList(c.Vars))
}

// Clause is a disjunction of literals; at least one must hold.
type Clause struct {
	Lits []Literal
}

func (c Clause) String(m *Model) string {
	s := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		if l.Negated() {
			s[i] = "!" + m.NameOf(l.Var())
		} else {
			s[i] = m.NameOf(l.Var())
		}
	}
	return strings.Join(s, " | ")
}

// MaxEquality pins Target to the maximum over Sources; for booleans this
// makes Target true iff at least one source is true.
type MaxEquality struct {
	Target  Var
	Sources []Var
}

func (c MaxEquality) String(m *Model) string {
	return fmt.Sprintf("%s = max%s", m.NameOf(c.Target), m.nameList(c.Sources))
}
