package roster

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOPB writes the model in OPB pseudo-boolean format, one constraint
// per line. Linear constraints map directly; clauses and max-equalities
// are written as their clausal form using ~x negated literals. The output
// is accepted by OPB-speaking solvers such as gophersat.
func WriteOPB(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	lines := 0
	for _, c := range m.linears {
		if _, exact := c.Exact(); exact {
			lines++
		} else {
			lines += 2
		}
	}
	lines += len(m.clauses)
	for _, c := range m.maxEqs {
		lines += 1 + len(c.Sources)
	}
	fmt.Fprintf(bw, "* #variable= %d #constraint= %d\n", m.NumVars(), lines)

	for _, c := range m.linears {
		if k, exact := c.Exact(); exact {
			writeTerms(bw, c.Vars, "+1")
			fmt.Fprintf(bw, "= %d ;\n", k)
			continue
		}
		writeTerms(bw, c.Vars, "+1")
		fmt.Fprintf(bw, ">= %d ;\n", c.Min)
		writeTerms(bw, c.Vars, "-1")
		fmt.Fprintf(bw, ">= %d ;\n", -c.Max)
	}
	for _, c := range m.clauses {
		writeClause(bw, c.Lits)
	}
	for _, c := range m.maxEqs {
		// target -> at least one source
		lits := make([]Literal, 0, len(c.Sources)+1)
		lits = append(lits, c.Target.Neg())
		for _, s := range c.Sources {
			lits = append(lits, s.Pos())
		}
		writeClause(bw, lits)
		// each source -> target
		for _, s := range c.Sources {
			writeClause(bw, []Literal{c.Target.Pos(), s.Neg()})
		}
	}

	return bw.Flush()
}

func writeTerms(w *bufio.Writer, vars []Var, coeff string) {
	for _, v := range vars {
		fmt.Fprintf(w, "%s x%d ", coeff, v+1)
	}
}

func writeClause(w *bufio.Writer, lits []Literal) {
	for _, l := range lits {
		if l.Negated() {
			fmt.Fprintf(w, "+1 ~x%d ", l.Var()+1)
		} else {
			fmt.Fprintf(w, "+1 x%d ", l.Var()+1)
		}
	}
	fmt.Fprint(w, ">= 1 ;\n")
}
