// Package nurses builds the boolean constraint model for a cyclic
// nurse-shift roster: every (day, shift) slot is covered by exactly one
// nurse, every nurse takes exactly one slot per day (the reserved off
// shift included), off-days per nurse stay within a window, each working
// shift is shared by a bounded set of nurses over the whole cycle, and
// the later shifts are never worked as isolated single days.
package nurses

import (
	"fmt"

	"github.com/roster-framework/rosty/pkg/roster"
)

// Schedule owns the built model together with flat index arenas for its
// decision variables, addressed by (nurse, day, shift) composite keys.
type Schedule struct {
	cfg   Config
	model *roster.Model

	// shift[n*Days*Shifts + d*Shifts + s] <=> nurse n works shift s on day d
	shift []roster.Var
	// works[n*(Shifts-1) + s-1] <=> nurse n works shift s (s >= 1) at least once
	works []roster.Var
}

// Build constructs the model for the given instance. The only error is a
// structurally invalid Config; feasibility is the engine's verdict.
func Build(cfg Config) (*Schedule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := roster.NewModel()
	sc := &Schedule{
		cfg:   cfg,
		model: m,
		shift: make([]roster.Var, cfg.Nurses*cfg.Days*cfg.Shifts),
		works: make([]roster.Var, cfg.Nurses*(cfg.Shifts-1)),
	}

	for n := 0; n < cfg.Nurses; n++ {
		for d := 0; d < cfg.Days; d++ {
			for s := 0; s < cfg.Shifts; s++ {
				sc.shift[sc.shiftIndex(n, d, s)] = m.NewBool(fmt.Sprintf("shift_n%d_d%d_s%d", n, d, s))
			}
		}
	}

	// Every (day, shift) slot is covered by exactly one nurse.
	for d := 0; d < cfg.Days; d++ {
		for s := 0; s < cfg.Shifts; s++ {
			vars := make([]roster.Var, cfg.Nurses)
			for n := 0; n < cfg.Nurses; n++ {
				vars[n] = sc.ShiftVar(n, d, s)
			}
			m.AddExactly(vars, 1)
		}
	}

	// Every nurse takes exactly one slot per day, off-day included.
	for n := 0; n < cfg.Nurses; n++ {
		for d := 0; d < cfg.Days; d++ {
			vars := make([]roster.Var, cfg.Shifts)
			for s := 0; s < cfg.Shifts; s++ {
				vars[s] = sc.ShiftVar(n, d, s)
			}
			m.AddExactly(vars, 1)
		}
	}

	// Off-days per nurse stay within the window.
	for n := 0; n < cfg.Nurses; n++ {
		off := make([]roster.Var, cfg.Days)
		for d := 0; d < cfg.Days; d++ {
			off[d] = sc.ShiftVar(n, d, 0)
		}
		m.AddLinearRange(off, cfg.MinDaysOff, cfg.MaxDaysOff)
	}

	// works_shift[n,s] = max over days of shift[n,d,s].
	for n := 0; n < cfg.Nurses; n++ {
		for s := 1; s < cfg.Shifts; s++ {
			w := m.NewBool(fmt.Sprintf("works_shift_n%d_s%d", n, s))
			sc.works[sc.worksIndex(n, s)] = w
			days := make([]roster.Var, cfg.Days)
			for d := 0; d < cfg.Days; d++ {
				days[d] = sc.ShiftVar(n, d, s)
			}
			m.AddMaxEquality(w, days)
		}
	}

	// Each working shift is shared by at most MaxNursesPerShift nurses
	// over the whole cycle.
	for s := 1; s < cfg.Shifts; s++ {
		vars := make([]roster.Var, cfg.Nurses)
		for n := 0; n < cfg.Nurses; n++ {
			vars[n] = sc.WorksVar(n, s)
		}
		m.AddLinearRange(vars, 0, cfg.MaxNursesPerShift)
	}

	// Shifts from index 2 up are never worked as isolated single days:
	// working one implies working it the day before or the day after,
	// wrapping across the cycle boundary.
	for n := 0; n < cfg.Nurses; n++ {
		for s := 2; s < cfg.Shifts; s++ {
			for d := 0; d < cfg.Days; d++ {
				yesterday := (d + cfg.Days - 1) % cfg.Days
				tomorrow := (d + 1) % cfg.Days
				m.AddClause(
					sc.ShiftVar(n, yesterday, s).Pos(),
					sc.ShiftVar(n, d, s).Neg(),
					sc.ShiftVar(n, tomorrow, s).Pos(),
				)
			}
		}
	}

	return sc, nil
}

func (sc *Schedule) Config() Config {
	return sc.cfg
}

func (sc *Schedule) Model() *roster.Model {
	return sc.model
}

// ShiftVar returns the decision variable for nurse n working shift s on
// day d.
func (sc *Schedule) ShiftVar(n, d, s int) roster.Var {
	return sc.shift[sc.shiftIndex(n, d, s)]
}

// WorksVar returns the derived variable for nurse n ever working the
// working shift s (s >= 1) during the cycle.
func (sc *Schedule) WorksVar(n, s int) roster.Var {
	return sc.works[sc.worksIndex(n, s)]
}

func (sc *Schedule) shiftIndex(n, d, s int) int {
	return (n*sc.cfg.Days+d)*sc.cfg.Shifts + s
}

func (sc *Schedule) worksIndex(n, s int) int {
	return n*(sc.cfg.Shifts-1) + s - 1
}
