package nurses

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/roster-framework/rosty/pkg/roster"
)

// Assignment is a decoded solution: Assignment[n][d] is the shift index
// nurse n takes on day d (0 meaning off).
type Assignment [][]int

// Assignment decodes a solution into the shift each nurse takes each
// day. It assumes the solution satisfies the one-slot-per-day
// constraint; use Verify to check that first.
func (sc *Schedule) Assignment(sol roster.Solution) Assignment {
	a := make(Assignment, sc.cfg.Nurses)
	for n := range a {
		a[n] = make([]int, sc.cfg.Days)
		for d := 0; d < sc.cfg.Days; d++ {
			for s := 0; s < sc.cfg.Shifts; s++ {
				if sol.Value(sc.ShiftVar(n, d, s)) {
					a[n][d] = s
					break
				}
			}
		}
	}
	return a
}

// Verify checks a solution against every rule the model encodes,
// independently of the engine that produced it.
func (sc *Schedule) Verify(sol roster.Solution) error {
	cfg := sc.cfg
	nurses := lo.Range(cfg.Nurses)

	for d := 0; d < cfg.Days; d++ {
		for s := 0; s < cfg.Shifts; s++ {
			covered := lo.CountBy(nurses, func(n int) bool {
				return sol.Value(sc.ShiftVar(n, d, s))
			})
			if covered != 1 {
				return fmt.Errorf("day %d shift %d covered by %d nurses, want 1", d, s, covered)
			}
		}
	}

	for n := 0; n < cfg.Nurses; n++ {
		for d := 0; d < cfg.Days; d++ {
			taken := 0
			for s := 0; s < cfg.Shifts; s++ {
				if sol.Value(sc.ShiftVar(n, d, s)) {
					taken++
				}
			}
			if taken != 1 {
				return fmt.Errorf("nurse %d takes %d slots on day %d, want 1", n, taken, d)
			}
		}
	}

	for n := 0; n < cfg.Nurses; n++ {
		off := 0
		for d := 0; d < cfg.Days; d++ {
			if sol.Value(sc.ShiftVar(n, d, 0)) {
				off++
			}
		}
		if off < cfg.MinDaysOff || off > cfg.MaxDaysOff {
			return fmt.Errorf("nurse %d has %d off-days, want [%d,%d]", n, off, cfg.MinDaysOff, cfg.MaxDaysOff)
		}
	}

	for s := 1; s < cfg.Shifts; s++ {
		working := lo.CountBy(nurses, func(n int) bool {
			for d := 0; d < cfg.Days; d++ {
				if sol.Value(sc.ShiftVar(n, d, s)) {
					return true
				}
			}
			return false
		})
		if working > cfg.MaxNursesPerShift {
			return fmt.Errorf("shift %d worked by %d nurses over the cycle, cap is %d", s, working, cfg.MaxNursesPerShift)
		}
		// derived indicators must agree with the days they summarize
		for n := 0; n < cfg.Nurses; n++ {
			ever := false
			for d := 0; d < cfg.Days; d++ {
				if sol.Value(sc.ShiftVar(n, d, s)) {
					ever = true
					break
				}
			}
			if sol.Value(sc.WorksVar(n, s)) != ever {
				return fmt.Errorf("works_shift indicator for nurse %d shift %d disagrees with assignments", n, s)
			}
		}
	}

	for n := 0; n < cfg.Nurses; n++ {
		for s := 2; s < cfg.Shifts; s++ {
			for d := 0; d < cfg.Days; d++ {
				if !sol.Value(sc.ShiftVar(n, d, s)) {
					continue
				}
				yesterday := (d + cfg.Days - 1) % cfg.Days
				tomorrow := (d + 1) % cfg.Days
				if !sol.Value(sc.ShiftVar(n, yesterday, s)) && !sol.Value(sc.ShiftVar(n, tomorrow, s)) {
					return fmt.Errorf("nurse %d works shift %d on day %d in isolation", n, s, d)
				}
			}
		}
	}

	return nil
}
