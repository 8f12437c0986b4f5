package roster

import (
	"fmt"
	"time"
)

// Status is the terminal outcome of an exhaustive search.
type Status int

const (
	// StatusUnknown means the engine returned without exhausting the
	// search space. It is reported as-is and never retried.
	StatusUnknown Status = iota
	// StatusExhausted means every satisfying assignment was enumerated.
	StatusExhausted
	// StatusInfeasible means the search space was exhausted without
	// finding any satisfying assignment.
	StatusInfeasible
	// StatusInvalid means the model failed pre-solve validation.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusExhausted:
		return "ALL_SOLUTIONS_FOUND"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Result aggregates what an engine reports once its search call has
// returned. Conflicts and Branches are engine counters; engines that do
// not export them leave them at zero (see Engine).
type Result struct {
	Status        Status
	Conflicts     int64
	Branches      int64
	WallTime      time.Duration
	SolutionCount int
	Engine        string
}

func (r Result) String() string {
	return fmt.Sprintf("status=%s conflicts=%d branches=%d wall=%s solutions=%d engine=%s",
		r.Status, r.Conflicts, r.Branches, r.WallTime, r.SolutionCount, r.Engine)
}
