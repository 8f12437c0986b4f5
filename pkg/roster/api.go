package roster

import (
	"errors"
	"time"
)

// ErrInvalidModel reports a malformed model: a constraint referencing a
// variable the model does not own, an empty clause, or an empty linear
// bound. A correctly written model builder never produces one.
var ErrInvalidModel = errors.New("invalid model")

// Var identifies a boolean decision variable within a single Model.
// The zero-based index is only meaningful together with the Model that
// created it.
type Var int32

// Pos returns the literal asserting that v is true.
func (v Var) Pos() Literal {
	return Literal(v + 1)
}

// Neg returns the literal asserting that v is false.
func (v Var) Neg() Literal {
	return Literal(-(v + 1))
}

// Literal is a Var or its negation, encoded DIMACS-style: literal k > 0
// asserts variable k-1, literal -k asserts its negation. The zero value
// is not a valid literal.
type Literal int32

// Var returns the variable the literal refers to.
func (l Literal) Var() Var {
	if l < 0 {
		return Var(-l - 1)
	}
	return Var(l - 1)
}

// Negated reports whether the literal asserts the negation of its variable.
func (l Literal) Negated() bool {
	return l < 0
}

// Solution is a single satisfying assignment handed to a SolutionHandler.
// It is transient: implementations may reuse or discard the underlying
// state once the handler returns, so handlers must extract anything they
// need before returning.
type Solution interface {
	// Value returns the assignment of v in this solution.
	Value(v Var) bool
	// WallTime returns the wall-clock time elapsed since the search
	// started, measured when this solution was found.
	WallTime() time.Duration
}

// SolutionHandler receives every solution found during an exhaustive
// search. OnSolutionFound is invoked once per distinct satisfying
// assignment; it cannot prune or abort the search. Engines may invoke it
// from whatever goroutine they search on, so implementations must be safe
// for concurrent invocation.
type SolutionHandler interface {
	OnSolutionFound(s Solution)
	// SolutionCount returns how many solutions the handler has seen so far.
	SolutionCount() int
}
