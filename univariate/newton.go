package univariate

import (
	"errors"

	"github.com/sjmelia/newton-raphson/common"
)

// Iteration performs a single Newton-Raphson update of guess, returning
// guess - f(guess)/fd(guess). No improvement is guaranteed. If fd(guess) is
// zero the result is ±Inf or NaN and is returned as is.
func Iteration(f, fd func(float64) float64, guess float64) float64 {
	return guess - f(guess)/fd(guess)
}

// FindRoot applies Iteration to guess exactly iterations times, feeding each
// result into the next, and returns the final candidate. There is no
// convergence test: the loop always runs to the end, and a NaN or Inf
// candidate is carried through to the returned value. A zero or negative
// count returns guess unchanged.
func FindRoot(f, fd func(float64) float64, guess float64, iterations int) float64 {
	x := guess
	for i := 0; i < iterations; i++ {
		x = Iteration(f, fd, x)
	}
	return x
}

// Newton is the step-wise form of FindRoot, for use with Solve or a Wrapper.
// Every Iterate moves to the next candidate and evaluates the function and
// its derivative there. Newton never stops a run on its own; the number of
// iterations is set through Settings.
type Newton struct {
	f FuncDeriver

	loc   float64
	fVal  float64
	deriv float64
}

// NewNewton returns a Newton ready to be passed to Solve or NewWrapper
func NewNewton() *Newton {
	return &Newton{}
}

// Init starts the iteration at initLoc, where f and its derivative evaluate
// to initF and initDeriv
func (n *Newton) Init(f FuncDeriver, initLoc, initF, initDeriv float64) error {
	if f == nil {
		return errors.New("newton: nil function")
	}
	n.f = f
	n.loc = initLoc
	n.fVal = initF
	n.deriv = initDeriv
	return nil
}

// Iterate moves to the next candidate and returns it together with the
// function and derivative evaluated there. A zero derivative gives a
// non-finite candidate, not an error.
func (n *Newton) Iterate() (loc, f, deriv float64, nFunEvals int, err error) {
	// Same arithmetic as Iteration, reusing the values from the last evaluation
	n.loc -= n.fVal / n.deriv
	n.fVal = n.f.Func(n.loc)
	n.deriv = n.f.Deriv(n.loc)
	return n.loc, n.fVal, n.deriv, 2, nil
}

// Status always returns Continue; the run length is set by the settings
func (n *Newton) Status() common.Status { return common.Continue }

// Result releases the function
func (n *Newton) Result() {
	n.f = nil
}
