package univariate

import (
	"errors"
	"fmt"

	"github.com/sjmelia/newton-raphson/common"
)

// RootFinder represents a step-wise root finding method
type RootFinder interface {
	Init(f FuncDeriver, initLoc, initF, initDeriv float64) error
	Status() common.Status
	// The loc, f and deriv are the new candidate and the function and
	// derivative evaluated there
	Iterate() (loc, f, deriv float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// Wrapper is a convenience wrapper around a root finder that allows
// more fine-grained control over the progress of a run. See Solve
// for example usage
type Wrapper struct {
	finder RootFinder
	helper *Helper
}

func NewWrapper(finder RootFinder) *Wrapper {
	return &Wrapper{
		finder: finder,
		helper: NewHelper(),
	}
}

func (w *Wrapper) Init(settings *Settings, fun FuncDeriver, initLoc float64) error {
	if fun == nil {
		return errors.New("wrapper: nil function")
	}
	initF := fun.Func(initLoc)
	initDeriv := fun.Deriv(initLoc)

	if err := w.helper.Init(settings, fun, initLoc, initF, initDeriv, 2); err != nil {
		return err
	}
	if err := w.finder.Init(fun, initLoc, initF, initDeriv); err != nil {
		// The function has already been initialized, so give it its Result
		w.helper.Result(common.FinderError)
		return err
	}
	return nil
}

func (w *Wrapper) Status() common.Status {
	return common.CheckStatus(w.helper, w.finder)
}

func (w *Wrapper) Iterate() (loc, f, deriv float64, err error) {
	var nFunEvals int
	loc, f, deriv, nFunEvals, err = w.finder.Iterate()
	if err != nil {
		return loc, f, deriv, fmt.Errorf("error iterating root finder: %w", err)
	}
	if err := w.helper.Iterate(loc, f, deriv, nFunEvals); err != nil {
		return loc, f, deriv, fmt.Errorf("error writing iteration: %w", err)
	}
	return loc, f, deriv, nil
}

func (w *Wrapper) Result(status common.Status) *Result {
	w.finder.Result()
	return w.helper.Result(status)
}

// Solve runs finder on f starting from initLoc until one of the limits in
// settings ends the run. With only Iterations set, the returned Loc is the
// same value FindRoot gives for that iteration count. A nil settings uses
// DefaultSettings, and a nil finder uses Newton.
func Solve(f FuncDeriver, initLoc float64, settings *Settings, finder RootFinder) (*Result, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	if finder == nil {
		finder = NewNewton()
	}

	wrapper := NewWrapper(finder)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, _, err := wrapper.Iterate()
		if err != nil {
			wrapper.Result(common.FinderError)
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}
