package univariate

import (
	"math"

	"github.com/sjmelia/newton-raphson/common"
	"github.com/sjmelia/newton-raphson/write"
	"gonum.org/v1/gonum/floats"
)

type Function interface {
	Func(x float64) float64
}

type Deriver interface {
	Deriv(x float64) float64
}

// FuncDeriver is a function that also knows its own derivative. Nothing
// checks that Deriv is actually the derivative of Func
type FuncDeriver interface {
	Function
	Deriver
}

// FuncPair adapts a function and its derivative given as plain funcs into a
// FuncDeriver
type FuncPair struct {
	F  func(float64) float64
	FD func(float64) float64
}

func (p FuncPair) Func(x float64) float64  { return p.F(x) }
func (p FuncPair) Deriv(x float64) float64 { return p.FD(x) }

// Settings is a structure containing settings for univariate
// root finders
type Settings struct {
	*common.CommonSettings
	Record bool // Keep every candidate in Result.Steps
}

// DefaultSettings returns the default settings for univariate root finders.
// The default performs zero iterations; set Iterations to the number of
// refinement steps wanted.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
	}
}

// Helper is a helper struct for root finders. Not intended for use by
// callers of Solve, but exported to aid others who are building
// root finding algorithms
//
// Implementers should call Init() at the beginning of a run
// and should call Status() to check for termination. At the end of every
// iteration should call Iterate()
type Helper struct {
	*common.Common

	locCurr   float64
	fCurr     float64
	derivCurr float64

	record bool
	steps  []float64
}

// NewHelper creates a new Helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common: common.NewCommon(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "F", Value: u.fCurr})
	v = append(v, &write.Value{Heading: "Deriv", Value: u.derivCurr})
	return v
}

// Init resets the helper for a run starting at initLoc, where the function
// and its derivative have already been evaluated at the cost of initFunEvals
func (u *Helper) Init(s *Settings, fun interface{}, initLoc, initF, initDeriv float64, initFunEvals int) error {
	u.locCurr = initLoc
	u.fCurr = initF
	u.derivCurr = initDeriv

	u.record = s.Record
	u.steps = u.steps[:0]
	if u.record {
		u.steps = append(u.steps, initLoc)
	}
	cs := s.CommonSettings
	if cs == nil {
		cs = common.DefaultCommonSettings()
	}
	return u.Common.Init(cs, fun, initFunEvals)
}

func (u *Helper) Iterate(loc, f, deriv float64, nFunEvals int) error {
	u.locCurr = loc
	u.fCurr = f
	u.derivCurr = deriv
	if u.record {
		u.steps = append(u.steps, loc)
	}
	return u.Common.Iterate(nFunEvals)
}

func (u *Helper) Result(status common.Status) *Result {
	r := &Result{
		CommonResult: u.Common.Result(status),
		Loc:          u.locCurr,
		F:            u.fCurr,
		Deriv:        u.derivCurr,
	}
	if u.record {
		r.Steps = make([]float64, len(u.steps))
		copy(r.Steps, u.steps)
	}
	return r
}

type Result struct {
	*common.CommonResult
	Loc   float64   // Final candidate root
	F     float64   // Value of the function at Loc
	Deriv float64   // Value of the derivative at Loc
	Steps []float64 // Initial location followed by every candidate. Only set if Settings.Record
}

// StepSizes returns the absolute change between successive candidates.
// It is nil unless the steps were recorded.
func (r *Result) StepSizes() []float64 {
	if len(r.Steps) < 2 {
		return nil
	}
	d := make([]float64, len(r.Steps)-1)
	floats.SubTo(d, r.Steps[1:], r.Steps[:len(r.Steps)-1])
	for i, v := range d {
		d[i] = math.Abs(v)
	}
	return d
}

// Span returns the distance between the smallest and largest candidate visited.
// It is zero unless the steps were recorded.
func (r *Result) Span() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	return floats.Max(r.Steps) - floats.Min(r.Steps)
}
