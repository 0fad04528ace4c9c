package univariate

import (
	"math"

	"github.com/sjmelia/newton-raphson/common"
)

type RootTestFunction struct {
	f        func(float64) float64
	fd       func(float64) float64
	initLocs []float64
	root     float64
	Name     string
}

// sqrt612 has a root at sqrt(612)
func sqrt612(x float64) float64  { return x*x - 612 }
func sqrt612D(x float64) float64 { return 2 * x }

// cosCube has a root near 0.865474
func cosCube(x float64) float64  { return math.Cos(x) - x*x*x }
func cosCubeD(x float64) float64 { return -math.Sin(x) - 3*x*x }

var rootTestFunctions = []RootTestFunction{
	{
		f:        sqrt612,
		fd:       sqrt612D,
		initLocs: []float64{10, 1, 100, 612},
		root:     math.Sqrt(612),
		Name:     "SquareRoot612",
	},
	{
		f:        cosCube,
		fd:       cosCubeD,
		initLocs: []float64{0.5, 1, 2},
		root:     0.8654740331016144,
		Name:     "CosMinusCube",
	},
	{
		f:        func(x float64) float64 { return math.Exp(x) - 2 },
		fd:       math.Exp,
		initLocs: []float64{0, 1, 3},
		root:     math.Ln2,
		Name:     "ExpMinusTwo",
	},
	{
		f:        func(x float64) float64 { return x*x*x - 2*x - 5 },
		fd:       func(x float64) float64 { return 3*x*x - 2 },
		initLocs: []float64{2, 3},
		root:     2.0945514815423265,
		Name:     "Wallis",
	},
}

// hooked counts evaluations and implements every optional hook of the
// function wrapper
type hooked struct {
	FuncPair
	stopAfter int
	initErr   error

	evals   int
	inits   int
	results int
}

func (h *hooked) Func(x float64) float64 {
	h.evals++
	return h.FuncPair.Func(x)
}

func (h *hooked) Deriv(x float64) float64 {
	h.evals++
	return h.FuncPair.Deriv(x)
}

func (h *hooked) Init() error {
	h.inits++
	return h.initErr
}

func (h *hooked) Status() common.Status {
	if h.stopAfter > 0 && h.evals >= h.stopAfter {
		return common.FunctionStop
	}
	return common.Continue
}

func (h *hooked) Result() {
	h.results++
}
