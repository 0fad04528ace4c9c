package common

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sjmelia/newton-raphson/write"
)

type Initer interface {
	Init() error
}

type Resulter interface {
	Result()
}

// Helper routines for wrapping the user function
//
// If the function is an Initer it will be called once at the start of a run.
// If the function is a Statuser it is consulted before every iteration.
// If the function is a Resulter it will be called once at the end of a run.
// If the function is a DataAdder its values are written with the rest.
type FuncWrapper struct {
	fun        interface{}
	initCalled bool
}

// Init points the wrapper at fun and calls its Init hook. Result only
// calls the Resulter of a function whose Init succeeded.
func (o *FuncWrapper) Init(fun interface{}) error {
	o.fun = fun
	o.initCalled = false

	initer, ok := fun.(Initer)
	if ok {
		if err := initer.Init(); err != nil {
			return err
		}
	}
	o.initCalled = true
	return nil
}

func (o *FuncWrapper) Status() Status {
	statuser, isStatuser := o.fun.(Statuser)
	if isStatuser {
		return statuser.Status()
	}
	return Continue
}

func (o *FuncWrapper) Result() {
	if !o.initCalled {
		return
	}
	o.initCalled = false
	resulter, ok := o.fun.(Resulter)
	if ok {
		resulter.Result()
	}
}

func (o *FuncWrapper) AppendWriteData(v []*write.Value) []*write.Value {
	dataWriter, ok := o.fun.(write.DataAdder)
	if ok {
		return dataWriter.AppendWriteData(v)
	}
	return v
}

// CommonSettings is a set of options available to all root finders
type CommonSettings struct {
	Iterations                 int           // Number of iterations to perform. Zero or less performs none
	MaximumFunctionEvaluations int           // Sets the maximum number of function evaluations that can occur
	MaximumRuntime             time.Duration // Sets the maximum runtime that can elapse
	Logger                     *slog.Logger  // Receives a record at the start and end of a run. Nil discards
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		Iterations:                 0,
		MaximumFunctionEvaluations: -1, // Defaults to no maximum function evaluations
		MaximumRuntime:             -1, // Defaults to no maximum runtime
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the root finder
	FunctionEvaluations int           // Total number of function and derivative evaluations
	Runtime             time.Duration // Total runtime elapsed during the run
	Status              Status        // How did the run end
}

// Common provides routines for controlling the settings provided by common.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings
	logger   *slog.Logger

	*write.Display
	*FuncWrapper
}

// NewCommon creates a new Common structure, and adds itself to the datawriter
func NewCommon() *Common {
	c := &Common{
		Display:     write.NewDisplay(),
		FuncWrapper: &FuncWrapper{},
	}
	c.AddDataAdder(c, c.FuncWrapper)
	return c
}

// Init initializes all of the values in common at the start of the run.
// initFunEvals is the number of evaluations spent before the first iteration.
func (c *Common) Init(settings *CommonSettings, fun interface{}, initFunEvals int) error {
	c.iter = 0
	c.funEvals = initFunEvals
	c.startTime = time.Now()

	c.settings = settings
	c.logger = settings.Logger
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := c.FuncWrapper.Init(fun); err != nil {
		c.logger.Error("root finder not started", "status", UserFunctionError, "err", err)
		return fmt.Errorf("common: initializing function: %w", err)
	}
	if err := c.Display.Init(c.settings.WriteSettings); err != nil {
		c.FuncWrapper.Result()
		return fmt.Errorf("common: initializing display: %w", err)
	}
	c.logger.Debug("root finder started",
		"iterations", settings.Iterations,
		"maxFunEvals", settings.MaximumFunctionEvaluations,
		"maxRuntime", settings.MaximumRuntime,
	)
	return nil
}

// AppendWriteData adds the components of common to the display structure
func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks if any of the data controlled by common has finished the run
// (iteration count, funevals, runtime, etc.)
func (c *Common) Status() Status {
	status := c.FuncWrapper.Status()
	if status != Continue {
		return status
	}

	if c.iter >= c.settings.Iterations {
		return IterationLimit
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals >= c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	c.FuncWrapper.Result()
	r := &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
	c.logger.Info("root finder finished",
		"status", status,
		"iterations", r.Iterations,
		"funEvals", r.FunctionEvaluations,
		"runtime", r.Runtime,
	)
	return r
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate()
}
