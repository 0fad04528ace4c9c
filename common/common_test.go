package common

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type fixedStatus Status

func (f fixedStatus) Status() Status { return Status(f) }

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{
		Continue:                   "Continue",
		IterationLimit:             "IterationLimit",
		MaximumFunctionEvaluations: "MaximumFunctionEvaluations",
		MaximumRuntime:             "MaximumRuntimeElapsed",
		Status(1000):               "UnregisteredStatus",
	} {
		if got := s.String(); got != want {
			t.Errorf("status %d. Expected %q, Found %q", int(s), want, got)
		}
	}

	custom := NewStatus("Custom")
	if custom.String() != "Custom" {
		t.Errorf("custom status not registered, found %q", custom.String())
	}
	if other := NewStatus("Other"); other == custom {
		t.Errorf("NewStatus returned a duplicate value")
	}
	if !IterationLimit.Finished() || MaximumRuntime.Finished() || Continue.Finished() {
		t.Errorf("wrong Finished classification")
	}
}

func TestCheckStatus(t *testing.T) {
	if s := CheckStatus(); s != Continue {
		t.Errorf("empty check. Expected Continue, Found %v", s)
	}
	s := CheckStatus(fixedStatus(Continue), fixedStatus(MaximumRuntime), fixedStatus(IterationLimit))
	if s != MaximumRuntime {
		t.Errorf("expected first non-Continue status, found %v", s)
	}
}

func TestCommonStatus(t *testing.T) {
	settings := DefaultCommonSettings()
	settings.Iterations = 3
	settings.MaximumFunctionEvaluations = 7

	c := NewCommon()
	if err := c.Init(settings, nil, 2); err != nil {
		t.Fatalf("error initializing: %v", err)
	}
	var statuses []Status
	for c.Status() == Continue {
		if err := c.Iterate(2); err != nil {
			t.Fatal(err)
		}
		statuses = append(statuses, c.Status())
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 iterations, found %d", len(statuses))
	}
	r := c.Result(c.Status())
	if r.Iterations != 3 || r.FunctionEvaluations != 8 {
		t.Errorf("expected 3 iterations and 8 evaluations, found %d and %d", r.Iterations, r.FunctionEvaluations)
	}
	// The iteration count is checked first
	if r.Status != IterationLimit {
		t.Errorf("expected %v, found %v", IterationLimit, r.Status)
	}

	settings.Iterations = 0
	if err := c.Init(settings, nil, 0); err != nil {
		t.Fatalf("error initializing: %v", err)
	}
	if s := c.Status(); s != IterationLimit {
		t.Errorf("zero iterations. Expected %v, Found %v", IterationLimit, s)
	}
}

type initFails struct {
	err     error
	results int
}

func (i *initFails) Init() error { return i.err }
func (i *initFails) Result()     { i.results++ }

func TestCommonInitError(t *testing.T) {
	var buf bytes.Buffer
	settings := DefaultCommonSettings()
	settings.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	bad := &initFails{err: errors.New("bad init")}
	c := NewCommon()
	err := c.Init(settings, bad, 0)
	if !errors.Is(err, bad.err) {
		t.Errorf("expected wrapped init error, found %v", err)
	}
	if !strings.Contains(buf.String(), UserFunctionError.String()) {
		t.Errorf("init failure not logged with %v: %q", UserFunctionError, buf.String())
	}

	good := &initFails{}
	if err := c.Init(settings, good, 0); err != nil {
		t.Fatalf("error initializing after a failed init: %v", err)
	}
	c.Result(IterationLimit)
	if good.results != 1 || bad.results != 0 {
		t.Errorf("Result went to the wrong function: good %d, bad %d", good.results, bad.results)
	}
	c.Result(IterationLimit)
	if good.results != 1 {
		t.Errorf("Result called %d times for one Init", good.results)
	}
}
